package scramble

import (
    "fmt"
    "log/slog"
    "math"
    "unicode/utf8"
)

// DefaultOverdriveCode is the filler used when overdrive is on without an explicit code.
const DefaultOverdriveCode = 95

// CharRange is the pool filler characters are drawn from: either an inclusive
// [low, high] interval or an explicit set drawn uniformly.
type CharRange struct {
    Codes    []rune
    Interval bool // Codes holds exactly low and high
}

// DefaultRange covers 'A' through '}'.
var DefaultRange = Pair(65, 125)

// Pair returns an inclusive interval range.
func Pair(low, high rune) CharRange {
    return CharRange{Codes: []rune{low, high}, Interval: true}
}

// Set returns a range drawing only from the characters of s.
func Set(s string) CharRange { return Codes([]rune(s)...) }

// Codes returns a set range over the given codes. Duplicates weigh their code
// more heavily.
func Codes(c ...rune) CharRange {
    return CharRange{Codes: append([]rune(nil), c...)}
}

func (r CharRange) clone() CharRange {
    r.Codes = append([]rune(nil), r.Codes...)
    return r
}

func (r CharRange) String() string {
    if r.Interval && len(r.Codes) == 2 {
        return fmt.Sprintf("[%d..%d]", r.Codes[0], r.Codes[1])
    }
    return fmt.Sprintf("%q", string(r.Codes))
}

// Overdrive configures the trailing filler written ahead of the reveal.
type Overdrive struct {
    On   bool
    Code rune // zero means DefaultOverdriveCode
}

// OverdriveOn enables overdrive with the default filler.
func OverdriveOn() Overdrive { return Overdrive{On: true} }

// OverdriveCode enables overdrive with an explicit filler code.
func OverdriveCode(c rune) Overdrive { return Overdrive{On: true, Code: c} }

// Char is the filler rune written by overdrive.
func (o Overdrive) Char() rune {
    if o.Code != 0 {
        return o.Code
    }
    return DefaultOverdriveCode
}

func (o Overdrive) String() string {
    if !o.On {
        return "off"
    }
    return fmt.Sprintf("on(%d)", o.Char())
}

// Options configures an Engine. Start from DefaultOptions; the zero value is
// not a valid configuration.
type Options struct {
    Text        string
    Speed       float64
    Seed        int
    Step        int
    Tick        int
    Scramble    int
    Chance      float64
    Overflow    bool
    Range       CharRange
    Overdrive   Overdrive
    Ignore      []rune
    PlayOnMount bool

    // Handler receives lifecycle callbacks; nil means none.
    Handler Handler
    // Motion is read once by New; nil means full motion.
    Motion MotionPreference
    // Logger defaults to a silent logger.
    Logger *slog.Logger
    // Rand defaults to a clock-seeded provider.
    Rand *RandomProvider
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
    return Options{
        Speed:       1,
        Seed:        1,
        Step:        1,
        Tick:        1,
        Scramble:    1,
        Chance:      1,
        Overflow:    true,
        Range:       DefaultRange.clone(),
        Ignore:      []rune{' '},
        PlayOnMount: true,
    }
}

// Validate rejects out-of-domain values. It returns a *ConfigError for the
// first offending field.
func (o Options) Validate() error {
    switch {
    case math.IsNaN(o.Speed) || math.IsInf(o.Speed, 0) || o.Speed < 0:
        return &ConfigError{Field: "speed", Reason: fmt.Sprintf("%v is not a finite non-negative number", o.Speed)}
    case o.Seed < 0:
        return &ConfigError{Field: "seed", Reason: fmt.Sprintf("%d is negative", o.Seed)}
    case o.Step < 1:
        return &ConfigError{Field: "step", Reason: fmt.Sprintf("%d is less than 1", o.Step)}
    case o.Tick < 1:
        return &ConfigError{Field: "tick", Reason: fmt.Sprintf("%d is less than 1", o.Tick)}
    case o.Scramble < 0:
        return &ConfigError{Field: "scramble", Reason: fmt.Sprintf("%d is negative", o.Scramble)}
    case math.IsNaN(o.Chance) || o.Chance < 0 || o.Chance > 1:
        return &ConfigError{Field: "chance", Reason: fmt.Sprintf("%v is outside [0,1]", o.Chance)}
    }
    if err := validateRange(o.Range); err != nil {
        return err
    }
    if o.Overdrive.On && o.Overdrive.Code != 0 && !utf8.ValidRune(o.Overdrive.Code) {
        return &ConfigError{Field: "overdrive", Reason: fmt.Sprintf("code %d is not a valid character", o.Overdrive.Code)}
    }
    for _, c := range o.Ignore {
        if !utf8.ValidRune(c) {
            return &ConfigError{Field: "ignore", Reason: fmt.Sprintf("code %d is not a valid character", c)}
        }
    }
    return nil
}

func validateRange(r CharRange) error {
    if len(r.Codes) == 0 {
        return &ConfigError{Field: "range", Reason: "empty"}
    }
    for _, c := range r.Codes {
        if !utf8.ValidRune(c) {
            return &ConfigError{Field: "range", Reason: fmt.Sprintf("code %d is not a valid character", c)}
        }
    }
    if !r.Interval {
        return nil
    }
    if len(r.Codes) != 2 {
        return &ConfigError{Field: "range", Reason: fmt.Sprintf("interval needs low and high, got %d codes", len(r.Codes))}
    }
    low, high := r.Codes[0], r.Codes[1]
    if low > high {
        return &ConfigError{Field: "range", Reason: fmt.Sprintf("low %d is above high %d", low, high)}
    }
    if low <= 0xDFFF && high >= 0xD800 {
        return &ConfigError{Field: "range", Reason: "interval covers surrogate codes"}
    }
    return nil
}
