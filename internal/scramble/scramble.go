// Package scramble renders text by scrambling every position through random
// characters before it settles on the target character.
//
// An Engine owns its animation state and mutates it only from frame callbacks
// delivered by its frame.Scheduler, or from API calls made on the goroutine
// that runs that scheduler. It is not safe for concurrent use.
package scramble

import (
    "context"
    "fmt"
    "log/slog"
    "time"

    "scramble-reveal/internal/frame"
)

// Sink displays the rendered text.
type Sink interface {
    SetText(text string) error
}

// ContentReader is implemented by sinks that can report what they currently
// show. With Overflow on, a new engine starts from that content.
type ContentReader interface {
    Text() string
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(text string) error

func (f SinkFunc) SetText(text string) error { return f(text) }

// State is the engine lifecycle state.
type State int

const (
    Idle State = iota
    Playing
    Completed
    Failed
    Destroyed
)

func (s State) String() string {
    switch s {
    case Idle:
        return "idle"
    case Playing:
        return "playing"
    case Completed:
        return "completed"
    case Failed:
        return "failed"
    case Destroyed:
        return "destroyed"
    default:
        return fmt.Sprintf("State(%d)", int(s))
    }
}

// Engine is one scramble animation bound to a sink and a scheduler.
type Engine struct {
    sink    Sink
    driver  *FrameDriver
    rnd     *RandomProvider
    log     *slog.Logger
    handler Handler

    opts    Options
    reduced bool
    ignore  runeSet

    text           []rune
    slots          []slot
    scrambleIndex  int
    overdriveIndex int
    stepCount      int
    output         string
    gen            uint64

    state State
    err   error
}

// New validates opts and builds an engine. The reduced-motion preference is
// read here, once. With PlayOnMount set the first run is scheduled before New
// returns.
func New(sink Sink, sched frame.Scheduler, opts Options) (*Engine, error) {
    if sink == nil {
        return nil, ErrNilSink
    }
    if sched == nil {
        return nil, &ConfigError{Field: "scheduler", Reason: "nil"}
    }
    if err := opts.Validate(); err != nil {
        return nil, err
    }
    e := &Engine{
        sink:    sink,
        rnd:     opts.Rand,
        log:     opts.Logger,
        handler: opts.Handler,
        ignore:  newRuneSet(opts.Ignore),
        text:    []rune(opts.Text),
    }
    if e.rnd == nil {
        e.rnd = newClockRandom()
    }
    if e.log == nil {
        e.log = newNopLogger()
    }
    if e.handler == nil {
        e.handler = NopHandler{}
    }
    if cr, ok := sink.(ContentReader); ok {
        e.output = cr.Text()
    }
    if opts.Motion != nil && opts.Motion.ReducedMotion() {
        e.reduced = true
        opts.Chance = 0
        opts.Overdrive = Overdrive{}
        if opts.Speed == 0 {
            opts.Speed = 1
        }
    }
    opts.Range = opts.Range.clone()
    e.opts = opts
    e.fitStep()
    e.driver = NewFrameDriver(sched, opts.Speed, e.onFrame, e.onUpdate)
    e.driver.onPanic = func(any) { e.state = Failed }
    e.log.Debug("scramble engine created",
        slog.Int("len", len(e.text)),
        slog.Bool("reduced_motion", e.reduced),
        slog.Duration("interval", e.driver.Interval()),
    )
    if opts.PlayOnMount {
        if err := e.Play(); err != nil {
            return nil, err
        }
    }
    return e, nil
}

// fitStep makes a reduced-motion run reveal everything in one step.
func (e *Engine) fitStep() {
    if e.reduced {
        e.opts.Step = max(len(e.text), 1)
    }
}

// Play starts a run from the current text, cancelling any run in flight.
func (e *Engine) Play() error {
    if e.state == Destroyed {
        return ErrDestroyed
    }
    e.driver.Stop()
    e.reset()
    e.state = Playing
    gen := e.gen
    e.log.Debug("scramble play", slog.String("text", string(e.text)))
    e.handler.OnAnimationStart()
    if gen != e.gen || e.state != Playing {
        return nil
    }
    e.driver.Start()
    return nil
}

// UpdateText replaces the target text and restarts. Partial progress of the
// previous run is discarded.
func (e *Engine) UpdateText(text string) error {
    if e.state == Destroyed {
        return ErrDestroyed
    }
    e.text = []rune(text)
    e.fitStep()
    return e.Play()
}

// Destroy stops scheduling and releases the sink. It is idempotent.
func (e *Engine) Destroy() {
    if e.state == Destroyed {
        return
    }
    e.driver.Stop()
    e.gen++
    e.sink = nil
    e.slots = nil
    e.state = Destroyed
    e.log.Debug("scramble destroyed")
}

// Text is the current target text.
func (e *Engine) Text() string { return string(e.text) }

// Output is the last rendered output.
func (e *Engine) Output() string { return e.output }

// State reports the lifecycle state.
func (e *Engine) State() State { return e.state }

// Err is the render error that stopped the last run, if any.
func (e *Engine) Err() error { return e.err }

// Progress is the fraction of target positions currently showing their final
// character.
func (e *Engine) Progress() float64 {
    if len(e.text) == 0 {
        return 1
    }
    done := 0
    for i, s := range e.slots {
        if i < len(e.text) && s.kind == slotSettled && s.c == e.text[i] {
            done++
        }
    }
    return float64(done) / float64(len(e.text))
}

func (e *Engine) reset() {
    e.gen++
    e.scrambleIndex = 0
    e.overdriveIndex = 0
    e.stepCount = 0
    e.err = nil
    e.slots = e.slots[:0]
    if e.opts.Overflow {
        for _, c := range e.output {
            e.slots = append(e.slots, placeholder(c))
        }
    }
}

func (e *Engine) onFrame(time.Time) {
    e.overdrive()
}

func (e *Engine) onUpdate(time.Time) {
    e.update()
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
