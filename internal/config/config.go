package config

import (
    "fmt"
    "os"
    "unicode/utf8"

    "github.com/tidwall/gjson"
    "github.com/tidwall/sjson"

    "scramble-reveal/internal/scramble"
)

// DefaultPath is where `scramble init` writes its config.
const DefaultPath = "scramble.config.json"

// Template is the scaffolded config; keys mirror scramble.Options.
const Template = `{
  "text": "",
  "speed": 1,
  "seed": 1,
  "step": 1,
  "tick": 1,
  "scramble": 1,
  "chance": 1,
  "overflow": true,
  "playOnMount": true,
  "range": [65, 125],
  "overdrive": false,
  "ignore": [" "]
}
`

// Load reads a JSON config and overlays it on scramble.DefaultOptions.
func Load(path string) (scramble.Options, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return scramble.Options{}, fmt.Errorf("read config: %w", err)
    }
    o, err := Parse(data, scramble.DefaultOptions())
    if err != nil {
        return scramble.Options{}, fmt.Errorf("%s: %w", path, err)
    }
    return o, nil
}

// Parse overlays the keys present in data on base. Keys that are absent keep
// the base value. "range" is a [low, high] pair, a list of codes, or a string
// of characters; "overdrive" is a bool, a code, or a one-character string;
// "ignore" is a string of characters or a list of strings.
func Parse(data []byte, base scramble.Options) (scramble.Options, error) {
    if !gjson.ValidBytes(data) {
        return base, fmt.Errorf("parse config JSON: invalid document")
    }
    doc := gjson.ParseBytes(data)
    if !doc.IsObject() {
        return base, fmt.Errorf("parse config JSON: top level must be an object")
    }
    o := base
    var err error
    if v := doc.Get("text"); v.Exists() {
        if o.Text, err = str(v, "text"); err != nil {
            return base, err
        }
    }
    for _, f := range []struct {
        key string
        dst *int
    }{
        {"seed", &o.Seed},
        {"step", &o.Step},
        {"tick", &o.Tick},
        {"scramble", &o.Scramble},
    } {
        if v := doc.Get(f.key); v.Exists() {
            if *f.dst, err = integer(v, f.key); err != nil {
                return base, err
            }
        }
    }
    for _, f := range []struct {
        key string
        dst *float64
    }{
        {"speed", &o.Speed},
        {"chance", &o.Chance},
    } {
        if v := doc.Get(f.key); v.Exists() {
            if v.Type != gjson.Number {
                return base, typeErr(f.key, "number", v)
            }
            *f.dst = v.Float()
        }
    }
    for _, f := range []struct {
        key string
        dst *bool
    }{
        {"overflow", &o.Overflow},
        {"playOnMount", &o.PlayOnMount},
    } {
        if v := doc.Get(f.key); v.Exists() {
            if !v.IsBool() {
                return base, typeErr(f.key, "boolean", v)
            }
            *f.dst = v.Bool()
        }
    }
    if v := doc.Get("range"); v.Exists() {
        if o.Range, err = parseRange(v); err != nil {
            return base, err
        }
    }
    if v := doc.Get("overdrive"); v.Exists() {
        if o.Overdrive, err = parseOverdrive(v); err != nil {
            return base, err
        }
    }
    if v := doc.Get("ignore"); v.Exists() {
        if o.Ignore, err = parseIgnore(v); err != nil {
            return base, err
        }
    }
    if v := doc.Get("reducedMotion"); v.Exists() {
        if !v.IsBool() {
            return base, typeErr("reducedMotion", "boolean", v)
        }
        o.Motion = scramble.StaticMotion(v.Bool())
    }
    return o, nil
}

func parseRange(v gjson.Result) (scramble.CharRange, error) {
    switch {
    case v.Type == gjson.String:
        return scramble.Set(v.String()), nil
    case v.IsArray():
        var codes []rune
        for _, c := range v.Array() {
            r, err := code(c, "range")
            if err != nil {
                return scramble.CharRange{}, err
            }
            codes = append(codes, r)
        }
        if len(codes) == 2 {
            return scramble.Pair(codes[0], codes[1]), nil
        }
        return scramble.Codes(codes...), nil
    default:
        return scramble.CharRange{}, typeErr("range", "list of codes or string", v)
    }
}

func parseOverdrive(v gjson.Result) (scramble.Overdrive, error) {
    switch {
    case v.IsBool():
        if v.Bool() {
            return scramble.OverdriveOn(), nil
        }
        return scramble.Overdrive{}, nil
    case v.Type == gjson.Number:
        c, err := code(v, "overdrive")
        if err != nil {
            return scramble.Overdrive{}, err
        }
        return scramble.OverdriveCode(c), nil
    case v.Type == gjson.String && utf8.RuneCountInString(v.String()) == 1:
        r, _ := utf8.DecodeRuneInString(v.String())
        return scramble.OverdriveCode(r), nil
    default:
        return scramble.Overdrive{}, typeErr("overdrive", "boolean, code or single character", v)
    }
}

func parseIgnore(v gjson.Result) ([]rune, error) {
    switch {
    case v.Type == gjson.String:
        return []rune(v.String()), nil
    case v.IsArray():
        var out []rune
        for _, s := range v.Array() {
            if s.Type != gjson.String {
                return nil, typeErr("ignore", "list of strings", s)
            }
            out = append(out, []rune(s.String())...)
        }
        return out, nil
    default:
        return nil, typeErr("ignore", "string or list of strings", v)
    }
}

func str(v gjson.Result, key string) (string, error) {
    if v.Type != gjson.String {
        return "", typeErr(key, "string", v)
    }
    return v.String(), nil
}

// integer reads a whole number; fractions and values past int64 are rejected
// rather than truncated.
func integer(v gjson.Result, key string) (int, error) {
    if v.Type != gjson.Number {
        return 0, typeErr(key, "integer", v)
    }
    n := v.Int()
    if float64(n) != v.Num || int64(int(n)) != n {
        return 0, typeErr(key, "integer", v)
    }
    return int(n), nil
}

// code reads a character code in 0..utf8.MaxRune.
func code(v gjson.Result, key string) (rune, error) {
    n, err := integer(v, key)
    if err != nil || n < 0 || n > utf8.MaxRune {
        return 0, typeErr(key, "character code", v)
    }
    return rune(n), nil
}

func typeErr(key, want string, got gjson.Result) error {
    return fmt.Errorf("config %s: expected %s, got %s", key, want, got.Raw)
}

// Scaffold returns the default config with text filled in.
func Scaffold(text string) ([]byte, error) {
    out, err := sjson.SetBytes([]byte(Template), "text", text)
    if err != nil {
        return nil, fmt.Errorf("scaffold config: %w", err)
    }
    return out, nil
}

// Set rewrites a single key of an existing config document, keeping the rest
// of the file as written.
func Set(data []byte, key string, value any) ([]byte, error) {
    out, err := sjson.SetBytes(data, key, value)
    if err != nil {
        return nil, fmt.Errorf("set %s: %w", key, err)
    }
    return out, nil
}

// Save writes a config document.
func Save(path string, data []byte) error {
    return os.WriteFile(path, data, 0644)
}
