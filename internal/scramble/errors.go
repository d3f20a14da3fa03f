package scramble

import (
    "errors"
    "fmt"
)

var (
    // ErrNilSink is returned by New when no render sink is supplied.
    ErrNilSink = errors.New("scramble: render sink is required")
    // ErrInvalidOptions is wrapped by every *ConfigError.
    ErrInvalidOptions = errors.New("scramble: invalid options")
    // ErrDestroyed is returned by Play and UpdateText after Destroy.
    ErrDestroyed = errors.New("scramble: engine destroyed")
)

// ConfigError reports one out-of-domain option value.
type ConfigError struct {
    Field  string
    Reason string
}

func (e *ConfigError) Error() string {
    return fmt.Sprintf("scramble: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidOptions }

// RenderError wraps a failure of the render sink during a logical update.
type RenderError struct {
    Output string
    Err    error
}

func (e *RenderError) Error() string {
    return fmt.Sprintf("scramble: render %q: %v", e.Output, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
