// Package sink holds render targets for scramble engines.
package sink

import (
    "errors"
    "fmt"
    "io"
    "strings"

    "github.com/mattn/go-runewidth"
)

// ErrClosed is returned by a sink that can no longer display text.
var ErrClosed = errors.New("sink closed")

// Writer redraws a single terminal line on every frame.
type Writer struct {
    w     io.Writer
    ansi  bool
    last  string
    width int
}

// NewWriter draws on w. With ansi off, shorter frames are padded with spaces
// instead of using the erase-line sequence.
func NewWriter(w io.Writer, ansi bool) *Writer {
    return &Writer{w: w, ansi: ansi}
}

func (s *Writer) SetText(text string) error {
    if s.w == nil {
        return ErrClosed
    }
    var err error
    if s.ansi {
        _, err = fmt.Fprintf(s.w, "\r%s\x1b[K", text)
    } else {
        pad := s.width - runewidth.StringWidth(text)
        _, err = fmt.Fprintf(s.w, "\r%s%s", text, strings.Repeat(" ", max(pad, 0)))
    }
    if err != nil {
        return err
    }
    s.last = text
    s.width = runewidth.StringWidth(text)
    return nil
}

// Text is the line currently shown.
func (s *Writer) Text() string { return s.last }

// Close ends the line and detaches the writer.
func (s *Writer) Close() error {
    if s.w == nil {
        return nil
    }
    _, err := io.WriteString(s.w, "\n")
    s.w = nil
    return err
}

// Recorder keeps every frame it is given.
type Recorder struct {
    Frames []string
}

func (r *Recorder) SetText(text string) error {
    r.Frames = append(r.Frames, text)
    return nil
}

func (r *Recorder) Text() string {
    if len(r.Frames) == 0 {
        return ""
    }
    return r.Frames[len(r.Frames)-1]
}
