// Package trace runs a scramble animation headlessly and reports every frame
// against the target text.
package trace

import (
    "fmt"
    "strings"
    "time"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "scramble-reveal/internal/frame"
    "scramble-reveal/internal/scramble"
    "scramble-reveal/internal/sink"
)

// Frame is one rendered logical update.
type Frame struct {
    At      time.Duration
    Text    string
    Matched int // runes already equal to the target, in order
}

// Result is a complete headless run.
type Result struct {
    Target    string
    Frames    []Frame
    Completed bool
    Err       error
}

// Run plays opts to completion, or until maxFrames raw frames have passed, on
// a simulated clock ticking fps times per second.
func Run(opts scramble.Options, fps, maxFrames int) (Result, error) {
    if fps <= 0 {
        fps = 60
    }
    start := time.Unix(0, 0)
    m := frame.NewManual(start, time.Second/time.Duration(fps))
    rec := &sink.Recorder{}
    res := Result{Target: opts.Text}
    inner := opts.Handler
    if inner == nil {
        inner = scramble.NopHandler{}
    }
    opts.PlayOnMount = true
    opts.Handler = scramble.HandlerFuncs{
        Start: inner.OnAnimationStart,
        Frame: func(out string) {
            res.Frames = append(res.Frames, Frame{At: m.Now().Sub(start), Text: out, Matched: matched(opts.Text, out)})
            inner.OnAnimationFrame(out)
        },
        End: func() {
            res.Completed = true
            inner.OnAnimationEnd()
        },
    }
    e, err := scramble.New(rec, m, opts)
    if err != nil {
        return Result{}, err
    }
    m.Run(maxFrames)
    e.Destroy()
    res.Err = e.Err()
    return res, nil
}

// matched counts target runes the frame already shows, using a character diff.
func matched(target, got string) int {
    d := dmp.New()
    n := 0
    for _, df := range d.DiffMain(target, got, false) {
        if df.Type == dmp.DiffEqual {
            n += len([]rune(df.Text))
        }
    }
    return n
}

var (
    settledStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    noiseStyle   = lipgloss.NewStyle().Faint(true)
    headStyle    = lipgloss.NewStyle().Bold(true)
)

// Render prints one line per frame. Characters that already match the target
// are highlighted; with noColor, noise is wrapped in brackets instead.
func Render(r Result, noColor bool) string {
    var b strings.Builder
    total := len([]rune(r.Target))
    head := fmt.Sprintf("target %q  frames=%d  completed=%v", r.Target, len(r.Frames), r.Completed)
    if noColor {
        b.WriteString(head + "\n")
    } else {
        b.WriteString(headStyle.Render(head) + "\n")
    }
    d := dmp.New()
    for i, f := range r.Frames {
        var line strings.Builder
        for _, df := range d.DiffMain(r.Target, f.Text, false) {
            switch df.Type {
            case dmp.DiffEqual:
                if noColor {
                    line.WriteString(df.Text)
                } else {
                    line.WriteString(settledStyle.Render(df.Text))
                }
            case dmp.DiffInsert:
                if noColor {
                    line.WriteString("[" + df.Text + "]")
                } else {
                    line.WriteString(noiseStyle.Render(df.Text))
                }
            }
        }
        fmt.Fprintf(&b, "%4d %8s  %s  %d/%d\n", i+1, f.At.Round(time.Millisecond), line.String(), f.Matched, total)
    }
    if r.Err != nil {
        fmt.Fprintf(&b, "error: %v\n", r.Err)
    }
    return b.String()
}
