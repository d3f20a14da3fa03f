package trace

import (
    "strings"
    "testing"

    "scramble-reveal/internal/scramble"
)

func TestRunCompletes(t *testing.T) {
    o := scramble.DefaultOptions()
    o.Text = "trace me"
    o.Scramble = 2
    o.Rand = scramble.NewRandom(9)
    r, err := Run(o, 30, 1000)
    if err != nil {
        t.Fatalf("Run: %v", err)
    }
    if !r.Completed || len(r.Frames) == 0 {
        t.Fatalf("run did not complete: %+v", r)
    }
    last := r.Frames[len(r.Frames)-1]
    if last.Text != "trace me" || last.Matched != len("trace me") {
        t.Fatalf("last frame %+v", last)
    }
    for i := 1; i < len(r.Frames); i++ {
        if r.Frames[i].At <= r.Frames[i-1].At {
            t.Fatalf("frame times not increasing at %d", i)
        }
    }
}

func TestRunStopsAtFrameLimit(t *testing.T) {
    o := scramble.DefaultOptions()
    o.Text = "this will not finish in three frames"
    o.Scramble = 10
    r, err := Run(o, 30, 3)
    if err != nil {
        t.Fatalf("Run: %v", err)
    }
    if r.Completed || len(r.Frames) != 3 {
        t.Fatalf("completed=%v frames=%d", r.Completed, len(r.Frames))
    }
}

func TestRunRejectsBadOptions(t *testing.T) {
    o := scramble.DefaultOptions()
    o.Chance = 3
    if _, err := Run(o, 30, 10); err == nil {
        t.Fatalf("expected a configuration error")
    }
}

func TestRenderNoColor(t *testing.T) {
    r := Result{
        Target:    "ab",
        Frames:    []Frame{{Text: "xb", Matched: 1}, {Text: "ab", Matched: 2}},
        Completed: true,
    }
    out := Render(r, true)
    if !strings.Contains(out, "[x]b") || !strings.Contains(out, "2/2") {
        t.Fatalf("unexpected render:\n%s", out)
    }
    if !strings.HasPrefix(out, `target "ab"`) {
        t.Fatalf("missing header:\n%s", out)
    }
}
