package frame

import (
    "context"
    "testing"
    "time"
)

func TestManualRunsEachCallbackOnce(t *testing.T) {
    m := NewManual(time.Unix(0, 0), time.Millisecond)
    var got []time.Time
    m.Schedule(func(now time.Time) { got = append(got, now) })
    if m.Pending() != 1 {
        t.Fatalf("pending=%d", m.Pending())
    }
    if !m.Advance() {
        t.Fatalf("expected the callback to run")
    }
    if m.Advance() {
        t.Fatalf("callback ran twice")
    }
    if len(got) != 1 || !got[0].Equal(time.Unix(0, 0).Add(time.Millisecond)) {
        t.Fatalf("got %v", got)
    }
}

func TestManualCancel(t *testing.T) {
    m := NewManual(time.Unix(0, 0), time.Millisecond)
    ran := false
    h := m.Schedule(func(time.Time) { ran = true })
    m.Cancel(h)
    m.Cancel(h)
    m.Advance()
    if ran || m.Pending() != 0 {
        t.Fatalf("cancelled callback ran")
    }
}

func TestManualReschedulesRunNextFrame(t *testing.T) {
    m := NewManual(time.Unix(0, 0), time.Millisecond)
    calls := 0
    var loop Func
    loop = func(time.Time) {
        calls++
        if calls < 5 {
            m.Schedule(loop)
        }
    }
    m.Schedule(loop)
    m.Advance()
    if calls != 1 {
        t.Fatalf("rescheduled callback ran in the same frame")
    }
    if n := m.Run(100); n != 4 {
        t.Fatalf("Run returned %d", n)
    }
    if calls != 5 || m.Peak() != 1 || m.Frames() != 5 {
        t.Fatalf("calls=%d peak=%d frames=%d", calls, m.Peak(), m.Frames())
    }
}

func TestManualCallbackCancelsSibling(t *testing.T) {
    m := NewManual(time.Unix(0, 0), time.Millisecond)
    var second Handle
    ran := false
    m.Schedule(func(time.Time) { m.Cancel(second) })
    second = m.Schedule(func(time.Time) { ran = true })
    m.Advance()
    if ran {
        t.Fatalf("sibling cancelled mid-frame still ran")
    }
}

func TestLoopFiresAndPosts(t *testing.T) {
    l := NewLoop(500)
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    frames := 0
    var tick Func
    tick = func(time.Time) {
        frames++
        if frames == 3 {
            l.Post(cancel)
            return
        }
        l.Schedule(tick)
    }
    l.Schedule(tick)
    if err := l.Run(ctx); err != context.Canceled {
        t.Fatalf("Run: %v", err)
    }
    if frames != 3 {
        t.Fatalf("frames=%d", frames)
    }
}
