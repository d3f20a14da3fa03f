package scramble

import (
    "math"
    "testing"
    "time"

    "scramble-reveal/internal/frame"
)

func TestDriverGatesUpdates(t *testing.T) {
    m := frame.NewManual(time.Unix(0, 0), 10*time.Millisecond)
    frames, updates := 0, 0
    d := NewFrameDriver(m, 1, func(time.Time) { frames++ }, func(time.Time) { updates++ })
    d.Start()
    for i := 0; i < 10; i++ {
        m.Advance()
    }
    // updates at 10, 30, 50, 70, 90ms
    if frames != 10 || updates != 5 {
        t.Fatalf("frames=%d updates=%d", frames, updates)
    }
    if m.Pending() != 1 || !d.Running() {
        t.Fatalf("driver should keep one frame outstanding")
    }
    d.Stop()
    if m.Pending() != 0 || d.Running() {
        t.Fatalf("stop left a frame pending")
    }
}

func TestDriverRestartKeepsSingleFrame(t *testing.T) {
    m := frame.NewManual(time.Unix(0, 0), 10*time.Millisecond)
    d := NewFrameDriver(m, 1, func(time.Time) {}, func(time.Time) {})
    d.Start()
    d.Start()
    d.Start()
    if m.Pending() != 1 || m.Peak() != 1 {
        t.Fatalf("pending=%d peak=%d", m.Pending(), m.Peak())
    }
}

func TestDriverRestartFromFrameSkipsStaleUpdate(t *testing.T) {
    m := frame.NewManual(time.Unix(0, 0), 10*time.Millisecond)
    updates := 0
    var d *FrameDriver
    restarted := false
    d = NewFrameDriver(m, 1, func(time.Time) {
        if !restarted {
            restarted = true
            d.Start()
        }
    }, func(time.Time) { updates++ })
    d.Start()
    m.Advance()
    if updates != 0 {
        t.Fatalf("update ran for a superseded frame")
    }
    if m.Pending() != 1 {
        t.Fatalf("pending=%d", m.Pending())
    }
    m.Advance()
    if updates != 1 {
        t.Fatalf("restarted driver did not update")
    }
}

func TestDriverInterval(t *testing.T) {
    d := NewFrameDriver(frame.NewManual(time.Time{}, 0), 2, nil, nil)
    if d.Interval() != BaseInterval/2 {
        t.Fatalf("interval %v", d.Interval())
    }
}

func TestDriverTinySpeedSaturates(t *testing.T) {
    m := frame.NewManual(time.Unix(0, 0), 10*time.Millisecond)
    updates := 0
    d := NewFrameDriver(m, 1e-12, func(time.Time) {}, func(time.Time) { updates++ })
    if d.Interval() != time.Duration(math.MaxInt64) {
        t.Fatalf("interval = %v", d.Interval())
    }
    d.Start()
    m.Run(100)
    // only the first frame after Start updates
    if updates != 1 {
        t.Fatalf("updates=%d", updates)
    }
    d.SetSpeed(2)
    if d.Interval() != BaseInterval/2 {
        t.Fatalf("interval after speedup = %v", d.Interval())
    }
}
