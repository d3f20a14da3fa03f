package frame

import "time"

// Manual is a deterministic scheduler: frames happen only when Advance is
// called, each one Interval after the last. It is meant for tests and
// headless runs and is not safe for concurrent use.
type Manual struct {
    q        queue
    now      time.Time
    Interval time.Duration
    frames   int
}

// NewManual starts the clock at start; each Advance moves it by interval.
func NewManual(start time.Time, interval time.Duration) *Manual {
    return &Manual{now: start, Interval: interval}
}

func (m *Manual) Schedule(fn Func) Handle { return m.q.add(fn) }
func (m *Manual) Cancel(h Handle)         { m.q.remove(h) }

// Now is the timestamp of the last frame.
func (m *Manual) Now() time.Time { return m.now }

// Pending is the number of callbacks waiting for the next frame.
func (m *Manual) Pending() int { return len(m.q.pending) }

// Peak is the largest number of callbacks ever pending at once.
func (m *Manual) Peak() int { return m.q.peak }

// Frames counts Advance calls that ran at least one callback.
func (m *Manual) Frames() int { return m.frames }

// Advance moves the clock one interval and runs the due callbacks. It
// reports whether anything ran.
func (m *Manual) Advance() bool {
    m.now = m.now.Add(m.Interval)
    if m.q.fire(m.now) == 0 {
        return false
    }
    m.frames++
    return true
}

// Run advances until nothing is pending or max frames have run, and returns
// the number of frames that ran.
func (m *Manual) Run(max int) int {
    n := 0
    for n < max && m.Pending() > 0 {
        if m.Advance() {
            n++
        }
    }
    return n
}
