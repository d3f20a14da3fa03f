package scramble

import (
    "math"
    "time"

    "scramble-reveal/internal/frame"
)

// BaseInterval is the logical update period at speed 1.
const BaseInterval = time.Second / 60

// FrameDriver turns a raw frame scheduler into a fixed logical update rate.
// Every raw frame calls onFrame; a frame that lands more than the effective
// interval after the previous logical update also calls onUpdate. At most one
// callback is ever outstanding.
type FrameDriver struct {
    sched    frame.Scheduler
    interval time.Duration
    paused   bool

    onFrame  func(now time.Time)
    onUpdate func(now time.Time)
    onPanic  func(v any)

    handle  frame.Handle
    running bool
    epoch   uint64
    elapsed time.Time
}

// NewFrameDriver returns a stopped driver. A speed of zero pauses it: frames
// do nothing and are not rescheduled.
func NewFrameDriver(sched frame.Scheduler, speed float64, onFrame, onUpdate func(time.Time)) *FrameDriver {
    d := &FrameDriver{sched: sched, onFrame: onFrame, onUpdate: onUpdate}
    d.SetSpeed(speed)
    return d
}

// SetSpeed changes the effective interval, BaseInterval/speed. Intervals too
// long for a Duration saturate instead of wrapping negative.
func (d *FrameDriver) SetSpeed(speed float64) {
    d.paused = speed <= 0
    if d.paused {
        return
    }
    if f := float64(BaseInterval) / speed; f >= math.MaxInt64 {
        d.interval = math.MaxInt64
    } else {
        d.interval = time.Duration(f)
    }
}

// Interval is the effective logical update period.
func (d *FrameDriver) Interval() time.Duration { return d.interval }

// Running reports whether a frame is outstanding.
func (d *FrameDriver) Running() bool { return d.running }

// Start cancels any outstanding frame, clears the elapsed marker and schedules
// a fresh frame.
func (d *FrameDriver) Start() {
    d.Stop()
    d.epoch++
    d.elapsed = time.Time{}
    d.running = true
    d.handle = d.sched.Schedule(d.frame)
}

// Stop cancels the outstanding frame, if any.
func (d *FrameDriver) Stop() {
    if !d.running {
        return
    }
    d.sched.Cancel(d.handle)
    d.handle = 0
    d.running = false
}

func (d *FrameDriver) frame(now time.Time) {
    if !d.running {
        return
    }
    if d.paused {
        d.handle = 0
        d.running = false
        return
    }
    defer func() {
        if v := recover(); v != nil {
            d.Stop()
            if d.onPanic != nil {
                d.onPanic(v)
            }
            panic(v)
        }
    }()
    epoch := d.epoch
    d.handle = d.sched.Schedule(d.frame)
    d.onFrame(now)
    if !d.running || epoch != d.epoch {
        return
    }
    if d.elapsed.IsZero() || now.Sub(d.elapsed) > d.interval {
        d.elapsed = now
        d.onUpdate(now)
    }
}
