// Package frame provides recurring frame schedulers. A scheduler runs each
// scheduled callback once, on the next frame, unless it is cancelled first.
package frame

import "time"

// Func is a frame callback; now is the frame timestamp.
type Func func(now time.Time)

// Handle identifies one scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler is the requestAnimationFrame-style primitive engines are driven by.
type Scheduler interface {
    Schedule(fn Func) Handle
    Cancel(h Handle)
}

type entry struct {
    h  Handle
    fn Func
}

// queue is the pending-callback bookkeeping shared by the schedulers here.
type queue struct {
    next    Handle
    pending []entry
    peak    int
}

func (q *queue) add(fn Func) Handle {
    q.next++
    q.pending = append(q.pending, entry{h: q.next, fn: fn})
    if len(q.pending) > q.peak {
        q.peak = len(q.pending)
    }
    return q.next
}

func (q *queue) remove(h Handle) { q.pop(h) }

// fire runs every callback that was pending when the frame began and is still
// pending when its turn comes. Callbacks scheduled during the frame wait for
// the next one.
func (q *queue) fire(now time.Time) int {
    due := make([]Handle, len(q.pending))
    for i, e := range q.pending {
        due[i] = e.h
    }
    n := 0
    for _, h := range due {
        fn, ok := q.pop(h)
        if !ok {
            continue
        }
        fn(now)
        n++
    }
    return n
}

func (q *queue) pop(h Handle) (Func, bool) {
    for i, e := range q.pending {
        if e.h == h {
            q.pending = append(q.pending[:i], q.pending[i+1:]...)
            return e.fn, true
        }
    }
    return nil, false
}
