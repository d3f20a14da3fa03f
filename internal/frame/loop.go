package frame

import (
    "context"
    "time"
)

// Loop fires scheduled callbacks from a ticker on the goroutine running Run.
// Schedule and Cancel must be called from that goroutine (or before Run
// starts); other goroutines hand work over with Post.
type Loop struct {
    q        queue
    interval time.Duration
    posts    chan func()
}

// NewLoop returns a loop ticking fps times per second.
func NewLoop(fps int) *Loop {
    if fps <= 0 {
        fps = 60
    }
    return &Loop{interval: time.Second / time.Duration(fps), posts: make(chan func(), 16)}
}

func (l *Loop) Schedule(fn Func) Handle { return l.q.add(fn) }
func (l *Loop) Cancel(h Handle)         { l.q.remove(h) }

// Post queues fn to run on the loop goroutine between frames.
func (l *Loop) Post(fn func()) { l.posts <- fn }

// Run ticks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
    t := time.NewTicker(l.interval)
    defer t.Stop()
    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case fn := <-l.posts:
            fn()
        case now := <-t.C:
            l.q.fire(now)
        }
    }
}
