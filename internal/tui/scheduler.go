package tui

import (
    "time"

    tea "github.com/charmbracelet/bubbletea"

    "scramble-reveal/internal/frame"
)

// frameMsg carries one scheduled frame back into Update.
type frameMsg struct {
    h  frame.Handle
    at time.Time
}

// teaScheduler implements frame.Scheduler on top of tea.Tick, so every frame
// callback runs inside the program's Update and needs no locking. Schedule
// only records the request; flush turns new requests into commands.
type teaScheduler struct {
    interval time.Duration
    next     frame.Handle
    pending  map[frame.Handle]frame.Func
    unsent   []frame.Handle
}

func newTeaScheduler(fps int) *teaScheduler {
    if fps <= 0 {
        fps = 60
    }
    return &teaScheduler{
        interval: time.Second / time.Duration(fps),
        pending:  map[frame.Handle]frame.Func{},
    }
}

func (s *teaScheduler) Schedule(fn frame.Func) frame.Handle {
    s.next++
    s.pending[s.next] = fn
    s.unsent = append(s.unsent, s.next)
    return s.next
}

// Cancel drops the callback; its tick still arrives and is ignored.
func (s *teaScheduler) Cancel(h frame.Handle) {
    delete(s.pending, h)
}

func (s *teaScheduler) deliver(msg frameMsg) {
    fn, ok := s.pending[msg.h]
    if !ok {
        return
    }
    delete(s.pending, msg.h)
    fn(msg.at)
}

func (s *teaScheduler) flush() tea.Cmd {
    var cmds []tea.Cmd
    for _, h := range s.unsent {
        if _, ok := s.pending[h]; !ok {
            continue
        }
        h := h
        cmds = append(cmds, tea.Tick(s.interval, func(t time.Time) tea.Msg { return frameMsg{h: h, at: t} }))
    }
    s.unsent = nil
    return tea.Batch(cmds...)
}
