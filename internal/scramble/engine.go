package scramble

import (
    "log/slog"
    "strings"
)

// activate picks the state for position i once stepping or seeding reaches it.
func (e *Engine) activate(i int) slot {
    hit := e.rnd.Float() < e.opts.Chance
    c := e.text[i]
    switch {
    case e.ignore.has(c):
        return settled(c)
    case hit:
        return scrambling(e.opts.Scramble)
    default:
        return scrambling(0)
    }
}

// stepForward moves the cursor over up to Step positions, activating those
// that seeding has not already claimed.
func (e *Engine) stepForward() {
    for i := 0; i < e.opts.Step && e.scrambleIndex < len(e.text); i++ {
        idx := e.scrambleIndex
        e.ensure(idx + 1)
        if e.slots[idx].untouched() {
            e.slots[idx] = e.activate(idx)
        }
        e.scrambleIndex++
    }
}

// seedForward scatters scrambling slots ahead of the cursor without moving it.
func (e *Engine) seedForward() {
    if e.scrambleIndex >= len(e.text) {
        return
    }
    for i := 0; i < e.opts.Seed; i++ {
        idx := e.rnd.Int(e.scrambleIndex, len(e.text)-1)
        if idx <= e.scrambleIndex {
            continue
        }
        e.ensure(idx + 1)
        if e.slots[idx].untouched() {
            e.slots[idx] = e.activate(idx)
        }
    }
}

// overdrive writes filler ahead of the reveal. It runs on every raw frame.
func (e *Engine) overdrive() {
    if !e.opts.Overdrive.On {
        return
    }
    c := e.opts.Overdrive.Char()
    for i := 0; i < e.opts.Step; i++ {
        limit := max(len(e.slots), len(e.text))
        if e.overdriveIndex >= limit {
            return
        }
        idx := e.overdriveIndex
        e.ensure(idx + 1)
        if e.slots[idx].untouched() {
            e.slots[idx] = placeholder(c)
        }
        e.overdriveIndex++
    }
}

// render turns the slots into this update's output, settling every slot
// whose countdown has run out. Positions ahead of the cursor keep their
// countdown so seeded noise flickers until the cursor arrives.
func (e *Engine) render() string {
    var b strings.Builder
    b.Grow(len(e.slots))
    for i := range e.slots {
        s := &e.slots[i]
        switch s.kind {
        case slotScrambling:
            if s.n > 0 {
                b.WriteRune(e.rnd.Char(e.opts.Range))
                if i <= e.scrambleIndex {
                    s.n--
                }
            } else if i < len(e.text) {
                b.WriteRune(e.text[i])
                *s = settled(e.text[i])
            }
        case slotSettled, slotPlaceholder:
            b.WriteRune(s.c)
        }
    }
    return b.String()
}

// update is one logical update.
func (e *Engine) update() {
    if e.stepCount%e.opts.Tick == 0 {
        e.resize()
        e.stepForward()
        e.seedForward()
    }
    e.stepCount++
    e.draw()
}

// draw delivers the output and handles completion. Callbacks may restart or
// destroy the engine, so every step after one re-checks the generation.
func (e *Engine) draw() {
    gen := e.gen
    out := e.render()
    if err := e.sink.SetText(out); err != nil {
        e.fail(&RenderError{Output: out, Err: err})
        return
    }
    e.output = out
    e.handler.OnAnimationFrame(out)
    if gen != e.gen || out != string(e.text) {
        return
    }
    if len(e.slots) > len(e.text) {
        e.slots = e.slots[:len(e.text)]
    }
    e.driver.Stop()
    e.state = Completed
    e.log.Debug("scramble complete", slog.Int("updates", e.stepCount), slog.Int("len", len(e.text)))
    e.handler.OnAnimationEnd()
}

func (e *Engine) fail(err error) {
    e.driver.Stop()
    e.err = err
    e.state = Failed
    e.log.Warn("scramble render failed", slog.Any("err", err))
    if eh, ok := e.handler.(ErrorHandler); ok {
        eh.OnAnimationError(err)
    }
}
