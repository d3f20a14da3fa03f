package scramble

import "fmt"

type slotKind uint8

const (
    slotEmpty slotKind = iota
    slotScrambling
    slotSettled
    slotPlaceholder
)

// slot is one character position's animation state.
type slot struct {
    kind slotKind
    n    int  // remaining scramble updates, slotScrambling only
    c    rune // literal, slotSettled and slotPlaceholder only
}

func scrambling(n int) slot   { return slot{kind: slotScrambling, n: n} }
func settled(c rune) slot     { return slot{kind: slotSettled, c: c} }
func placeholder(c rune) slot { return slot{kind: slotPlaceholder, c: c} }

// untouched reports whether neither stepping nor seeding has claimed the slot.
func (s slot) untouched() bool {
    return s.kind == slotEmpty || s.kind == slotPlaceholder
}

func (s slot) String() string {
    switch s.kind {
    case slotScrambling:
        return fmt.Sprintf("scrambling(%d)", s.n)
    case slotSettled:
        return fmt.Sprintf("settled(%q)", s.c)
    case slotPlaceholder:
        return fmt.Sprintf("placeholder(%q)", s.c)
    default:
        return "empty"
    }
}

type runeSet map[rune]struct{}

func newRuneSet(rs []rune) runeSet {
    s := make(runeSet, len(rs))
    for _, r := range rs {
        s[r] = struct{}{}
    }
    return s
}

func (s runeSet) has(r rune) bool {
    _, ok := s[r]
    return ok
}

// initial is the state a freshly allocated slot at i starts in: ignored
// characters are shown literally from the start, everything else waits.
func (e *Engine) initial(i int) slot {
    if i < len(e.text) && e.ignore.has(e.text[i]) {
        return settled(e.text[i])
    }
    return slot{}
}

// ensure allocates slots up to n, never past the text length.
func (e *Engine) ensure(n int) {
    if n > len(e.text) {
        n = len(e.text)
    }
    for len(e.slots) < n {
        e.slots = append(e.slots, e.initial(len(e.slots)))
    }
}

// resize drops slots past the text and grows the sequence by at most one
// step toward the text length.
func (e *Engine) resize() {
    if len(e.slots) > len(e.text) {
        e.slots = e.slots[:len(e.text)]
        return
    }
    e.ensure(len(e.slots) + e.opts.Step)
}
