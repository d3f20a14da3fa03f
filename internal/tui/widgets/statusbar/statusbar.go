package statusbar

import (
    "fmt"
    "strings"

    "scramble-reveal/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, settled, total int) string {
    phase := "[IDLE]"
    switch s.Phase {
    case state.PLAYING:
        phase = "[PLAYING]"
    case state.REVEALED:
        phase = "[REVEALED]"
    case state.FAILED:
        phase = "[FAILED]"
    }
    if s.Editing {
        phase = "[EDIT]"
    }
    pos := fmt.Sprintf("%d/%d", settled, total)
    runs := fmt.Sprintf("Run:%d", s.Runs)

    parts := []string{phase, pos, runs}
    if s.Notice != "" && !s.Editing {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
