package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across the views.
type Palette struct {
    Text     lipgloss.AdaptiveColor
    Accent   lipgloss.AdaptiveColor
    Revealed lipgloss.AdaptiveColor
    Danger   lipgloss.AdaptiveColor
    Muted    lipgloss.AdaptiveColor
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Text:     lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
        Accent:   lipgloss.AdaptiveColor{Light: "205", Dark: "213"},
        Revealed: lipgloss.AdaptiveColor{Light: "28", Dark: "114"},
        Danger:   lipgloss.AdaptiveColor{Light: "160", Dark: "203"},
        Muted:    lipgloss.AdaptiveColor{Light: "245", Dark: "241"},
    }
}

// MonoPalette is used when color is disabled.
func MonoPalette() Palette {
    none := lipgloss.AdaptiveColor{}
    return Palette{Text: none, Accent: none, Revealed: none, Danger: none, Muted: none}
}
