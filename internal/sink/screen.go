package sink

import (
    "github.com/gdamore/tcell/v2"
    "github.com/mattn/go-runewidth"
)

// Screen draws the text centred on the middle row of a tcell screen.
type Screen struct {
    screen tcell.Screen
    style  tcell.Style
    last   string
}

func NewScreen(s tcell.Screen, style tcell.Style) *Screen {
    return &Screen{screen: s, style: style}
}

func (s *Screen) SetText(text string) error {
    if s.screen == nil {
        return ErrClosed
    }
    w, h := s.screen.Size()
    if w <= 0 || h <= 0 {
        return ErrClosed
    }
    row := h / 2
    for x := 0; x < w; x++ {
        s.screen.SetContent(x, row, ' ', nil, s.style)
    }
    x := (w - runewidth.StringWidth(text)) / 2
    if x < 0 {
        x = 0
    }
    for _, r := range text {
        if x >= w {
            break
        }
        s.screen.SetContent(x, row, r, nil, s.style)
        x += max(runewidth.RuneWidth(r), 1)
    }
    s.screen.Show()
    s.last = text
    return nil
}

// Text is the text currently drawn.
func (s *Screen) Text() string { return s.last }

// Release detaches the screen; later frames fail with ErrClosed.
func (s *Screen) Release() { s.screen = nil }
