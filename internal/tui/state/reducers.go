package state

// ToggleHelp flips the full help view.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// BeginEdit focuses the text input and sets a brief notice.
func BeginEdit(s UIState) UIState {
    s.Editing = true
    s.Notice = "[EDIT]"
    return s
}

// EndEdit leaves the text input. The run restart of a committed edit is
// reported separately through Started.
func EndEdit(s UIState, committed bool) UIState {
    s.Editing = false
    if committed {
        s.Notice = "text updated"
    } else {
        s.Notice = ""
    }
    return s
}

// Started records a new run.
func Started(s UIState) UIState {
    s.Runs++
    s.Phase = PLAYING
    return s
}

// Revealed marks the run complete.
func Revealed(s UIState) UIState {
    s.Phase = REVEALED
    return s
}

// Failed marks the run stopped by an error and surfaces it.
func Failed(s UIState, err error) UIState {
    s.Phase = FAILED
    if err != nil {
        s.Notice = err.Error()
    }
    return s
}

// Resize updates the layout size.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    return s
}

// Notify replaces the notice.
func Notify(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
