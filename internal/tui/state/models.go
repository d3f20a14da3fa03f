package state

// Phase mirrors the engine lifecycle for display.
type Phase int

const (
    IDLE Phase = iota
    PLAYING
    REVEALED
    FAILED
)

// UIState holds cross-widget UI state used by the status bar and the view.
type UIState struct {
    Phase Phase

    // Layout
    Width  int
    Height int

    // Editing is true while the text input has focus.
    Editing  bool
    ShowHelp bool

    // Runs counts plays, including restarts from edits.
    Runs int

    // Notices and ephemeral messages
    Notice string
}
