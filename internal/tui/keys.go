package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
    Replay key.Binding
    Edit   key.Binding
    Copy   key.Binding
    Help   key.Binding
    Quit   key.Binding
}

func defaultKeys() keyMap {
    return keyMap{
        Replay: key.NewBinding(key.WithKeys("r", " "), key.WithHelp("r", "replay")),
        Edit:   key.NewBinding(key.WithKeys("e", "i"), key.WithHelp("e", "edit text")),
        Copy:   key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
        Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
        Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
    }
}

func (k keyMap) ShortHelp() []key.Binding {
    return []key.Binding{k.Replay, k.Edit, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
    return [][]key.Binding{{k.Replay, k.Edit}, {k.Copy, k.Help, k.Quit}}
}
