package tui

import (
    "strings"

    "github.com/atotto/clipboard"
    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/bubbles/key"
    "github.com/charmbracelet/bubbles/progress"
    "github.com/charmbracelet/bubbles/textinput"
    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"

    "scramble-reveal/internal/scramble"
    "scramble-reveal/internal/tui/state"
    "scramble-reveal/internal/tui/util"
    "scramble-reveal/internal/tui/widgets/statusbar"
)

// Settings configures an interactive run.
type Settings struct {
    Options   scramble.Options
    FPS       int
    CopyOnEnd bool // copy the revealed text to the clipboard
    QuitOnEnd bool // exit as soon as the text is revealed
    NoColor   bool
}

// Run plays the animation in a bubbletea program and returns the last
// rendered text.
func Run(s Settings) (string, error) {
    m, err := NewModel(s)
    if err != nil {
        return "", err
    }
    defer m.engine.Destroy()
    p := tea.NewProgram(m)
    if _, err := p.Run(); err != nil {
        return m.Output(), err
    }
    return m.Output(), m.err
}

// display is the engine's sink: the model shows whatever was set last.
type display struct{ text string }

func (d *display) SetText(s string) error { d.text = s; return nil }
func (d *display) Text() string           { return d.text }

// Model hosts one engine. Engine callbacks run inside Update through the
// tea-backed scheduler, so the model is only ever touched by the program loop.
type Model struct {
    engine *scramble.Engine
    sched  *teaScheduler
    out    *display

    ui       state.UIState
    keys     keyMap
    help     help.Model
    input    textinput.Model
    progress progress.Model
    bar      statusbar.StatusBar
    palette  util.Palette

    copyOnEnd bool
    quitOnEnd bool
    quitting  bool
    err       error
}

// NewModel builds the engine; with PlayOnMount the first frame is requested
// by Init.
func NewModel(s Settings) (*Model, error) {
    m := &Model{
        sched:     newTeaScheduler(s.FPS),
        out:       &display{},
        keys:      defaultKeys(),
        help:      help.New(),
        input:     textinput.New(),
        bar:       statusbar.NewStatusBar(),
        copyOnEnd: s.CopyOnEnd,
        quitOnEnd: s.QuitOnEnd,
        palette:   util.DefaultPalette(),
    }
    if util.NoColor(s.NoColor) {
        m.palette = util.MonoPalette()
        m.progress = progress.New(progress.WithSolidFill(""), progress.WithoutPercentage())
    } else {
        m.progress = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
    }
    m.input.Placeholder = "new text"
    m.input.Prompt = "> "

    opts := s.Options
    inner := opts.Handler
    if inner == nil {
        inner = scramble.NopHandler{}
    }
    opts.Handler = scramble.HandlerFuncs{
        Start: func() {
            m.ui = state.Started(m.ui)
            inner.OnAnimationStart()
        },
        Frame: inner.OnAnimationFrame,
        End: func() {
            m.ui = state.Revealed(m.ui)
            if m.copyOnEnd {
                m.copy()
            }
            inner.OnAnimationEnd()
        },
        Error: func(err error) {
            m.err = err
            m.ui = state.Failed(m.ui, err)
            if eh, ok := inner.(scramble.ErrorHandler); ok {
                eh.OnAnimationError(err)
            }
        },
    }
    e, err := scramble.New(m.out, m.sched, opts)
    if err != nil {
        return nil, err
    }
    m.engine = e
    return m, nil
}

// Output is the text currently displayed.
func (m *Model) Output() string { return m.out.text }

func (m *Model) Init() tea.Cmd { return m.sched.flush() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
    var cmd tea.Cmd
    switch msg := msg.(type) {
    case frameMsg:
        m.sched.deliver(msg)
        if m.quitOnEnd && m.ui.Phase == state.REVEALED {
            m.quitting = true
            return m, tea.Quit
        }
    case tea.WindowSizeMsg:
        m.ui = state.Resize(m.ui, msg.Width, msg.Height)
        m.progress.Width = max(msg.Width-4, 10)
        m.input.Width = max(msg.Width-6, 10)
        m.help.Width = msg.Width
    case tea.KeyMsg:
        if m.ui.Editing {
            cmd = m.updateEditing(msg)
            break
        }
        switch {
        case key.Matches(msg, m.keys.Quit):
            m.quitting = true
            m.engine.Destroy()
            return m, tea.Quit
        case key.Matches(msg, m.keys.Replay):
            m.fail(m.engine.Play())
        case key.Matches(msg, m.keys.Edit):
            m.ui = state.BeginEdit(m.ui)
            m.input.SetValue(m.engine.Text())
            m.input.CursorEnd()
            cmd = m.input.Focus()
        case key.Matches(msg, m.keys.Copy):
            m.copy()
        case key.Matches(msg, m.keys.Help):
            m.ui = state.ToggleHelp(m.ui)
            m.help.ShowAll = m.ui.ShowHelp
        }
    }
    return m, tea.Batch(cmd, m.sched.flush())
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
    switch msg.Type {
    case tea.KeyEnter:
        m.input.Blur()
        m.ui = state.EndEdit(m.ui, true)
        m.fail(m.engine.UpdateText(m.input.Value()))
        return nil
    case tea.KeyEsc, tea.KeyCtrlC:
        m.input.Blur()
        m.ui = state.EndEdit(m.ui, false)
        return nil
    }
    var cmd tea.Cmd
    m.input, cmd = m.input.Update(msg)
    return cmd
}

func (m *Model) copy() {
    text := m.engine.Output()
    if clipboard.Unsupported {
        m.ui = state.Notify(m.ui, "clipboard unavailable")
        return
    }
    if err := clipboard.WriteAll(text); err != nil {
        m.ui = state.Notify(m.ui, "copy failed: "+err.Error())
        return
    }
    m.ui = state.Notify(m.ui, "copied")
}

func (m *Model) fail(err error) {
    if err != nil {
        m.err = err
        m.ui = state.Failed(m.ui, err)
    }
}

func (m *Model) View() string {
    if m.quitting {
        return ""
    }
    textStyle := lipgloss.NewStyle().Bold(true).Foreground(m.palette.Text)
    if m.ui.Phase == state.REVEALED {
        textStyle = textStyle.Foreground(m.palette.Revealed)
    }
    barStyle := lipgloss.NewStyle().Foreground(m.palette.Muted)
    if m.ui.Phase == state.FAILED {
        barStyle = barStyle.Foreground(m.palette.Danger)
    }

    var b strings.Builder
    line := textStyle.Render(m.out.text)
    if m.ui.Width > 0 {
        line = lipgloss.PlaceHorizontal(m.ui.Width, lipgloss.Center, line)
    }
    b.WriteString("\n" + line + "\n\n")
    b.WriteString(m.progress.ViewAs(m.engine.Progress()) + "\n")
    total := len([]rune(m.engine.Text()))
    b.WriteString(barStyle.Render(m.bar.View(m.ui, int(m.engine.Progress()*float64(total)+0.5), total)) + "\n")
    if m.ui.Editing {
        b.WriteString("\n" + m.input.View() + "\n")
        b.WriteString(lipgloss.NewStyle().Faint(true).Render("enter: apply   esc: cancel") + "\n")
    } else {
        b.WriteString("\n" + m.help.View(m.keys) + "\n")
    }
    return b.String()
}
