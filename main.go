// Copyright
// SPDX-License-Identifier: MIT
// scramble: plays a scramble-to-reveal text animation in the terminal
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "log/slog"
    "os"
    "os/signal"
    "path/filepath"
    "strconv"
    "time"

    "github.com/atotto/clipboard"
    "github.com/gdamore/tcell/v2"

    cfg "scramble-reveal/internal/config"
    "scramble-reveal/internal/frame"
    "scramble-reveal/internal/scramble"
    "scramble-reveal/internal/sink"
    "scramble-reveal/internal/trace"
    appTUI "scramble-reveal/internal/tui"
    "scramble-reveal/internal/tui/util"
)

const Version = "0.3.0"

const defaultText = "scramble reveal"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("scramble", Version)
        return
    case "init":
        cmdInit()
    case "play":
        cmdPlay()
    case "trace":
        cmdTrace()
    default:
        usage()
    }
}

func usage() {
    fmt.Println(`scramble ` + Version + `
Reveals text through a burst of random characters, one position at a time.
USAGE
  scramble <command> [options]
COMMANDS
  init         Scaffold scramble.config.json
  play         Play the animation (interactive TUI, --screen or --plain)
  trace        Run the animation headlessly and print every frame
  help         Show help (try: scramble help play)
  version      Print version
NOTES
  • Flags override values from --config (default: scramble.config.json when present).
  • Set REDUCE_MOTION=1 or pass --reduced-motion to reveal in a single step.
  • Logs are silent unless --log-file is given; use -v or -vv for more detail.
`)
}

const animationOptions = `  --config PATH          JSON config (default: scramble.config.json if present)
  --text TEXT            Text to reveal
  --speed X              Updates per 60Hz frame; 0 pauses, 0.5 halves the rate
  --step N               Positions the cursor advances per update
  --seed N               Random positions seeded ahead of the cursor per update
  --tick N               Advance the cursor every N updates
  --scramble N           Noise updates before a hit position settles
  --chance X             Probability in [0,1] that a position scrambles
  --overdrive VALUE      true, a character code, or a single character
  --overflow             Start from the previous output instead of blank
  --range LO,HI          Character code pair used for noise
  --ignore CHARS         Characters that never scramble
  --reduced-motion       Reveal in one step with no noise
  --rand-seed N          Deterministic noise
  --fps N                Raw frame rate (default: 60)
  -v                     INFO logs (requires --log-file)
  -vv                    DEBUG logs (requires --log-file)
  --log-file PATH        Append logs to file (created if missing)`

func helpTopic(name string) {
    switch name {
    case "play":
        fmt.Println(`USAGE
  scramble play [--text TEXT] [--screen | --plain] [--copy] [--quit] [--no-color] [options]
DESCRIPTION
  Plays the animation. By default an interactive TUI shows the text with a progress bar;
  r replays, e edits the text (restarting the run), c copies the output, q quits.
  --screen draws full screen with tcell and exits on completion or Esc.
  --plain redraws a single line on stdout, suitable for scripts.
OPTIONS
  --screen               Full-screen tcell renderer
  --plain                Single-line stdout renderer
  --copy                 Copy the revealed text to the clipboard when done
  --quit                 Exit the TUI as soon as the text is revealed
  --no-color             Disable colors and escape sequences (also NO_COLOR)
` + animationOptions)
    case "trace":
        fmt.Println(`USAGE
  scramble trace [--text TEXT] [--max-frames N] [--no-color] [options]
DESCRIPTION
  Runs the animation on a simulated clock and prints each logical update with its
  elapsed time and how many positions already match the target.
OPTIONS
  --max-frames N         Stop after N raw frames (default: 10000)
  --no-color             Print noise as [x] instead of coloring it
` + animationOptions)
    case "init":
        fmt.Println(`USAGE
  scramble init [--config PATH] [--text TEXT] [--force]
DESCRIPTION
  Writes a config file with the default options. An existing file is kept unless --force.
`)
    default:
        usage()
    }
}

/* ---------- animation flags ---------- */

// animFlags are shared by play and trace. Only flags set on the command line
// override the config file.
type animFlags struct {
    fs        *flag.FlagSet
    config    string
    text      string
    speed     float64
    step      int
    seed      int
    tick      int
    scramble  int
    chance    float64
    overdrive string
    overflow  bool
    rng       string
    ignore    string
    reduced   bool
    randSeed  uint64
    fps       int
    verbose   bool
    debug     bool
    logPath   string
}

func registerAnimFlags(fs *flag.FlagSet) *animFlags {
    a := &animFlags{fs: fs}
    fs.StringVar(&a.config, "config", "", "Path to JSON config")
    fs.StringVar(&a.text, "text", "", "Text to reveal")
    fs.Float64Var(&a.speed, "speed", 1, "Updates per 60Hz frame")
    fs.IntVar(&a.step, "step", 1, "Cursor advance per update")
    fs.IntVar(&a.seed, "seed", 1, "Seeded positions per update")
    fs.IntVar(&a.tick, "tick", 1, "Advance the cursor every N updates")
    fs.IntVar(&a.scramble, "scramble", 1, "Noise updates for a hit position")
    fs.Float64Var(&a.chance, "chance", 1, "Scramble probability")
    fs.StringVar(&a.overdrive, "overdrive", "", "true, a character code, or a character")
    fs.BoolVar(&a.overflow, "overflow", false, "Start from the previous output")
    fs.StringVar(&a.rng, "range", "", "Noise character code pair LO,HI")
    fs.StringVar(&a.ignore, "ignore", "", "Characters that never scramble")
    fs.BoolVar(&a.reduced, "reduced-motion", false, "Reveal in one step with no noise")
    fs.Uint64Var(&a.randSeed, "rand-seed", 0, "Deterministic noise seed")
    fs.IntVar(&a.fps, "fps", 60, "Raw frame rate")
    fs.BoolVar(&a.verbose, "v", false, "Verbose logs (INFO)")
    fs.BoolVar(&a.debug, "vv", false, "Debug logs (DEBUG)")
    fs.StringVar(&a.logPath, "log-file", "", "Append logs to file (created if missing)")
    return a
}

// options loads the config document, layers explicitly set flags onto it and
// parses the result, so flags accept the same shapes as the file.
func (a *animFlags) options() (scramble.Options, error) {
    path := a.config
    if path == "" {
        if _, err := os.Stat(cfg.DefaultPath); err == nil {
            path = cfg.DefaultPath
        }
    }
    doc := []byte("{}")
    if path != "" {
        data, err := os.ReadFile(path)
        if err != nil {
            return scramble.Options{}, fmt.Errorf("read config: %w", err)
        }
        doc = data
    }

    set := map[string]bool{}
    a.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
    overrides := []struct {
        flag string
        key  string
        val  func() (any, error)
    }{
        {"text", "text", func() (any, error) { return a.text, nil }},
        {"speed", "speed", func() (any, error) { return a.speed, nil }},
        {"step", "step", func() (any, error) { return a.step, nil }},
        {"seed", "seed", func() (any, error) { return a.seed, nil }},
        {"tick", "tick", func() (any, error) { return a.tick, nil }},
        {"scramble", "scramble", func() (any, error) { return a.scramble, nil }},
        {"chance", "chance", func() (any, error) { return a.chance, nil }},
        {"overflow", "overflow", func() (any, error) { return a.overflow, nil }},
        {"overdrive", "overdrive", func() (any, error) { return overdriveValue(a.overdrive), nil }},
        {"range", "range", func() (any, error) { return rangeValue(a.rng) }},
        {"ignore", "ignore", func() (any, error) { return a.ignore, nil }},
        {"reduced-motion", "reducedMotion", func() (any, error) { return a.reduced, nil }},
    }
    for _, o := range overrides {
        if !set[o.flag] {
            continue
        }
        v, err := o.val()
        if err != nil {
            return scramble.Options{}, err
        }
        if doc, err = cfg.Set(doc, o.key, v); err != nil {
            return scramble.Options{}, err
        }
    }

    opts, err := cfg.Parse(doc, scramble.DefaultOptions())
    if err != nil {
        return scramble.Options{}, err
    }
    if opts.Text == "" {
        opts.Text = defaultText
    }
    if opts.Motion == nil {
        opts.Motion = scramble.EnvMotion{}
    }
    if set["rand-seed"] {
        opts.Rand = scramble.NewRandom(a.randSeed)
    }
    return opts, nil
}

// overdriveValue maps the flag onto the JSON shapes the config accepts.
func overdriveValue(s string) any {
    switch s {
    case "", "false", "off":
        return false
    case "true", "on":
        return true
    }
    if n, err := strconv.Atoi(s); err == nil {
        return n
    }
    return s
}

func rangeValue(s string) ([]int, error) {
    var lo, hi int
    if _, err := fmt.Sscanf(s, "%d,%d", &lo, &hi); err != nil {
        return nil, fmt.Errorf("--range: expected LO,HI, got %q", s)
    }
    return []int{lo, hi}, nil
}

func (a *animFlags) logger() (*slog.Logger, io.Closer, error) {
    f, err := openLogFile(a.logPath)
    if err != nil || f == nil {
        return nil, nil, err
    }
    level := slog.LevelWarn
    if a.debug {
        level = slog.LevelDebug
    } else if a.verbose {
        level = slog.LevelInfo
    }
    return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

/* ---------- commands ---------- */

func cmdInit() {
    fs := flag.NewFlagSet("init", flag.ExitOnError)
    fs.Usage = func() { helpTopic("init") }
    path := fs.String("config", cfg.DefaultPath, "Config path to write")
    text := fs.String("text", defaultText, "Text to reveal")
    force := fs.Bool("force", false, "Overwrite an existing file")
    _ = fs.Parse(os.Args[2:])

    if _, err := os.Stat(*path); err == nil && !*force {
        fmt.Println(*path, "already exists; not overwriting")
        return
    }
    data, err := cfg.Scaffold(*text)
    if err != nil {
        fatal(err)
    }
    if err := cfg.Save(*path, data); err != nil {
        fatal(fmt.Errorf("write config: %w", err))
    }
    fmt.Println("Wrote", *path)
}

func cmdTrace() {
    fs := flag.NewFlagSet("trace", flag.ExitOnError)
    fs.Usage = func() { helpTopic("trace") }
    a := registerAnimFlags(fs)
    maxFrames := fs.Int("max-frames", 10000, "Stop after N raw frames")
    noColor := fs.Bool("no-color", false, "Disable colors")
    _ = fs.Parse(os.Args[2:])

    opts, err := a.options()
    if err != nil {
        fatal(err)
    }
    log, closer, err := a.logger()
    if err != nil {
        fatal(err)
    }
    if closer != nil {
        defer closer.Close()
        opts.Logger = log
    }
    res, err := trace.Run(opts, a.fps, *maxFrames)
    if err != nil {
        fatal(err)
    }
    fmt.Print(trace.Render(res, util.NoColor(*noColor)))
    if res.Err != nil {
        fatal(res.Err)
    }
}

func cmdPlay() {
    fs := flag.NewFlagSet("play", flag.ExitOnError)
    fs.Usage = func() { helpTopic("play") }
    a := registerAnimFlags(fs)
    screen := fs.Bool("screen", false, "Full-screen tcell renderer")
    plain := fs.Bool("plain", false, "Single-line stdout renderer")
    copyOut := fs.Bool("copy", false, "Copy the revealed text to the clipboard")
    quit := fs.Bool("quit", false, "Exit the TUI once revealed")
    noColor := fs.Bool("no-color", false, "Disable colors")
    _ = fs.Parse(os.Args[2:])

    opts, err := a.options()
    if err != nil {
        fatal(err)
    }
    log, closer, err := a.logger()
    if err != nil {
        fatal(err)
    }
    if closer != nil {
        defer closer.Close()
        opts.Logger = log
    }
    opts.PlayOnMount = true

    switch {
    case *screen:
        err = playScreen(opts, a.fps, *copyOut, util.NoColor(*noColor))
    case *plain:
        err = playPlain(opts, a.fps, *copyOut, !util.NoColor(*noColor))
    default:
        var out string
        out, err = appTUI.Run(appTUI.Settings{
            Options:   opts,
            FPS:       a.fps,
            CopyOnEnd: *copyOut,
            QuitOnEnd: *quit,
            NoColor:   *noColor,
        })
        if err == nil && *quit {
            fmt.Println(out)
        }
    }
    if err != nil {
        fatal(err)
    }
}

// runLoop plays opts on a ticker loop until the run completes, fails or ctx
// is cancelled. onReady runs on the loop goroutine before the first frame.
func runLoop(ctx context.Context, out scramble.Sink, opts scramble.Options, fps int, onReady func(loop *frame.Loop, stop func())) (*scramble.Engine, error) {
    ctx, cancel := context.WithCancel(ctx)
    defer cancel()
    loop := frame.NewLoop(fps)

    inner := opts.Handler
    if inner == nil {
        inner = scramble.NopHandler{}
    }
    opts.Handler = scramble.HandlerFuncs{
        Start: inner.OnAnimationStart,
        Frame: inner.OnAnimationFrame,
        End: func() {
            inner.OnAnimationEnd()
            cancel()
        },
        Error: func(error) { cancel() },
    }
    e, err := scramble.New(out, loop, opts)
    if err != nil {
        return nil, err
    }
    if onReady != nil {
        onReady(loop, cancel)
    }
    if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
        e.Destroy()
        return e, err
    }
    if e.State() == scramble.Failed {
        return e, e.Err()
    }
    return e, nil
}

// playPlain redraws one stdout line; without ansi it pads instead of erasing.
func playPlain(opts scramble.Options, fps int, copyOut, ansi bool) error {
    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
    defer stop()
    out, completed, err := playLine(ctx, os.Stdout, opts, fps, ansi)
    if err != nil {
        return err
    }
    if copyOut && completed {
        return copyText(out)
    }
    return nil
}

// playLine runs opts as a single redrawn line on w. The line is ended and the
// engine destroyed on every path, including failed runs.
func playLine(ctx context.Context, w io.Writer, opts scramble.Options, fps int, ansi bool) (string, bool, error) {
    line := sink.NewWriter(w, ansi)
    defer line.Close()
    e, err := runLoop(ctx, line, opts, fps, nil)
    if e == nil {
        return "", false, err
    }
    defer e.Destroy()
    return e.Output(), e.State() == scramble.Completed, err
}

func playScreen(opts scramble.Options, fps int, copyOut, noColor bool) error {
    s, err := tcell.NewScreen()
    if err != nil {
        return fmt.Errorf("open screen: %w", err)
    }
    if err := s.Init(); err != nil {
        return fmt.Errorf("init screen: %w", err)
    }
    style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
    if noColor {
        style = tcell.StyleDefault
    }
    s.Clear()
    out := sink.NewScreen(s, style)

    done := make(chan struct{})
    e, err := runLoop(context.Background(), out, opts, fps, func(loop *frame.Loop, stop func()) {
        go func() {
            for {
                select {
                case <-done:
                    return
                default:
                }
                switch ev := s.PollEvent().(type) {
                case nil:
                    return
                case *tcell.EventKey:
                    if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
                        (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
                        select {
                        case <-done:
                        default:
                            loop.Post(stop)
                        }
                        return
                    }
                case *tcell.EventResize:
                    s.Sync()
                }
            }
        }()
    })
    close(done)
    out.Release()
    // Fini closes the event queue, which ends the poller
    s.Fini()
    if e != nil {
        defer e.Destroy()
    }
    if err != nil {
        return err
    }
    fmt.Println(e.Output())
    if copyOut && e.State() == scramble.Completed {
        return copyText(e.Output())
    }
    return nil
}

func copyText(s string) error {
    if clipboard.Unsupported {
        return errors.New("clipboard unavailable on this system")
    }
    if err := clipboard.WriteAll(s); err != nil {
        return fmt.Errorf("copy: %w", err)
    }
    return nil
}

func openLogFile(path string) (*os.File, error) {
    if path == "" {
        return nil, nil
    }
    if dir := filepath.Dir(path); dir != "." && dir != "" {
        _ = os.MkdirAll(dir, 0o755)
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
    if err != nil {
        return nil, err
    }
    _, _ = fmt.Fprintf(f, "=== scramble %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
    return f, nil
}

func fatal(err error) {
    fmt.Fprintln(os.Stderr, "error:", err)
    os.Exit(1)
}
