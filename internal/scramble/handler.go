package scramble

// Handler receives lifecycle callbacks from an Engine. All methods run on the
// goroutine driving the scheduler.
type Handler interface {
    OnAnimationStart()
    OnAnimationFrame(output string)
    OnAnimationEnd()
}

// ErrorHandler is optionally implemented by a Handler to learn about render
// failures that stopped the run.
type ErrorHandler interface {
    OnAnimationError(err error)
}

// NopHandler ignores every callback.
type NopHandler struct{}

func (NopHandler) OnAnimationStart()       {}
func (NopHandler) OnAnimationFrame(string) {}
func (NopHandler) OnAnimationEnd()         {}

// HandlerFuncs adapts optional functions to a Handler; nil fields are skipped.
type HandlerFuncs struct {
    Start func()
    Frame func(output string)
    End   func()
    Error func(err error)
}

func (h HandlerFuncs) OnAnimationStart() {
    if h.Start != nil {
        h.Start()
    }
}

func (h HandlerFuncs) OnAnimationFrame(output string) {
    if h.Frame != nil {
        h.Frame(output)
    }
}

func (h HandlerFuncs) OnAnimationEnd() {
    if h.End != nil {
        h.End()
    }
}

func (h HandlerFuncs) OnAnimationError(err error) {
    if h.Error != nil {
        h.Error(err)
    }
}
