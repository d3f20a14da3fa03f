package sink

import (
    "bytes"
    "errors"
    "testing"

    "github.com/gdamore/tcell/v2"
)

func TestWriterRedrawsLine(t *testing.T) {
    var b bytes.Buffer
    w := NewWriter(&b, false)
    _ = w.SetText("abcd")
    _ = w.SetText("ab")
    if got := b.String(); got != "\rabcd\rab  " {
        t.Fatalf("got %q", got)
    }
    if w.Text() != "ab" {
        t.Fatalf("Text() = %q", w.Text())
    }
    _ = w.Close()
    if err := w.SetText("x"); !errors.Is(err, ErrClosed) {
        t.Fatalf("expected ErrClosed, got %v", err)
    }
}

func TestWriterANSI(t *testing.T) {
    var b bytes.Buffer
    w := NewWriter(&b, true)
    _ = w.SetText("hi")
    if got := b.String(); got != "\rhi\x1b[K" {
        t.Fatalf("got %q", got)
    }
}

func TestScreenCentresText(t *testing.T) {
    scr := tcell.NewSimulationScreen("UTF-8")
    if err := scr.Init(); err != nil {
        t.Fatalf("Init: %v", err)
    }
    defer scr.Fini()
    scr.SetSize(10, 3)
    s := NewScreen(scr, tcell.StyleDefault)
    if err := s.SetText("abcd"); err != nil {
        t.Fatalf("SetText: %v", err)
    }
    for i, want := range "abcd" {
        if r, _, _, _ := scr.GetContent(3+i, 1); r != want {
            t.Fatalf("cell %d = %q, want %q", 3+i, r, want)
        }
    }
    s.Release()
    if err := s.SetText("x"); !errors.Is(err, ErrClosed) {
        t.Fatalf("expected ErrClosed, got %v", err)
    }
}

func TestRecorder(t *testing.T) {
    var r Recorder
    if r.Text() != "" {
        t.Fatalf("empty recorder text %q", r.Text())
    }
    _ = r.SetText("a")
    _ = r.SetText("b")
    if len(r.Frames) != 2 || r.Text() != "b" {
        t.Fatalf("frames %q", r.Frames)
    }
}
