package curtain

import (
	"github.com/curtainapp/curtain/src/tui"
	"github.com/pkg/errors"
)

// Screen is the drawing surface handed to lifecycle hooks. It scopes
// ownership of the underlying renderer to one application session: open
// acquires the process-wide screen resource, release gives it back.
type Screen struct {
	renderer tui.Renderer
	held     bool
}

func newScreen(renderer tui.Renderer) *Screen {
	return &Screen{renderer: renderer}
}

func (s *Screen) open() error {
	if s.held {
		return errors.Wrap(ErrResourceUnavailable, "session already open")
	}
	if err := s.renderer.Init(); err != nil {
		return errors.Wrap(ErrResourceUnavailable, err.Error())
	}
	s.held = true
	return nil
}

// release is idempotent; it runs on every exit path of the owning
// application, including failed enter hooks.
func (s *Screen) release() {
	if !s.held {
		return
	}
	s.held = false
	s.renderer.Close()
}

// Key returns the next pending input event without blocking. The None
// event is returned when the input buffer is empty.
func (s *Screen) Key() tui.Event {
	return s.renderer.GetChar()
}

// TextOption modifies the attributes used by DrawText
type TextOption func(*tui.Attr)

// Bold draws the text in bold
func Bold() TextOption {
	return func(a *tui.Attr) { *a = a.Merge(tui.Bold) }
}

// Underline draws the text underlined
func Underline() TextOption {
	return func(a *tui.Attr) { *a = a.Merge(tui.Underline) }
}

// DrawText draws text at the given row and column
func (s *Screen) DrawText(y int, x int, text string, opts ...TextOption) {
	attr := tui.AttrRegular
	for _, opt := range opts {
		opt(&attr)
	}
	s.renderer.Print(y, x, text, attr)
}

// Size returns the screen dimensions
func (s *Screen) Size() (width int, height int) {
	return s.renderer.Size()
}

// Clear erases the screen contents
func (s *Screen) Clear() {
	s.renderer.Clear()
}

// Refresh makes pending drawing visible
func (s *Screen) Refresh() {
	s.renderer.Refresh()
}
