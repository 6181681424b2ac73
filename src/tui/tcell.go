package tui

import (
	"os"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// eventChanSize bounds the number of not-yet-consumed input events. The
// pump drops further events instead of stalling the reader.
const eventChanSize = 128

// _live guards the process-wide terminal resource across all
// FullscreenRenderer instances
var _live int32

// FullscreenRenderer implements Renderer on top of tcell. Init enters the
// alternate screen, hides the cursor and spawns an input pump so that
// GetChar can be served without blocking.
type FullscreenRenderer struct {
	keypad bool
	screen tcell.Screen
	events chan Event
	done   chan struct{}
}

// NewFullscreenRenderer returns an unacquired renderer. With keypad off,
// decoded special keys other than Esc, Enter, Tab and Backspace are
// reported as Invalid.
func NewFullscreenRenderer(keypad bool) *FullscreenRenderer {
	return &FullscreenRenderer{keypad: keypad}
}

func (r *FullscreenRenderer) Init() error {
	if !atomic.CompareAndSwapInt32(&_live, 0, 1) {
		return ErrScreenInUse
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		atomic.StoreInt32(&_live, 0)
		return ErrNotATerminal
	}

	encoding.Register()
	s, err := tcell.NewScreen()
	if err != nil {
		atomic.StoreInt32(&_live, 0)
		return errors.Wrap(err, "failed to allocate screen")
	}
	if err := s.Init(); err != nil {
		atomic.StoreInt32(&_live, 0)
		return errors.Wrap(err, "failed to initialize screen")
	}
	s.HideCursor()

	r.screen = s
	r.events = make(chan Event, eventChanSize)
	r.done = make(chan struct{})
	go r.pump()
	return nil
}

// pump forwards tcell events to the event channel. It exits when Fini
// makes PollEvent return nil.
func (r *FullscreenRenderer) pump() {
	defer close(r.done)
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		event, ok := translate(ev, r.keypad)
		if !ok {
			continue
		}
		select {
		case r.events <- event:
		default:
			// input buffer overflow; drop rather than stall
		}
	}
}

func translate(ev tcell.Event, keypad bool) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Event{Type: Resize}, true
	case *tcell.EventKey:
		return translateKey(ev, keypad), true
	}
	return Event{}, false
}

func translateKey(ev *tcell.EventKey, keypad bool) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Type: Rune, Char: ev.Rune()}
	case tcell.KeyEsc:
		return Event{Type: Esc, Char: 27}
	case tcell.KeyEnter:
		return Event{Type: Enter, Char: '\r'}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Type: Backspace}
	case tcell.KeyTab:
		return Event{Type: Tab}
	case tcell.KeyUp:
		return special(Up, keypad)
	case tcell.KeyDown:
		return special(Down, keypad)
	case tcell.KeyLeft:
		return special(Left, keypad)
	case tcell.KeyRight:
		return special(Right, keypad)
	}
	return Event{Type: Invalid}
}

func special(t EventType, keypad bool) Event {
	if !keypad {
		return Event{Type: Invalid}
	}
	return Event{Type: t}
}

// GetChar returns the next pending event, or a None event when the input
// buffer is empty. It never blocks.
func (r *FullscreenRenderer) GetChar() Event {
	select {
	case event := <-r.events:
		return event
	default:
		return Event{Type: None}
	}
}

// Close restores the terminal and releases the screen resource. It is safe
// to call more than once.
func (r *FullscreenRenderer) Close() {
	if r.screen == nil {
		return
	}
	r.screen.Fini()
	<-r.done
	r.screen = nil
	atomic.StoreInt32(&_live, 0)
}

func (r *FullscreenRenderer) Size() (int, int) {
	return r.screen.Size()
}

// Print draws text at the given position, clipped to the screen edge.
// Control characters are skipped.
func (r *FullscreenRenderer) Print(y int, x int, text string, attr Attr) {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return
	}
	style := attr.style()
	for _, ch := range text {
		if x >= width {
			break
		}
		if ch < ' ' {
			continue
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *FullscreenRenderer) Clear() {
	r.screen.Clear()
}

func (r *FullscreenRenderer) Refresh() {
	r.screen.Show()
}

func (a Attr) style() tcell.Style {
	style := tcell.StyleDefault
	if a&Bold > 0 {
		style = style.Bold(true)
	}
	if a&Underline > 0 {
		style = style.Underline(true)
	}
	return style
}
