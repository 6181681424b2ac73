// Package tui provides the terminal screen abstraction used by curtain
// applications. The terminal is a process-wide resource: exactly one
// Renderer may be live at a time.
package tui

import "github.com/pkg/errors"

// EventType classifies input events delivered by a Renderer
type EventType int

const (
	// None means no input was pending when the read was issued
	None EventType = iota

	Rune
	Esc
	Enter
	Backspace
	Tab

	Up
	Down
	Left
	Right

	// Invalid is reported for keys the renderer decoded but does not
	// deliver, e.g. special keys when keypad mode is off
	Invalid

	Resize
)

// Event is a single input event. Char is only meaningful for Rune events.
type Event struct {
	Type EventType
	Char rune
}

// Attr represents text attributes (bitmask)
type Attr int32

const (
	AttrRegular Attr = 0
	Bold        Attr = 1 << 0
	Underline   Attr = 1 << 1
)

// Merge combines two attribute masks
func (a Attr) Merge(b Attr) Attr {
	return a | b
}

var (
	// ErrScreenInUse is returned by Init when another renderer already
	// owns the terminal
	ErrScreenInUse = errors.New("screen is already in use")

	// ErrNotATerminal is returned by Init when stdin is not a tty
	ErrNotATerminal = errors.New("standard input is not a terminal")
)

// Renderer drives the terminal. Init acquires the screen and puts the
// terminal into the required mode; Close restores the prior mode and
// releases the screen. GetChar never blocks.
type Renderer interface {
	Init() error
	Close()

	Size() (width int, height int)
	GetChar() Event
	Print(y int, x int, text string, attr Attr)
	Clear()
	Refresh()
}
