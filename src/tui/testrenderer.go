package tui

import (
	"fmt"
	"sync"
)

// TestRenderer is an in-memory Renderer for tests and headless runs. It
// records lifecycle calls and drawn text, and serves key events from a
// scriptable queue. All methods are safe for concurrent use.
type TestRenderer struct {
	// FailInit, when set, is returned by the next Init call
	FailInit error

	mu        sync.Mutex
	live      bool
	width     int
	height    int
	keys      []Event
	prints    []string
	inits     int
	closes    int
	refreshes int
	clears    int
}

// NewTestRenderer returns a TestRenderer with an 80x24 screen
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{width: 80, height: 24}
}

func (r *TestRenderer) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailInit != nil {
		return r.FailInit
	}
	if r.live {
		return ErrScreenInUse
	}
	r.live = true
	r.inits++
	return nil
}

func (r *TestRenderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.live {
		return
	}
	r.live = false
	r.closes++
}

func (r *TestRenderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *TestRenderer) GetChar() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.keys) == 0 {
		return Event{Type: None}
	}
	event := r.keys[0]
	r.keys = r.keys[1:]
	return event
}

func (r *TestRenderer) Print(y int, x int, text string, attr Attr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prints = append(r.prints, fmt.Sprintf("%d,%d,%d:%s", y, x, attr, text))
}

func (r *TestRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *TestRenderer) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshes++
}

// QueueKeys appends events to the key queue served by GetChar
func (r *TestRenderer) QueueKeys(events ...Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, events...)
}

// Live reports whether the renderer is currently acquired
func (r *TestRenderer) Live() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

// InitCount returns the number of successful Init calls
func (r *TestRenderer) InitCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inits
}

// CloseCount returns the number of effective Close calls
func (r *TestRenderer) CloseCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes
}

// RefreshCount returns the number of Refresh calls
func (r *TestRenderer) RefreshCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}

// Prints returns the recorded draw calls in order
func (r *TestRenderer) Prints() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.prints...)
}
