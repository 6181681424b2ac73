package util

import (
	"sync/atomic"
)

// AtomicBool provides synchronized access to the underlying boolean value.
// Loads and stores are sequentially consistent.
type AtomicBool struct {
	state atomic.Bool
}

// NewAtomicBool returns a new AtomicBool
func NewAtomicBool(initialState bool) *AtomicBool {
	b := &AtomicBool{}
	b.state.Store(initialState)
	return b
}

// Get returns the current boolean value synchronously
func (a *AtomicBool) Get() bool {
	return a.state.Load()
}

// Set updates the boolean value synchronously
func (a *AtomicBool) Set(newState bool) bool {
	a.state.Store(newState)
	return newState
}
