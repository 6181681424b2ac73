// Package curtain implements a lifecycle and concurrency wrapper around the
// terminal screen. An application supplies up to three hooks (enter, update,
// exit) and gets guaranteed screen acquisition and teardown, a paced update
// loop, and optionally a background worker running that loop while the
// calling goroutine stays free.
package curtain

import "github.com/pkg/errors"

var (
	// ErrResourceUnavailable means the screen could not be acquired: it
	// is already held, stdin is not a terminal, or the terminal could not
	// be put into the required mode. Fatal to session startup.
	ErrResourceUnavailable = errors.New("screen resource unavailable")

	// ErrInvalidState flags misuse of the lifecycle, such as updating an
	// application that was never entered or reusing a finished Worker.
	ErrInvalidState = errors.New("invalid application state")
)

func wrapInvalidState(msg string) error {
	return errors.Wrap(ErrInvalidState, msg)
}
