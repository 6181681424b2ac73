package curtain

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/curtainapp/curtain/src/tui"
	"github.com/curtainapp/curtain/src/util"
)

// Hooks bundles the lifecycle callbacks of an application. Every hook is
// optional; a nil hook is a no-op. Hook errors are never swallowed: they
// propagate to the caller, but screen teardown still runs.
type Hooks struct {
	// OnEnter runs once after the screen has been acquired and before
	// the first update.
	OnEnter func(screen *Screen) error

	// OnUpdate runs once per tick with the pending key event, or the
	// None event when no input is pending.
	OnUpdate func(screen *Screen, key tui.Event) error

	// OnExit runs once during teardown, before the screen is released.
	// It never overlaps an update.
	OnExit func(screen *Screen) error
}

type appState = int32

const (
	stateCreated appState = iota
	stateEntered
	stateExited
)

// App is the synchronous application lifecycle: Enter acquires the screen
// and runs the enter hook, Update runs one tick, Exit tears down. The
// caller drives the update loop at its own rate, or uses Run for a paced
// loop in the calling goroutine.
type App struct {
	opts   Options
	hooks  Hooks
	screen *Screen
	exit   *util.AtomicBool
	state  atomic.Int32
}

// NewApp returns an App with resolved options. A negative FPS is rejected
// here, before any resource is touched.
func NewApp(opts Options, hooks Hooks) (*App, error) {
	opts, err := processOptions(opts)
	if err != nil {
		return nil, err
	}
	return &App{
		opts:   opts,
		hooks:  hooks,
		screen: newScreen(opts.Renderer),
		exit:   util.NewAtomicBool(false),
	}, nil
}

func (a *App) logger() *slog.Logger {
	return a.opts.Logger
}

// Enter acquires the screen and runs the enter hook. If acquisition fails
// no hook runs; if the enter hook fails the screen is released again before
// the error propagates, so a failed Enter never leaks the terminal.
func (a *App) Enter() error {
	if a.state.Load() != stateCreated {
		return wrapInvalidState("Enter on an entered or exited application")
	}
	if err := a.screen.open(); err != nil {
		return err
	}
	a.logger().Debug("screen acquired")
	if a.hooks.OnEnter != nil {
		if err := a.hooks.OnEnter(a.screen); err != nil {
			a.screen.release()
			return err
		}
	}
	a.state.Store(stateEntered)
	return nil
}

// Update runs one tick: read a key, run the update hook, refresh the
// screen. Valid only between Enter and Exit.
func (a *App) Update() error {
	if a.state.Load() != stateEntered {
		return wrapInvalidState("Update outside an entered application")
	}
	key := a.screen.Key()
	if a.hooks.OnUpdate != nil {
		if err := a.hooks.OnUpdate(a.screen, key); err != nil {
			return err
		}
	}
	a.screen.Refresh()
	return nil
}

// Tick runs Update and then sleeps away the remainder of the frame budget.
// Callers driving the loop themselves use it to hold the configured rate.
func (a *App) Tick() error {
	start := time.Now()
	if err := a.Update(); err != nil {
		return err
	}
	if a.exit.Get() {
		return nil
	}
	if delay := a.opts.frameDuration() - time.Since(start); delay > 0 {
		time.Sleep(delay)
	}
	return nil
}

// RequestExit asks the update loop to stop at the next iteration boundary.
// Safe to call from any goroutine, any number of times; once requested, the
// signal never reverts.
func (a *App) RequestExit() {
	if !a.exit.Get() {
		a.logger().Debug("exit requested")
	}
	a.exit.Set(true)
}

// ExitRequested reports whether an exit has been requested
func (a *App) ExitRequested() bool {
	return a.exit.Get()
}

// Exit runs the exit hook and unconditionally releases the screen. It runs
// exactly once per App; further calls report ErrInvalidState. The hook
// error, if any, is returned after the screen has been released.
func (a *App) Exit() error {
	if !a.state.CompareAndSwap(stateEntered, stateExited) {
		return wrapInvalidState("Exit on an application that is not entered")
	}
	var err error
	if a.hooks.OnExit != nil {
		err = a.hooks.OnExit(a.screen)
	}
	a.screen.release()
	a.logger().Debug("screen released")
	return err
}

// Run drives the full lifecycle in the calling goroutine: Enter, paced
// updates until an exit is requested, Exit. Teardown always runs once Enter
// has succeeded; the first error wins.
func (a *App) Run() error {
	if err := a.Enter(); err != nil {
		return err
	}
	loop := pacedLoop{frame: a.opts.frameDuration()}
	err := loop.run(a.guardedUpdate, a.exit)
	if exitErr := a.Exit(); err == nil {
		err = exitErr
	}
	return err
}

// guardedUpdate applies the error policy to one tick of a paced loop
func (a *App) guardedUpdate() error {
	err := a.Update()
	if err == nil {
		return nil
	}
	if a.opts.ContinueOnError {
		a.logger().Debug("update hook failed, continuing", "error", err)
		return nil
	}
	a.logger().Debug("update hook failed, stopping", "error", err)
	return err
}
