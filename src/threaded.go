package curtain

// ThreadedApp runs the paced update loop on a background worker while the
// calling goroutine stays free to do unrelated work. The only state shared
// between the two goroutines is the exit latch: the screen is touched by
// the calling goroutine during setup and teardown only, and by the worker
// only in between. The calling goroutine must not invoke Update itself.
type ThreadedApp struct {
	*App
	worker *Worker
}

// NewThreadedApp returns a ThreadedApp with resolved options
func NewThreadedApp(opts Options, hooks Hooks) (*ThreadedApp, error) {
	app, err := NewApp(opts, hooks)
	if err != nil {
		return nil, err
	}
	t := &ThreadedApp{App: app}
	t.worker = NewWorker(func() error {
		loop := pacedLoop{frame: app.opts.frameDuration()}
		return loop.run(app.guardedUpdate, app.exit)
	})
	return t, nil
}

// Enter acquires the screen, runs the enter hook, then starts the worker.
// It returns once the worker is running, not once the first tick has
// completed.
func (t *ThreadedApp) Enter() error {
	if err := t.App.Enter(); err != nil {
		return err
	}
	if err := t.worker.Start(); err != nil {
		_ = t.App.Exit()
		return err
	}
	t.logger().Debug("worker started")
	return nil
}

// Exit stops the worker and tears the session down: request exit, join the
// worker, then run the exit hook and release the screen. The join precedes
// the exit hook, so the exit hook never overlaps an in-flight update. The
// update hook requesting exit from the worker goroutine cannot deadlock
// this join. The first error wins: a loop error takes precedence over an
// exit hook error.
func (t *ThreadedApp) Exit() error {
	if t.state.Load() != stateEntered {
		return wrapInvalidState("Exit on an application that is not entered")
	}
	t.RequestExit()
	err := t.worker.Wait()
	t.logger().Debug("worker stopped")
	if exitErr := t.App.Exit(); err == nil {
		err = exitErr
	}
	return err
}

// Wait blocks until the worker stops on its own, for applications that end
// themselves by requesting exit from the update hook. The session is still
// entered afterwards; call Exit to tear it down.
func (t *ThreadedApp) Wait() error {
	return t.worker.Wait()
}

// Run drives the whole threaded lifecycle: Enter, wait for the loop to
// finish, Exit.
func (t *ThreadedApp) Run() error {
	if err := t.Enter(); err != nil {
		return err
	}
	_ = t.Wait()
	return t.Exit()
}
