package curtain

import (
	"sync"
	"sync/atomic"

	"github.com/curtainapp/curtain/src/util"
	"github.com/pkg/errors"
)

const (
	evtWorkerStarted util.EventType = iota
	evtWorkerDone
)

type workerState = int32

const (
	workerNotStarted workerState = iota
	workerRunning
	workerStopped
)

// Worker runs a function on its own goroutine with a scoped start/join
// lifecycle. A Worker is single-use: starting it twice or waiting on one
// that was never started is a usage error. The function's error, including
// a recovered panic, is delivered to the goroutine that calls Wait, so a
// dead worker never goes unnoticed.
type Worker struct {
	run    func() error
	box    *util.EventBox
	state  atomic.Int32
	joined sync.Once

	// err is written by the worker goroutine before the done event and
	// read only after the done event is observed
	err error
}

// NewWorker returns a Worker that will execute run on its own goroutine
func NewWorker(run func() error) *Worker {
	return &Worker{run: run, box: util.NewEventBox()}
}

// Start spawns the goroutine and returns once it is running. It does not
// wait for run to make progress.
func (w *Worker) Start() error {
	if !w.state.CompareAndSwap(workerNotStarted, workerRunning) {
		return wrapInvalidState("worker already started")
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				w.err = errors.Errorf("worker panicked: %v", r)
			}
			w.state.Store(workerStopped)
			w.box.Set(evtWorkerDone, nil)
		}()
		w.box.Set(evtWorkerStarted, nil)
		w.err = w.run()
	}()
	w.box.WaitFor(evtWorkerStarted)
	return nil
}

// Wait blocks until the goroutine has finished and returns its error. It
// may be called from multiple goroutines; all of them observe the same
// result once the worker has stopped.
func (w *Worker) Wait() error {
	if w.state.Load() == workerNotStarted {
		return wrapInvalidState("worker never started")
	}
	w.joined.Do(func() {
		w.box.WaitFor(evtWorkerDone)
	})
	return w.err
}

// Stopped reports whether the goroutine has finished
func (w *Worker) Stopped() bool {
	return w.state.Load() == workerStopped
}
