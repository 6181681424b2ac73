package curtain

import (
	"time"

	"github.com/curtainapp/curtain/src/util"
)

// pacedLoop runs a tick function repeatedly, sleeping away the remainder of
// each frame budget. A tick that overruns its budget is followed by an
// unthrottled next frame; there is no catch-up. The exit latch is checked at
// the top of every iteration, so a request made during one tick always
// prevents the next tick from starting while the in-flight tick completes.
type pacedLoop struct {
	frame time.Duration
}

func (l pacedLoop) run(tick func() error, exit *util.AtomicBool) error {
	for !exit.Get() {
		start := time.Now()
		if err := tick(); err != nil {
			return err
		}
		if exit.Get() {
			break
		}
		if delay := l.frame - time.Since(start); delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}
