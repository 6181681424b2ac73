package curtain

import (
	"log/slog"
	"time"

	"github.com/curtainapp/curtain/src/tui"
	"github.com/pkg/errors"
)

// defaultFPS is the update rate used when Options.FPS is left zero
const defaultFPS = 30

// Options configures an application. The zero value of every field selects
// its default. Options are resolved once at construction and immutable
// afterwards.
type Options struct {
	// FPS is the target update rate. Zero selects the default of 30;
	// a negative value is a configuration error.
	FPS int

	// Keypad makes the screen report decoded special keys (arrows etc.)
	// to the update hook instead of swallowing them as Invalid.
	Keypad bool

	// ContinueOnError keeps the paced loop running when the update hook
	// returns an error. By default the first error requests exit and is
	// surfaced from Exit.
	ContinueOnError bool

	// Logger receives debug-level lifecycle events. Nil discards them.
	Logger *slog.Logger

	// Renderer overrides the default fullscreen renderer. Used by tests
	// to substitute a simulated screen.
	Renderer tui.Renderer
}

// frameDuration is the frame budget derived from the configured rate
func (o Options) frameDuration() time.Duration {
	return time.Second / time.Duration(o.FPS)
}

// processOptions fills in defaults and validates the result
func processOptions(opts Options) (Options, error) {
	if opts.FPS == 0 {
		opts.FPS = defaultFPS
	}
	if opts.FPS < 0 {
		return opts, errors.Errorf("fps must be positive: %d", opts.FPS)
	}
	if opts.Renderer == nil {
		opts.Renderer = tui.NewFullscreenRenderer(opts.Keypad)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts, nil
}
