package curtain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProcessOptionsDefaults(t *testing.T) {
	opts, err := processOptions(Options{})
	require.NoError(t, err)
	require.Equal(t, 30, opts.FPS)
	require.Equal(t, time.Second/30, opts.frameDuration())
	require.NotNil(t, opts.Renderer)
	require.NotNil(t, opts.Logger)
}

func TestProcessOptionsFrameDuration(t *testing.T) {
	for fps, expected := range map[int]time.Duration{
		1:   time.Second,
		10:  100 * time.Millisecond,
		30:  time.Second / 30,
		60:  time.Second / 60,
		240: time.Second / 240,
	} {
		opts, err := processOptions(Options{FPS: fps})
		require.NoError(t, err)
		require.Equal(t, expected, opts.frameDuration())
	}
}

func TestProcessOptionsInvalidFPS(t *testing.T) {
	_, err := processOptions(Options{FPS: -1})
	require.Error(t, err)

	_, err = NewApp(Options{FPS: -30}, Hooks{})
	require.Error(t, err)
}
