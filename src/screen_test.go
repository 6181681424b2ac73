package curtain

import (
	"testing"

	"github.com/curtainapp/curtain/src/tui"
	"github.com/stretchr/testify/require"
)

func TestScreenOpenRelease(t *testing.T) {
	r := tui.NewTestRenderer()
	s := newScreen(r)

	require.NoError(t, s.open())
	require.True(t, r.Live())

	err := s.open()
	require.ErrorIs(t, err, ErrResourceUnavailable, "nested open must fail")

	s.release()
	require.False(t, r.Live())
	s.release() // idempotent
	require.Equal(t, 1, r.CloseCount())
}

func TestScreenOpenWrapsInitFailure(t *testing.T) {
	r := tui.NewTestRenderer()
	r.FailInit = tui.ErrNotATerminal
	s := newScreen(r)

	err := s.open()
	require.ErrorIs(t, err, ErrResourceUnavailable)
	require.Contains(t, err.Error(), tui.ErrNotATerminal.Error())
}

func TestScreenSharedRendererExclusivity(t *testing.T) {
	r := tui.NewTestRenderer()
	first := newScreen(r)
	second := newScreen(r)

	require.NoError(t, first.open())
	err := second.open()
	require.ErrorIs(t, err, ErrResourceUnavailable,
		"the renderer is a process-wide singleton")

	first.release()
	require.NoError(t, second.open())
	second.release()
}

func TestScreenDrawTextAttributes(t *testing.T) {
	r := tui.NewTestRenderer()
	s := newScreen(r)
	require.NoError(t, s.open())
	defer s.release()

	s.DrawText(0, 0, "plain")
	s.DrawText(1, 2, "bold", Bold())
	s.DrawText(2, 4, "both", Bold(), Underline())
	s.Refresh()

	prints := r.Prints()
	require.Len(t, prints, 3)
	require.Equal(t, "0,0,0:plain", prints[0])
	require.Equal(t, "1,2,1:bold", prints[1])
	require.Equal(t, "2,4,3:both", prints[2])
	require.Equal(t, 1, r.RefreshCount())
}

func TestScreenKeyPassthrough(t *testing.T) {
	r := tui.NewTestRenderer()
	s := newScreen(r)
	require.NoError(t, s.open())
	defer s.release()

	require.Equal(t, tui.None, s.Key().Type)
	r.QueueKeys(tui.Event{Type: tui.Rune, Char: 'q'})
	key := s.Key()
	require.Equal(t, tui.Rune, key.Type)
	require.Equal(t, 'q', key.Char)
}
