//go:build windows

package ctrlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestEventMatchesWin32Codes(t *testing.T) {
	assert.Equal(t, CtrlC, Event(windows.CTRL_C_EVENT))
	assert.Equal(t, CtrlBreak, Event(windows.CTRL_BREAK_EVENT))
	assert.Equal(t, CtrlClose, Event(windows.CTRL_CLOSE_EVENT))
	assert.Equal(t, CtrlLogoff, Event(windows.CTRL_LOGOFF_EVENT))
	assert.Equal(t, CtrlShutdown, Event(windows.CTRL_SHUTDOWN_EVENT))
}

func TestConsoleRegistrar_InstallRemove(t *testing.T) {
	r := newConsoleRegistrar()
	s := NewSuppressor(WithRegistrar(r))

	require.NoError(t, r.Install(s))
	require.ErrorIs(t, r.Install(s), ErrAlreadyInstalled)
	require.NoError(t, r.Remove(s))
	require.ErrorIs(t, r.Remove(s), ErrNotInstalled)

	// The trampoline is reused for a second window.
	cb := r.callbacks[s]
	require.NoError(t, r.Install(s))
	assert.Equal(t, cb, r.callbacks[s])
	require.NoError(t, r.Remove(s))
}

func TestSuppressor_SystemRegistrar_Windows(t *testing.T) {
	s := NewSuppressor()
	defer s.Close()

	require.NoError(t, s.Start())
	assert.True(t, s.HandleControl(CtrlC))
	assert.False(t, s.HandleControl(CtrlClose))
	got, err := s.Stop()
	require.NoError(t, err)
	assert.True(t, got)
}
