//go:build windows

package ctrlc

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

var systemRegistrar Registrar = newConsoleRegistrar()

// consoleRegistrar installs handlers with SetConsoleCtrlHandler. The system
// calls the most recently installed routine first, on a thread it creates
// for the event.
type consoleRegistrar struct {
	mu sync.Mutex
	// windows.NewCallback slots are never released, so each handler gets one
	// trampoline for the life of the process.
	callbacks map[Handler]uintptr
	installed map[Handler]bool
}

func newConsoleRegistrar() *consoleRegistrar {
	return &consoleRegistrar{
		callbacks: make(map[Handler]uintptr),
		installed: make(map[Handler]bool),
	}
}

func (r *consoleRegistrar) Install(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.installed[h] {
		return ErrAlreadyInstalled
	}
	if err := setConsoleCtrlHandler(r.callbackLocked(h), true); err != nil {
		return err
	}
	r.installed[h] = true
	return nil
}

func (r *consoleRegistrar) Remove(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.installed[h] {
		return ErrNotInstalled
	}
	if err := setConsoleCtrlHandler(r.callbacks[h], false); err != nil {
		return err
	}
	delete(r.installed, h)
	return nil
}

func (r *consoleRegistrar) callbackLocked(h Handler) uintptr {
	if cb, ok := r.callbacks[h]; ok {
		return cb
	}
	// BOOL WINAPI HandlerRoutine(DWORD dwCtrlType)
	cb := windows.NewCallback(func(ctrlType uintptr) uintptr {
		if h.HandleControl(Event(uint32(ctrlType))) {
			return 1
		}
		return 0
	})
	r.callbacks[h] = cb
	return cb
}

func setConsoleCtrlHandler(cb uintptr, add bool) error {
	if err := procSetConsoleCtrlHandler.Find(); err != nil {
		return fmt.Errorf("SetConsoleCtrlHandler: %w", err)
	}
	var flag uintptr
	if add {
		flag = 1
	}
	r1, _, e1 := procSetConsoleCtrlHandler.Call(cb, flag)
	if r1 != 0 {
		return nil
	}
	var errno windows.Errno
	if errors.As(e1, &errno) && errno != windows.ERROR_SUCCESS {
		return fmt.Errorf("SetConsoleCtrlHandler: %w", errno)
	}
	return errors.New("SetConsoleCtrlHandler: call failed")
}
