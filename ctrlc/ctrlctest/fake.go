// Package ctrlctest provides a fake ctrlc.Registrar for exercising code that
// suppresses Ctrl-C without a console or real signals.
package ctrlctest

import (
	"sync"

	"github.com/srozzo/go-ctrlc/ctrlc"
)

// Call is one recorded Registrar operation.
type Call struct {
	Op      string // "install" or "remove"
	Handler ctrlc.Handler
}

// FakeRegistrar records Install and Remove calls and lets tests deliver
// control events to the installed handlers. Like the Windows handler list,
// the most recently installed handler sees an event first and a handler
// returning true stops the chain.
type FakeRegistrar struct {
	mu         sync.Mutex
	calls      []Call
	installed  []ctrlc.Handler
	installErr error
	removeErr  error
	onInstall  []ctrlc.Event
	onRemove   []ctrlc.Event
}

var _ ctrlc.Registrar = (*FakeRegistrar)(nil)

func New() *FakeRegistrar { return &FakeRegistrar{} }

// Install records the call and installs h unless FailInstall is set.
// Events queued with DeliverOnInstall are then delivered synchronously.
func (f *FakeRegistrar) Install(h ctrlc.Handler) error {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: "install", Handler: h})
	if f.installErr != nil {
		err := f.installErr
		f.mu.Unlock()
		return err
	}
	for _, cur := range f.installed {
		if cur == h {
			f.mu.Unlock()
			return ctrlc.ErrAlreadyInstalled
		}
	}
	f.installed = append(f.installed, h)
	pending := append([]ctrlc.Event(nil), f.onInstall...)
	f.mu.Unlock()

	for _, ev := range pending {
		h.HandleControl(ev)
	}
	return nil
}

// Remove records the call and uninstalls h unless FailRemove is set. Events
// queued with DeliverOnRemove reach h just before it is uninstalled.
func (f *FakeRegistrar) Remove(h ctrlc.Handler) error {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: "remove", Handler: h})
	if f.removeErr != nil {
		err := f.removeErr
		f.mu.Unlock()
		return err
	}
	idx := -1
	for i, cur := range f.installed {
		if cur == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		f.mu.Unlock()
		return ctrlc.ErrNotInstalled
	}
	pending := append([]ctrlc.Event(nil), f.onRemove...)
	f.mu.Unlock()

	for _, ev := range pending {
		h.HandleControl(ev)
	}

	f.mu.Lock()
	for i, cur := range f.installed {
		if cur == h {
			f.installed = append(f.installed[:i], f.installed[i+1:]...)
			break
		}
	}
	f.mu.Unlock()
	return nil
}

// Deliver raises ev as the operating system would, synchronously on the
// calling goroutine. It reports whether any installed handler handled it;
// false means the default action would have run.
func (f *FakeRegistrar) Deliver(ev ctrlc.Event) bool {
	f.mu.Lock()
	chain := append([]ctrlc.Handler(nil), f.installed...)
	f.mu.Unlock()

	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].HandleControl(ev) {
			return true
		}
	}
	return false
}

// FailInstall makes subsequent Install calls return err. Pass nil to clear.
func (f *FakeRegistrar) FailInstall(err error) {
	f.mu.Lock()
	f.installErr = err
	f.mu.Unlock()
}

// FailRemove makes subsequent Remove calls return err. Pass nil to clear.
func (f *FakeRegistrar) FailRemove(err error) {
	f.mu.Lock()
	f.removeErr = err
	f.mu.Unlock()
}

// DeliverOnInstall queues events delivered from inside every successful Install.
func (f *FakeRegistrar) DeliverOnInstall(evs ...ctrlc.Event) {
	f.mu.Lock()
	f.onInstall = append(f.onInstall, evs...)
	f.mu.Unlock()
}

// DeliverOnRemove queues events delivered from inside every successful Remove.
func (f *FakeRegistrar) DeliverOnRemove(evs ...ctrlc.Event) {
	f.mu.Lock()
	f.onRemove = append(f.onRemove, evs...)
	f.mu.Unlock()
}

func (f *FakeRegistrar) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Count returns how many calls of the given op were recorded.
func (f *FakeRegistrar) Count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Installed reports whether h is currently installed.
func (f *FakeRegistrar) Installed(h ctrlc.Handler) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cur := range f.installed {
		if cur == h {
			return true
		}
	}
	return false
}
