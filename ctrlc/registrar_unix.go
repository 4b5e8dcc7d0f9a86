//go:build unix

package ctrlc

import (
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
)

var systemRegistrar Registrar = newSignalRegistrar()

// signalRegistrar routes SIGINT, which the terminal raises for Ctrl-C, to
// installed handlers. While any handler is installed the runtime's default
// action (exit) is suppressed. Each handler is fed by its own goroutine.
type signalRegistrar struct {
	mu   sync.Mutex
	subs map[Handler]*subscription
}

type subscription struct {
	ch   chan os.Signal
	done chan struct{}
}

func newSignalRegistrar() *signalRegistrar {
	return &signalRegistrar{subs: make(map[Handler]*subscription)}
}

func (r *signalRegistrar) Install(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[h]; ok {
		return ErrAlreadyInstalled
	}
	sub := &subscription{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(sub.ch, unix.SIGINT)
	r.subs[h] = sub

	go sub.forward(h)
	return nil
}

// Remove stops delivery and waits until the forwarder has handed any
// buffered signal to h, so h is not called after Remove returns.
func (r *signalRegistrar) Remove(h Handler) error {
	r.mu.Lock()
	sub, ok := r.subs[h]
	if !ok {
		r.mu.Unlock()
		return ErrNotInstalled
	}
	delete(r.subs, h)
	r.mu.Unlock()

	signal.Stop(sub.ch)
	close(sub.ch)
	<-sub.done
	return nil
}

func (sub *subscription) forward(h Handler) {
	defer close(sub.done)
	for sig := range sub.ch {
		if ev, ok := eventFor(sig); ok {
			h.HandleControl(ev)
		}
	}
}

// eventFor maps a subscribed signal onto the console event it stands in for.
func eventFor(sig os.Signal) (Event, bool) {
	if sig == unix.SIGINT {
		return CtrlC, true
	}
	return 0, false
}
