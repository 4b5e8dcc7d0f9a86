// Package ctrlc suppresses the console's default handling of the Ctrl-C
// keystroke for the span of a critical section and reports afterwards whether
// the keystroke arrived.
//
//	s := ctrlc.NewSuppressor()
//	defer s.Close()
//
//	if err := s.Start(); err != nil {
//		return err
//	}
//	replaceFiles()
//	interrupted, err := s.Stop()
//
// While a Suppressor is active the process is not terminated by Ctrl-C; the
// event is recorded instead. Stop restores the default behaviour.
package ctrlc

import (
	"sync"
)

// Suppressor intercepts the Watched event between Start and Stop.
//
// Start/Stop/Close transitions are serialized by ctl, which is held across
// the Registrar call. The state pair is guarded by mu, which the handler
// also takes and which is never held across a Registrar call.
type Suppressor struct {
	ctl sync.Mutex
	mu  sync.Mutex

	// configuration
	reg   Registrar
	logf  LoggerFunc
	errf  LoggerFunc
	debug bool

	// state
	active   bool
	signaled bool
}

func NewSuppressor(opts ...Option) *Suppressor {
	s := &Suppressor{
		reg:  SystemRegistrar(),
		logf: func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins intercepting the Watched event. It clears the record of any
// earlier occurrence and installs the handler. Calling Start on an active
// Suppressor does nothing.
//
// If the handler cannot be installed the Suppressor stays inactive and the
// returned error matches ErrRegistration.
func (s *Suppressor) Start() error {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		s.debugf("ctrlc: start ignored; already active")
		return nil
	}
	s.signaled = false
	s.active = true
	s.mu.Unlock()

	if err := s.reg.Install(s); err != nil {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
		return &RegistrationError{Op: "install", Err: err}
	}
	s.debugf("ctrlc: intercepting %v", Watched)
	return nil
}

// Stop ends interception, restoring the default handling of the Watched
// event, and reports whether the event arrived while the Suppressor was
// active. Stopping an inactive Suppressor changes nothing and reports the
// result of the last active window.
//
// If the handler cannot be removed the Suppressor remains active, since the
// registration is still in place, and the error matches ErrRegistration.
func (s *Suppressor) Stop() (bool, error) {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if !s.active {
		signaled := s.signaled
		s.mu.Unlock()
		return signaled, nil
	}
	s.active = false
	s.mu.Unlock()

	err := s.reg.Remove(s)

	s.mu.Lock()
	if err != nil {
		s.active = true
	}
	signaled := s.signaled
	s.mu.Unlock()

	if err != nil {
		return signaled, &RegistrationError{Op: "remove", Err: err}
	}
	s.debugf("ctrlc: released %v; signaled=%v", Watched, signaled)
	return signaled, nil
}

// Close stops the Suppressor if it is still active. It is safe to call any
// number of times and is meant to be deferred right after construction.
// A failure to remove the handler is reported to the error logger and
// returned.
func (s *Suppressor) Close() error {
	if _, err := s.Stop(); err != nil {
		s.errorLogger()("ctrlc: teardown: %v", err)
		return err
	}
	return nil
}

// Active reports whether the Suppressor is currently intercepting.
func (s *Suppressor) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Signaled reports whether the Watched event has arrived since the current
// (or last) active window began, without ending the window. Long-running work
// can poll it to stop early.
func (s *Suppressor) Signaled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signaled
}

// HandleControl records the Watched event and reports it handled. Any other
// event is left to the operating system. It is invoked by the Registrar.
func (s *Suppressor) HandleControl(ev Event) bool {
	s.mu.Lock()
	if ev != Watched {
		s.mu.Unlock()
		return false
	}
	s.signaled = true
	s.mu.Unlock()

	s.debugf("ctrlc: observed %v", ev)
	return true
}
