package ctrlc

// errorLogger and debugf snapshot the configuration under the state lock so
// SetLogger and SetDebug may race with handler delivery.

// errorLogger returns the logger for failures nobody can receive as an
// error value, falling back to the general logger.
func (s *Suppressor) errorLogger() LoggerFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errf != nil {
		return s.errf
	}
	return s.logf
}

func (s *Suppressor) debugf(format string, args ...any) {
	s.mu.Lock()
	logf, debug := s.logf, s.debug
	s.mu.Unlock()
	if debug {
		logf(format, args...)
	}
}
