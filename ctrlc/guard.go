package ctrlc

// Do runs fn with the Watched event intercepted and reports whether it
// arrived while fn ran. The Suppressor is stopped on every exit path,
// including a panic in fn.
//
// Calling Do on an already active Suppressor joins the current window and
// ends it when fn returns.
func (s *Suppressor) Do(fn func() error) (interrupted bool, err error) {
	if err := s.Start(); err != nil {
		return false, err
	}
	defer func() {
		signaled, stopErr := s.Stop()
		interrupted = signaled
		if stopErr == nil {
			return
		}
		if err == nil {
			err = stopErr
			return
		}
		s.errorLogger()("ctrlc: teardown: %v", stopErr)
	}()
	return false, fn()
}
