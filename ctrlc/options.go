package ctrlc

type LoggerFunc func(format string, args ...any)

type Option func(*Suppressor)

// WithRegistrar replaces the platform registrar, typically with a fake in tests.
func WithRegistrar(r Registrar) Option {
	return func(s *Suppressor) { s.reg = r }
}

func WithLogger(l LoggerFunc) Option {
	return func(s *Suppressor) { s.logf = l }
}

// WithErrorLogger sets where teardown failures are reported. It defaults to
// the WithLogger logger.
func WithErrorLogger(l LoggerFunc) Option {
	return func(s *Suppressor) { s.errf = l }
}

func WithDebug(enabled bool) Option {
	return func(s *Suppressor) { s.debug = enabled }
}
