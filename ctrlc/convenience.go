package ctrlc

// Default is the Suppressor used by the package-level helpers.
var Default = NewSuppressor()

// Start begins interception on the Default suppressor.
func Start() error { return Default.Start() }

// Stop ends interception on the Default suppressor and reports whether
// Ctrl-C arrived during the window.
func Stop() (bool, error) { return Default.Stop() }

// Signaled reports whether Ctrl-C has arrived in the Default suppressor's
// current or last window.
func Signaled() bool { return Default.Signaled() }

// Close tears down the Default suppressor.
func Close() error { return Default.Close() }

// Do runs fn with interception active on the Default suppressor.
func Do(fn func() error) (bool, error) { return Default.Do(fn) }

// SetLogger sets the logger for the Default suppressor. Safe for concurrent use.
func SetLogger(l LoggerFunc) {
	Default.mu.Lock()
	Default.logf = l
	Default.mu.Unlock()
}

// SetDebug toggles debug logging for the Default suppressor. Safe for concurrent use.
func SetDebug(enabled bool) {
	Default.mu.Lock()
	Default.debug = enabled
	Default.mu.Unlock()
}
