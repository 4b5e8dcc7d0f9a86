package cli

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

func stdinIsConsole() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// checkConsole reports a missing console. Without one nobody can press
// Ctrl-C, and on Windows there is no console handler list to join.
func checkConsole(deps runtimeDeps, cfg *Config, l *slog.Logger) error {
	if deps.isConsole() {
		return nil
	}
	if cfg.RequireConsole {
		return &ExitError{Code: 2, Err: errNotConsole}
	}
	l.Warn(errNotConsole.Error() + "; Ctrl-C may never arrive")
	return nil
}

// interruptResult maps an observed interrupt onto the configured exit code.
func interruptResult(cfg *Config, interrupted bool) error {
	if interrupted && cfg.InterruptExitCode != 0 {
		return &ExitError{Code: cfg.InterruptExitCode, Interrupted: true}
	}
	return nil
}
