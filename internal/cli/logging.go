package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/srozzo/go-ctrlc/ctrlc"
)

func newLogger(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// suppressorLogger adapts l to the printf-style logger the suppressor takes.
// Its lines are diagnostics, so they are logged at debug level.
func suppressorLogger(l *slog.Logger) ctrlc.LoggerFunc {
	return func(format string, args ...any) {
		l.Debug(fmt.Sprintf(format, args...))
	}
}

// suppressorErrorLogger reports failures the suppressor cannot return, such
// as a handler left installed at teardown.
func suppressorErrorLogger(l *slog.Logger) ctrlc.LoggerFunc {
	return func(format string, args ...any) {
		l.Warn(fmt.Sprintf(format, args...))
	}
}

func newSuppressor(deps runtimeDeps, cfg *Config, l *slog.Logger) *ctrlc.Suppressor {
	return ctrlc.NewSuppressor(
		ctrlc.WithRegistrar(deps.registrar),
		ctrlc.WithLogger(suppressorLogger(l)),
		ctrlc.WithErrorLogger(suppressorErrorLogger(l)),
		ctrlc.WithDebug(cfg.Debug()),
	)
}
