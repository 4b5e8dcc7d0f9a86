package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BREAKWATCH"

const (
	keyConfig            = "config"
	keyLogLevel          = "log-level"
	keyLogFormat         = "log-format"
	keyDuration          = "duration"
	keyInterruptExitCode = "interrupt-exit-code"
	keyRequireConsole    = "require-console"
)

// Config is the resolved breakwatch configuration. Precedence: flags set on
// the command line, then BREAKWATCH_* environment variables, then the config
// file, then flag defaults.
type Config struct {
	LogLevel          slog.Level
	LogFormat         string
	Duration          time.Duration
	InterruptExitCode int
	RequireConsole    bool
}

func (c *Config) Debug() bool { return c.LogLevel <= slog.LevelDebug }

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		LogFormat:         strings.ToLower(v.GetString(keyLogFormat)),
		Duration:          v.GetDuration(keyDuration),
		InterruptExitCode: v.GetInt(keyInterruptExitCode),
		RequireConsole:    v.GetBool(keyRequireConsole),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid %s %q", keyLogLevel, v.GetString(keyLogLevel))
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid %s %q: want text or json", keyLogFormat, cfg.LogFormat)
	}
	if cfg.InterruptExitCode < 0 || cfg.InterruptExitCode > 255 {
		return nil, fmt.Errorf("invalid %s %d: want 0-255", keyInterruptExitCode, cfg.InterruptExitCode)
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}
