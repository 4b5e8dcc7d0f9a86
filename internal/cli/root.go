package cli

import (
	"github.com/spf13/cobra"

	"github.com/srozzo/go-ctrlc/ctrlc"
)

// runtimeDeps holds the process-level collaborators commands use, so tests
// can swap the console handler list and the terminal check.
type runtimeDeps struct {
	registrar ctrlc.Registrar
	isConsole func() bool
}

func systemDeps() runtimeDeps {
	return runtimeDeps{
		registrar: ctrlc.SystemRegistrar(),
		isConsole: stdinIsConsole,
	}
}

func NewRoot(version string) *cobra.Command {
	return newRoot(version, systemDeps())
}

func newRoot(version string, deps runtimeDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "breakwatch",
		Short:         "breakwatch: hold Ctrl-C across a critical section and report whether it was pressed",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version
	cmd.SetVersionTemplate("breakwatch {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.String(keyConfig, "", "Config file (yaml, toml or json)")
	pf.String(keyLogLevel, "info", "Log level: debug|info|warn|error")
	pf.String(keyLogFormat, "text", "Log format: text|json")
	pf.Int(keyInterruptExitCode, 130, "Exit code when Ctrl-C was pressed (0 exits normally)")
	pf.Bool(keyRequireConsole, false, "Fail instead of warning when stdin is not a console")

	cmd.AddCommand(newHoldCmd(deps))
	cmd.AddCommand(newRunCmd(deps))

	return cmd
}
