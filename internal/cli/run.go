package cli

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"
)

func newRunCmd(deps runtimeDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run -- COMMAND [ARGS...]",
		Short: "Run a command with Ctrl-C held for breakwatch itself",
		Long: `Run COMMAND while breakwatch ignores Ctrl-C, so breakwatch survives to
report the outcome. The command's own handling of Ctrl-C is unchanged.

If Ctrl-C was pressed and the command exited cleanly or was killed by a
signal, breakwatch exits with --interrupt-exit-code. Otherwise a failing
command's exit code is returned, or 128+N when it was killed by signal N.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg)
			if err := checkConsole(deps, cfg, log); err != nil {
				return err
			}

			s := newSuppressor(deps, cfg, log)
			defer s.Close()

			var st childStatus
			interrupted, err := s.Do(func() error {
				c := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
				c.Stdin = cmd.InOrStdin()
				c.Stdout = cmd.OutOrStdout()
				c.Stderr = cmd.ErrOrStderr()

				err := c.Run()
				var ee *exec.ExitError
				if errors.As(err, &ee) {
					st = statusOf(ee)
					return nil
				}
				return err
			})
			if err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}

			attrs := []any{"command", args[0], "exit_code", st.code, "interrupted", interrupted}
			if st.signaled() {
				attrs = append(attrs, "signal", st.signal)
			}
			log.Info("command finished", attrs...)
			switch {
			case st.signaled() && interrupted:
				// The terminal delivers Ctrl-C to the whole foreground
				// group, so the child usually dies of the same keystroke.
				return interruptResult(cfg, interrupted)
			case st.code != 0:
				return &ExitError{Code: st.code, Interrupted: interrupted}
			}
			return interruptResult(cfg, interrupted)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// childStatus is how a child process ended.
type childStatus struct {
	code   int
	signal syscall.Signal // 0 unless the child was killed by a signal
}

func (st childStatus) signaled() bool { return st.signal != 0 }

func statusOf(ee *exec.ExitError) childStatus {
	if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return childStatus{code: 128 + int(ws.Signal()), signal: ws.Signal()}
	}
	code := ee.ExitCode()
	if code < 0 {
		code = 1
	}
	return childStatus{code: code}
}
