package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHoldCmd(deps runtimeDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hold",
		Short: "Hold Ctrl-C for a fixed window and report whether it was pressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Duration <= 0 {
				return fmt.Errorf("invalid %s %s: must be positive", keyDuration, cfg.Duration)
			}
			log := newLogger(cmd.ErrOrStderr(), cfg)
			if err := checkConsole(deps, cfg, log); err != nil {
				return err
			}

			s := newSuppressor(deps, cfg, log)
			defer s.Close()

			ctx := cmd.Context()
			log.Info("holding interrupts", "duration", cfg.Duration)
			interrupted, err := s.Do(func() error {
				timer := time.NewTimer(cfg.Duration)
				defer timer.Stop()
				select {
				case <-timer.C:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
			if err != nil {
				return err
			}

			log.Info("released interrupts", "interrupted", interrupted)
			fmt.Fprintf(cmd.OutOrStdout(), "interrupted=%t\n", interrupted)
			return interruptResult(cfg, interrupted)
		},
	}
	cmd.Flags().Duration(keyDuration, 5*time.Second, "How long to hold Ctrl-C")
	return cmd
}
