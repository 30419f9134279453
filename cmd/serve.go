package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opportunity-recommender/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the maintenance daemon (expiry sweep and cache flush)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sched := scheduler.New(a.store, a.engine, a.cfg.SweepIntervalHours, a.log)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()

		a.log.Info("maintenance daemon running",
			zap.Int("sweep_interval_hours", a.cfg.SweepIntervalHours),
		)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		a.log.Info("shutting down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
