package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check connectivity to PostgreSQL and Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.store.Ping(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		fmt.Println("postgres ok")

		if err := a.cache.Ping(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		fmt.Println("redis ok")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
