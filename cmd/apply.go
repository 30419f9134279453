package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"opportunity-recommender/internal/storage/postgres"
)

var applyCmd = &cobra.Command{
	Use:   "apply <user-id> <opportunity-id>",
	Short: "Record a user's application to an opportunity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		opportunityID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid opportunity id %q: %w", args[1], err)
		}

		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		err = a.service.Apply(context.Background(), userID, opportunityID)
		if errors.Is(err, postgres.ErrAlreadyApplied) {
			fmt.Printf("user %d already applied to opportunity %d\n", userID, opportunityID)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("application recorded: user %d, opportunity %d\n", userID, opportunityID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
