package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var scholarshipsLimit int

var scholarshipsCmd = &cobra.Command{
	Use:   "match-scholarships <user-id>",
	Short: "Rank all scholarships against a user's scholarship profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUserID(args[0])
		if err != nil {
			return err
		}

		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		ranked, err := a.service.MatchScholarships(context.Background(), userID)
		if err != nil {
			return err
		}

		if scholarshipsLimit > 0 && len(ranked) > scholarshipsLimit {
			ranked = ranked[:scholarshipsLimit]
		}

		for _, r := range ranked {
			fmt.Printf("%3d pts  %-40s %s (deadline %s)\n",
				r.Points,
				r.Scholarship.Title,
				r.Scholarship.Provider,
				r.Scholarship.Deadline,
			)
		}

		return nil
	},
}

func parseUserID(arg string) (int64, error) {
	userID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", arg, err)
	}
	return userID, nil
}

func init() {
	scholarshipsCmd.Flags().IntVar(&scholarshipsLimit, "limit", 20, "maximum number of results, 0 for all")
	rootCmd.AddCommand(scholarshipsCmd)
}
