package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Keyword search over active opportunities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		opportunities, err := a.service.Search(context.Background(), args[0], searchLimit)
		if err != nil {
			return err
		}

		for _, opp := range opportunities {
			fmt.Printf("%-6d %-12s %-40s %s (deadline %s)\n",
				opp.ID,
				opp.Type,
				opp.Title,
				opp.Organization,
				opp.Deadline.Format("2006-01-02"),
			)
		}
		fmt.Printf("%d results\n", len(opportunities))

		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
