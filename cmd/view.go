package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <opportunity-id>",
	Short: "Show one opportunity and bump its view counter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opportunityID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid opportunity id %q: %w", args[0], err)
		}

		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		opp, err := a.service.View(context.Background(), opportunityID)
		if err != nil {
			return err
		}
		if opp == nil {
			return fmt.Errorf("opportunity %d not found", opportunityID)
		}

		fmt.Printf("%s\n", opp.Title)
		fmt.Printf("  type:         %s\n", opp.Type)
		fmt.Printf("  organization: %s\n", opp.Organization)
		fmt.Printf("  category:     %s\n", opp.CategorySlug)
		fmt.Printf("  location:     %s", opp.Location)
		if opp.IsRemote {
			fmt.Printf(" (remote)")
		}
		fmt.Println()
		if len(opp.SkillsRequired) > 0 {
			fmt.Printf("  skills:       %s\n", strings.Join(opp.SkillsRequired, ", "))
		}
		fmt.Printf("  deadline:     %s\n", opp.Deadline.Format("2006-01-02"))
		fmt.Printf("  views:        %d\n", opp.ViewCount)
		fmt.Printf("  applications: %d\n", opp.ApplicationCount)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
