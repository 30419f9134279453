package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"opportunity-recommender/internal/matching"
)

var (
	recommendOrdering string
	recommendPage     int
	recommendPageSize int
	recommendType     string
	recommendLocation string
	recommendCategory string
	recommendTags     []string
	recommendSkills   []string
	recommendWithin   string
	recommendExpired  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <user-id>",
	Short: "Print a page of ranked opportunity recommendations for a user",
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

		spec := &matching.FilterSpec{
			Type:         recommendType,
			Location:     recommendLocation,
			Category:     recommendCategory,
			Tags:         recommendTags,
			Skills:       recommendSkills,
			PostedWithin: recommendWithin,
			ShowExpired:  recommendExpired,
		}

		page, err := a.service.Recommendations(context.Background(), userID, spec, recommendOrdering, recommendPage, recommendPageSize)
		if err != nil {
			return err
		}

		fmt.Printf("page %d/%d (%d matches)\n", page.Pagination.CurrentPage, page.Pagination.TotalPages, page.Pagination.Count)
		for _, r := range page.Results {
			fmt.Printf("%3d  %-12s %-40s %s  [skills %d%%, location %d%%, %s, preferences %d%%]\n",
				r.Score,
				r.Opportunity.Type,
				r.Opportunity.Title,
				r.Opportunity.Organization,
				r.Reasons.SkillsMatch,
				r.Reasons.LocationMatch,
				r.Reasons.Eligibility,
				r.Reasons.PreferenceMatch,
			)
		}

		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendOrdering, "ordering", "-score", "sort field: score, deadline or title, prefix - for descending")
	recommendCmd.Flags().IntVar(&recommendPage, "page", 1, "page number")
	recommendCmd.Flags().IntVar(&recommendPageSize, "page-size", matching.DefaultPageSize, "results per page")
	recommendCmd.Flags().StringVar(&recommendType, "type", "", "filter by opportunity type")
	recommendCmd.Flags().StringVar(&recommendLocation, "location", "", "filter by location substring (remote always matches)")
	recommendCmd.Flags().StringVar(&recommendCategory, "category", "", "filter by category slug")
	recommendCmd.Flags().StringSliceVar(&recommendTags, "tags", nil, "require all of these tags")
	recommendCmd.Flags().StringSliceVar(&recommendSkills, "skills", nil, "require all of these skills")
	recommendCmd.Flags().StringVar(&recommendWithin, "posted-within", "", "today, this_week, this_month or <N>h")
	recommendCmd.Flags().BoolVar(&recommendExpired, "show-expired", false, "include past-deadline opportunities")

	rootCmd.AddCommand(recommendCmd)
}
