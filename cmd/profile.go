package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"opportunity-recommender/internal/models"
)

var (
	profileSkills      []string
	profileEducation   string
	profileAge         int
	profileNationality string
	profileLocation    string
	profileType        string
	profileCategory    string
)

var saveProfileCmd = &cobra.Command{
	Use:   "save-profile <user-id>",
	Short: "Create or update a user's matching profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUserID(args[0])
		if err != nil {
			return err
		}

		if profileEducation != "" && !models.IsValidEducationLevel(profileEducation) {
			return fmt.Errorf("unknown education level %q", profileEducation)
		}
		if profileType != "" && !models.IsValidType(profileType) {
			return fmt.Errorf("unknown opportunity type %q", profileType)
		}

		profile := &models.UserProfile{
			UserID: userID,
			Skills: profileSkills,
			Education: models.Education{
				HighestLevel: profileEducation,
				Nationality:  profileNationality,
			},
			Prefs: models.Preferences{
				PreferredType:     profileType,
				PreferredCategory: profileCategory,
			},
			Location: profileLocation,
		}
		if profileAge > 0 {
			profile.Education.Age = &profileAge
		}

		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := a.service.SaveProfile(context.Background(), profile); err != nil {
			return err
		}

		fmt.Printf("profile saved for user %d\n", userID)
		return nil
	},
}

func init() {
	saveProfileCmd.Flags().StringSliceVar(&profileSkills, "skills", nil, "skills the user has")
	saveProfileCmd.Flags().StringVar(&profileEducation, "education", "", "highest education level: high_school, bachelors, masters or phd")
	saveProfileCmd.Flags().IntVar(&profileAge, "age", 0, "age, 0 to leave unset")
	saveProfileCmd.Flags().StringVar(&profileNationality, "nationality", "", "nationality")
	saveProfileCmd.Flags().StringVar(&profileLocation, "location", "", "location, e.g. \"Lagos, Nigeria\"")
	saveProfileCmd.Flags().StringVar(&profileType, "preferred-type", "", "preferred opportunity type")
	saveProfileCmd.Flags().StringVar(&profileCategory, "preferred-category", "", "preferred category slug")

	rootCmd.AddCommand(saveProfileCmd)
}
