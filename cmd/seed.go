package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opportunity-recommender/internal/models"
)

var (
	seedCount            int
	seedScholarshipCount int
	seedUserID           int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert deterministic sample data for development and testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := context.Background()
		// Fixed seed so repeated runs produce the same dataset.
		rng := rand.New(rand.NewSource(42))

		for i := 0; i < seedCount; i++ {
			opp := sampleOpportunity(rng, int64(i+1))
			if err := a.service.SaveOpportunity(ctx, opp); err != nil {
				return fmt.Errorf("seed opportunity %d: %w", opp.ID, err)
			}
		}

		for i := 0; i < seedScholarshipCount; i++ {
			scholarship := sampleScholarship(rng, int64(i+1))
			if err := a.service.SaveScholarship(ctx, scholarship); err != nil {
				return fmt.Errorf("seed scholarship %d: %w", scholarship.ID, err)
			}
		}

		// A demo user so recommend/match-scholarships work right after seeding.
		if err := a.service.SaveProfile(ctx, sampleUserProfile(seedUserID)); err != nil {
			return fmt.Errorf("seed user profile: %w", err)
		}
		if err := a.service.SaveScholarshipProfile(ctx, sampleScholarshipProfile(seedUserID)); err != nil {
			return fmt.Errorf("seed scholarship profile: %w", err)
		}

		a.log.Info("sample data created",
			zap.Int("opportunities", seedCount),
			zap.Int("scholarships", seedScholarshipCount),
			zap.Int64("demo_user_id", seedUserID),
		)
		return nil
	},
}

var (
	sampleCategories = []string{
		"technology", "healthcare", "education", "engineering", "business",
		"arts", "science", "finance", "marketing", "design",
	}
	sampleLocations = []string{
		"Lagos, Nigeria", "Nairobi, Kenya", "Accra, Ghana", "Johannesburg, South Africa",
		"Cairo, Egypt", "New York, USA", "London, UK", "Berlin, Germany", "Paris, France",
	}
	sampleSkills = []string{
		"Python", "JavaScript", "React", "Node.js", "Django", "Machine Learning",
		"Leadership", "Communication", "Teamwork", "Project Management",
		"Data Analysis", "Research", "Writing", "Public Speaking", "Design",
	}
	sampleEducationLevels = []string{
		models.EducationHighSchool, models.EducationBachelors,
		models.EducationMasters, models.EducationPhD,
	}
)

func sampleOpportunity(rng *rand.Rand, id int64) *models.Opportunity {
	types := models.OpportunityTypes()
	oppType := types[rng.Intn(len(types))]
	category := sampleCategories[rng.Intn(len(sampleCategories))]
	location := sampleLocations[rng.Intn(len(sampleLocations))]

	skills := make([]string, 0, 5)
	for _, idx := range rng.Perm(len(sampleSkills))[:1+rng.Intn(5)] {
		skills = append(skills, sampleSkills[idx])
	}

	minAge := 18 + rng.Intn(12)
	maxAge := 30 + rng.Intn(30)

	return &models.Opportunity{
		ID:              id,
		Title:           fmt.Sprintf("%s %s %d", models.TypeDisplayName(oppType), category, id),
		Type:            oppType,
		Organization:    fmt.Sprintf("Organization %d", 1+rng.Intn(50)),
		CategorySlug:    category,
		Tags:            models.StringList{category},
		Location:        location,
		IsRemote:        rng.Float64() < 0.3,
		ExperienceLevel: models.ExperienceEntry,
		SkillsRequired:  skills,
		Eligibility: models.EligibilityCriteria{
			EducationLevel: sampleEducationLevels[rng.Intn(len(sampleEducationLevels))],
			MinAge:         &minAge,
			MaxAge:         &maxAge,
		},
		Deadline:   time.Now().AddDate(0, 0, 7+rng.Intn(90)),
		CreatedAt:  time.Now().AddDate(0, 0, -rng.Intn(45)),
		IsFeatured: rng.Float64() < 0.1,
		IsActive:   true,
	}
}

var (
	sampleProviders = []string{
		"Mastercard Foundation", "Chevening", "DAAD", "Fulbright Commission",
		"Commonwealth Scholarships", "Gates Foundation",
	}
	sampleCourses = []string{
		"Computer Science", "Medicine", "Engineering", "Business Administration",
		"Public Health", "Law", "Economics",
	}
	sampleOverviewTags = []string{
		"women in tech", "first generation", "low income", "rural communities",
		"STEM", "developing countries",
	}
)

func sampleScholarship(rng *rand.Rand, id int64) *models.Scholarship {
	provider := sampleProviders[rng.Intn(len(sampleProviders))]
	course := sampleCourses[rng.Intn(len(sampleCourses))]
	location := sampleLocations[rng.Intn(len(sampleLocations))]
	tag := sampleOverviewTags[rng.Intn(len(sampleOverviewTags))]

	// Free-text fields on purpose: scholarship rows arrive scraped, and the
	// matcher parses numbers and dates out of them leniently.
	return &models.Scholarship{
		ID:          id,
		Title:       fmt.Sprintf("%s %s Scholarship %d", provider, course, id),
		Provider:    provider,
		Location:    location,
		Course:      course,
		DegreeLevel: sampleEducationLevels[rng.Intn(len(sampleEducationLevels))],
		Nationality: "Nigerian",
		GPA:         fmt.Sprintf("Minimum GPA of %.1f", 2.5+rng.Float64()*1.5),
		Amount:      fmt.Sprintf("$%d,000 per year", 1+rng.Intn(20)),
		Deadline:    time.Now().AddDate(0, 0, 10+rng.Intn(120)).Format("2006-01-02"),
		Overview:    fmt.Sprintf("Supports %s students pursuing %s.", tag, course),
	}
}

func sampleUserProfile(userID int64) *models.UserProfile {
	age := 24
	return &models.UserProfile{
		UserID:   userID,
		Skills:   models.StringList{"Python", "JavaScript", "React", "Data Analysis"},
		Location: "Lagos, Nigeria",
		Education: models.Education{
			HighestLevel: models.EducationBachelors,
			Age:          &age,
			Nationality:  "Nigerian",
		},
		Prefs: models.Preferences{
			PreferredType:     models.TypeJob,
			PreferredCategory: "technology",
		},
	}
}

func sampleScholarshipProfile(userID int64) *models.ScholarshipProfile {
	return &models.ScholarshipProfile{
		UserID:          userID,
		GPA:             3.5,
		Location:        "Nigeria",
		Course:          "Computer Science",
		DegreeLevel:     models.EducationBachelors,
		Nationality:     "Nigerian",
		FinancialNeed:   5000,
		EligibilityTags: models.StringList{"women in tech", "first generation"},
	}
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 100, "number of sample opportunities to create")
	seedCmd.Flags().IntVar(&seedScholarshipCount, "scholarships", 20, "number of sample scholarships to create")
	seedCmd.Flags().Int64Var(&seedUserID, "user-id", 1, "id of the demo user profile")
	rootCmd.AddCommand(seedCmd)
}
