package matching_test

import (
	"reflect"
	"testing"
	"time"

	"opportunity-recommender/internal/matching"
	"opportunity-recommender/internal/models"
)

func testProfile() models.UserProfile {
	return models.UserProfile{
		UserID: 1,
		Skills: models.StringList{"Python", "Django", "JavaScript"},
		Education: models.Education{
			HighestLevel: models.EducationBachelors,
			Age:          intPtr(25),
			Nationality:  "Nigerian",
		},
		Prefs: models.Preferences{
			PreferredType:     models.TypeJob,
			PreferredCategory: "technology",
		},
		Location: "Lagos, Nigeria",
	}
}

func newTestScorer(t *testing.T) *matching.Scorer {
	t.Helper()
	scorer, err := matching.NewScorer(matching.DefaultWeights())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	return scorer
}

func TestWeights_Validate(t *testing.T) {
	if err := matching.DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights should be valid: %v", err)
	}

	bad := matching.Weights{Skills: 0.5, Location: 0.5, Education: 0.5, Preferences: 0.5}
	if err := bad.Validate(); err == nil {
		t.Error("weights summing to 2.0 should be rejected")
	}

	if _, err := matching.NewScorer(bad); err == nil {
		t.Error("NewScorer should reject invalid weights")
	}
}

// The three scenarios mirror a user with Python/Django skills in Lagos
// against a perfect match, a remote partial match, and a non-match.
func TestScorer_ScenarioRanking(t *testing.T) {
	scorer := newTestScorer(t)
	profile := testProfile()

	perfect := opportunity(1, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Python", "Django"}
		o.Eligibility = models.EligibilityCriteria{
			EducationLevel: models.EducationBachelors,
			MinAge:         intPtr(18),
			MaxAge:         intPtr(40),
			Nationalities:  []string{"Nigerian", "Ghanaian"},
		}
		o.CreatedAt = testNow
	})
	partial := opportunity(2, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"React", "Vue"}
		o.Location = "Accra, Ghana"
		o.IsRemote = true
		o.CreatedAt = testNow
	})
	nonMatch := opportunity(3, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Medicine"}
		o.Location = "London, UK"
		o.CategorySlug = "healthcare"
		o.Eligibility = models.EligibilityCriteria{
			EducationLevel: models.EducationPhD,
			MinAge:         intPtr(30),
			MaxAge:         intPtr(60),
		}
		o.CreatedAt = testNow
	})

	perfectResult := scorer.Score(perfect, profile, testNow)
	partialResult := scorer.Score(partial, profile, testNow)
	nonMatchResult := scorer.Score(nonMatch, profile, testNow)

	if perfectResult.Score != 100 {
		t.Errorf("perfect match score = %d, want 100", perfectResult.Score)
	}
	if partialResult.Score >= perfectResult.Score {
		t.Errorf("partial (%d) should rank below perfect (%d)", partialResult.Score, perfectResult.Score)
	}
	if nonMatchResult.Score >= partialResult.Score {
		t.Errorf("non-match (%d) should rank below partial (%d)", nonMatchResult.Score, partialResult.Score)
	}

	if perfectResult.Reasons.SkillsMatch != 100 {
		t.Errorf("perfect skills reason = %d, want 100", perfectResult.Reasons.SkillsMatch)
	}
	if perfectResult.Reasons.Eligibility != "Eligible" {
		t.Errorf("perfect eligibility reason = %q", perfectResult.Reasons.Eligibility)
	}
	if partialResult.Reasons.SkillsMatch != 0 {
		t.Errorf("partial skills reason = %d, want 0", partialResult.Reasons.SkillsMatch)
	}
	if partialResult.Reasons.LocationMatch != 100 {
		t.Errorf("remote location reason = %d, want 100", partialResult.Reasons.LocationMatch)
	}
	if nonMatchResult.Reasons.Eligibility != "Not eligible" {
		t.Errorf("non-match eligibility reason = %q", nonMatchResult.Reasons.Eligibility)
	}
	if nonMatchResult.Reasons.LocationMatch != 20 {
		t.Errorf("baseline location reason = %d, want 20", nonMatchResult.Reasons.LocationMatch)
	}
}

func TestScorer_NoRequiredSkillsIsFullCredit(t *testing.T) {
	scorer := newTestScorer(t)

	opp := opportunity(1, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{}
		o.CreatedAt = testNow.AddDate(0, 0, -60) // outside the recency window
	})

	noSkills := models.UserProfile{UserID: 2, Location: "Lagos, Nigeria"}
	result := scorer.Score(opp, noSkills, testNow)
	if result.Reasons.SkillsMatch != 100 {
		t.Errorf("skills reason = %d, want 100 when nothing is required", result.Reasons.SkillsMatch)
	}
}

func TestScorer_PartialSkillsOverlap(t *testing.T) {
	scorer := newTestScorer(t)
	profile := testProfile()

	opp := opportunity(1, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Python", "Django", "Kubernetes", "Terraform"}
	})

	result := scorer.Score(opp, profile, testNow)
	if result.Reasons.SkillsMatch != 50 {
		t.Errorf("skills reason = %d, want 50 for 2 of 4 required skills", result.Reasons.SkillsMatch)
	}
}

func TestScorer_FeaturedAndRecencyBoosts(t *testing.T) {
	scorer := newTestScorer(t)
	profile := testProfile()

	// Required skill the user lacks keeps the composite under the cap so the
	// boosts are observable.
	stale := opportunity(1, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Rust"}
		o.CreatedAt = testNow.AddDate(0, 0, -60)
	})
	fresh := opportunity(2, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Rust"}
		o.CreatedAt = testNow
	})
	featured := opportunity(3, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Rust"}
		o.CreatedAt = testNow.AddDate(0, 0, -60)
		o.IsFeatured = true
	})

	staleScore := scorer.Score(stale, profile, testNow).Score
	freshScore := scorer.Score(fresh, profile, testNow).Score
	featuredScore := scorer.Score(featured, profile, testNow).Score

	if freshScore <= staleScore {
		t.Errorf("fresh (%d) should outrank stale (%d)", freshScore, staleScore)
	}
	if featuredScore <= staleScore {
		t.Errorf("featured (%d) should outrank unfeatured (%d)", featuredScore, staleScore)
	}
}

func TestScorer_ScoreBounds(t *testing.T) {
	scorer := newTestScorer(t)
	profile := testProfile()

	opps := []models.Opportunity{
		opportunity(1, func(o *models.Opportunity) {
			o.SkillsRequired = models.StringList{"Python", "Django"}
			o.IsFeatured = true
			o.CreatedAt = testNow
		}),
		opportunity(2, func(o *models.Opportunity) {
			o.SkillsRequired = models.StringList{"Medicine"}
			o.Location = "Mars"
			o.CategorySlug = "other"
			o.Type = models.TypeGrant
			o.Eligibility = models.EligibilityCriteria{EducationLevel: "unknown_level"}
		}),
	}
	for _, opp := range opps {
		score := scorer.Score(opp, profile, testNow).Score
		if score < 0 || score > 100 {
			t.Errorf("score %d out of [0,100] for opportunity %d", score, opp.ID)
		}
	}
}

func TestScorer_FinalScoreIsFloored(t *testing.T) {
	scorer := newTestScorer(t)
	profile := testProfile()

	// Skills 0, location baseline 0.2, eligible, preferences 1.0 and no
	// boost: composite = 0.2*0.2 + 0.25 + 0.15 = 0.44.
	opp := opportunity(1, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Rust"}
		o.Location = "Tokyo, Japan"
		o.CreatedAt = testNow.AddDate(0, 0, -60)
	})

	result := scorer.Score(opp, profile, testNow)
	if result.Score != 44 {
		t.Errorf("score = %d, want 44", result.Score)
	}
}

func TestScorer_PreferenceComponent(t *testing.T) {
	scorer := newTestScorer(t)
	profile := testProfile()

	cases := []struct {
		name     string
		mutate   func(*models.Opportunity)
		wantPref int
	}{
		{"both match", nil, 100},
		{"type only", func(o *models.Opportunity) { o.CategorySlug = "healthcare" }, 50},
		{"category only", func(o *models.Opportunity) { o.Type = models.TypeGrant }, 50},
		{"neither", func(o *models.Opportunity) {
			o.Type = models.TypeGrant
			o.CategorySlug = "healthcare"
		}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opp := opportunity(1, c.mutate)
			result := scorer.Score(opp, profile, testNow)
			if result.Reasons.PreferenceMatch != c.wantPref {
				t.Errorf("preference reason = %d, want %d", result.Reasons.PreferenceMatch, c.wantPref)
			}
		})
	}
}

func TestScorer_DeterministicForFixedInputs(t *testing.T) {
	scorer := newTestScorer(t)
	profile := testProfile()
	opp := opportunity(1, func(o *models.Opportunity) {
		o.SkillsRequired = models.StringList{"Python", "Django"}
	})

	now := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)
	first := scorer.Score(opp, profile, now)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(opp, profile, now); !reflect.DeepEqual(got, first) {
			t.Fatalf("score changed between invocations: %+v vs %+v", got, first)
		}
	}
}
