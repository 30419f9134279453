package matching

import (
	"fmt"
	"math"
	"strings"
	"time"

	"opportunity-recommender/internal/models"
)

const (
	featuredBoost      = 1.1
	recencyBoostWeight = 0.1
	recencyWindowDays  = 30
	locationBaseline   = 0.2
	weightSumTolerance = 1e-9
)

// Weights configures the composite opportunity score. The four components
// must sum to exactly 1.0 so scores stay comparable across configurations.
type Weights struct {
	Skills      float64
	Location    float64
	Education   float64
	Preferences float64
}

// DefaultWeights mirrors the published matching weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:      0.40,
		Location:    0.20,
		Education:   0.25,
		Preferences: 0.15,
	}
}

func (w Weights) Validate() error {
	sum := w.Skills + w.Location + w.Education + w.Preferences
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("matching weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// ScoredResult pairs an opportunity with its personalized score and a
// human-readable breakdown. Results are constructed per scoring pass and
// never mutated afterwards.
type ScoredResult struct {
	Opportunity models.Opportunity `json:"opportunity"`
	Score       int                `json:"score"`
	Reasons     Reasons            `json:"reasons"`
}

// Reasons reports each sub-component for display. Percentages are rounded,
// so they cannot re-derive the composite score exactly.
type Reasons struct {
	SkillsMatch     int    `json:"skills_match"`
	LocationMatch   int    `json:"location_match"`
	Eligibility     string `json:"eligibility"`
	PreferenceMatch int    `json:"preference_match"`
}

// Scorer computes weighted composite scores for opportunities against a
// user profile.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// Score computes the 0–100 composite score for a single opportunity.
// now anchors the recency boost and must match the evaluation time used
// for filtering.
func (s *Scorer) Score(opp models.Opportunity, profile models.UserProfile, now time.Time) ScoredResult {
	skillsScore := skillsComponent(profile.Skills, opp.SkillsRequired)
	locationScore := locationComponent(opp, profile.Location)
	eligible := IsEligible(opp.Eligibility, profile.Education)
	educationScore := 0.0
	if eligible {
		educationScore = 1.0
	}
	preferenceScore := preferenceComponent(profile.Prefs, opp)

	total := s.weights.Skills*skillsScore +
		s.weights.Location*locationScore +
		s.weights.Education*educationScore +
		s.weights.Preferences*preferenceScore

	if opp.IsFeatured {
		total *= featuredBoost
	}

	daysOld := now.Sub(opp.CreatedAt).Hours() / 24
	recency := math.Max(0, 1-daysOld/recencyWindowDays)
	total *= 1 + recency*recencyBoostWeight

	// Floor, never round up: the score must not overstate confidence.
	final := int(math.Min(100, math.Floor(total*100)))

	eligibility := "Not eligible"
	if eligible {
		eligibility = "Eligible"
	}

	return ScoredResult{
		Opportunity: opp,
		Score:       final,
		Reasons: Reasons{
			SkillsMatch:     int(math.Round(skillsScore * 100)),
			LocationMatch:   int(math.Round(locationScore * 100)),
			Eligibility:     eligibility,
			PreferenceMatch: int(math.Round(preferenceScore * 100)),
		},
	}
}

// skillsComponent is the fraction of required skills the user has. No
// required skills means a full match; absence of a requirement is not a
// penalty.
func skillsComponent(userSkills, required []string) float64 {
	if len(required) == 0 {
		return 1.0
	}

	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[s] = struct{}{}
	}

	matched := 0
	seen := make(map[string]struct{}, len(required))
	for _, s := range required {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := have[s]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(seen))
}

func locationComponent(opp models.Opportunity, userLocation string) float64 {
	if opp.IsRemote {
		return 1.0
	}
	if opp.Location != "" && strings.Contains(strings.ToLower(userLocation), strings.ToLower(opp.Location)) {
		return 1.0
	}
	// A small baseline credit instead of zero: a mismatched location should
	// dampen, not bury, an otherwise strong match.
	return locationBaseline
}

func preferenceComponent(prefs models.Preferences, opp models.Opportunity) float64 {
	score := 0.0
	if prefs.PreferredType != "" && prefs.PreferredType == opp.Type {
		score += 0.5
	}
	if prefs.PreferredCategory != "" && prefs.PreferredCategory == opp.CategorySlug {
		score += 0.5
	}
	return score
}
