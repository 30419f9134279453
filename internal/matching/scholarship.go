package matching

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"opportunity-recommender/internal/models"
)

// Scholarship matching is a deliberately simpler scheme than the weighted
// opportunity scorer: unbounded integer points, ranked relatively, no
// normalization and no cache. The two schemes serve different callers and
// must not be unified.

const (
	gpaTolerance       = 0.3
	urgentDeadlineDays = 30
	nearDeadlineDays   = 60
)

// ScoredScholarship pairs a scholarship with its accumulated points.
type ScoredScholarship struct {
	Scholarship models.Scholarship `json:"scholarship"`
	Points      int                `json:"points"`
}

// ScoreScholarship accumulates match points for a single scholarship.
// Scholarship rows carry scraped free text, so numeric and date fields are
// parsed leniently; unparseable values simply contribute no points.
func ScoreScholarship(profile models.ScholarshipProfile, s models.Scholarship, today time.Time) int {
	points := 0

	if gpa, ok := ParseFirstFloat(s.GPA); ok {
		diff := profile.GPA - gpa
		if diff < 0 {
			diff = -diff
		}
		if diff <= gpaTolerance {
			points += 2
		}
	}

	if profile.Location != "" && strings.Contains(strings.ToLower(s.Location), strings.ToLower(profile.Location)) {
		points++
	}

	if profile.Course != "" && strings.Contains(strings.ToLower(s.Course), strings.ToLower(profile.Course)) {
		points += 2
	}

	if s.DegreeLevel != "" && strings.EqualFold(profile.DegreeLevel, s.DegreeLevel) {
		points++
	}

	if s.Nationality != "" && strings.EqualFold(profile.Nationality, s.Nationality) {
		points++
	}

	if amount, ok := ParseFirstFloat(s.Amount); ok && profile.FinancialNeed <= amount {
		points += 2
	}

	if deadline, ok := ParseLenientDate(s.Deadline); ok {
		days := int(deadline.Sub(midnight(today)).Hours() / 24)
		switch {
		case days > 0 && days <= urgentDeadlineDays:
			points += 2
		case days > urgentDeadlineDays && days <= nearDeadlineDays:
			points++
		}
	}

	if s.Overview != "" {
		overview := strings.ToLower(s.Overview)
		for _, tag := range profile.EligibilityTags {
			if tag != "" && strings.Contains(overview, strings.ToLower(tag)) {
				points++
			}
		}
	}

	return points
}

// RankScholarships scores every scholarship and returns them ordered by
// points descending, ties broken by id ascending.
func RankScholarships(profile models.ScholarshipProfile, scholarships []models.Scholarship, today time.Time) []ScoredScholarship {
	ranked := make([]ScoredScholarship, 0, len(scholarships))
	for _, s := range scholarships {
		ranked = append(ranked, ScoredScholarship{
			Scholarship: s,
			Points:      ScoreScholarship(profile, s, today),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].Scholarship.ID < ranked[j].Scholarship.ID
	})

	return ranked
}

var firstNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseFirstFloat extracts the first number found in free text. Commas are
// stripped so "$5,000 per year" parses as 5000, not 5.
func ParseFirstFloat(text string) (float64, bool) {
	match := firstNumberRe.FindString(strings.ReplaceAll(text, ",", ""))
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var lenientDateLayouts = []string{"2006-01-02", "02/01/2006", "01/02/2006"}

// ParseLenientDate tries the date layouts seen in scraped scholarship rows.
func ParseLenientDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	for _, layout := range lenientDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
