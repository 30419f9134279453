package matching

import (
	"strconv"
	"strings"
	"time"

	"opportunity-recommender/internal/models"
)

// FilterSpec narrows the candidate set before scoring. The zero value applies
// no narrowing beyond the default exclusion of expired opportunities.
type FilterSpec struct {
	Type           string     `json:"type,omitempty"`
	Location       string     `json:"location,omitempty"`
	Category       string     `json:"category,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	DeadlineAfter  *time.Time `json:"deadline_after,omitempty"`
	DeadlineBefore *time.Time `json:"deadline_before,omitempty"`
	EducationLevel string     `json:"education_level,omitempty"`
	PostedWithin   string     `json:"posted_within,omitempty"`
	ShowExpired    bool       `json:"show_expired,omitempty"`
}

func (f *FilterSpec) IsZero() bool {
	if f == nil {
		return true
	}
	return f.Type == "" && f.Location == "" && f.Category == "" &&
		len(f.Tags) == 0 && len(f.Skills) == 0 &&
		f.DeadlineAfter == nil && f.DeadlineBefore == nil &&
		f.EducationLevel == "" && f.PostedWithin == "" && !f.ShowExpired
}

// ApplyFilters returns the candidates surviving every filter in the spec.
// Filters are conjunctive and order-independent. A nil spec still drops
// expired opportunities.
func ApplyFilters(candidates []models.Opportunity, spec *FilterSpec, now time.Time) []models.Opportunity {
	if spec == nil {
		spec = &FilterSpec{}
	}

	postedSince, hasPostedSince := postedWithinSince(spec.PostedWithin, now)
	today := midnight(now)

	out := make([]models.Opportunity, 0, len(candidates))
	for _, opp := range candidates {
		if !spec.ShowExpired && opp.Deadline.Before(today) {
			continue
		}
		if spec.Type != "" && opp.Type != spec.Type {
			continue
		}
		// Remote opportunities always pass the location filter.
		if spec.Location != "" && !opp.IsRemote &&
			!strings.Contains(strings.ToLower(opp.Location), strings.ToLower(spec.Location)) {
			continue
		}
		if spec.Category != "" && opp.CategorySlug != spec.Category {
			continue
		}
		if !containsAll(opp.Tags, spec.Tags) {
			continue
		}
		if !containsAll(opp.SkillsRequired, spec.Skills) {
			continue
		}
		if spec.DeadlineAfter != nil && opp.Deadline.Before(*spec.DeadlineAfter) {
			continue
		}
		if spec.DeadlineBefore != nil && opp.Deadline.After(*spec.DeadlineBefore) {
			continue
		}
		// Strict equality on the stated requirement: an opportunity with no
		// stated education level never matches this filter.
		if spec.EducationLevel != "" && opp.Eligibility.EducationLevel != spec.EducationLevel {
			continue
		}
		if hasPostedSince && opp.CreatedAt.Before(postedSince) {
			continue
		}

		out = append(out, opp)
	}

	return out
}

// postedWithinSince resolves the symbolic posted_within window to a lower
// bound on created_at. Unparseable "<N>h" values yield no bound at all;
// malformed filters degrade to partial results instead of failing the request.
func postedWithinSince(window string, now time.Time) (time.Time, bool) {
	switch window {
	case "":
		return time.Time{}, false
	case "today":
		return midnight(now), true
	case "this_week":
		// Back to the most recent Monday at midnight.
		days := (int(now.Weekday()) + 6) % 7
		return midnight(now).AddDate(0, 0, -days), true
	case "this_month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	}

	if strings.HasSuffix(window, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(window, "h"))
		if err != nil {
			return time.Time{}, false
		}
		return now.Add(-time.Duration(hours) * time.Hour), true
	}

	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func containsAll(have []string, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
