package matching

import "opportunity-recommender/internal/models"

// IsEligible decides whether a user satisfies an opportunity's eligibility
// criteria. Absent criteria are permissive: an opportunity that asks for
// nothing accepts everyone. All present checks must pass.
func IsEligible(criteria models.EligibilityCriteria, education models.Education) bool {
	if criteria.IsZero() {
		return true
	}

	if criteria.EducationLevel != "" && education.HighestLevel != "" {
		requiredRank, okRequired := models.EducationRank(criteria.EducationLevel)
		userRank, okUser := models.EducationRank(education.HighestLevel)
		// Unrecognized levels fail closed rather than granting eligibility
		// against a requirement we cannot compare.
		if !okRequired || !okUser {
			return false
		}
		if userRank < requiredRank {
			return false
		}
	}

	if education.Age != nil {
		if criteria.MinAge != nil && *education.Age < *criteria.MinAge {
			return false
		}
		if criteria.MaxAge != nil && *education.Age > *criteria.MaxAge {
			return false
		}
	}

	if len(criteria.Nationalities) > 0 {
		found := false
		for _, n := range criteria.Nationalities {
			if n == education.Nationality {
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
