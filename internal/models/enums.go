package models

// Opportunity types.
const (
	TypeJob         = "job"
	TypeScholarship = "scholarship"
	TypeGrant       = "grant"
	TypeInternship  = "internship"
	TypeFellowship  = "fellowship"
)

// Experience levels.
const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceExecutive = "executive"
)

// Education levels, lowest to highest.
const (
	EducationHighSchool = "high_school"
	EducationBachelors  = "bachelors"
	EducationMasters    = "masters"
	EducationPhD        = "phd"
)

var typeDisplayNames = map[string]string{
	TypeJob:         "Job",
	TypeScholarship: "Scholarship",
	TypeGrant:       "Grant",
	TypeInternship:  "Internship",
	TypeFellowship:  "Fellowship",
}

// educationRank defines the total order used for eligibility comparison.
var educationRank = map[string]int{
	EducationHighSchool: 0,
	EducationBachelors:  1,
	EducationMasters:    2,
	EducationPhD:        3,
}

func OpportunityTypes() []string {
	return []string{TypeJob, TypeScholarship, TypeGrant, TypeInternship, TypeFellowship}
}

func IsValidType(t string) bool {
	_, ok := typeDisplayNames[t]
	return ok
}

func TypeDisplayName(t string) string {
	if name, ok := typeDisplayNames[t]; ok {
		return name
	}
	return t
}

// EducationRank returns the ordinal rank of an education level. The second
// return value is false for unrecognized levels.
func EducationRank(level string) (int, bool) {
	rank, ok := educationRank[level]
	return rank, ok
}

func IsValidEducationLevel(level string) bool {
	_, ok := educationRank[level]
	return ok
}

func IsValidExperienceLevel(level string) bool {
	switch level {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}
