package matching_test

import (
	"testing"

	"opportunity-recommender/internal/matching"
	"opportunity-recommender/internal/models"
)

func intPtr(v int) *int { return &v }

func TestIsEligible_NoCriteria(t *testing.T) {
	profiles := []models.Education{
		{},
		{HighestLevel: models.EducationHighSchool},
		{HighestLevel: models.EducationPhD, Age: intPtr(99), Nationality: "Nigerian"},
	}
	for _, edu := range profiles {
		if !matching.IsEligible(models.EligibilityCriteria{}, edu) {
			t.Errorf("IsEligible(empty criteria, %+v) should be true", edu)
		}
	}
}

func TestIsEligible_EducationOrdinal(t *testing.T) {
	cases := []struct {
		required string
		user     string
		want     bool
	}{
		{models.EducationBachelors, models.EducationBachelors, true},
		{models.EducationBachelors, models.EducationMasters, true},
		{models.EducationBachelors, models.EducationPhD, true},
		{models.EducationMasters, models.EducationBachelors, false},
		{models.EducationPhD, models.EducationMasters, false},
		{models.EducationHighSchool, models.EducationHighSchool, true},
	}
	for _, c := range cases {
		criteria := models.EligibilityCriteria{EducationLevel: c.required}
		edu := models.Education{HighestLevel: c.user}
		if got := matching.IsEligible(criteria, edu); got != c.want {
			t.Errorf("IsEligible(required=%s, user=%s) = %v, want %v", c.required, c.user, got, c.want)
		}
	}
}

func TestIsEligible_UnrecognizedLevelFailsClosed(t *testing.T) {
	criteria := models.EligibilityCriteria{EducationLevel: "bootcamp"}
	edu := models.Education{HighestLevel: models.EducationPhD}
	if matching.IsEligible(criteria, edu) {
		t.Error("unrecognized required level should be ineligible")
	}

	criteria = models.EligibilityCriteria{EducationLevel: models.EducationBachelors}
	edu = models.Education{HighestLevel: "diploma"}
	if matching.IsEligible(criteria, edu) {
		t.Error("unrecognized user level should be ineligible")
	}
}

func TestIsEligible_MissingUserLevelSkipsCheck(t *testing.T) {
	criteria := models.EligibilityCriteria{EducationLevel: models.EducationPhD}
	if !matching.IsEligible(criteria, models.Education{}) {
		t.Error("absent user education level should skip the education check")
	}
}

func TestIsEligible_AgeBounds(t *testing.T) {
	cases := []struct {
		name     string
		criteria models.EligibilityCriteria
		age      *int
		want     bool
	}{
		{"within bounds", models.EligibilityCriteria{MinAge: intPtr(18), MaxAge: intPtr(40)}, intPtr(25), true},
		{"below min", models.EligibilityCriteria{MinAge: intPtr(30)}, intPtr(25), false},
		{"above max", models.EligibilityCriteria{MaxAge: intPtr(40)}, intPtr(45), false},
		{"at min", models.EligibilityCriteria{MinAge: intPtr(25)}, intPtr(25), true},
		{"at max", models.EligibilityCriteria{MaxAge: intPtr(25)}, intPtr(25), true},
		{"no user age skips check", models.EligibilityCriteria{MinAge: intPtr(30), MaxAge: intPtr(60)}, nil, true},
		{"unbounded below", models.EligibilityCriteria{MaxAge: intPtr(60)}, intPtr(12), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			edu := models.Education{Age: c.age}
			if got := matching.IsEligible(c.criteria, edu); got != c.want {
				t.Errorf("IsEligible = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIsEligible_Nationality(t *testing.T) {
	criteria := models.EligibilityCriteria{Nationalities: []string{"Nigerian", "Ghanaian"}}

	if !matching.IsEligible(criteria, models.Education{Nationality: "Nigerian"}) {
		t.Error("listed nationality should be eligible")
	}
	if matching.IsEligible(criteria, models.Education{Nationality: "Kenyan"}) {
		t.Error("unlisted nationality should be ineligible")
	}
	if matching.IsEligible(criteria, models.Education{}) {
		t.Error("absent user nationality cannot satisfy an allow-list")
	}
}

func TestIsEligible_AllChecksAndCombined(t *testing.T) {
	criteria := models.EligibilityCriteria{
		EducationLevel: models.EducationBachelors,
		MinAge:         intPtr(18),
		MaxAge:         intPtr(40),
		Nationalities:  []string{"Nigerian", "Ghanaian"},
	}

	good := models.Education{HighestLevel: models.EducationBachelors, Age: intPtr(25), Nationality: "Nigerian"}
	if !matching.IsEligible(criteria, good) {
		t.Error("profile satisfying every check should be eligible")
	}

	tooOld := good
	tooOld.Age = intPtr(41)
	if matching.IsEligible(criteria, tooOld) {
		t.Error("one failing check should make the whole evaluation ineligible")
	}
}
