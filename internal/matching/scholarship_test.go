package matching_test

import (
	"testing"
	"time"

	"opportunity-recommender/internal/matching"
	"opportunity-recommender/internal/models"
)

var scholarshipToday = time.Date(2026, time.March, 11, 15, 0, 0, 0, time.UTC)

func scholarshipProfile() models.ScholarshipProfile {
	return models.ScholarshipProfile{
		UserID:          1,
		GPA:             3.5,
		Location:        "Nigeria",
		Course:          "Computer Science",
		DegreeLevel:     "bachelors",
		Nationality:     "Nigerian",
		FinancialNeed:   5000,
		EligibilityTags: models.StringList{"women in tech", "first generation"},
	}
}

func TestScoreScholarship_PointRules(t *testing.T) {
	profile := scholarshipProfile()

	cases := []struct {
		name        string
		scholarship models.Scholarship
		want        int
	}{
		// ── GPA: within 0.3 of the requirement earns 2 points ──
		{"gpa exact", models.Scholarship{GPA: "3.5"}, 2},
		{"gpa within tolerance", models.Scholarship{GPA: "Minimum GPA of 3.2 required"}, 2},
		{"gpa outside tolerance", models.Scholarship{GPA: "4.0"}, 0},
		{"gpa unparseable", models.Scholarship{GPA: "competitive"}, 0},

		// ── location/course substring matches ──
		{"location substring", models.Scholarship{Location: "Lagos, Nigeria"}, 1},
		{"location mismatch", models.Scholarship{Location: "United Kingdom"}, 0},
		{"course substring", models.Scholarship{Course: "BSc Computer Science and Engineering"}, 2},
		{"course case-insensitive", models.Scholarship{Course: "COMPUTER SCIENCE"}, 2},

		// ── degree and nationality equality ──
		{"degree equal", models.Scholarship{DegreeLevel: "Bachelors"}, 1},
		{"degree different", models.Scholarship{DegreeLevel: "masters"}, 0},
		{"nationality equal", models.Scholarship{Nationality: "nigerian"}, 1},
		{"nationality different", models.Scholarship{Nationality: "Kenyan"}, 0},

		// ── amount covers financial need ──
		{"amount covers need", models.Scholarship{Amount: "$10,000 per year"}, 2},
		{"amount below need", models.Scholarship{Amount: "$1,500"}, 0},
		{"amount unparseable", models.Scholarship{Amount: "full tuition"}, 0},

		// ── deadline urgency ──
		{"deadline within 30d", models.Scholarship{Deadline: "2026-04-01"}, 2},
		{"deadline within 60d", models.Scholarship{Deadline: "2026-05-01"}, 1},
		{"deadline far out", models.Scholarship{Deadline: "2026-09-01"}, 0},
		{"deadline passed", models.Scholarship{Deadline: "2026-02-01"}, 0},
		{"deadline unparseable", models.Scholarship{Deadline: "rolling"}, 0},

		// ── eligibility tags found in the overview ──
		{"one tag in overview", models.Scholarship{Overview: "Open to women in tech across Africa."}, 1},
		{"both tags in overview", models.Scholarship{Overview: "For first generation students and women in tech."}, 2},
		{"no tags in overview", models.Scholarship{Overview: "Merit-based award."}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := matching.ScoreScholarship(profile, c.scholarship, scholarshipToday)
			if got != c.want {
				t.Errorf("points = %d, want %d", got, c.want)
			}
		})
	}
}

func TestScoreScholarship_PointsAccumulate(t *testing.T) {
	profile := scholarshipProfile()
	s := models.Scholarship{
		ID:          1,
		Location:    "Nigeria",
		Course:      "Computer Science",
		DegreeLevel: "bachelors",
		Nationality: "Nigerian",
		GPA:         "3.5",
		Amount:      "$8,000",
		Deadline:    "2026-04-01",
		Overview:    "Supports women in tech and first generation students.",
	}

	// 2 gpa + 1 location + 2 course + 1 degree + 1 nationality + 2 amount +
	// 2 deadline + 2 tags.
	if got := matching.ScoreScholarship(profile, s, scholarshipToday); got != 13 {
		t.Errorf("points = %d, want 13", got)
	}
}

func TestScoreScholarship_EmptyProfileFieldsEarnNothing(t *testing.T) {
	s := models.Scholarship{
		Location: "Nigeria",
		Course:   "Computer Science",
		Overview: "Open to everyone.",
	}
	got := matching.ScoreScholarship(models.ScholarshipProfile{}, s, scholarshipToday)
	if got != 0 {
		t.Errorf("points = %d, want 0 for an empty profile", got)
	}
}

func TestRankScholarships_OrderAndTieBreak(t *testing.T) {
	profile := scholarshipProfile()
	scholarships := []models.Scholarship{
		{ID: 3, Course: "Computer Science"},
		{ID: 1, Location: "Nigeria"},
		{ID: 4},
		{ID: 2, Location: "Nigeria"},
	}

	ranked := matching.RankScholarships(profile, scholarships, scholarshipToday)
	if len(ranked) != 4 {
		t.Fatalf("ranked %d scholarships, want 4", len(ranked))
	}

	wantIDs := []int64{3, 1, 2, 4}
	wantPoints := []int{2, 1, 1, 0}
	for i := range ranked {
		if ranked[i].Scholarship.ID != wantIDs[i] || ranked[i].Points != wantPoints[i] {
			t.Errorf("ranked[%d] = id %d points %d, want id %d points %d",
				i, ranked[i].Scholarship.ID, ranked[i].Points, wantIDs[i], wantPoints[i])
		}
	}
}

func TestParseFirstFloat(t *testing.T) {
	cases := []struct {
		text string
		want float64
		ok   bool
	}{
		{"3.5", 3.5, true},
		{"Minimum GPA of 3.0", 3.0, true},
		{"$5,000 per year", 5000, true},
		{"up to 10,000.50 USD", 10000.50, true},
		{"full tuition", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := matching.ParseFirstFloat(c.text)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseFirstFloat(%q) = %v, %v; want %v, %v", c.text, got, ok, c.want, c.ok)
		}
	}
}

func TestParseLenientDate(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
		ok   bool
	}{
		{"2026-04-01", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), true},
		{"  2026-04-01  ", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), true},
		{"25/12/2026", time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC), true},
		{"04/01/2026", time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC), true},
		{"rolling", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := matching.ParseLenientDate(c.text)
		if !got.Equal(c.want) || ok != c.ok {
			t.Errorf("ParseLenientDate(%q) = %v, %v; want %v, %v", c.text, got, ok, c.want, c.ok)
		}
	}
}
