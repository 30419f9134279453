package models

import "time"

// Scholarship is a listing imported from external providers. Most fields are
// free text as scraped; the matcher parses numbers and dates out of them
// leniently instead of rejecting dirty rows.
type Scholarship struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Provider    string    `db:"provider" json:"provider"`
	Location    string    `db:"location" json:"location"`
	Course      string    `db:"course" json:"course"`
	DegreeLevel string    `db:"degree_level" json:"degree_level"`
	Nationality string    `db:"nationality" json:"nationality"`
	GPA         string    `db:"gpa" json:"gpa"`
	Amount      string    `db:"amount" json:"amount"`
	Deadline    string    `db:"deadline" json:"deadline"`
	Overview    string    `db:"overview" json:"overview"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ScholarshipProfile struct {
	UserID          int64      `db:"user_id" json:"user_id"`
	GPA             float64    `db:"gpa" json:"gpa"`
	Location        string     `db:"location" json:"location"`
	Course          string     `db:"course" json:"course"`
	DegreeLevel     string     `db:"degree_level" json:"degree_level"`
	Nationality     string     `db:"nationality" json:"nationality"`
	FinancialNeed   float64    `db:"financial_need" json:"financial_need"`
	EligibilityTags StringList `db:"eligibility_tags" json:"eligibility_tags"`
}
