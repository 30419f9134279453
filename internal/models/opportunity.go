package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Opportunity struct {
	ID               int64               `db:"id" json:"id"`
	Title            string              `db:"title" json:"title"`
	Type             string              `db:"type" json:"type"`
	Organization     string              `db:"organization" json:"organization"`
	CategorySlug     string              `db:"category_slug" json:"category_slug"`
	Tags             StringList          `db:"tags" json:"tags"`
	Location         string              `db:"location" json:"location"`
	IsRemote         bool                `db:"is_remote" json:"is_remote"`
	ExperienceLevel  string              `db:"experience_level" json:"experience_level"`
	SkillsRequired   StringList          `db:"skills_required" json:"skills_required"`
	Eligibility      EligibilityCriteria `db:"eligibility_criteria" json:"eligibility_criteria"`
	Deadline         time.Time           `db:"deadline" json:"deadline"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
	IsFeatured       bool                `db:"is_featured" json:"is_featured"`
	IsActive         bool                `db:"is_active" json:"is_active"`
	ViewCount        int                 `db:"view_count" json:"view_count"`
	ApplicationCount int                 `db:"application_count" json:"application_count"`
}

// EligibilityCriteria holds the structured constraints an opportunity imposes
// on applicants. All fields are optional; a zero value means "no constraints".
type EligibilityCriteria struct {
	EducationLevel string   `json:"education_level,omitempty"`
	MinAge         *int     `json:"min_age,omitempty"`
	MaxAge         *int     `json:"max_age,omitempty"`
	Nationalities  []string `json:"nationalities,omitempty"`
}

func (c EligibilityCriteria) IsZero() bool {
	return c.EducationLevel == "" && c.MinAge == nil && c.MaxAge == nil && len(c.Nationalities) == 0
}

func (c EligibilityCriteria) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *EligibilityCriteria) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// StringList maps a JSONB array column to a Go string slice.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", value)
	}

	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
