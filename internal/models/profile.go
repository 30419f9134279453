package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type UserProfile struct {
	UserID    int64       `db:"user_id" json:"user_id"`
	Skills    StringList  `db:"skills" json:"skills"`
	Education Education   `db:"education" json:"education"`
	Prefs     Preferences `db:"preferences" json:"preferences"`
	Location  string      `db:"location" json:"location"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// Education is the profile's education block. Age and nationality live here
// because eligibility checks consume them together with the degree level.
type Education struct {
	HighestLevel string `json:"highest_level,omitempty"`
	Age          *int   `json:"age,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

type Preferences struct {
	PreferredType     string `json:"preferred_type,omitempty"`
	PreferredCategory string `json:"preferred_category,omitempty"`
}

func (e Education) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *Education) Scan(value interface{}) error {
	return scanJSON(value, e)
}

func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Preferences) Scan(value interface{}) error {
	return scanJSON(value, p)
}
