package models

import "time"

// Scholarship is an award offered through a university. UniversityID is a weak
// reference; the university may have been deleted since.
type Scholarship struct {
	ID             int64      `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	UniversityID   int64      `json:"university_id" db:"university_id"`
	UniversityName *string    `json:"university_name" db:"-"`
	Amount         string     `json:"amount" db:"amount"`
	Deadline       *time.Time `json:"deadline" db:"deadline"`
	Description    string     `json:"description" db:"description"`
}
