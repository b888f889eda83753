package models

import "time"

// UniversityApplication is a student's application to a university.
type UniversityApplication struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	UniversityID   int64     `json:"university_id" db:"university_id"`
	Status         Status    `json:"status" db:"status"`
	AppliedAt      time.Time `json:"applied_at" db:"applied_at"`
	UniversityName *string   `json:"university_name,omitempty" db:"-"`
	StudentName    *string   `json:"student_name,omitempty" db:"-"`
	StudentEmail   *string   `json:"student_email,omitempty" db:"-"`
}

// ScholarshipApplication is a student's application to a scholarship.
type ScholarshipApplication struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	ScholarshipID   int64     `json:"scholarship_id" db:"scholarship_id"`
	Status          Status    `json:"status" db:"status"`
	AppliedAt       time.Time `json:"applied_at" db:"applied_at"`
	ScholarshipName *string   `json:"scholarship_name,omitempty" db:"-"`
	UniversityName  *string   `json:"university_name,omitempty" db:"-"`
	StudentName     *string   `json:"student_name,omitempty" db:"-"`
	StudentEmail    *string   `json:"student_email,omitempty" db:"-"`
}
