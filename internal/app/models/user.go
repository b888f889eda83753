package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64      `json:"id" db:"id" example:"1"`
	Name       string     `json:"name" db:"name" example:"Rahim Uddin"`
	Email      string     `json:"email" db:"email" example:"rahim@example.com"`
	Password   string     `json:"-" db:"password"`
	Role       RoleType   `json:"role" db:"role" example:"student"`
	SSCGPA     *float64   `json:"ssc_gpa" db:"ssc_gpa" example:"5.0"`
	HSCGPA     *float64   `json:"hsc_gpa" db:"hsc_gpa" example:"4.83"`
	GroupName  *string    `json:"group_name" db:"group_name" example:"Science"`
	LastActive *time.Time `json:"last_active,omitempty" db:"last_active"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
