package dto

import "github.com/edupath/admissions/internal/app/models"

// UpdateProfileRequest carries the editable profile fields
type UpdateProfileRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	SSCGPA    *float64 `json:"ssc_gpa" binding:"omitempty,gpa"`
	HSCGPA    *float64 `json:"hsc_gpa" binding:"omitempty,gpa"`
	GroupName *string  `json:"group_name" binding:"omitempty,max=50"`
}

// AdminUserResponse is a user as listed on the admin dashboard
type AdminUserResponse struct {
	*models.User
	Online bool `json:"online"`
}
