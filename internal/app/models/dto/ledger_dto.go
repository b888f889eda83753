package dto

import "github.com/edupath/admissions/internal/app/models"

// CreateApplicationRequest applies a student to a university. UserID defaults
// to the caller.
type CreateApplicationRequest struct {
	UserID       int64 `json:"user_id" binding:"omitempty,min=1"`
	UniversityID int64 `json:"university_id" binding:"required,min=1"`
}

// CreateScholarshipApplicationRequest applies a student to a scholarship
type CreateScholarshipApplicationRequest struct {
	UserID        int64 `json:"user_id" binding:"omitempty,min=1"`
	ScholarshipID int64 `json:"scholarship_id" binding:"required,min=1"`
}

// CreateDocumentRequest records metadata about a submitted document
type CreateDocumentRequest struct {
	UserID int64  `json:"user_id" binding:"omitempty,min=1"`
	Name   string `json:"name" binding:"required,max=200"`
	Type   string `json:"type" binding:"required,max=50"`
}

// StatusUpdateRequest is an admin decision
type StatusUpdateRequest struct {
	Status models.Status `json:"status" binding:"required,decision"`
}

// ApplicationsResponse groups a user's or everyone's applications
type ApplicationsResponse struct {
	UniversityApps  []*models.UniversityApplication  `json:"universityApps"`
	ScholarshipApps []*models.ScholarshipApplication `json:"scholarshipApps"`
}

// StatusChangeResponse reports a decision and what happened to its notification
type StatusChangeResponse struct {
	ID           int64                `json:"id"`
	Status       models.Status        `json:"status"`
	Notification *models.Notification `json:"notification,omitempty"`
	Delivery     string               `json:"delivery,omitempty"`
}
