package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/edupath/admissions/internal/app/models"
)

// DateLayout is the wire format of scholarship deadlines
const DateLayout = "2006-01-02"

// UniversityRequest creates or replaces a university
type UniversityRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Type        string  `json:"type" binding:"required,unitype"`
	Location    string  `json:"location" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=2000"`
	MinSSCGPA   float64 `json:"min_ssc_gpa" binding:"gpa"`
	MinHSCGPA   float64 `json:"min_hsc_gpa" binding:"gpa"`
	Website     *string `json:"website" binding:"omitempty,url"`
}

// ToModel converts the request into a university
func (r *UniversityRequest) ToModel() *models.University {
	return &models.University{
		Name:        strings.TrimSpace(r.Name),
		Type:        models.UniversityType(r.Type),
		Location:    strings.TrimSpace(r.Location),
		Description: r.Description,
		MinSSCGPA:   r.MinSSCGPA,
		MinHSCGPA:   r.MinHSCGPA,
		Website:     r.Website,
	}
}

// ScholarshipRequest creates or replaces a scholarship
type ScholarshipRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	UniversityID int64  `json:"university_id" binding:"required,min=1"`
	Amount       string `json:"amount" binding:"required,max=100"`
	Deadline     string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Description  string `json:"description" binding:"max=2000"`
}

// ToModel converts the request into a scholarship
func (r *ScholarshipRequest) ToModel() (*models.Scholarship, error) {
	scholarship := &models.Scholarship{
		Name:         strings.TrimSpace(r.Name),
		UniversityID: r.UniversityID,
		Amount:       r.Amount,
		Description:  r.Description,
	}

	if r.Deadline != "" {
		deadline, err := time.Parse(DateLayout, r.Deadline)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline: %w", err)
		}
		scholarship.Deadline = &deadline
	}

	return scholarship, nil
}
