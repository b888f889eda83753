// Package eligibility decides whether a student's grades meet a university's
// minimum requirements.
package eligibility

import (
	"math"

	"github.com/edupath/admissions/internal/app/models"
)

// Grades is a student's SSC and HSC GPA. A nil field means the grade was never recorded.
type Grades struct {
	SSC *float64
	HSC *float64
}

// Requirements is a university's minimum SSC and HSC GPA.
type Requirements struct {
	MinSSC float64
	MinHSC float64
}

// Result pairs a university with the eligibility outcome for one student.
type Result struct {
	University *models.University `json:"university"`
	Eligible   bool               `json:"eligible"`
}

// IsEligible is true iff both grades are present and each meets its minimum.
// Missing or NaN grades never pass.
func IsEligible(g Grades, r Requirements) bool {
	if !present(g.SSC) || !present(g.HSC) {
		return false
	}
	if math.IsNaN(r.MinSSC) || math.IsNaN(r.MinHSC) {
		return false
	}
	return *g.SSC >= r.MinSSC && *g.HSC >= r.MinHSC
}

func present(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}

// GradesOf extracts the grade pair of a user.
func GradesOf(u *models.User) Grades {
	if u == nil {
		return Grades{}
	}
	return Grades{SSC: u.SSCGPA, HSC: u.HSCGPA}
}

// RequirementsOf extracts the minimum grade pair of a university.
func RequirementsOf(uni *models.University) Requirements {
	return Requirements{MinSSC: uni.MinSSCGPA, MinHSC: uni.MinHSCGPA}
}

// ForUser evaluates a (user, university) pair.
func ForUser(u *models.User, uni *models.University) bool {
	if u == nil || uni == nil {
		return false
	}
	return IsEligible(GradesOf(u), RequirementsOf(uni))
}

// Filter returns the universities u is eligible for, preserving order.
func Filter(u *models.User, universities []*models.University) []*models.University {
	eligible := make([]*models.University, 0, len(universities))
	for _, uni := range universities {
		if ForUser(u, uni) {
			eligible = append(eligible, uni)
		}
	}
	return eligible
}

// Evaluate returns one badge per university, preserving order.
func Evaluate(u *models.User, universities []*models.University) []Result {
	results := make([]Result, 0, len(universities))
	for _, uni := range universities {
		results = append(results, Result{University: uni, Eligible: ForUser(u, uni)})
	}
	return results
}
