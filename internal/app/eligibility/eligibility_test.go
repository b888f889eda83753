package eligibility

import (
	"math"
	"math/rand"
	"testing"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gpa(v float64) *float64 { return &v }

func TestIsEligible_Boundaries(t *testing.T) {
	du := Requirements{MinSSC: 4.5, MinHSC: 4.5}

	tests := []struct {
		name   string
		grades Grades
		want   bool
	}{
		{name: "exactly at minimum", grades: Grades{SSC: gpa(4.5), HSC: gpa(4.5)}, want: true},
		{name: "ssc just below", grades: Grades{SSC: gpa(4.49), HSC: gpa(4.5)}, want: false},
		{name: "hsc just below", grades: Grades{SSC: gpa(5.0), HSC: gpa(4.49)}, want: false},
		{name: "both above", grades: Grades{SSC: gpa(5.0), HSC: gpa(5.0)}, want: true},
		{name: "missing ssc", grades: Grades{HSC: gpa(5.0)}, want: false},
		{name: "missing hsc", grades: Grades{SSC: gpa(5.0)}, want: false},
		{name: "both missing", grades: Grades{}, want: false},
		{name: "nan grade", grades: Grades{SSC: gpa(math.NaN()), HSC: gpa(5.0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligible(tt.grades, du))
		})
	}
}

func TestIsEligible_MatchesComparison(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		ssc, hsc := r.Float64()*5, r.Float64()*5
		minSSC, minHSC := r.Float64()*5, r.Float64()*5

		got := IsEligible(Grades{SSC: &ssc, HSC: &hsc}, Requirements{MinSSC: minSSC, MinHSC: minHSC})
		assert.Equal(t, ssc >= minSSC && hsc >= minHSC, got)

		assert.False(t, IsEligible(Grades{SSC: &ssc}, Requirements{MinSSC: minSSC, MinHSC: minHSC}))
	}
}

func TestFilterAndEvaluate(t *testing.T) {
	buet := &models.University{ID: 2, Name: "BUET", MinSSCGPA: 5.0, MinHSCGPA: 5.0}
	du := &models.University{ID: 1, Name: "University of Dhaka", MinSSCGPA: 4.5, MinHSCGPA: 4.5}
	diu := &models.University{ID: 17, Name: "Daffodil International University", MinSSCGPA: 2.5, MinHSCGPA: 2.5}
	all := []*models.University{du, buet, diu}

	student := &models.User{ID: 3, SSCGPA: gpa(4.5), HSCGPA: gpa(4.5)}

	eligible := Filter(student, all)
	require.Len(t, eligible, 2)
	assert.Equal(t, "University of Dhaka", eligible[0].Name)
	assert.Equal(t, "Daffodil International University", eligible[1].Name)

	badges := Evaluate(student, all)
	require.Len(t, badges, 3)
	assert.True(t, badges[0].Eligible)
	assert.False(t, badges[1].Eligible)
	assert.True(t, badges[2].Eligible)

	noGrades := &models.User{ID: 4}
	assert.Empty(t, Filter(noGrades, all))
	assert.False(t, ForUser(nil, du))
	assert.False(t, ForUser(student, nil))
}
