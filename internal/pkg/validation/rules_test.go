package validation

import (
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gradeForm struct {
	Email    string   `validate:"required,portalmail"`
	SSC      *float64 `validate:"omitempty,gpa"`
	HSC      float64  `validate:"gpa"`
	Decision string   `validate:"omitempty,decision"`
	Type     string   `validate:"omitempty,unitype"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestIsValidGPA(t *testing.T) {
	assert.True(t, IsValidGPA(0))
	assert.True(t, IsValidGPA(5.0))
	assert.True(t, IsValidGPA(4.83))
	assert.False(t, IsValidGPA(-0.01))
	assert.False(t, IsValidGPA(5.01))
	assert.False(t, IsValidGPA(math.NaN()))
}

func TestRegisteredRules(t *testing.T) {
	v := newValidator(t)
	high := 5.0

	tests := []struct {
		name    string
		form    gradeForm
		wantErr bool
	}{
		{"valid", gradeForm{Email: "rahim@example.com", SSC: &high, HSC: 4.5, Decision: "approved", Type: "Public"}, false},
		{"missing optional grade", gradeForm{Email: "rahim@example.com", HSC: 3}, false},
		{"bad email", gradeForm{Email: "rahim@", HSC: 3}, true},
		{"grade out of range", gradeForm{Email: "rahim@example.com", HSC: 6}, true},
		{"pending is not a decision", gradeForm{Email: "rahim@example.com", HSC: 3, Decision: "pending"}, true},
		{"lowercase type", gradeForm{Email: "rahim@example.com", HSC: 3, Type: "public"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRulesIsIdempotent(t *testing.T) {
	require.NoError(t, RegisterRules())
	require.NoError(t, RegisterRules())
}
