package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// GPA bounds on the national 5.0 scale
	MinGPA = 0.0
	MaxGPA = 5.0
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

var registerOnce sync.Once

// RegisterRules installs the custom tags on gin's default validator.
// It is safe to call more than once.
func RegisterRules() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

// Register installs the custom tags on v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"gpa":        validateGPA,
		"decision":   validateDecision,
		"unitype":    validateUniversityType,
		"portalmail": validateEmail,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q rule: %w", tag, err)
		}
	}
	return nil
}

// IsValidGPA reports whether g is a finite grade on the 0-5 scale.
func IsValidGPA(g float64) bool {
	return !math.IsNaN(g) && g >= MinGPA && g <= MaxGPA
}

// IsValidEmail reports whether email looks like a deliverable address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(email))
}

func validateGPA(fl validator.FieldLevel) bool {
	return IsValidGPA(fl.Field().Float())
}

func validateDecision(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "approved", "rejected":
		return true
	}
	return false
}

func validateUniversityType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Public", "Private":
		return true
	}
	return false
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
