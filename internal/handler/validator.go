package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/nakshatra"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for domain vocabulary
	_ = v.RegisterValidation("activity", validateActivity)
	_ = v.RegisterValidation("nakshatra", validateNakshatra)
	_ = v.RegisterValidation("period", validatePeriod)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "activity":
			errs[field] = ErrMsgInvalidActivityError
		case "nakshatra":
			errs[field] = ErrMsgUnknownNakshatraError
		case "period":
			errs[field] = ErrMsgInvalidPeriodError
		case "datetime":
			errs[field] = "Invalid date format, expected YYYY-MM-DD"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation for activity type
func validateActivity(fl validator.FieldLevel) bool {
	activity := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if activity == "" {
		return true
	}
	return domain.Activity(strings.ToLower(activity)).Valid()
}

// Custom validation for nakshatra names, any supported spelling
func validateNakshatra(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	_, ok := nakshatra.Resolve(name)
	return ok
}

// Custom validation for dashboard period
func validatePeriod(fl validator.FieldLevel) bool {
	period := fl.Field().String()
	if period == "" {
		return true
	}
	switch domain.DashboardPeriod(strings.ToLower(period)) {
	case domain.PeriodWeek, domain.PeriodMonth, domain.PeriodYear:
		return true
	}
	return false
}
