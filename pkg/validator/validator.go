package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"pediatric-gastro-api/pkg/numeric"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Permissive international phone shape: digits with optional leading "+",
// parentheses, hyphens and spaces. An empty value is "absent", handled by
// omitempty on the field tag.
var phoneRegex = regexp.MustCompile(`^\+?[0-9()\-\s]+$`)

var minCalendarDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report field paths by their json names so error keys match what the
	// client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("birthdate", validateBirthDate)
	v.RegisterValidation("calendardate", validateCalendarDate)
	v.RegisterValidation("reqnumber", validateRequiredNumber)
	v.RegisterValidation("posnumber", validatePositiveNumber)
	v.RegisterValidation("posinteger", validatePositiveInteger)
	v.RegisterValidation("saturation", validateSaturation)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "url":
				errors[field] = field + " must be a valid URL"
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "birthdate":
				errors[field] = field + " must be a valid date, not in the future and not before 1900-01-01"
			case "calendardate":
				errors[field] = field + " must be a valid date not before 1900-01-01"
			case "reqnumber":
				errors[field] = field + " is required"
			case "posnumber":
				errors[field] = field + " must be a positive number"
			case "posinteger":
				errors[field] = field + " must be a positive integer"
			case "saturation":
				errors[field] = field + " must be an integer between 0 and 100"
			case "required_with":
				errors[field] = field + " is required when setting a new password"
			case "eqfield":
				errors[field] = "passwords do not match"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if !phoneRegex.MatchString(value) {
		return false
	}
	return strings.IndexFunc(value, unicode.IsDigit) >= 0
}

// validateBirthDate accepts YYYY-MM-DD strings that are valid calendar
// dates, not in the future and not before 1900-01-01.
func validateBirthDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	if date.Before(minCalendarDate) {
		return false
	}
	return !date.After(time.Now())
}

// validateCalendarDate applies the 1900-01-01 lower bound without the
// not-in-the-future rule; appointments may be scheduled ahead.
func validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	return !date.Before(minCalendarDate)
}

func numericField(fl validator.FieldLevel) (numeric.Numeric, bool) {
	n, ok := fl.Field().Interface().(numeric.Numeric)
	return n, ok
}

func validateRequiredNumber(fl validator.FieldLevel) bool {
	n, ok := numericField(fl)
	return ok && n.Valid
}

func validatePositiveNumber(fl validator.FieldLevel) bool {
	n, ok := numericField(fl)
	if !ok {
		return false
	}
	if !n.Valid {
		return true
	}
	return n.Decimal.IsPositive()
}

func validatePositiveInteger(fl validator.FieldLevel) bool {
	n, ok := numericField(fl)
	if !ok {
		return false
	}
	if !n.Valid {
		return true
	}
	return n.Decimal.IsInteger() && n.Decimal.IsPositive()
}

func validateSaturation(fl validator.FieldLevel) bool {
	n, ok := numericField(fl)
	if !ok {
		return false
	}
	if !n.Valid {
		return true
	}
	if !n.Decimal.IsInteger() {
		return false
	}
	v := n.Decimal.IntPart()
	return v >= 0 && v <= 100
}
