package validator

import (
	"testing"

	"pediatric-gastro-api/pkg/numeric"

	"github.com/stretchr/testify/assert"
)

type accountForm struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required_with=Password,omitempty,eqfield=Password"`
}

type accountEditForm struct {
	Password        string `json:"password" validate:"omitempty,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required_with=Password,omitempty,eqfield=Password"`
}

func TestPasswordRules(t *testing.T) {
	v := NewValidator()

	t.Run("valid pair passes", func(t *testing.T) {
		err := v.Validate(&accountForm{Password: "secret1", ConfirmPassword: "secret1"})
		assert.NoError(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		err := v.Validate(&accountForm{Password: "abc", ConfirmPassword: "abc"})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Equal(t, "password must be at least 6 characters", errors["password"])
	})

	t.Run("missing confirmation reported before mismatch", func(t *testing.T) {
		err := v.Validate(&accountForm{Password: "secret1"})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Equal(t, "confirm_password is required when setting a new password", errors["confirm_password"])
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		err := v.Validate(&accountForm{Password: "secret1", ConfirmPassword: "secret2"})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Equal(t, "passwords do not match", errors["confirm_password"])
	})

	t.Run("edit with empty password skips both checks", func(t *testing.T) {
		err := v.Validate(&accountEditForm{})
		assert.NoError(t, err)
	})

	t.Run("edit with new password still requires confirmation", func(t *testing.T) {
		err := v.Validate(&accountEditForm{Password: "secret1"})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Equal(t, "confirm_password is required when setting a new password", errors["confirm_password"])
	})
}

type phoneForm struct {
	Phone string `json:"phone" validate:"omitempty,phone"`
}

func TestPhoneRule(t *testing.T) {
	v := NewValidator()

	valid := []string{"", "+593 99 123 4567", "(02) 254-1234", "0991234567"}
	for _, value := range valid {
		assert.NoError(t, v.Validate(&phoneForm{Phone: value}), value)
	}

	invalid := []string{"no digits here", "++()--", "123abc", "12-34x"}
	for _, value := range invalid {
		assert.Error(t, v.Validate(&phoneForm{Phone: value}), value)
	}
}

type dateForm struct {
	BirthDate       string `json:"date_of_birth" validate:"omitempty,birthdate"`
	AppointmentDate string `json:"appointment_date" validate:"omitempty,calendardate"`
}

func TestDateRules(t *testing.T) {
	v := NewValidator()

	t.Run("valid birth date", func(t *testing.T) {
		assert.NoError(t, v.Validate(&dateForm{BirthDate: "2018-03-14"}))
	})

	t.Run("birth date in the future", func(t *testing.T) {
		err := v.Validate(&dateForm{BirthDate: "2999-01-01"})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Contains(t, errors["date_of_birth"], "not in the future")
	})

	t.Run("birth date before 1900", func(t *testing.T) {
		assert.Error(t, v.Validate(&dateForm{BirthDate: "1899-12-31"}))
	})

	t.Run("birth date not a calendar date", func(t *testing.T) {
		assert.Error(t, v.Validate(&dateForm{BirthDate: "2018-02-30"}))
		assert.Error(t, v.Validate(&dateForm{BirthDate: "14/03/2018"}))
	})

	t.Run("appointment date may be in the future", func(t *testing.T) {
		assert.NoError(t, v.Validate(&dateForm{AppointmentDate: "2999-01-01"}))
	})

	t.Run("appointment date before 1900", func(t *testing.T) {
		assert.Error(t, v.Validate(&dateForm{AppointmentDate: "1899-12-31"}))
	})
}

type vitalsForm struct {
	Weight           numeric.Numeric `json:"weight" validate:"posnumber"`
	Height           numeric.Numeric `json:"height" validate:"reqnumber,posnumber"`
	CardiacFrequency numeric.Numeric `json:"cardiac_frequency" validate:"posinteger"`
	OxygenSaturation numeric.Numeric `json:"oxygen_saturation" validate:"saturation"`
}

func TestNumericRules(t *testing.T) {
	v := NewValidator()

	num := func(s string) numeric.Numeric {
		n, err := numeric.Parse(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return n
	}

	t.Run("complete vitals pass", func(t *testing.T) {
		form := &vitalsForm{
			Weight:           num("12.5"),
			Height:           num("92"),
			CardiacFrequency: num("110"),
			OxygenSaturation: num("98"),
		}
		assert.NoError(t, v.Validate(form))
	})

	t.Run("only height is required", func(t *testing.T) {
		assert.NoError(t, v.Validate(&vitalsForm{Height: num("92")}))
	})

	t.Run("missing height", func(t *testing.T) {
		err := v.Validate(&vitalsForm{})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Equal(t, "height is required", errors["height"])
	})

	t.Run("negative height", func(t *testing.T) {
		err := v.Validate(&vitalsForm{Height: num("-92")})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Equal(t, "height must be a positive number", errors["height"])
	})

	t.Run("zero height", func(t *testing.T) {
		assert.Error(t, v.Validate(&vitalsForm{Height: num("0")}))
	})

	t.Run("fractional cardiac frequency", func(t *testing.T) {
		err := v.Validate(&vitalsForm{Height: num("92"), CardiacFrequency: num("110.5")})
		assert.Error(t, err)
		errors := v.FormatValidationErrors(err)
		assert.Equal(t, "cardiac_frequency must be a positive integer", errors["cardiac_frequency"])
	})

	t.Run("saturation bounds", func(t *testing.T) {
		assert.NoError(t, v.Validate(&vitalsForm{Height: num("92"), OxygenSaturation: num("0")}))
		assert.NoError(t, v.Validate(&vitalsForm{Height: num("92"), OxygenSaturation: num("100")}))
		assert.Error(t, v.Validate(&vitalsForm{Height: num("92"), OxygenSaturation: num("101")}))
		assert.Error(t, v.Validate(&vitalsForm{Height: num("92"), OxygenSaturation: num("98.5")}))
	})
}
