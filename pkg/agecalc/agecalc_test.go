package agecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWholeYears(t *testing.T) {
	tests := []struct {
		name     string
		birth    time.Time
		ref      time.Time
		expected int
	}{
		{"birthday already passed this year", date(2018, time.March, 14), date(2026, time.August, 28), 8},
		{"birthday not yet reached this year", date(2018, time.November, 2), date(2026, time.August, 28), 7},
		{"birthday is today", date(2018, time.August, 28), date(2026, time.August, 28), 8},
		{"birthday is tomorrow", date(2018, time.August, 29), date(2026, time.August, 28), 7},
		{"newborn", date(2026, time.August, 1), date(2026, time.August, 28), 0},
		{"same day", date(2026, time.August, 28), date(2026, time.August, 28), 0},
		{"future birth date clamps to zero", date(2027, time.January, 1), date(2026, time.August, 28), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WholeYears(tt.birth, tt.ref))
		})
	}
}

func TestWholeYearsLeapDay(t *testing.T) {
	birth := date(2016, time.February, 29)

	// In a non-leap year the anniversary normalizes to March 1.
	assert.Equal(t, 9, WholeYears(birth, date(2026, time.February, 28)))
	assert.Equal(t, 10, WholeYears(birth, date(2026, time.March, 1)))
}

func TestFromBirthDate(t *testing.T) {
	age := FromBirthDate(time.Now().AddDate(-6, 0, -1))
	assert.Equal(t, 6, age)
}
