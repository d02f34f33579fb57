package agecalc

import "time"

// WholeYears returns the number of complete years elapsed between birthDate
// and ref. A birthday that has not yet been reached in ref's year does not
// count. Never returns a negative value.
func WholeYears(birthDate, ref time.Time) int {
	birthDate = birthDate.In(ref.Location())

	years := ref.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(ref) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// FromBirthDate is WholeYears against the current clock.
func FromBirthDate(birthDate time.Time) int {
	return WholeYears(birthDate, time.Now())
}
