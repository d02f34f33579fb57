package identifier

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUserID(t *testing.T) {
	assert.Equal(t, "USR001", FormatUserID(1))
	assert.Equal(t, "USR012", FormatUserID(12))
	assert.Equal(t, "USR123", FormatUserID(123))
	// The padding widens past three digits instead of truncating.
	assert.Equal(t, "USR1000", FormatUserID(1000))
}

func TestNewAttentionID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewAttentionID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	// Collisions across 100 draws would point at a broken generator.
	assert.Greater(t, len(seen), 99)
}

func TestNewPatientID(t *testing.T) {
	id := NewPatientID()
	assert.Regexp(t, `^PAT-[0-9A-F]{8}$`, id)
}
