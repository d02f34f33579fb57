package identifier

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UserIDPrefix is the fixed prefix of managed user identifiers (USR001, ...).
const UserIDPrefix = "USR"

// AttentionIDLength is the length of a certificate attention token.
const AttentionIDLength = 8

// NewAttentionID generates the natural key for a medical certificate: the
// first 8 characters of a random UUID, uppercased. Generated once at creation
// and immutable afterwards.
func NewAttentionID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:AttentionIDLength])
}

// FormatUserID renders a sequential user identifier with a zero-padded
// 3-digit suffix, e.g. FormatUserID(7) == "USR007".
func FormatUserID(sequence int) string {
	return fmt.Sprintf("%s%03d", UserIDPrefix, sequence)
}

// NewPatientID generates a directory key for a patient record.
func NewPatientID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "PAT-" + strings.ToUpper(raw[:8])
}
