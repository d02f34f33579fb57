package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		valid    bool
		expected string
	}{
		{"json number", `12.5`, true, "12.5"},
		{"integer number", `98`, true, "98"},
		{"numeric string", `"36.8"`, true, "36.8"},
		{"integer string", `"120"`, true, "120"},
		{"empty string is absent", `""`, false, ""},
		{"null is absent", `null`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			err := json.Unmarshal([]byte(tt.input), &n)
			assert.NoError(t, err)
			assert.Equal(t, tt.valid, n.Valid)
			assert.Equal(t, tt.expected, n.String())
		})
	}
}

func TestUnmarshalJSONInvalid(t *testing.T) {
	var n Numeric
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`"12,5"`), &n))
}

func TestParse(t *testing.T) {
	n, err := Parse("  70.2 ")
	assert.NoError(t, err)
	assert.True(t, n.Valid)
	assert.Equal(t, "70.2", n.String())

	n, err = Parse("")
	assert.NoError(t, err)
	assert.False(t, n.Valid)

	_, err = Parse("not a number")
	assert.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(FromFloat(37.5))
	assert.NoError(t, err)
	assert.Equal(t, "37.5", string(data))

	data, err = json.Marshal(Numeric{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestIntegerHelpers(t *testing.T) {
	n, _ := Parse("120")
	assert.True(t, n.IsInteger())
	assert.Equal(t, int64(120), n.IntPart())

	n, _ = Parse("36.8")
	assert.False(t, n.IsInteger())

	assert.False(t, Numeric{}.IsInteger())
	assert.Equal(t, int64(0), Numeric{}.IntPart())
	assert.Equal(t, float64(0), Numeric{}.Float64())
}
