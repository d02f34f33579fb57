package numeric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric is a nullable decimal that accepts either a JSON number or a
// numeric string. Form clients send measurements both ways, so the wire
// type has to be lenient about which one arrives. An empty string or JSON
// null decodes as absent.
type Numeric struct {
	Decimal decimal.Decimal
	Valid   bool
}

func FromDecimal(d decimal.Decimal) Numeric {
	return Numeric{Decimal: d, Valid: true}
}

func FromFloat(f float64) Numeric {
	return Numeric{Decimal: decimal.NewFromFloat(f), Valid: true}
}

// Parse coerces a raw string into a Numeric. Empty input is absent, not an
// error.
func Parse(raw string) (Numeric, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Numeric{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Numeric{}, fmt.Errorf("invalid numeric value %q", raw)
	}
	return Numeric{Decimal: d, Valid: true}, nil
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Numeric{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := Parse(s)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", data)
	}
	*n = Numeric{Decimal: d, Valid: true}
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Decimal.String()), nil
}

// Float64 returns the value as a float64, or 0 when absent.
func (n Numeric) Float64() float64 {
	if !n.Valid {
		return 0
	}
	f, _ := n.Decimal.Float64()
	return f
}

// IsInteger reports whether the value is present and has no fractional part.
func (n Numeric) IsInteger() bool {
	return n.Valid && n.Decimal.IsInteger()
}

// IntPart returns the integer part of the value, or 0 when absent.
func (n Numeric) IntPart() int64 {
	if !n.Valid {
		return 0
	}
	return n.Decimal.IntPart()
}

func (n Numeric) String() string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.String()
}
