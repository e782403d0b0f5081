package networth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a decimal value as exchanged with the finance service: prices,
// values, quantities and rates.
//
// It is always written to JSON as a bare number.
type Amount struct {
	value decimal.Decimal
}

// A returns the Amount for value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a decimal number as typed in a form field.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid number %q", s)
	}
	return Amount{value: d}, nil
}

// AmountPtr is a helper to build optional payload fields.
func AmountPtr(a Amount) *Amount { return &a }

func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Mul(b Amount) Amount       { return Amount{value: a.value.Mul(b.value)} }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) String() string            { return a.value.String() }

// StringFixed returns the amount rounded to places fractional digits.
func (a Amount) StringFixed(places int32) string { return a.value.StringFixed(places) }

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings. A JSON null
// leaves the amount at zero.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		a.value = decimal.Zero
		return nil
	}
	return a.value.UnmarshalJSON(b)
}
