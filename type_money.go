package fundlens

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display amount in Indian rupees. The engine itself computes on
// float64 for behavioral parity with the source exports; Money only exists so
// reports format values consistently (₹ symbol, Indian digit grouping).
type Money struct {
	value decimal.Decimal
}

// INR creates a rupee amount from a float value.
func INR(v float64) Money {
	return Money{value: decimal.NewFromFloat(v)}
}

// AsFloat returns the amount as a float64.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// String renders the amount with the INR currency formatting rules.
func (m Money) String() string {
	cur := money.GetCurrency(money.INR)
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), money.INR).Display()
}

// SignedString renders with an explicit sign for gains and losses.
func (m Money) SignedString() string {
	if m.value.IsNegative() {
		return m.String()
	}
	return "+" + m.String()
}

// MarshalJSON renders the amount as a plain number, not the display string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value.InexactFloat64())
}

var _ json.Marshaler = Money{}
