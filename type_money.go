package cashcast

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display purposes. The simulation
// itself works on float64 (balance trajectories are statistical estimates,
// not accounting records); Money exists so amounts are parsed exactly at the
// book boundary and formatted with proper currency conventions in reports.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a float amount and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// ParseMoney parses a major-unit decimal amount string exactly.
func ParseMoney(amount, currency string) (Money, error) {
	v, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v, cur: currency}, nil
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// AsFloat returns the amount as a float64, the unit the simulation works in.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
