package investfolio

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Quantity is a number of shares or units of an asset.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from a raw value, mostly for tests.
func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

// ParseQuantity parses a user-entered quantity. Anything that is not a
// strictly positive decimal number is rejected.
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if !v.IsPositive() {
		return Quantity{}, fmt.Errorf("quantity must be greater than zero, got %s", v)
	}
	return Quantity{value: v}, nil
}

func (q Quantity) IsZero() bool     { return q.value.IsZero() }
func (q Quantity) IsPositive() bool { return q.value.IsPositive() }
func (q Quantity) String() string   { return q.value.String() }

// MarshalJSON writes the quantity as a bare JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) { return []byte(q.value.String()), nil }

func (q *Quantity) UnmarshalJSON(data []byte) error { return q.value.UnmarshalJSON(data) }

// Price is a per-unit price of an asset.
type Price struct {
	value decimal.Decimal
}

// P builds a Price from a raw value, mostly for tests.
func P(value float64) Price { return Price{value: decimal.NewFromFloat(value)} }

// ParsePrice parses a user-entered per-unit price. Anything that is not a
// strictly positive decimal number is rejected.
func ParsePrice(s string) (Price, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if !v.IsPositive() {
		return Price{}, fmt.Errorf("price must be greater than zero, got %s", v)
	}
	return Price{value: v}, nil
}

func (p Price) IsZero() bool   { return p.value.IsZero() }
func (p Price) String() string { return p.value.String() }

// Mul returns the monetary value of q units at price p.
func (p Price) Mul(q Quantity, currency string) Money {
	return Money{value: p.value.Mul(q.value), cur: currency}
}

// MarshalJSON writes the price as a bare JSON number.
func (p Price) MarshalJSON() ([]byte, error) { return []byte(p.value.String()), nil }

func (p *Price) UnmarshalJSON(data []byte) error { return p.value.UnmarshalJSON(data) }

// Money represents a monetary value in a given currency. It only exists on
// the display side of the client: the backend speaks in bare quantities and
// per-unit prices.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money value.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and grouping.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// Add sums two monetary values, treating the empty currency as weak.
func (m Money) Add(n Money) Money {
	cur := m.cur
	if cur == "" {
		cur = n.cur
	}
	return Money{value: m.value.Add(n.value), cur: cur}
}
