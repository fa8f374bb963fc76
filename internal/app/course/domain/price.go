package domain

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Price represents a course price with exact decimal arithmetic.
// It uses big.Rat internally so that "free" (zero) is an exact comparison.
// Price is immutable - all operations return new instances.
type Price struct {
	amount *big.Rat
}

// NewPrice creates a new Price from numerator and denominator.
// For example: NewPrice(4999, 100) represents 49.99
func NewPrice(numerator, denominator int64) Price {
	if denominator == 0 {
		panic("price: denominator cannot be zero")
	}
	return Price{amount: big.NewRat(numerator, denominator)}
}

// NewPriceFromDecimal creates a Price from a decimal string such as "49.99" or "0".
// Fractions like "1/3" are rejected.
func NewPriceFromDecimal(decimal string) (Price, error) {
	s := strings.TrimSpace(decimal)
	rat := new(big.Rat)
	if strings.Contains(s, "/") {
		return Price{}, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	if _, ok := rat.SetString(s); !ok {
		return Price{}, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return Price{amount: rat}, nil
}

// NewPriceFromRat creates a Price from an existing big.Rat.
// The rat is copied to ensure immutability.
func NewPriceFromRat(rat *big.Rat) Price {
	if rat == nil {
		return Free()
	}
	return Price{amount: new(big.Rat).Set(rat)}
}

// NewPriceFromFloat creates a Price from the shortest decimal form of f, so
// 0.1 becomes exactly 1/10. NaN and infinities become Free.
func NewPriceFromFloat(f float64) Price {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Free()
	}
	rat, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	if !ok {
		return Free()
	}
	return Price{amount: rat}
}

// Free returns a zero Price.
func Free() Price {
	return Price{amount: new(big.Rat)}
}

func (p Price) rat() *big.Rat {
	if p.amount == nil {
		return new(big.Rat)
	}
	return p.amount
}

// IsZero returns true if the price is exactly zero.
func (p Price) IsZero() bool {
	return p.rat().Sign() == 0
}

// IsNegative returns true if the price is below zero.
func (p Price) IsNegative() bool {
	return p.rat().Sign() < 0
}

// IsPositive returns true if the price is above zero.
func (p Price) IsPositive() bool {
	return p.rat().Sign() > 0
}

// Cmp compares p and other and returns -1, 0 or +1.
func (p Price) Cmp(other Price) int {
	return p.rat().Cmp(other.rat())
}

// Equals returns true if p equals other.
func (p Price) Equals(other Price) bool {
	return p.Cmp(other) == 0
}

// MaxPriceScale and MaxPriceIntegerDigits bound a price to what a Spanner
// NUMERIC column stores without rounding.
const (
	MaxPriceScale         = 9
	MaxPriceIntegerDigits = 29
)

var (
	numericScale = new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxPriceScale), nil))
	numericLimit = new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxPriceIntegerDigits), nil))
)

// IsRepresentable reports whether the price survives storage and the wire
// unchanged: at most MaxPriceScale fractional digits and fewer than
// MaxPriceIntegerDigits+1 integer digits.
func (p Price) IsRepresentable() bool {
	r := p.rat()
	if new(big.Rat).Abs(r).Cmp(numericLimit) >= 0 {
		return false
	}
	return new(big.Rat).Mul(r, numericScale).IsInt()
}

// Rat returns a copy of the internal big.Rat.
func (p Price) Rat() *big.Rat {
	return new(big.Rat).Set(p.rat())
}

// Float64 returns the price as a float64.
// Note: This may lose precision and should only be used for display purposes.
func (p Price) Float64() float64 {
	f, _ := p.rat().Float64()
	return f
}

// String returns the shortest decimal form of the price, e.g. "49.99", "0".
func (p Price) String() string {
	s := p.rat().FloatString(9)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// MarshalJSON encodes the price as a JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string. null is an
// error: a missing price is neither free nor paid.
func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return ErrMissingPrice
	}
	s := strings.Trim(string(b), `"`)
	parsed, err := NewPriceFromDecimal(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
