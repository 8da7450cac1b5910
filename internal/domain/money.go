package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}

// Money is an immutable amount of a single currency, held as an integer
// count of the currency's minor unit (cents, pence). Arithmetic never
// touches floating point; every operation returns a new value.
type Money struct {
	minorUnits int64
	currency   Currency
}

func NewMoney(minorUnits int64, currency Currency) Money {
	return Money{minorUnits: minorUnits, currency: currency}
}

func (m Money) MinorUnits() int64 { return m.minorUnits }

func (m Money) Currency() Currency { return m.currency }

func (m Money) IsZero() bool { return m.minorUnits == 0 }

func (m Money) IsPositive() bool { return m.minorUnits > 0 }

func (m Money) IsNegative() bool { return m.minorUnits < 0 }

func (m Money) IsPositiveOrZero() bool { return m.minorUnits >= 0 }

func (m Money) Negate() Money {
	return Money{minorUnits: -m.minorUnits, currency: m.currency}
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("Add: %s + %s: %w", m.currency, other.currency, ErrCurrencyMismatch)
	}
	return Money{minorUnits: m.minorUnits + other.minorUnits, currency: m.currency}, nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("Subtract: %s - %s: %w", m.currency, other.currency, ErrCurrencyMismatch)
	}
	return Money{minorUnits: m.minorUnits - other.minorUnits, currency: m.currency}, nil
}

// Multiply scales the amount by factor and rounds half-up to the nearest
// minor unit.
func (m Money) Multiply(factor decimal.Decimal) Money {
	scaled := decimal.NewFromInt(m.minorUnits).Mul(factor).Round(0)
	return Money{minorUnits: scaled.IntPart(), currency: m.currency}
}

// Allocate splits the amount into n parts that sum exactly back to the
// original. Each part gets the truncated share; the leftover minor units
// go one apiece to the first parts.
func (m Money) Allocate(n int) ([]Money, error) {
	if n < 1 {
		return nil, fmt.Errorf("Allocate: %d recipients: %w", n, ErrInvalidAllocation)
	}

	lowShare := m.minorUnits / int64(n)
	remainder := m.minorUnits - lowShare*int64(n)

	parts := make([]Money, n)
	for i := range parts {
		units := lowShare
		if int64(i) < remainder {
			units++
		}
		parts[i] = Money{minorUnits: units, currency: m.currency}
	}
	return parts, nil
}

// AllocateByRatios splits the amount proportionally to the given ratios
// with zero loss. Shares are floored, then the remainder is handed out
// left to right one minor unit at a time; the ordering is a deliberate
// tie-break and callers depend on it being deterministic.
func (m Money) AllocateByRatios(ratios []int64) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("AllocateByRatios: no ratios: %w", ErrInvalidAllocation)
	}

	var total int64
	for _, r := range ratios {
		if r < 0 {
			return nil, fmt.Errorf("AllocateByRatios: negative ratio %d: %w", r, ErrInvalidAllocation)
		}
		total += r
	}
	if total == 0 {
		return nil, fmt.Errorf("AllocateByRatios: ratios sum to zero: %w", ErrInvalidAllocation)
	}

	parts := make([]Money, len(ratios))
	var allocated int64
	for i, r := range ratios {
		units := m.minorUnits * r / total
		parts[i] = Money{minorUnits: units, currency: m.currency}
		allocated += units
	}

	remainder := m.minorUnits - allocated
	for i := 0; remainder > 0; i++ {
		parts[i].minorUnits++
		remainder--
	}
	return parts, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.minorUnits, m.currency)
}
