package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyAddSubtract(t *testing.T) {
	tests := []struct {
		name    string
		a       Money
		b       Money
		op      string
		want    int64
		wantErr error
	}{
		{
			name: "add same currency",
			a:    NewMoney(10_00, CurrencyUSD),
			b:    NewMoney(5_50, CurrencyUSD),
			op:   "add",
			want: 15_50,
		},
		{
			name: "subtract below zero",
			a:    NewMoney(10_00, CurrencyUSD),
			b:    NewMoney(25_00, CurrencyUSD),
			op:   "subtract",
			want: -15_00,
		},
		{
			name:    "add currency mismatch",
			a:       NewMoney(10_00, CurrencyUSD),
			b:       NewMoney(10_00, CurrencyEUR),
			op:      "add",
			wantErr: ErrCurrencyMismatch,
		},
		{
			name:    "subtract currency mismatch",
			a:       NewMoney(10_00, CurrencyGBP),
			b:       NewMoney(10_00, CurrencyEUR),
			op:      "subtract",
			wantErr: ErrCurrencyMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Money
			var err error
			if tc.op == "add" {
				got, err = tc.a.Add(tc.b)
			} else {
				got, err = tc.a.Subtract(tc.b)
			}

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				// operands are untouched values
				assert.Equal(t, int64(10_00), tc.a.MinorUnits())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.MinorUnits())
			assert.Equal(t, tc.a.Currency(), got.Currency())
		})
	}
}

func TestMoneyAllocate(t *testing.T) {
	tests := []struct {
		name    string
		amount  Money
		n       int
		want    []int64
		wantErr error
	}{
		{
			name:   "ten dollars three ways",
			amount: NewMoney(10_00, CurrencyUSD),
			n:      3,
			want:   []int64{3_34, 3_33, 3_33},
		},
		{
			name:   "even split",
			amount: NewMoney(10_00, CurrencyUSD),
			n:      4,
			want:   []int64{2_50, 2_50, 2_50, 2_50},
		},
		{
			name:   "single recipient",
			amount: NewMoney(99, CurrencyGBP),
			n:      1,
			want:   []int64{99},
		},
		{
			name:    "zero recipients",
			amount:  NewMoney(10_00, CurrencyUSD),
			n:       0,
			wantErr: ErrInvalidAllocation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parts, err := tc.amount.Allocate(tc.n)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, parts, tc.n)
			var sum int64
			for i, p := range parts {
				assert.Equal(t, tc.want[i], p.MinorUnits())
				assert.Equal(t, tc.amount.Currency(), p.Currency())
				sum += p.MinorUnits()
			}
			assert.Equal(t, tc.amount.MinorUnits(), sum, "allocation must conserve the amount")
		})
	}
}

func TestMoneyAllocateByRatios(t *testing.T) {
	tests := []struct {
		name    string
		amount  Money
		ratios  []int64
		want    []int64
		wantErr error
	}{
		{
			name:   "hundred dollars 3 to 7",
			amount: NewMoney(100_00, CurrencyUSD),
			ratios: []int64{3, 7},
			want:   []int64{30_00, 70_00},
		},
		{
			name:   "remainder goes left to right",
			amount: NewMoney(1_00, CurrencyUSD),
			ratios: []int64{1, 1, 1},
			want:   []int64{34, 33, 33},
		},
		{
			name:   "zero ratio gets nothing beyond remainder order",
			amount: NewMoney(10, CurrencyUSD),
			ratios: []int64{0, 1},
			want:   []int64{0, 10},
		},
		{
			name:    "empty ratios",
			amount:  NewMoney(10_00, CurrencyUSD),
			ratios:  nil,
			wantErr: ErrInvalidAllocation,
		},
		{
			name:    "all zero ratios",
			amount:  NewMoney(10_00, CurrencyUSD),
			ratios:  []int64{0, 0},
			wantErr: ErrInvalidAllocation,
		},
		{
			name:    "negative ratio",
			amount:  NewMoney(10_00, CurrencyUSD),
			ratios:  []int64{3, -1},
			wantErr: ErrInvalidAllocation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parts, err := tc.amount.AllocateByRatios(tc.ratios)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, parts, len(tc.ratios))
			var sum int64
			for i, p := range parts {
				assert.Equal(t, tc.want[i], p.MinorUnits())
				sum += p.MinorUnits()
			}
			assert.Equal(t, tc.amount.MinorUnits(), sum, "allocation must conserve the amount")
		})
	}
}

func TestMoneyMultiply(t *testing.T) {
	tests := []struct {
		name   string
		amount Money
		factor string
		want   int64
	}{
		{name: "half up rounds up", amount: NewMoney(1_00, CurrencyUSD), factor: "0.125", want: 13},
		{name: "below half rounds down", amount: NewMoney(1_00, CurrencyUSD), factor: "0.124", want: 12},
		{name: "exact", amount: NewMoney(2_00, CurrencyUSD), factor: "1.5", want: 3_00},
		{name: "zero factor", amount: NewMoney(9_99, CurrencyUSD), factor: "0", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.amount.Multiply(decimal.RequireFromString(tc.factor))
			assert.Equal(t, tc.want, got.MinorUnits())
			assert.Equal(t, tc.amount.Currency(), got.Currency())
		})
	}
}

func TestMoneySigns(t *testing.T) {
	assert.True(t, NewMoney(0, CurrencyUSD).IsPositiveOrZero())
	assert.True(t, NewMoney(1, CurrencyUSD).IsPositiveOrZero())
	assert.False(t, NewMoney(-1, CurrencyUSD).IsPositiveOrZero())
	assert.True(t, NewMoney(-1, CurrencyUSD).IsNegative())
	assert.Equal(t, int64(5), NewMoney(-5, CurrencyUSD).Negate().MinorUnits())
}
