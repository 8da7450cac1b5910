package domain

import (
	"fmt"
	"time"
)

// Account is the polymorphic ledger aggregate over the two fixed variants.
// The balance is never stored; it is the baseline plus a replay of the
// activity window. Withdraw reports business-rule rejections as false
// with a nil error; errors are reserved for malformed input. Deposit is
// never rejected.
//
// Accounts are not safe for concurrent use. The caller must guarantee a
// single writer per instance for the duration of an operation.
type Account interface {
	ID() Identity
	BaselineBalance() Money
	Window() *ActivityWindow
	CalculateBalance() (Money, error)
	Withdraw(amount Money, targetAccountID Identity) (bool, error)
	Deposit(amount Money, sourceAccountID Identity) error
}

// baseAccount carries the state and behavior shared by both variants.
type baseAccount struct {
	id       Identity
	baseline Money
	window   *ActivityWindow
	now      func() time.Time
}

func newBaseAccount(id Identity, baseline Money, window *ActivityWindow) baseAccount {
	if window == nil {
		window = NewActivityWindow()
	}
	return baseAccount{
		id:       id,
		baseline: baseline,
		window:   window,
		now:      time.Now,
	}
}

func (b *baseAccount) ID() Identity { return b.id }

func (b *baseAccount) BaselineBalance() Money { return b.baseline }

func (b *baseAccount) Window() *ActivityWindow { return b.window }

func (b *baseAccount) CalculateBalance() (Money, error) {
	contribution, err := b.window.CalculateBalance(b.id, b.baseline.Currency())
	if err != nil {
		return Money{}, fmt.Errorf("CalculateBalance: %w", err)
	}
	balance, err := b.baseline.Add(contribution)
	if err != nil {
		return Money{}, fmt.Errorf("CalculateBalance: %w", err)
	}
	return balance, nil
}

// validateOperation fails fast on malformed withdraw/deposit input before
// any activity is constructed, so a passing operation can never half-apply.
func (b *baseAccount) validateOperation(amount Money, counterpartyID Identity) error {
	if counterpartyID.IsUndecided() {
		return fmt.Errorf("counterparty account id: %w", ErrUndecidedIdentity)
	}
	if amount.Currency() != b.baseline.Currency() {
		return fmt.Errorf("%s vs %s: %w", amount.Currency(), b.baseline.Currency(), ErrCurrencyMismatch)
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// withdrawalsSince counts activities that moved money out of this account
// strictly after the cutoff.
func (b *baseAccount) withdrawalsSince(cutoff time.Time) int {
	n := 0
	for _, a := range b.window.activities {
		if a.sourceAccountID.Equal(b.id) && a.timestamp.After(cutoff) {
			n++
		}
	}
	return n
}
