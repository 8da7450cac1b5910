package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Savings product constants, in minor units. The overdraft ceiling is a
// product-wide constant, unlike checking's per-account limit.
const (
	savingMinimumBalance         = 100_00
	savingMaxWithdrawalsPerMonth = 6
	savingOverdraftFee           = 35_00
	savingOverdraftCeiling       = 500_00
)

var defaultSavingAnnualInterestRate = decimal.NewFromFloat(0.0125)

// SavingConfig holds the per-account overrides; zero values fall back to
// the product defaults.
type SavingConfig struct {
	AnnualInterestRate decimal.Decimal
}

type SavingAccount struct {
	baseAccount
	annualInterestRate decimal.Decimal
}

var _ Account = (*SavingAccount)(nil)

// NewSavingAccount hydrates a savings account from a baseline balance and
// its previously persisted activities. A nil window means no history.
func NewSavingAccount(id Identity, baseline Money, window *ActivityWindow, cfg SavingConfig) *SavingAccount {
	rate := cfg.AnnualInterestRate
	if rate.IsZero() {
		rate = defaultSavingAnnualInterestRate
	}
	return &SavingAccount{
		baseAccount:        newBaseAccount(id, baseline, window),
		annualInterestRate: rate,
	}
}

// Withdraw moves amount out of the account if the rolling-month withdrawal
// quota and the overdraft ceiling allow it. Dropping below the minimum
// balance costs an overdraft fee posted against the account itself.
// Rejections append nothing, not even the fee.
func (a *SavingAccount) Withdraw(amount Money, targetAccountID Identity) (bool, error) {
	if err := a.validateOperation(amount, targetAccountID); err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}

	now := a.now()
	if a.withdrawalsSince(now.AddDate(0, -1, 0)) >= savingMaxWithdrawalsPerMonth {
		return false, nil
	}

	balance, err := a.CalculateBalance()
	if err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}
	balanceAfter, err := balance.Subtract(amount)
	if err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}
	if balanceAfter.MinorUnits() < -savingOverdraftCeiling {
		return false, nil
	}

	withdrawal, err := NewActivity(a.id, a.id, targetAccountID, now, amount)
	if err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}

	if balanceAfter.MinorUnits() < savingMinimumBalance {
		// Self-paid: source, target and owner are all this account, so
		// the posting nets to zero under the window fold. Kept that way
		// pending product clarification; see DESIGN.md.
		fee, err := NewActivity(a.id, a.id, a.id, now, NewMoney(savingOverdraftFee, a.baseline.Currency()))
		if err != nil {
			return false, fmt.Errorf("Withdraw: overdraft fee: %w", err)
		}
		a.window.AddActivity(fee)
	}

	a.window.AddActivity(withdrawal)
	return true, nil
}

// Deposit always succeeds.
func (a *SavingAccount) Deposit(amount Money, sourceAccountID Identity) error {
	if err := a.validateOperation(amount, sourceAccountID); err != nil {
		return fmt.Errorf("Deposit: %w", err)
	}
	deposit, err := NewActivity(a.id, sourceAccountID, a.id, a.now(), amount)
	if err != nil {
		return fmt.Errorf("Deposit: %w", err)
	}
	a.window.AddActivity(deposit)
	return nil
}

// CalculateMonthlyInterest returns one month's interest on the current
// balance, rounded half-up; zero when the balance is not positive.
func (a *SavingAccount) CalculateMonthlyInterest() (Money, error) {
	balance, err := a.CalculateBalance()
	if err != nil {
		return Money{}, fmt.Errorf("CalculateMonthlyInterest: %w", err)
	}
	if !balance.IsPositive() {
		return NewMoney(0, a.baseline.Currency()), nil
	}
	monthlyRate := a.annualInterestRate.Div(decimal.NewFromInt(12))
	return balance.Multiply(monthlyRate), nil
}

// ApplyMonthlyInterest posts the accrued interest as a deposit from the
// external bank and returns the amount posted (zero means no posting).
func (a *SavingAccount) ApplyMonthlyInterest() (Money, error) {
	interest, err := a.CalculateMonthlyInterest()
	if err != nil {
		return Money{}, fmt.Errorf("ApplyMonthlyInterest: %w", err)
	}
	if !interest.IsPositive() {
		return interest, nil
	}
	posting, err := NewActivity(a.id, ExternalInterestSourceID, a.id, a.now(), interest)
	if err != nil {
		return Money{}, fmt.Errorf("ApplyMonthlyInterest: %w", err)
	}
	a.window.AddActivity(posting)
	return interest, nil
}

func (a *SavingAccount) AnnualInterestRate() decimal.Decimal { return a.annualInterestRate }
