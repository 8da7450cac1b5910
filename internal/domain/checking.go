package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Checking product constants, in minor units.
const (
	checkingMinimumBalance           = 25_00
	checkingFreeTransactionsPerMonth = 20
	checkingTransactionFee           = 2_50
	checkingOverdraftFee             = 30_00

	defaultCheckingOverdraftLimit = 1_000_00
)

var defaultCheckingOverdraftInterestRate = decimal.NewFromFloat(0.18)

// CheckingConfig holds the per-account overrides; zero values fall back
// to the product defaults.
type CheckingConfig struct {
	OverdraftLimit        int64 // minor units
	OverdraftInterestRate decimal.Decimal
}

type CheckingAccount struct {
	baseAccount
	overdraftLimit        int64
	overdraftInterestRate decimal.Decimal
}

var _ Account = (*CheckingAccount)(nil)

// NewCheckingAccount hydrates a checking account from a baseline balance
// and its previously persisted activities. A nil window means no history.
func NewCheckingAccount(id Identity, baseline Money, window *ActivityWindow, cfg CheckingConfig) *CheckingAccount {
	limit := cfg.OverdraftLimit
	if limit == 0 {
		limit = defaultCheckingOverdraftLimit
	}
	rate := cfg.OverdraftInterestRate
	if rate.IsZero() {
		rate = defaultCheckingOverdraftInterestRate
	}
	return &CheckingAccount{
		baseAccount:           newBaseAccount(id, baseline, window),
		overdraftLimit:        limit,
		overdraftInterestRate: rate,
	}
}

// Withdraw moves amount out of the account unless it would breach the
// overdraft limit. Dropping below the minimum balance costs an overdraft
// fee; exhausting the free transaction quota costs a per-transaction fee.
// Both fees are posted to the external bank. A rejection appends nothing.
func (a *CheckingAccount) Withdraw(amount Money, targetAccountID Identity) (bool, error) {
	if err := a.validateOperation(amount, targetAccountID); err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}

	now := a.now()
	balance, err := a.CalculateBalance()
	if err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}
	balanceAfter, err := balance.Subtract(amount)
	if err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}
	if balanceAfter.MinorUnits() < -a.overdraftLimit {
		return false, nil
	}

	withdrawal, err := NewActivity(a.id, a.id, targetAccountID, now, amount)
	if err != nil {
		return false, fmt.Errorf("Withdraw: %w", err)
	}

	if balanceAfter.MinorUnits() < checkingMinimumBalance {
		fee, err := a.bankFee(checkingOverdraftFee, now)
		if err != nil {
			return false, fmt.Errorf("Withdraw: overdraft fee: %w", err)
		}
		a.window.AddActivity(fee)
	}
	if a.transactionsSince(now.AddDate(0, -1, 0)) >= checkingFreeTransactionsPerMonth {
		fee, err := a.bankFee(checkingTransactionFee, now)
		if err != nil {
			return false, fmt.Errorf("Withdraw: transaction fee: %w", err)
		}
		a.window.AddActivity(fee)
	}

	a.window.AddActivity(withdrawal)
	return true, nil
}

// Deposit always succeeds; past the free transaction quota it is taxed
// with the per-transaction fee, never rejected.
func (a *CheckingAccount) Deposit(amount Money, sourceAccountID Identity) error {
	if err := a.validateOperation(amount, sourceAccountID); err != nil {
		return fmt.Errorf("Deposit: %w", err)
	}

	now := a.now()
	deposit, err := NewActivity(a.id, sourceAccountID, a.id, now, amount)
	if err != nil {
		return fmt.Errorf("Deposit: %w", err)
	}

	if a.transactionsSince(now.AddDate(0, -1, 0)) >= checkingFreeTransactionsPerMonth {
		fee, err := a.bankFee(checkingTransactionFee, now)
		if err != nil {
			return fmt.Errorf("Deposit: transaction fee: %w", err)
		}
		a.window.AddActivity(fee)
	}

	a.window.AddActivity(deposit)
	return nil
}

// AvailableBalance is the current balance plus the overdraft headroom;
// overdraft protection is always on for this product.
func (a *CheckingAccount) AvailableBalance() (Money, error) {
	balance, err := a.CalculateBalance()
	if err != nil {
		return Money{}, fmt.Errorf("AvailableBalance: %w", err)
	}
	available, err := balance.Add(NewMoney(a.overdraftLimit, a.baseline.Currency()))
	if err != nil {
		return Money{}, fmt.Errorf("AvailableBalance: %w", err)
	}
	return available, nil
}

// CalculateDailyOverdraftInterest returns one day's interest on the
// overdrawn magnitude, rounded half-up; zero when the balance is not
// negative.
func (a *CheckingAccount) CalculateDailyOverdraftInterest() (Money, error) {
	balance, err := a.CalculateBalance()
	if err != nil {
		return Money{}, fmt.Errorf("CalculateDailyOverdraftInterest: %w", err)
	}
	if balance.IsPositiveOrZero() {
		return NewMoney(0, a.baseline.Currency()), nil
	}
	dailyRate := a.overdraftInterestRate.Div(decimal.NewFromInt(365))
	return balance.Negate().Multiply(dailyRate), nil
}

// ApplyDailyOverdraftInterest charges the accrued overdraft interest to
// the external bank and returns the amount posted (zero means no posting).
func (a *CheckingAccount) ApplyDailyOverdraftInterest() (Money, error) {
	interest, err := a.CalculateDailyOverdraftInterest()
	if err != nil {
		return Money{}, fmt.Errorf("ApplyDailyOverdraftInterest: %w", err)
	}
	if !interest.IsPositive() {
		return interest, nil
	}
	posting, err := NewActivity(a.id, a.id, ExternalFeeSinkID, a.now(), interest)
	if err != nil {
		return Money{}, fmt.Errorf("ApplyDailyOverdraftInterest: %w", err)
	}
	a.window.AddActivity(posting)
	return interest, nil
}

func (a *CheckingAccount) OverdraftLimit() Money {
	return NewMoney(a.overdraftLimit, a.baseline.Currency())
}

func (a *CheckingAccount) OverdraftInterestRate() decimal.Decimal { return a.overdraftInterestRate }

func (a *CheckingAccount) bankFee(units int64, now time.Time) (*Activity, error) {
	return NewActivity(a.id, a.id, ExternalFeeSinkID, now, NewMoney(units, a.baseline.Currency()))
}

// transactionsSince counts customer-initiated movements in and out of the
// account strictly after the cutoff. Fee and interest postings do not
// burn the free quota: anything self-referential or with the external
// bank as counterparty is skipped.
func (a *CheckingAccount) transactionsSince(cutoff time.Time) int {
	n := 0
	for _, act := range a.window.activities {
		if !act.timestamp.After(cutoff) {
			continue
		}
		if !act.ownerAccountID.Equal(a.id) {
			continue
		}
		if a.isFeeOrInterest(act) {
			continue
		}
		if act.sourceAccountID.Equal(a.id) || act.targetAccountID.Equal(a.id) {
			n++
		}
	}
	return n
}

func (a *CheckingAccount) isFeeOrInterest(act *Activity) bool {
	if act.sourceAccountID.Equal(act.targetAccountID) {
		return true
	}
	for _, bank := range []Identity{ExternalFeeSinkID, ExternalInterestSourceID} {
		if act.sourceAccountID.Equal(bank) || act.targetAccountID.Equal(bank) {
			return true
		}
	}
	return false
}
