// Package accrual runs interest postings over hydrated accounts. It is
// pure in-memory orchestration: the caller loads the accounts, the
// service drives the per-account interest operations, and the caller
// persists whatever activities were appended.
package accrual

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finlabs/bankcore/internal/domain"
	"github.com/finlabs/bankcore/internal/logging"
)

// Report summarizes one accrual run.
type Report struct {
	RunID           uuid.UUID
	AccountsVisited int
	Postings        int
	TotalPosted     map[domain.Currency]int64
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// AccrueMonthlyInterest applies one month of interest to every savings
// account with a positive balance. Accounts at or below zero are visited
// but post nothing.
func (s *Service) AccrueMonthlyInterest(ctx context.Context, accounts []*domain.SavingAccount) (*Report, error) {
	report := newReport()
	log := logging.FromContext(ctx).With("run_id", report.RunID, "kind", "monthly_interest")

	for _, account := range accounts {
		posted, err := account.ApplyMonthlyInterest()
		if err != nil {
			return nil, fmt.Errorf("AccrueMonthlyInterest: account %s: %w", account.ID(), err)
		}
		report.record(account.ID(), posted, log)
	}

	log.Info("accrual run completed",
		"accounts_visited", report.AccountsVisited,
		"postings", report.Postings,
	)
	return report, nil
}

// AccrueDailyOverdraftInterest charges one day of overdraft interest to
// every overdrawn checking account.
func (s *Service) AccrueDailyOverdraftInterest(ctx context.Context, accounts []*domain.CheckingAccount) (*Report, error) {
	report := newReport()
	log := logging.FromContext(ctx).With("run_id", report.RunID, "kind", "daily_overdraft_interest")

	for _, account := range accounts {
		posted, err := account.ApplyDailyOverdraftInterest()
		if err != nil {
			return nil, fmt.Errorf("AccrueDailyOverdraftInterest: account %s: %w", account.ID(), err)
		}
		report.record(account.ID(), posted, log)
	}

	log.Info("accrual run completed",
		"accounts_visited", report.AccountsVisited,
		"postings", report.Postings,
	)
	return report, nil
}

func newReport() *Report {
	return &Report{
		RunID:       uuid.New(),
		TotalPosted: make(map[domain.Currency]int64),
	}
}

func (r *Report) record(accountID domain.Identity, posted domain.Money, log *slog.Logger) {
	r.AccountsVisited++
	if !posted.IsPositive() {
		return
	}
	r.Postings++
	r.TotalPosted[posted.Currency()] += posted.MinorUnits()
	log.Info("interest posted",
		"account_id", accountID.String(),
		"amount", posted.MinorUnits(),
		"currency", posted.Currency(),
	)
}
