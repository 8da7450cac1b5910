// Command simulate drives the ledger core through a scripted day of
// banking against in-memory accounts: deposits, withdrawals, fee
// assessment and an interest accrual run. It performs no I/O beyond
// logging; hydration and persistence are stubbed by construction.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/finlabs/bankcore/internal/accrual"
	"github.com/finlabs/bankcore/internal/config"
	"github.com/finlabs/bankcore/internal/domain"
	"github.com/finlabs/bankcore/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init("bankcore-simulate", cfg.LogLevel, cfg.AppEnv)
	ctx := logging.WithLogger(context.Background(), logger)

	if err := run(ctx, cfg); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logging.FromContext(ctx)

	savingID := domain.MustIdentity(1)
	checkingID := domain.MustIdentity(2)
	payrollID := domain.MustIdentity(100)
	landlordID := domain.MustIdentity(200)

	// Hydrate: a savings account with history, a fresh checking account.
	history := domain.NewActivityWindow()
	opening, err := domain.NewActivity(savingID, payrollID, savingID,
		time.Now().AddDate(0, -2, 0), domain.NewMoney(2_500_00, domain.CurrencyUSD))
	if err != nil {
		return err
	}
	if err := opening.ID().Decide(1); err != nil {
		return err
	}
	history.AddActivity(opening)

	saving := domain.NewSavingAccount(savingID,
		domain.NewMoney(500_00, domain.CurrencyUSD), history, cfg.SavingConfig())
	checking := domain.NewCheckingAccount(checkingID,
		domain.NewMoney(100_00, domain.CurrencyUSD), nil, cfg.CheckingConfig())

	if err := checking.Deposit(domain.NewMoney(1_200_00, domain.CurrencyUSD), payrollID); err != nil {
		return err
	}
	logBalance(log, "checking after payroll deposit", checking)

	ok, err := checking.Withdraw(domain.NewMoney(1_400_00, domain.CurrencyUSD), landlordID)
	if err != nil {
		return err
	}
	log.Info("rent withdrawal", "accepted", ok)
	logBalance(log, "checking after rent", checking)

	ok, err = saving.Withdraw(domain.NewMoney(3_100_00, domain.CurrencyUSD), checkingID)
	if err != nil {
		return err
	}
	log.Info("savings withdrawal", "accepted", ok)
	logBalance(log, "savings after withdrawal", saving)

	svc := accrual.NewService()
	if _, err := svc.AccrueMonthlyInterest(ctx, []*domain.SavingAccount{saving}); err != nil {
		return err
	}
	if _, err := svc.AccrueDailyOverdraftInterest(ctx, []*domain.CheckingAccount{checking}); err != nil {
		return err
	}

	logBalance(log, "savings end of day", saving)
	logBalance(log, "checking end of day", checking)

	// What a persistence collaborator would pick up and store.
	log.Info("pending activities",
		"saving", len(saving.Window().UndecidedActivities()),
		"checking", len(checking.Window().UndecidedActivities()),
	)
	return nil
}

func logBalance(log *slog.Logger, msg string, account domain.Account) {
	balance, err := account.CalculateBalance()
	if err != nil {
		log.Error(msg, "error", err)
		return
	}
	log.Info(msg, "account_id", account.ID().String(), "balance", balance.String())
}
