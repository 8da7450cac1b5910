// Package testutil builds hydrated domain fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/finlabs/bankcore/internal/domain"
)

func Activity(t *testing.T, owner, source, target domain.Identity, ts time.Time, amount domain.Money) *domain.Activity {
	t.Helper()
	a, err := domain.NewActivity(owner, source, target, ts, amount)
	if err != nil {
		t.Fatalf("build activity: %v", err)
	}
	return a
}

// PersistedActivity is an Activity whose id has already been decided, the
// shape of a row loaded from storage.
func PersistedActivity(t *testing.T, id int64, owner, source, target domain.Identity, ts time.Time, amount domain.Money) *domain.Activity {
	t.Helper()
	a := Activity(t, owner, source, target, ts, amount)
	if err := a.ID().Decide(id); err != nil {
		t.Fatalf("decide activity id: %v", err)
	}
	return a
}

func SavingAccount(t *testing.T, id, baselineUnits int64, activities ...*domain.Activity) *domain.SavingAccount {
	t.Helper()
	return domain.NewSavingAccount(
		domain.MustIdentity(id),
		domain.NewMoney(baselineUnits, domain.CurrencyUSD),
		domain.NewActivityWindow(activities...),
		domain.SavingConfig{},
	)
}

func CheckingAccount(t *testing.T, id, baselineUnits int64, activities ...*domain.Activity) *domain.CheckingAccount {
	t.Helper()
	return domain.NewCheckingAccount(
		domain.MustIdentity(id),
		domain.NewMoney(baselineUnits, domain.CurrencyUSD),
		domain.NewActivityWindow(activities...),
		domain.CheckingConfig{},
	)
}
