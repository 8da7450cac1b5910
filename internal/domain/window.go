package domain

import (
	"fmt"
	"time"
)

// ActivityWindow is the append-only slice of activities owned by one
// account. Insertion order is preserved; there is no update or removal.
type ActivityWindow struct {
	activities []*Activity
}

func NewActivityWindow(activities ...*Activity) *ActivityWindow {
	w := &ActivityWindow{activities: make([]*Activity, 0, len(activities))}
	w.activities = append(w.activities, activities...)
	return w
}

func (w *ActivityWindow) AddActivity(a *Activity) {
	w.activities = append(w.activities, a)
}

// Activities returns a copy of the backing slice; the activities
// themselves are shared.
func (w *ActivityWindow) Activities() []*Activity {
	out := make([]*Activity, len(w.activities))
	copy(out, w.activities)
	return out
}

// UndecidedActivities returns the activities appended in-process that no
// persistence collaborator has assigned a key yet. This is the delta a
// caller persists after a withdraw or deposit.
func (w *ActivityWindow) UndecidedActivities() []*Activity {
	var out []*Activity
	for _, a := range w.activities {
		if a.ID().IsUndecided() {
			out = append(out, a)
		}
	}
	return out
}

// CalculateBalance folds the window for one account: deposits into the
// account add, withdrawals out of it subtract. An activity with
// source == target == accountID contributes amount - amount = 0, so
// self-referential postings never change the balance. The fold is
// commutative, so any activity ordering yields the same result.
func (w *ActivityWindow) CalculateBalance(accountID Identity, currency Currency) (Money, error) {
	balance := NewMoney(0, currency)
	for _, a := range w.activities {
		var err error
		if a.targetAccountID.Equal(accountID) {
			balance, err = balance.Add(a.amount)
			if err != nil {
				return Money{}, fmt.Errorf("CalculateBalance: %w", err)
			}
		}
		if a.sourceAccountID.Equal(accountID) {
			balance, err = balance.Subtract(a.amount)
			if err != nil {
				return Money{}, fmt.Errorf("CalculateBalance: %w", err)
			}
		}
	}
	return balance, nil
}

func (w *ActivityWindow) StartTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, fmt.Errorf("StartTimestamp: %w", ErrEmptyWindow)
	}
	start := w.activities[0].timestamp
	for _, a := range w.activities[1:] {
		if a.timestamp.Before(start) {
			start = a.timestamp
		}
	}
	return start, nil
}

func (w *ActivityWindow) EndTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, fmt.Errorf("EndTimestamp: %w", ErrEmptyWindow)
	}
	end := w.activities[0].timestamp
	for _, a := range w.activities[1:] {
		if a.timestamp.After(end) {
			end = a.timestamp
		}
	}
	return end, nil
}
