package domain

import (
	"fmt"
	"time"
)

// Activity is one immutable signed money movement between two accounts.
// The owner account is the one whose window the activity is filed under
// for balance purposes; it is not necessarily the source or the target
// (a deposit's owner is the target, a withdrawal's owner is the source).
type Activity struct {
	id              Identity
	ownerAccountID  Identity
	sourceAccountID Identity
	targetAccountID Identity
	timestamp       time.Time
	amount          Money
}

// NewActivity builds an activity with an undecided id. Owner, source and
// target must already be decided; the amount must be a positive sum of a
// concrete currency.
func NewActivity(owner, source, target Identity, timestamp time.Time, amount Money) (*Activity, error) {
	switch {
	case owner.IsUndecided():
		return nil, fmt.Errorf("NewActivity: owner account id undecided: %w", ErrInvalidActivity)
	case source.IsUndecided():
		return nil, fmt.Errorf("NewActivity: source account id undecided: %w", ErrInvalidActivity)
	case target.IsUndecided():
		return nil, fmt.Errorf("NewActivity: target account id undecided: %w", ErrInvalidActivity)
	case timestamp.IsZero():
		return nil, fmt.Errorf("NewActivity: zero timestamp: %w", ErrInvalidActivity)
	case amount.Currency() == "":
		return nil, fmt.Errorf("NewActivity: amount has no currency: %w", ErrInvalidActivity)
	case !amount.IsPositive():
		return nil, fmt.Errorf("NewActivity: %w", ErrInvalidAmount)
	}

	return &Activity{
		ownerAccountID:  owner,
		sourceAccountID: source,
		targetAccountID: target,
		timestamp:       timestamp,
		amount:          amount,
	}, nil
}

// ID returns a pointer so a persistence collaborator can Decide the key
// after storing a freshly appended activity. Single assignment is
// enforced by Identity itself.
func (a *Activity) ID() *Identity { return &a.id }

func (a *Activity) OwnerAccountID() Identity { return a.ownerAccountID }

func (a *Activity) SourceAccountID() Identity { return a.sourceAccountID }

func (a *Activity) TargetAccountID() Identity { return a.targetAccountID }

func (a *Activity) Timestamp() time.Time { return a.timestamp }

func (a *Activity) Amount() Money { return a.amount }
