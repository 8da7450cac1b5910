package domain

import (
	"fmt"
	"strconv"
)

// Identity is a possibly-undecided account or activity identifier. A
// freshly created entity carries an undecided identity until a persistence
// collaborator assigns it a real key; the undecided -> decided transition
// happens exactly once.
type Identity struct {
	value   int64
	decided bool
}

// Reserved external-bank counterparties for fee and interest postings.
// These sit outside the non-negative range NewIdentity accepts; no
// customer account can collide with them.
var (
	ExternalFeeSinkID        = Identity{value: -1, decided: true}
	ExternalInterestSourceID = Identity{value: -2, decided: true}
)

func NewIdentity(value int64) (Identity, error) {
	if value < 0 {
		return Identity{}, fmt.Errorf("NewIdentity: %d: %w", value, ErrInvalidIdentity)
	}
	return Identity{value: value, decided: true}, nil
}

// MustIdentity is for fixtures and tests with known-good values.
func MustIdentity(value int64) Identity {
	id, err := NewIdentity(value)
	if err != nil {
		panic(err)
	}
	return id
}

func UndecidedIdentity() Identity { return Identity{} }

func (id Identity) IsUndecided() bool { return !id.decided }

// Decide assigns the value. A decided identity is immutable; a second call
// fails with ErrAlreadyDecided.
func (id *Identity) Decide(value int64) error {
	if id.decided {
		return fmt.Errorf("Decide: %w", ErrAlreadyDecided)
	}
	if value < 0 {
		return fmt.Errorf("Decide: %d: %w", value, ErrInvalidIdentity)
	}
	id.value = value
	id.decided = true
	return nil
}

func (id Identity) Value() (int64, error) {
	if !id.decided {
		return 0, fmt.Errorf("Value: %w", ErrUndecidedIdentity)
	}
	return id.value, nil
}

// Equal compares by value; an undecided identity equals nothing, itself
// included.
func (id Identity) Equal(other Identity) bool {
	return id.decided && other.decided && id.value == other.value
}

func (id Identity) String() string {
	if !id.decided {
		return "undecided"
	}
	return strconv.FormatInt(id.value, 10)
}
