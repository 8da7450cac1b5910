package domain

import "errors"

var (
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidAllocation = errors.New("invalid allocation")
	ErrInvalidIdentity   = errors.New("identity value must be non-negative")
	ErrAlreadyDecided    = errors.New("identity already decided")
	ErrUndecidedIdentity = errors.New("identity is undecided")
	ErrInvalidActivity   = errors.New("invalid activity")
	ErrEmptyWindow       = errors.New("activity window is empty")
)
