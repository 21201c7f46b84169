package entity

import (
	"errors"
	"fmt"
)

var (
	ErrIDIsRequired          = errors.New("id is required")
	ErrNotFound              = errors.New("record not found")
	ErrInvalidLocation       = errors.New("location requires a valid (longitude, latitude) pair")
	ErrGarageNotApproved     = errors.New("garage is not approved")
	ErrAlreadyAssigned       = errors.New("request already claimed by another garage")
	ErrStatusConflict        = errors.New("request status changed concurrently")
	ErrOwnershipMismatch     = errors.New("mechanic does not belong to the assigned garage")
	ErrApprovalSettled       = errors.New("approval status already settled")
	ErrDuplicateIdentity     = errors.New("identity already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrContactFieldsRequired = errors.New("name, email and message are required")
	ErrCapabilityDenied      = errors.New("caller may not perform this operation")
)

var ErrInvalidStateTransition = errors.New("invalid state transition")

// InvalidTransitionError reports the exact (state, event) pair that was
// refused. It unwraps to ErrInvalidStateTransition so callers can match
// either way.
type InvalidTransitionError struct {
	State string
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: event %q in state %q", e.Event, e.State)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidStateTransition }

func invalidTransition(state, event string) error {
	return &InvalidTransitionError{State: state, Event: event}
}
