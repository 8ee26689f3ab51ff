/*
errors.go - Centralized error types for the projection engine

PURPOSE:
  All error kinds in one place. The engine fails fast: any of these means
  no Projection is produced and the caller should suppress dependent
  displays (metrics and chart) rather than render defaults or zeros.

ERROR CATEGORIES:
  1. Date errors      - Lease not yet underway relative to "today"
  2. Parameter errors - Inputs outside their documented domain

USAGE:
  Callers match on kind, not message:

    if errors.Is(err, lease.ErrFutureLease) {
        // start date is after "today"
    }

  None of these are retryable; they are deterministic input failures.

SEE ALSO:
  - validate.go: Produces these errors
  - api/handlers.go: Maps them to HTTP status codes
*/
package lease

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrFutureLease is returned when the start date is after the as-of
	// date: the lease cannot have produced any mileage yet.
	ErrFutureLease = errors.New("lease starts in the future")

	// ErrNotStarted is returned when zero or fewer whole days have elapsed.
	// Kept distinct from ErrFutureLease because it also catches the
	// same-day edge case where the start date is not in the future.
	ErrNotStarted = errors.New("lease has not started")

	// ErrInvalidParameter is returned when an input is outside its
	// documented domain (non-positive duration or allowance, negative
	// miles or price, zero dates).
	ErrInvalidParameter = errors.New("invalid parameter")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FutureLeaseError reports a start date after the as-of date.
type FutureLeaseError struct {
	StartDate Date
	AsOf      Date
}

func (e *FutureLeaseError) Error() string {
	return fmt.Sprintf("lease start %s is after %s", e.StartDate, e.AsOf)
}

func (e *FutureLeaseError) Unwrap() error {
	return ErrFutureLease
}

// NotStartedError reports zero or negative elapsed days.
type NotStartedError struct {
	StartDate Date
	AsOf      Date
}

func (e *NotStartedError) Error() string {
	return fmt.Sprintf("lease starting %s has no elapsed days as of %s", e.StartDate, e.AsOf)
}

func (e *NotStartedError) Unwrap() error {
	return ErrNotStarted
}

// InvalidParameterError reports which input failed and why.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
// Every engine error currently is; the helper exists so HTTP or CLI
// frontends can map kinds without enumerating sentinels.
func IsClientError(err error) bool {
	return errors.Is(err, ErrFutureLease) ||
		errors.Is(err, ErrNotStarted) ||
		errors.Is(err, ErrInvalidParameter)
}
