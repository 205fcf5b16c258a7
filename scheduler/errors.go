package scheduler

import "fmt"

// Failure taxonomy for booking and state-transition operations. Controllers
// translate these into HTTP status codes (validation/policy/conflict -> 400,
// not-found -> 404, forbidden -> 403).

type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

type NotFoundError struct{ msg string }

func (e *NotFoundError) Error() string { return e.msg }

func NotFoundf(format string, args ...any) error {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

type ForbiddenError struct{ msg string }

func (e *ForbiddenError) Error() string { return e.msg }

func Forbiddenf(format string, args ...any) error {
	return &ForbiddenError{msg: fmt.Sprintf(format, args...)}
}

// PolicyError covers notice-period violations, terminal-state transitions and
// the unpaid gate.
type PolicyError struct{ msg string }

func (e *PolicyError) Error() string { return e.msg }

func Policyf(format string, args ...any) error {
	return &PolicyError{msg: fmt.Sprintf(format, args...)}
}

// ConflictError covers overlapping bookings and availability window breaches.
type ConflictError struct{ msg string }

func (e *ConflictError) Error() string { return e.msg }

func Conflictf(format string, args ...any) error {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}
