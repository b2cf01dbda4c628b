package montecarlo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a malformed distribution spec, a
	// non-positive sample count, or an out-of-range quantile probability.
	ErrInvalidParameter = errors.New("montecarlo: invalid parameter")
	// ErrEmptySample indicates an operation on a sample set with no values.
	ErrEmptySample = errors.New("montecarlo: sample set must contain at least one value")
	// ErrDomain indicates a transfer function was evaluated outside its
	// valid domain (a finite input produced NaN or ±Inf).
	ErrDomain = errors.New("montecarlo: transfer function evaluated outside its domain")
	// ErrNilTransfer indicates Apply was called with a nil transfer function.
	ErrNilTransfer = errors.New("montecarlo: transfer function must be non-nil")
)

// wrapInvalid attaches formatted detail to ErrInvalidParameter so callers can
// still match it with errors.Is.
func wrapInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
