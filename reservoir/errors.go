package reservoir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates an invalid reservoir configuration or
	// step input: storageMax ≤ 0, storage outside [0, storageMax], negative
	// demand or inflow, a non-finite value, an empty horizon, or a
	// non-positive trajectory count.
	ErrInvalidParameter = errors.New("reservoir: invalid parameter")
	// ErrLengthMismatch indicates inflow and demand series of different lengths.
	ErrLengthMismatch = errors.New("reservoir: inflow and demand series must have equal length")
)

// wrapInvalid attaches formatted detail to ErrInvalidParameter so callers can
// still match it with errors.Is.
func wrapInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
