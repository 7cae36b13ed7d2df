package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig matches every *InvalidConfigError via errors.Is
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidDraw matches every *InvalidDrawError via errors.Is
	ErrInvalidDraw = errors.New("invalid random draw")
	// ErrShockOutOfRange matches every *ShockOutOfRangeError via errors.Is
	ErrShockOutOfRange = errors.New("shock out of range")
)

// InvalidConfigError reports a configuration rejected before any simulation state exists
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// NewInvalidConfig builds an InvalidConfigError with a formatted reason
func NewInvalidConfig(field, format string, args ...any) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvalidDrawError reports a uniform draw outside the open interval (0,1)
type InvalidDrawError struct {
	Draw float64
}

func (e *InvalidDrawError) Error() string {
	return fmt.Sprintf("invalid random draw %v: uniform source must stay inside (0,1)", e.Draw)
}

func (e *InvalidDrawError) Is(target error) bool { return target == ErrInvalidDraw }

// ShockOutOfRangeError is non-fatal: the shock age lies outside the simulated ages
type ShockOutOfRangeError struct {
	Age   int
	First int
	Last  int
}

func (e *ShockOutOfRangeError) Error() string {
	return fmt.Sprintf("shock at age %d outside simulated ages [%d, %d]", e.Age, e.First, e.Last)
}

func (e *ShockOutOfRangeError) Is(target error) bool { return target == ErrShockOutOfRange }
