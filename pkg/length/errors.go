// SPDX-License-Identifier: MPL-2.0

package length

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is wrapped by every error raised for an operand that
	// would break the Length invariant: NaN, negative or +Inf values, a
	// negative arithmetic result, or a comparison against a non-Length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivideByZero is returned by Length.Div when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero length")

	// ErrOverflow is the sentinel error wrapped by OverflowError.
	ErrOverflow = errors.New("value out of range")

	// ErrInvalidCast is the sentinel error wrapped by InvalidCastError.
	ErrInvalidCast = errors.New("invalid cast")
)

type (
	// InvalidLengthError is returned when a Length would be built from a
	// NaN, negative or positive-infinite value.
	InvalidLengthError struct {
		Value float64
		Units *Unit
	}

	// NegativeResultError is returned when subtracting or decrementing would
	// produce a negative Length.
	NegativeResultError struct {
		Op    string
		Left  Length
		Right Length
	}

	// NotALengthError is returned by Length.CompareAny for operands that are
	// neither a Length nor a *Length.
	NotALengthError struct {
		Value any
	}

	// OverflowError is returned when the rounded meters value does not fit
	// in the requested integer kind.
	OverflowError struct {
		Value float64
		Kind  Kind
	}

	// InvalidCastError is returned for conversions a Length never supports
	// (rune, time) and for unknown conversion kinds.
	InvalidCastError struct {
		Kind Kind
	}
)

// Error implements the error interface for InvalidLengthError.
func (e *InvalidLengthError) Error() string {
	switch {
	case math.IsNaN(e.Value):
		return "invalid length: a length must be a valid positive number"
	case e.Value < 0:
		return fmt.Sprintf("invalid length %g: a length must be positive", e.Value)
	default:
		return fmt.Sprintf("invalid length %g %s: a length must be a positive, finite number", e.Value, e.Units)
	}
}

// Unwrap returns ErrInvalidArgument for errors.Is() compatibility.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidArgument }

// Error implements the error interface for NegativeResultError.
func (e *NegativeResultError) Error() string {
	if e.Op == opDecrement {
		return fmt.Sprintf("cannot decrement %g %s: would generate a negative result", e.Left.Value(), e.Left.Units())
	}
	return fmt.Sprintf("cannot %s %s from %s: would generate a negative result", e.Op, e.Right, e.Left)
}

// Unwrap returns ErrInvalidArgument for errors.Is() compatibility.
func (e *NegativeResultError) Unwrap() error { return ErrInvalidArgument }

// Error implements the error interface for NotALengthError.
func (e *NotALengthError) Error() string {
	return fmt.Sprintf("cannot compare with %T: object is not a Length", e.Value)
}

// Unwrap returns ErrInvalidArgument for errors.Is() compatibility.
func (e *NotALengthError) Unwrap() error { return ErrInvalidArgument }

// Error implements the error interface for OverflowError.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("length %g m overflows %s", e.Value, e.Kind)
}

// Unwrap returns ErrOverflow for errors.Is() compatibility.
func (e *OverflowError) Unwrap() error { return ErrOverflow }

// Error implements the error interface for InvalidCastError.
func (e *InvalidCastError) Error() string {
	return fmt.Sprintf("invalid cast from Length to %s", e.Kind)
}

// Unwrap returns ErrInvalidCast for errors.Is() compatibility.
func (e *InvalidCastError) Unwrap() error { return ErrInvalidCast }
