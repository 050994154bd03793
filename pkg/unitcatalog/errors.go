// SPDX-License-Identifier: MPL-2.0

package unitcatalog

import (
	"errors"
	"fmt"

	"github.com/mcgowans/length/pkg/length"
)

var (
	// ErrInvalidUnit is the sentinel error wrapped by InvalidUnitError.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrDuplicateUnit is the sentinel error wrapped by DuplicateUnitError.
	ErrDuplicateUnit = errors.New("duplicate unit")

	// ErrUnknownUnit is the sentinel error wrapped by UnknownUnitError.
	ErrUnknownUnit = errors.New("unknown unit")
)

type (
	// InvalidUnitError is returned when a unit cannot be registered because
	// it is nil, unnamed, or has a multiplier that is not a positive finite
	// number.
	InvalidUnitError struct {
		Unit   *length.Unit
		Reason string
	}

	// DuplicateUnitError is returned when a name or abbreviation is already
	// taken by a different unit.
	DuplicateUnitError struct {
		Key      string
		Existing *length.Unit
	}

	// UnknownUnitError is returned when no unit matches a lookup key.
	UnknownUnitError struct {
		Key string
	}
)

// Error implements the error interface for InvalidUnitError.
func (e *InvalidUnitError) Error() string {
	if e.Unit == nil {
		return "invalid unit: " + e.Reason
	}
	return fmt.Sprintf("invalid unit %q (%s): %s", e.Unit.Name(), e.Unit.Abbreviation(), e.Reason)
}

// Unwrap returns ErrInvalidUnit for errors.Is() compatibility.
func (e *InvalidUnitError) Unwrap() error { return ErrInvalidUnit }

// Error implements the error interface for DuplicateUnitError.
func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit key %q is already used by %q", e.Key, e.Existing.Name())
}

// Unwrap returns ErrDuplicateUnit for errors.Is() compatibility.
func (e *DuplicateUnitError) Unwrap() error { return ErrDuplicateUnit }

// Error implements the error interface for UnknownUnitError.
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Key)
}

// Unwrap returns ErrUnknownUnit for errors.Is() compatibility.
func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }
