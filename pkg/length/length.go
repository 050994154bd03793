// SPDX-License-Identifier: MPL-2.0

package length

import (
	"cmp"
	"encoding/binary"
	"math"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Length is an immutable, non-negative physical length.
//
// The zero value is a valid length of 0 meters. Any other Length must be
// built with New or FromMeters, which reject NaN, negative and infinite
// values. Lengths are plain values: copy them freely.
type Length struct {
	value  float64
	units  *Unit
	meters float64
}

// New returns a Length of value expressed in units. A nil units means Meters.
//
// New fails with an *InvalidLengthError (wrapping ErrInvalidArgument) when
// value is NaN, negative (including -Inf) or +Inf, or when its meters
// equivalent is not a non-negative finite number. The latter happens for huge
// values and for units whose multiplier is NaN, negative or infinite.
func New(value float64, units *Unit) (Length, error) {
	if units == nil {
		units = Meters
	}
	if math.IsNaN(value) || value < 0 || math.IsInf(value, 1) {
		return Length{}, &InvalidLengthError{Value: value, Units: units}
	}

	meters := value * units.multiplier
	if math.IsNaN(meters) || meters < 0 || math.IsInf(meters, 1) {
		return Length{}, &InvalidLengthError{Value: meters, Units: Meters}
	}

	return Length{value: value, units: units, meters: meters}, nil
}

// FromMeters returns a Length of v meters. It is the explicit conversion from
// a raw float64 and fails exactly like New.
func FromMeters(v float64) (Length, error) {
	return New(v, Meters)
}

// Value returns the magnitude of the length in its own units.
func (l Length) Value() float64 { return l.value }

// Units returns the unit Value is expressed in.
func (l Length) Units() *Unit {
	if l.units == nil {
		return Meters
	}
	return l.units
}

// InMeters returns the canonical value of the length in meters.
func (l Length) InMeters() float64 { return l.meters }

// Equal reports whether l and o have the same meters value. The units the two
// lengths were built with play no part.
func (l Length) Equal(o Length) bool { return l.meters == o.meters }

// EqualFloat reports whether the meters value of l equals f.
func (l Length) EqualFloat(f float64) bool { return l.meters == f }

// Compare returns -1 if l is shorter than o, +1 if it is longer and 0 if both
// have the same meters value.
func (l Length) Compare(o Length) int { return cmp.Compare(l.meters, o.meters) }

// CompareAny compares l with an arbitrary value. A nil value (or a nil
// *Length) sorts before every Length, so CompareAny returns +1 for it.
// Values that are neither Length nor *Length yield a *NotALengthError.
func (l Length) CompareAny(v any) (int, error) {
	switch o := v.(type) {
	case nil:
		return 1, nil
	case Length:
		return l.Compare(o), nil
	case *Length:
		if o == nil {
			return 1, nil
		}
		return l.Compare(*o), nil
	default:
		return 0, &NotALengthError{Value: v}
	}
}

// Less reports whether l is shorter than o.
func (l Length) Less(o Length) bool { return l.meters < o.meters }

// Greater reports whether l is longer than o.
func (l Length) Greater(o Length) bool { return l.meters > o.meters }

// Hash returns a hash of the meters value. Lengths that are Equal have the
// same hash.
func (l Length) Hash() uint64 {
	m := l.meters
	if m == 0 {
		// -0 and +0 are equal, so they must hash alike.
		m = 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(m))
	return xxhash.Sum64(buf[:])
}

// String returns the meters value in the shortest form that round-trips.
func (l Length) String() string {
	return strconv.FormatFloat(l.meters, 'g', -1, 64)
}

// Sort sorts lengths into non-decreasing meters order. Equal lengths keep
// their relative order.
func Sort(lengths []Length) {
	slices.SortStableFunc(lengths, Length.Compare)
}
