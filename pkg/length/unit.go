// SPDX-License-Identifier: MPL-2.0

package length

// Unit describes a unit of length: the multiplier that converts a value in
// this unit to meters, plus a display name and abbreviation.
//
// Units are compared by identity. Two *Unit values built from the same
// multiplier, name and abbreviation are different units as far as the
// same-unit preservation rule of Length arithmetic is concerned.
type Unit struct {
	multiplier   float64
	name         string
	abbreviation string
}

// NewUnit returns a Unit whose values convert to meters by multiplying with
// multiplier. The arguments are stored verbatim; a non-positive multiplier is
// the caller's responsibility.
func NewUnit(multiplier float64, name, abbreviation string) *Unit {
	return &Unit{
		multiplier:   multiplier,
		name:         name,
		abbreviation: abbreviation,
	}
}

// Multiplier returns the factor such that meters = value * Multiplier().
func (u *Unit) Multiplier() float64 { return u.orMeters().multiplier }

// Name returns the long name of the unit, e.g. "centimeters".
func (u *Unit) Name() string { return u.orMeters().name }

// Abbreviation returns the short name of the unit, e.g. "cm".
func (u *Unit) Abbreviation() string { return u.orMeters().abbreviation }

// String returns the abbreviation of the unit.
func (u *Unit) String() string { return u.Abbreviation() }

// orMeters maps the nil unit to Meters, matching the default of New.
func (u *Unit) orMeters() *Unit {
	if u == nil {
		return Meters
	}
	return u
}
