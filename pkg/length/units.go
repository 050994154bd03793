// SPDX-License-Identifier: MPL-2.0

package length

// Predefined units. They are created once at package initialization and never
// modified afterwards.
var (
	// Meters is the base unit and the default unit of New.
	Meters = NewUnit(1.0, "meters", "m")
	// Centimeters are a hundredth of a meter.
	Centimeters = NewUnit(0.01, "centimeters", "cm")
	// Millimeters are a thousandth of a meter.
	Millimeters = NewUnit(0.001, "millimeters", "mm")
	// Inches are exactly 2.54 centimeters.
	Inches = NewUnit(0.0254, "inches", "in")
	// Feet are exactly 12 inches.
	Feet = NewUnit(0.3048, "feet", "ft")
)

// Predefined returns the predefined units, base unit first.
// The returned slice is a fresh copy; the units themselves are shared.
func Predefined() []*Unit {
	return []*Unit{Meters, Centimeters, Millimeters, Inches, Feet}
}
