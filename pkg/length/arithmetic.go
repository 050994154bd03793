// SPDX-License-Identifier: MPL-2.0

package length

const (
	opDecrement = "decrement"
	opSubtract  = "subtract"
)

// Inc returns a Length one unit longer than l, in the units of l.
func (l Length) Inc() (Length, error) {
	return New(l.value+1, l.Units())
}

// Dec returns a Length one unit shorter than l, in the units of l.
// It fails with a *NegativeResultError when Value is below 1.
func (l Length) Dec() (Length, error) {
	if l.value < 1 {
		return Length{}, &NegativeResultError{Op: opDecrement, Left: l}
	}
	return New(l.value-1, l.Units())
}

// Add returns l + o. See combine for how the result unit is chosen.
func (l Length) Add(o Length) (Length, error) {
	return l.combine(o, func(a, b float64) float64 { return a + b })
}

// Sub returns l - o. It fails with a *NegativeResultError when o is longer
// than l, whatever the units of either side.
func (l Length) Sub(o Length) (Length, error) {
	if l.Less(o) {
		return Length{}, &NegativeResultError{Op: opSubtract, Left: l, Right: o}
	}
	return l.combine(o, func(a, b float64) float64 { return a - b })
}

// Mul returns l * o.
func (l Length) Mul(o Length) (Length, error) {
	return l.combine(o, func(a, b float64) float64 { return a * b })
}

// Div returns l / o. It fails with ErrDivideByZero when o is zero.
func (l Length) Div(o Length) (Length, error) {
	if o.EqualFloat(0) {
		return Length{}, ErrDivideByZero
	}
	return l.combine(o, func(a, b float64) float64 { return a / b })
}

// SameUnits reports whether l and o were built with the very same *Unit.
func (l Length) SameUnits(o Length) bool { return l.Units() == o.Units() }

// combine applies op to the magnitudes of l and o when both share the same
// *Unit, keeping that unit. Otherwise op is applied to the meters values and
// the result is in Meters. The result is always revalidated by New.
func (l Length) combine(o Length, op func(a, b float64) float64) (Length, error) {
	if l.SameUnits(o) {
		return New(op(l.value, o.value), l.Units())
	}
	return New(op(l.meters, o.meters), Meters)
}
