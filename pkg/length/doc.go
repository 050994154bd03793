// SPDX-License-Identifier: MPL-2.0

// Package length provides Length, an immutable non-negative physical length,
// and Unit, the descriptor of the unit a Length was expressed in.
//
// Every Length carries three things: the magnitude the caller supplied, the
// unit that magnitude is expressed in, and the canonical value in meters.
// Equality, ordering, hashing and every numeric conversion work on the
// canonical meters value, so 1 m and 100 cm are equal.
//
// Binary arithmetic keeps the unit of its operands when both sides share the
// same *Unit (pointer identity). Otherwise the result is computed from the
// meters values and expressed in Meters:
//
//	a, _ := length.New(5, length.Inches)
//	b, _ := length.New(3, length.Inches)
//	d, _ := a.Sub(b) // 2 in
//
//	c, _ := length.New(1, length.Meters)
//	e, _ := c.Add(b) // 1.0762 m
//
// No operation can produce a negative, NaN or infinite Length; those fail
// with an error wrapping ErrInvalidArgument instead.
//
// This package is a leaf dependency: it imports no other package of this
// module. Unit and Length are safe for concurrent use since neither is ever
// mutated after construction.
package length
