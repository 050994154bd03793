// SPDX-License-Identifier: MPL-2.0

// Package unitcatalog keeps a set of length units addressable by name or
// abbreviation.
//
// A Catalog starts out with the predefined units of package length and hands
// out those very *length.Unit values, so lengths built through a catalog keep
// the same-unit preservation rule of length arithmetic:
//
//	c := unitcatalog.New()
//	in, _ := c.Length(5, "in")
//	more, _ := c.Length(3, "inches")
//	sum, _ := in.Add(more) // 8 in
//
// Custom units can be registered one at a time, or decoded in bulk from a
// CUE document or a viper instance the caller has already populated. The
// catalog never reads files itself.
package unitcatalog
