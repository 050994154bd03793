// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes caller-supplied CUE documents into Go values after
// validating them against an embedded schema definition:
//
//  1. Compile the schema and look up its root definition
//  2. Compile the document and unify it with that definition
//  3. Validate, then decode into T
//
// Errors carry JSON-path locations such as "units[1].multiplier" so callers
// can point at the offending entry.
package cueutil
