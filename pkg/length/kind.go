// SPDX-License-Identifier: MPL-2.0

package length

import "fmt"

// Kind identifies a conversion target of Length.ConvertTo.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it is never a valid conversion target.
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
	KindRune
	KindTime
	// KindLength converts a Length to itself.
	KindLength
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindDecimal: "decimal",
	KindString:  "string",
	KindRune:    "rune",
	KindTime:    "time",
	KindLength:  "Length",
}

// String returns the Go-like name of the kind, or "Kind(n)" for values
// outside the defined set.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsValid reports whether k is one of the defined conversion kinds.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k <= KindLength
}
