// SPDX-License-Identifier: MPL-2.0

package length

import (
	"math"
	"time"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
)

// Float64 returns the meters value. It is the implicit widening of a Length
// to a raw number.
func (l Length) Float64() float64 { return l.meters }

// Float32 returns the meters value as a float32. Values beyond the float32
// range become +Inf.
func (l Length) Float32() float32 {
	if l.meters > math.MaxFloat32 {
		return float32(math.Inf(1))
	}
	return float32(l.meters)
}

// Bool reports whether the length is non-zero.
func (l Length) Bool() bool { return l.meters != 0 }

// Int8 returns the meters value rounded half to even.
func (l Length) Int8() (int8, error) {
	return toInteger[int8](l.meters, KindInt8, math.MinInt8, math.MaxInt8)
}

// Int16 returns the meters value rounded half to even.
func (l Length) Int16() (int16, error) {
	return toInteger[int16](l.meters, KindInt16, math.MinInt16, math.MaxInt16)
}

// Int32 returns the meters value rounded half to even.
func (l Length) Int32() (int32, error) {
	return toInteger[int32](l.meters, KindInt32, math.MinInt32, math.MaxInt32)
}

// Int64 returns the meters value rounded half to even.
func (l Length) Int64() (int64, error) {
	return toInteger[int64](l.meters, KindInt64, math.MinInt64, math.MaxInt64)
}

// Uint8 returns the meters value rounded half to even.
func (l Length) Uint8() (uint8, error) {
	return toInteger[uint8](l.meters, KindUint8, 0, math.MaxUint8)
}

// Uint16 returns the meters value rounded half to even.
func (l Length) Uint16() (uint16, error) {
	return toInteger[uint16](l.meters, KindUint16, 0, math.MaxUint16)
}

// Uint32 returns the meters value rounded half to even.
func (l Length) Uint32() (uint32, error) {
	return toInteger[uint32](l.meters, KindUint32, 0, math.MaxUint32)
}

// Uint64 returns the meters value rounded half to even.
func (l Length) Uint64() (uint64, error) {
	return toInteger[uint64](l.meters, KindUint64, 0, math.MaxUint64)
}

// Decimal returns the shortest decimal that round-trips to the meters value.
func (l Length) Decimal() (*apd.Decimal, error) {
	return new(apd.Decimal).SetFloat64(l.meters)
}

// Rune always fails: a Length has no character representation.
func (l Length) Rune() (rune, error) {
	return 0, &InvalidCastError{Kind: KindRune}
}

// Time always fails: a Length has no date or time representation.
func (l Length) Time() (time.Time, error) {
	return time.Time{}, &InvalidCastError{Kind: KindTime}
}

// NativeKind returns the kind of the canonical meters value.
func (l Length) NativeKind() Kind { return KindFloat64 }

// ConvertTo converts l to the Go type identified by k:
//
//	KindBool                      bool
//	KindInt8 ... KindUint64       int8 ... uint64
//	KindFloat32, KindFloat64      float32, float64
//	KindDecimal                   *apd.Decimal
//	KindString                    string, formatted for tag
//	KindLength                    Length (l itself)
//
// KindRune, KindTime and any undefined kind fail with an *InvalidCastError.
// On failure the returned value is a nil interface. tag only affects
// KindString.
func (l Length) ConvertTo(k Kind, tag language.Tag) (any, error) {
	switch k {
	case KindBool:
		return l.Bool(), nil
	case KindInt8:
		return boxed(l.Int8())
	case KindInt16:
		return boxed(l.Int16())
	case KindInt32:
		return boxed(l.Int32())
	case KindInt64:
		return boxed(l.Int64())
	case KindUint8:
		return boxed(l.Uint8())
	case KindUint16:
		return boxed(l.Uint16())
	case KindUint32:
		return boxed(l.Uint32())
	case KindUint64:
		return boxed(l.Uint64())
	case KindFloat32:
		return l.Float32(), nil
	case KindFloat64:
		return l.Float64(), nil
	case KindDecimal:
		return boxed(l.Decimal())
	case KindString:
		return l.Format(tag), nil
	case KindRune:
		return boxed(l.Rune())
	case KindTime:
		return boxed(l.Time())
	case KindLength:
		return l, nil
	default:
		return nil, &InvalidCastError{Kind: k}
	}
}

// boxed returns v as an interface, or a nil interface when err is set.
func boxed[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// toInteger rounds v half to even and converts it to T, whose bounds are lo
// and hi. The upper test uses hi+1 since float64(hi) is inexact for the
// 64-bit kinds.
func toInteger[T constraints.Integer](v float64, kind Kind, lo, hi T) (T, error) {
	r := math.RoundToEven(v)
	if r < float64(lo) || r >= float64(hi)+1 {
		return 0, &OverflowError{Value: v, Kind: kind}
	}
	return T(r), nil
}
