// SPDX-License-Identifier: MPL-2.0

package length

import (
	"errors"
	"math"
	"testing"
)

func mustNew(t *testing.T, value float64, units *Unit) Length {
	t.Helper()

	l, err := New(value, units)
	if err != nil {
		t.Fatalf("New(%v, %v) unexpected error: %v", value, units, err)
	}
	return l
}

func TestNew_ValidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"tenth", 0.1},
		{"one", 1},
		{"large", 100000},
		{"max float", math.MaxFloat64},
		{"smallest nonzero", math.SmallestNonzeroFloat64},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := New(tt.value, nil)
			if err != nil {
				t.Fatalf("New(%v, nil) unexpected error: %v", tt.value, err)
			}
			if l.InMeters() != tt.value {
				t.Errorf("InMeters() = %v, want %v", l.InMeters(), tt.value)
			}
			if l.Value() != tt.value {
				t.Errorf("Value() = %v, want %v", l.Value(), tt.value)
			}
			if l.Units() != Meters {
				t.Errorf("Units() = %v, want Meters", l.Units())
			}
		})
	}
}

func TestNew_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		units *Unit
	}{
		{"minus one", -1, nil},
		{"large negative", -100000, nil},
		{"min float", -math.MaxFloat64, nil},
		{"negative infinity", math.Inf(-1), nil},
		{"positive infinity", math.Inf(1), nil},
		{"NaN", math.NaN(), nil},
		{"negative inches", -0.5, Inches},
		{"meters overflow", math.MaxFloat64, NewUnit(10, "decameters", "dam")},
		{"NaN multiplier", 1, NewUnit(math.NaN(), "broken", "b")},
		{"negative multiplier", 1, NewUnit(-1, "backwards", "bw")},
		{"infinite multiplier", 1, NewUnit(math.Inf(1), "endless", "e")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.value, tt.units)
			if err == nil {
				t.Fatalf("New(%v, %v) returned no error", tt.value, tt.units)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error should wrap ErrInvalidArgument, got: %v", err)
			}
			var lenErr *InvalidLengthError
			if !errors.As(err, &lenErr) {
				t.Errorf("error should be *InvalidLengthError, got: %T", err)
			}
			if err.Error() == "" {
				t.Error("expected non-empty error message")
			}
		})
	}
}

func TestNew_UnitConversion(t *testing.T) {
	t.Parallel()

	l := mustNew(t, 100, Centimeters)
	if l.InMeters() != 1.0 {
		t.Errorf("100 cm InMeters() = %v, want 1", l.InMeters())
	}
	if l.Value() != 100 {
		t.Errorf("100 cm Value() = %v, want 100", l.Value())
	}
	if l.Units() != Centimeters {
		t.Errorf("Units() = %v, want Centimeters", l.Units())
	}

	ft := mustNew(t, 10, Feet)
	if got, want := ft.InMeters(), 10*Feet.Multiplier(); got != want {
		t.Errorf("10 ft InMeters() = %v, want %v", got, want)
	}
}

func TestFromMeters(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 0.1, 1, 100000, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		l, err := FromMeters(v)
		if err != nil {
			t.Fatalf("FromMeters(%v) unexpected error: %v", v, err)
		}
		if l.Float64() != v {
			t.Errorf("FromMeters(%v).Float64() = %v", v, l.Float64())
		}
		back, err := FromMeters(l.Float64())
		if err != nil {
			t.Fatalf("FromMeters round trip unexpected error: %v", err)
		}
		if !back.Equal(l) {
			t.Errorf("round trip of %v changed the value to %v", v, back)
		}
	}

	if _, err := FromMeters(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FromMeters(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestLength_ZeroValue(t *testing.T) {
	t.Parallel()

	var l Length
	if l.Units() != Meters {
		t.Errorf("zero Length Units() = %v, want Meters", l.Units())
	}
	if !l.Equal(mustNew(t, 0, Inches)) {
		t.Error("zero Length should equal 0 in")
	}
	if l.String() != "0" {
		t.Errorf("zero Length String() = %q, want %q", l.String(), "0")
	}
}

func TestLength_Equal(t *testing.T) {
	t.Parallel()

	equal := []float64{0, 0.1, 1, 100000, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range equal {
		a := mustNew(t, v, nil)
		b := mustNew(t, v, nil)
		if !a.Equal(b) {
			t.Errorf("New(%v).Equal(New(%v)) = false", v, v)
		}
		if !a.EqualFloat(v) {
			t.Errorf("New(%v).EqualFloat(%v) = false", v, v)
		}
	}

	unequal := [][2]float64{
		{0, 1},
		{0.1, 0.5},
		{1, 100},
		{100000, 100000.001},
		{math.MaxFloat64, math.MaxFloat64 / 2},
		{math.SmallestNonzeroFloat64, 0},
	}
	for _, p := range unequal {
		a := mustNew(t, p[0], nil)
		b := mustNew(t, p[1], nil)
		if a.Equal(b) {
			t.Errorf("New(%v).Equal(New(%v)) = true", p[0], p[1])
		}
		if a.EqualFloat(p[1]) {
			t.Errorf("New(%v).EqualFloat(%v) = true", p[0], p[1])
		}
	}

	if !mustNew(t, 1.0, Meters).Equal(mustNew(t, 100, Centimeters)) {
		t.Error("1 m should equal 100 cm")
	}
}

func TestLength_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b float64
		want int
	}{
		{1, 2, -1},
		{0, 20, -1},
		{math.SmallestNonzeroFloat64, math.MaxFloat64, -1},
		{2, 1, 1},
		{20, 0, 1},
		{math.MaxFloat64, math.SmallestNonzeroFloat64, 1},
		{0, 0, 0},
		{20, 20, 0},
		{math.MaxFloat64, math.MaxFloat64, 0},
	}

	for _, tt := range tests {
		a := mustNew(t, tt.a, nil)
		b := mustNew(t, tt.b, nil)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := a.Less(b); got != (tt.want < 0) {
			t.Errorf("Less(%v, %v) = %v", tt.a, tt.b, got)
		}
		if got := a.Greater(b); got != (tt.want > 0) {
			t.Errorf("Greater(%v, %v) = %v", tt.a, tt.b, got)
		}
	}

	if got := mustNew(t, 2, nil).Compare(mustNew(t, 200, Centimeters)); got != 0 {
		t.Errorf("2 m vs 200 cm Compare() = %d, want 0", got)
	}
	// 12*0.0254 is 0.30479999999999996 in float64; no tolerance is applied.
	if got := mustNew(t, 1, Feet).Compare(mustNew(t, 12, Inches)); got != 1 {
		t.Errorf("1 ft vs 12 in Compare() = %d, want 1", got)
	}
}

func TestLength_CompareAny(t *testing.T) {
	t.Parallel()

	l := mustNew(t, 2, nil)
	shorter := mustNew(t, 1, nil)
	var nilLength *Length

	tests := []struct {
		name    string
		other   any
		want    int
		wantErr bool
	}{
		{"nil", nil, 1, false},
		{"nil pointer", nilLength, 1, false},
		{"value", shorter, 1, false},
		{"pointer", &shorter, 1, false},
		{"equal", mustNew(t, 200, Centimeters), 0, false},
		{"longer", mustNew(t, 3, nil), -1, false},
		{"float is not a Length", 1.0, 0, true},
		{"string is not a Length", "2", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := l.CompareAny(tt.other)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("CompareAny(%v) error = %v, want ErrInvalidArgument", tt.other, err)
				}
				var nle *NotALengthError
				if !errors.As(err, &nle) {
					t.Errorf("error should be *NotALengthError, got: %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompareAny(%v) unexpected error: %v", tt.other, err)
			}
			if got != tt.want {
				t.Errorf("CompareAny(%v) = %d, want %d", tt.other, got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	tests := [][]float64{
		{1, 2, 3},
		{3, 2, 1},
		{1, 1, 1},
		{1, math.MaxFloat64, math.SmallestNonzeroFloat64},
	}

	for _, values := range tests {
		lengths := make([]Length, 0, len(values))
		for _, v := range values {
			lengths = append(lengths, mustNew(t, v, nil))
		}
		Sort(lengths)
		for i := 1; i < len(lengths); i++ {
			if lengths[i].Less(lengths[i-1]) {
				t.Errorf("Sort(%v): %v sorted after %v", values, lengths[i], lengths[i-1])
			}
		}
	}

	mixed := []Length{mustNew(t, 1, Feet), mustNew(t, 1, Inches), mustNew(t, 1, Meters), mustNew(t, 1, Centimeters)}
	Sort(mixed)
	wantUnits := []*Unit{Centimeters, Inches, Feet, Meters}
	for i, u := range wantUnits {
		if mixed[i].Units() != u {
			t.Errorf("mixed[%d] = %v %s, want unit %s", i, mixed[i].Value(), mixed[i].Units(), u)
		}
	}
}

func TestLength_Hash(t *testing.T) {
	t.Parallel()

	a := mustNew(t, 1, Meters)
	b := mustNew(t, 100, Centimeters)
	if a.Hash() != b.Hash() {
		t.Error("equal lengths must have equal hashes")
	}

	negZero := mustNew(t, math.Copysign(0, -1), nil)
	var zero Length
	if !negZero.Equal(zero) {
		t.Fatal("-0 m should equal 0 m")
	}
	if negZero.Hash() != zero.Hash() {
		t.Error("-0 m and 0 m must hash alike")
	}

	if mustNew(t, 1, nil).Hash() == mustNew(t, 2, nil).Hash() {
		t.Error("1 m and 2 m should not collide")
	}
}

func TestLength_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		l    Length
		want string
	}{
		{mustNew(t, 1.5, nil), "1.5"},
		{mustNew(t, 100, Centimeters), "1"},
		{mustNew(t, 0.1, nil), "0.1"},
		{mustNew(t, 1e21, nil), "1e+21"},
	}

	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
