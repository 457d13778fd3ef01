package hwy

import (
	"math"
	"testing"
)

func TestNew8(t *testing.T) {
	v := New8(0, 1, 2, 3, 4, 5, 6, 7)
	for i := range NumLanes {
		if got := v.Lane(i); got != float32(i) {
			t.Errorf("New8: lane %d: got %v, want %v", i, got, i)
		}
	}
}

func TestSet(t *testing.T) {
	v := Set(42.0)
	for i := range NumLanes {
		if v.Lane(i) != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.Lane(i), 42.0)
		}
	}
}

func TestZeroOne(t *testing.T) {
	for i := range NumLanes {
		if Zero().Lane(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, Zero().Lane(i))
		}
		if One().Lane(i) != 1 {
			t.Errorf("One: lane %d: got %v, want 1", i, One().Lane(i))
		}
	}

	// The constants are values; using them must not change them.
	z := Zero()
	z.AddAssign(One())
	if Zero().Lane(0) != 0 {
		t.Error("Zero changed after AddAssign on a copy")
	}
}

func TestArithmetic(t *testing.T) {
	a := New8(1, 2, 3, 4, 5, 6, 7, 8)
	b := New8(8, 7, 6, 5, 4, 3, 2, 1)

	tests := []struct {
		name string
		got  Float32x8
		want func(x, y float32) float32
	}{
		{"Add", Add(a, b), func(x, y float32) float32 { return x + y }},
		{"Sub", Sub(a, b), func(x, y float32) float32 { return x - y }},
		{"Mul", Mul(a, b), func(x, y float32) float32 { return x * y }},
		{"Div", Div(a, b), func(x, y float32) float32 { return x / y }},
		{"Min", Min(a, b), func(x, y float32) float32 { return min(x, y) }},
		{"Max", Max(a, b), func(x, y float32) float32 { return max(x, y) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range NumLanes {
				want := tt.want(a.Lane(i), b.Lane(i))
				if tt.got.Lane(i) != want {
					t.Errorf("lane %d: got %v, want %v", i, tt.got.Lane(i), want)
				}
			}
		})
	}
}

func TestArithmeticDoesNotMixLanes(t *testing.T) {
	// Only lane 3 differs from the baseline; no other lane may change.
	base := Set(2)
	poked := FromLanes([NumLanes]float32{2, 2, 2, 1e30, 2, 2, 2, 2})
	got := Sqrt(Div(Mul(Add(poked, base), base), Sub(poked, Set(1))))
	ref := Sqrt(Div(Mul(Add(base, base), base), Sub(base, Set(1))))
	for i := range NumLanes {
		if i == 3 {
			continue
		}
		if got.Lane(i) != ref.Lane(i) {
			t.Errorf("lane %d: got %v, want %v", i, got.Lane(i), ref.Lane(i))
		}
	}
}

func TestSqrt(t *testing.T) {
	v := New8(0, 1, 4, 9, 16, 2, 0.25, -1)
	got := Sqrt(v)
	for i := range NumLanes - 1 {
		want := float32(math.Sqrt(float64(v.Lane(i))))
		if got.Lane(i) != want {
			t.Errorf("Sqrt: lane %d: got %v, want %v", i, got.Lane(i), want)
		}
	}
	if !math.IsNaN(float64(got.Lane(7))) {
		t.Errorf("Sqrt(-1): got %v, want NaN", got.Lane(7))
	}
}

func TestNeg(t *testing.T) {
	got := Neg(New8(42, -42, 0, 1.5, -1.5, 3, -3, 1e-9))
	want := []float32{-42, 42, 0, -1.5, 1.5, -3, 3, -1e-9}
	for i := range NumLanes {
		if got.Lane(i) != want[i] {
			t.Errorf("Neg: lane %d: got %v, want %v", i, got.Lane(i), want[i])
		}
	}
	// Zero - (+0) is +0, not -0.
	if math.Signbit(float64(got.Lane(2))) {
		t.Error("Neg(+0) produced -0")
	}
}

func TestAbs(t *testing.T) {
	got := Abs(New8(-42, 42, 0, -1e-9, 1e-9, -0.5, 7, -7))
	want := []float32{42, 42, 0, 1e-9, 1e-9, 0.5, 7, 7}
	for i := range NumLanes {
		if got.Lane(i) != want[i] {
			t.Errorf("Abs: lane %d: got %v, want %v", i, got.Lane(i), want[i])
		}
	}
}

func TestAddAssign(t *testing.T) {
	v := New8(0, 1, 2, 3, 4, 5, 6, 7)
	v.AddAssign(Set(10))
	for i := range NumLanes {
		if v.Lane(i) != float32(i+10) {
			t.Errorf("AddAssign: lane %d: got %v, want %v", i, v.Lane(i), i+10)
		}
	}
}

func TestLanes(t *testing.T) {
	in := [NumLanes]float32{9, 8, 7, 6, 5, 4, 3, 2}
	if got := FromLanes(in).Lanes(); got != in {
		t.Errorf("Lanes: got %v, want %v", got, in)
	}
}

func BenchmarkSelectChain(b *testing.B) {
	z := New8(-1, -1e-9, 0, 1e-9, 1, 0.01, -0.01, 5)
	l1 := Set(0.02)
	eps := Set(1e-8)
	for b.Loop() {
		zAbs := Abs(z)
		s := Select(l1, Zero(), LessEqual(zAbs, eps))
		s = Select(s, Neg(l1), Less(z, Neg(eps)))
		z = Add(z, Mul(s, Set(0)))
	}
}
