// Package hwy provides a fixed-width 8 x float32 vector value with runtime
// CPU dispatch reporting.
//
// It follows the Highway C++ library's design philosophy: operations are
// written once as lane-wise, branch-free code. Conditionals are expressed
// as comparison masks plus Select, never as per-lane control flow, so the
// same code maps onto AVX2 registers (8 lanes of 32 bits) or a scalar
// fallback.
//
// Basic usage:
//
//	import "github.com/evilmucedin/SIMDNumber/hwy"
//
//	buf := hwy.NewAlignedBuffer(8)
//	copy(buf.Data(), []float32{1, 2, 3, 4, 5, 6, 7, 8})
//
//	a := hwy.Load(buf, 0)
//	b := hwy.Set(2)
//	result := hwy.Mul(a, b)
//
//	hwy.Store(result, buf, 0)
package hwy

// NumLanes is the number of float32 lanes held by a Float32x8.
const NumLanes = 8

// VectorAlignment is the alignment in bytes required by LoadAligned and
// StoreAligned: the width of one 8 x 32-bit register.
const VectorAlignment = NumLanes * 4

// Float32x8 is a vector of 8 independent float32 lanes.
//
// It is a value type: operations return new vectors and never modify their
// arguments, with the single exception of AddAssign. A declared but
// unassigned Float32x8 has unspecified lane values from the API's point of
// view; initialize it with New8, Set, Load or one of the constants.
//
// Comparison results (masks) use the same representation: a true lane has
// all 32 bits set, a false lane has all bits clear.
type Float32x8 struct {
	lanes [NumLanes]float32
}

// New8 returns a vector whose lane i is the i-th argument.
func New8(v0, v1, v2, v3, v4, v5, v6, v7 float32) Float32x8 {
	return Float32x8{lanes: [NumLanes]float32{v0, v1, v2, v3, v4, v5, v6, v7}}
}

// FromLanes returns a vector holding the given lanes in order.
func FromLanes(lanes [NumLanes]float32) Float32x8 {
	return Float32x8{lanes: lanes}
}

// Set returns a vector with all lanes equal to value.
func Set(value float32) Float32x8 {
	var v Float32x8
	for i := range v.lanes {
		v.lanes[i] = value
	}
	return v
}

var (
	zeroVec = Set(0)
	oneVec  = Set(1)
)

// Zero returns the vector with every lane 0.0.
func Zero() Float32x8 {
	return zeroVec
}

// One returns the vector with every lane 1.0.
func One() Float32x8 {
	return oneVec
}

// Lane returns the value of lane i. It panics if i is outside [0, 8).
//
// Lane extraction is meant for packing/unpacking at batch boundaries and for
// tests, not for use inside a vectorized loop.
func (v Float32x8) Lane(i int) float32 {
	return v.lanes[i]
}

// Lanes returns a copy of all lanes in order.
func (v Float32x8) Lanes() [NumLanes]float32 {
	return v.lanes
}

// AddAssign adds o to v lane-wise, in place.
func (v *Float32x8) AddAssign(o Float32x8) {
	for i := range v.lanes {
		v.lanes[i] += o.lanes[i]
	}
}
