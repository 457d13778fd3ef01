//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file bridges Float32x8 and the hardware archsimd.Float32x8 register
// type. Kernels that run on AVX2 convert at their entry and exit and work on
// archsimd values in between.

// ToAVX2 loads v into an AVX2 register.
func (v Float32x8) ToAVX2() archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(v.lanes[:])
}

// FromAVX2 stores an AVX2 register into a Float32x8.
func FromAVX2(x archsimd.Float32x8) Float32x8 {
	var v Float32x8
	x.StoreSlice(v.lanes[:])
	return v
}

// Sqrt_AVX2_F32x8 computes sqrt(x) for a single Float32x8 vector.
// Uses the hardware VSQRTPS instruction which provides correctly rounded results.
func Sqrt_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.Sqrt()
}
