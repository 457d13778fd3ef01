// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd

package ftrl

import (
	"simd/archsimd"

	"github.com/evilmucedin/SIMDNumber/hwy"
)

var ftrl32_zero = archsimd.BroadcastFloat32x8(0.0)

// UpdateVector_AVX2 is BaseUpdateVector on AVX2 registers.
//
// Masks select with Merge: a.Merge(b, m) is a where m is true, else b.
// Comparisons are arranged so that a NaN z lands in the same branch as in
// BaseUpdateVector or is reported as a failed lane either way.
func UpdateVector_AVX2(g hwy.Float32x8, z, n, weight *hwy.Float32x8, vc *VectorConfig) LaneMask {
	vg := g.ToAVX2()
	vz := z.ToAVX2()
	vn := n.ToAVX2()
	vw := weight.ToAVX2()

	alpha := vc.Alpha.ToAVX2()
	lambda1 := vc.Lambda1.ToAVX2()
	eps := vc.epsilon.ToAVX2()

	g2 := vg.Mul(vg)
	sigma := hwy.Sqrt_AVX2_F32x8(vn.Add(g2)).Sub(hwy.Sqrt_AVX2_F32x8(vn)).Div(alpha)
	vz = vz.Add(vg.Sub(sigma.Mul(vw)))
	vn = vn.Add(g2)

	// |z| as Select(-z, z, 0 < z).
	zAbs := vz.Merge(ftrl32_zero.Sub(vz), ftrl32_zero.Less(vz))

	signed := lambda1.Merge(ftrl32_zero, eps.Less(zAbs))
	signed = vc.NegLambda1.ToAVX2().Merge(signed, vz.Less(vc.negEpsilon.ToAVX2()))

	denom := vc.Beta.ToAVX2().Add(hwy.Sqrt_AVX2_F32x8(vn)).Div(alpha).Add(vc.Lambda2.ToAVX2())
	candidate := signed.Sub(vz).Div(denom)
	next := candidate.Merge(ftrl32_zero, lambda1.Less(zAbs))

	*z = hwy.FromAVX2(vz)
	*n = hwy.FromAVX2(vn)

	nextVec := hwy.FromAVX2(next)
	bad := hwy.Not(hwy.And(hwy.IsFinite(nextVec), hwy.IsFinite(*z)))
	*weight = hwy.Select(nextVec, *weight, bad)
	return LaneMask(bad.Bits())
}
