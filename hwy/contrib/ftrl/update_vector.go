package ftrl

import "github.com/evilmucedin/SIMDNumber/hwy"

// updateVectorImpl is the active vector kernel. It is initialized to the
// portable implementation and may be overridden by architecture-specific
// implementations in init().
var updateVectorImpl = BaseUpdateVector

// UpdateVector applies one gradient per lane to 8 packed feature states.
//
// The caller packs the 8 features' g, z, n and weight into four vectors and
// unpacks z, n and weight afterwards; Table shows the full round trip.
//
// z and n are always written. weight is written in lanes whose new z and
// weight are finite; in other lanes it keeps its previous value, and a
// *LaneError listing those lanes is returned.
func UpdateVector(g hwy.Float32x8, z, n, weight *hwy.Float32x8, vc *VectorConfig) error {
	if failed := updateVectorImpl(g, z, n, weight, vc); failed != 0 {
		return &LaneError{Lanes: failed}
	}
	return nil
}

// BaseUpdateVector is the portable, branch-free vector kernel. It returns
// the set of lanes that failed validation.
//
// Two thresholds are involved and must not be conflated:
//   - the sign deadzone SignEpsilon, used only to build sign(z)*lambda1;
//   - lambda1 itself, which zeroes the weight last and unconditionally.
func BaseUpdateVector(g hwy.Float32x8, z, n, weight *hwy.Float32x8, vc *VectorConfig) LaneMask {
	g2 := hwy.Mul(g, g)
	sigma := hwy.Div(hwy.Sub(hwy.Sqrt(hwy.Add(*n, g2)), hwy.Sqrt(*n)), vc.Alpha)
	z.AddAssign(hwy.Sub(g, hwy.Mul(sigma, *weight)))
	n.AddAssign(g2)

	zAbs := hwy.Abs(*z)
	candidate := hwy.Div(
		hwy.Sub(signedLambda(*z, zAbs, vc), *z),
		hwy.Add(hwy.Div(hwy.Add(vc.Beta, hwy.Sqrt(*n)), vc.Alpha), vc.Lambda2),
	)
	next := hwy.Select(candidate, hwy.Zero(), hwy.LessEqual(zAbs, vc.Lambda1))

	bad := hwy.Not(hwy.And(hwy.IsFinite(next), hwy.IsFinite(*z)))
	*weight = hwy.Select(next, *weight, bad)
	return LaneMask(bad.Bits())
}

// signedLambda computes sign(z)*lambda1 without branches. Lanes start at
// +lambda1; the deadzone |z| <= eps overrides to 0, then z < -eps overrides
// to -lambda1. The two overrides are mutually exclusive, so the three
// regions partition the lanes exactly as the scalar sign does.
func signedLambda(z, zAbs hwy.Float32x8, vc *VectorConfig) hwy.Float32x8 {
	s := hwy.Select(vc.Lambda1, hwy.Zero(), hwy.LessEqual(zAbs, vc.epsilon))
	return hwy.Select(s, vc.NegLambda1, hwy.Less(z, vc.negEpsilon))
}
