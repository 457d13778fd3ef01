package ftrl

import "math"

// FeatureState is the per-feature FTRL state. The zero value is the initial
// state of a feature that has not seen a gradient yet.
type FeatureState struct {
	Z      float32 // accumulated corrected gradient
	N      float32 // accumulated squared gradient
	Weight float32 // current model coefficient
}

// sign returns -1, 0 or +1, treating |v| <= SignEpsilon as zero.
func sign(v float64) float64 {
	switch {
	case v < -SignEpsilon:
		return -1
	case v > SignEpsilon:
		return 1
	default:
		return 0
	}
}

// Update applies one gradient to st.
//
// Intermediates are computed in float64 and the state is stored as float32.
// If the new weight is NaN or infinite, Z and N keep their updated values,
// Weight keeps its previous value, and a *DegenerateError is returned. The
// caller decides how to recover.
func Update(g float32, st *FeatureState, cfg Config) error {
	return UpdateState(g, &st.Z, &st.N, &st.Weight, cfg)
}

// UpdateState is Update on separately stored z, n and weight.
func UpdateState(g float32, z, n, weight *float32, cfg Config) error {
	alpha := float64(cfg.Alpha)
	lambda1 := float64(cfg.Lambda1)

	g2 := float64(g * g)
	n0 := float64(*n)
	sigma := (math.Sqrt(n0+g2) - math.Sqrt(n0)) / alpha
	*z = float32(float64(*z) + float64(g) - sigma*float64(*weight))
	*n = float32(n0 + g2)

	zz := float64(*z)
	var w float64
	// Written as a negation so a NaN z takes the division and is rejected.
	if !(math.Abs(zz) <= lambda1) {
		w = (sign(zz)*lambda1 - zz) /
			((float64(cfg.Beta)+math.Sqrt(float64(*n)))/alpha + float64(cfg.Lambda2))
	}

	// Check after narrowing: a finite float64 can still overflow float32.
	w32 := float32(w)
	if math.IsNaN(w) || math.IsInf(float64(w32), 0) {
		return &DegenerateError{Weight: w}
	}
	*weight = w32
	return nil
}
