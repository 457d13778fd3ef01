package ftrl

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrDegenerateResult is returned when the scalar update produces a NaN
	// or infinite weight. This signals a degenerate configuration (for
	// example alpha <= 0) or a numerically unstable gradient sequence.
	ErrDegenerateResult = errors.New("ftrl: degenerate weight")

	// ErrLaneValidation is returned when one or more lanes of the vector
	// update produce a non-finite z or weight.
	ErrLaneValidation = errors.New("ftrl: lane validation failed")

	// ErrInvalidConfig is returned by Config.Validate and ParseConfig.
	ErrInvalidConfig = errors.New("ftrl: invalid config")

	// ErrSizeMismatch is returned when a gradient slice does not match the
	// table it is applied to.
	ErrSizeMismatch = errors.New("ftrl: size mismatch")
)

// DegenerateError reports the rejected weight of a scalar update.
type DegenerateError struct {
	Weight float64
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDegenerateResult, e.Weight)
}

func (e *DegenerateError) Unwrap() error { return ErrDegenerateResult }

// LaneMask is a set of lane indices: bit i set means lane i.
type LaneMask uint8

// Has reports whether lane i is in the set.
func (m LaneMask) Has(i int) bool {
	return i >= 0 && i < 8 && m&(1<<i) != 0
}

// Count returns the number of lanes in the set.
func (m LaneMask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Indices returns the lanes in the set in ascending order.
func (m LaneMask) Indices() []int {
	out := make([]int, 0, m.Count())
	for v := uint8(m); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros8(v))
	}
	return out
}

// LaneError reports which lanes of a vector update failed validation.
type LaneError struct {
	Lanes LaneMask
}

func (e *LaneError) Error() string {
	return fmt.Sprintf("%v: lanes %v", ErrLaneValidation, e.Lanes.Indices())
}

func (e *LaneError) Unwrap() error { return ErrLaneValidation }

// BatchError collects the failures of one Table update. Features lists the
// table indices whose update was rejected, in ascending order.
type BatchError struct {
	Features []int
	Err      error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("ftrl: %d feature update(s) rejected %v: %v", len(e.Features), e.Features, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
