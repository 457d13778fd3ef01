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

package hwy

import "math"

// Masks are ordinary Float32x8 values whose lanes are either all-bits-set
// (true) or all-bits-zero (false), matching what VCMPPS produces. A true lane
// reads back as a NaN if treated as a number, so masks should only be fed to
// Select, And, Or, AndNot or Bits.

const (
	laneTrue  uint32 = 0xFFFFFFFF
	laneFalse uint32 = 0
)

// maskLane converts a comparison outcome to a mask lane bit pattern.
func maskLane(b bool) uint32 {
	if b {
		return laneTrue
	}
	return laneFalse
}

func fromBits(bits [NumLanes]uint32) Float32x8 {
	var r Float32x8
	for i := range r.lanes {
		r.lanes[i] = math.Float32frombits(bits[i])
	}
	return r
}

func (v Float32x8) bits() [NumLanes]uint32 {
	var b [NumLanes]uint32
	for i := range b {
		b[i] = math.Float32bits(v.lanes[i])
	}
	return b
}

// Less returns a mask that is true in lanes where a < b.
// Lanes involving NaN compare false.
func Less(a, b Float32x8) Float32x8 {
	var m [NumLanes]uint32
	for i := range m {
		m[i] = maskLane(a.lanes[i] < b.lanes[i])
	}
	return fromBits(m)
}

// LessEqual returns a mask that is true in lanes where a <= b.
func LessEqual(a, b Float32x8) Float32x8 {
	var m [NumLanes]uint32
	for i := range m {
		m[i] = maskLane(a.lanes[i] <= b.lanes[i])
	}
	return fromBits(m)
}

// Greater returns a mask that is true in lanes where a > b.
func Greater(a, b Float32x8) Float32x8 {
	return Less(b, a)
}

// IsFinite returns a mask that is true in lanes that are neither NaN nor ±Inf.
func IsFinite(v Float32x8) Float32x8 {
	var m [NumLanes]uint32
	for i := range m {
		// Exponent bits all set means Inf or NaN.
		m[i] = maskLane(math.Float32bits(v.lanes[i])&0x7F800000 != 0x7F800000)
	}
	return fromBits(m)
}

// Select returns, per lane, whenTrue where mask is all-bits-set and
// whenFalse where it is all-bits-zero. It is a pure bitwise blend
// ((whenTrue AND mask) OR (whenFalse AND NOT mask)), so no lane takes a branch.
func Select(whenFalse, whenTrue, mask Float32x8) Float32x8 {
	f, t, m := whenFalse.bits(), whenTrue.bits(), mask.bits()
	var r [NumLanes]uint32
	for i := range r {
		r[i] = (t[i] & m[i]) | (f[i] &^ m[i])
	}
	return fromBits(r)
}

// And returns the bitwise AND of two masks.
func And(a, b Float32x8) Float32x8 {
	x, y := a.bits(), b.bits()
	var r [NumLanes]uint32
	for i := range r {
		r[i] = x[i] & y[i]
	}
	return fromBits(r)
}

// Or returns the bitwise OR of two masks.
func Or(a, b Float32x8) Float32x8 {
	x, y := a.bits(), b.bits()
	var r [NumLanes]uint32
	for i := range r {
		r[i] = x[i] | y[i]
	}
	return fromBits(r)
}

// AndNot returns a AND NOT b.
func AndNot(a, b Float32x8) Float32x8 {
	x, y := a.bits(), b.bits()
	var r [NumLanes]uint32
	for i := range r {
		r[i] = x[i] &^ y[i]
	}
	return fromBits(r)
}

// Not inverts every lane of a mask.
func Not(m Float32x8) Float32x8 {
	x := m.bits()
	var r [NumLanes]uint32
	for i := range r {
		r[i] = ^x[i]
	}
	return fromBits(r)
}

// Bits packs a mask into a byte: bit i is set when lane i has its sign bit
// set, which for a well-formed mask means lane i is true (like VMOVMSKPS).
func (v Float32x8) Bits() uint8 {
	b := v.bits()
	var out uint8
	for i := range b {
		out |= uint8(b[i]>>31) << i
	}
	return out
}

// AllTrue reports whether every lane of the mask is true.
func (v Float32x8) AllTrue() bool {
	return v.Bits() == 0xFF
}

// AnyTrue reports whether at least one lane of the mask is true.
func (v Float32x8) AnyTrue() bool {
	return v.Bits() != 0
}
