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

import "github.com/chewxy/math32"

// This file provides the lane-wise arithmetic for Float32x8. Each lane is
// computed independently; nothing here reduces across lanes. The loops are
// over a fixed-size array so the compiler can keep them free of bounds checks.

// Add performs element-wise addition.
func Add(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.lanes {
		r.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.lanes {
		r.lanes[i] = a.lanes[i] - b.lanes[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.lanes {
		r.lanes[i] = a.lanes[i] * b.lanes[i]
	}
	return r
}

// Div performs element-wise division.
// Division by zero yields ±Inf or NaN according to IEEE 754.
func Div(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.lanes {
		r.lanes[i] = a.lanes[i] / b.lanes[i]
	}
	return r
}

// Sqrt computes the square root of each lane.
// Negative lanes produce NaN.
func Sqrt(v Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.lanes {
		r.lanes[i] = math32.Sqrt(v.lanes[i])
	}
	return r
}

// Neg returns Zero() - v. Unlike a sign-bit flip, Neg of +0 is +0.
func Neg(v Float32x8) Float32x8 {
	return Sub(zeroVec, v)
}

// Abs returns the absolute value of each lane, computed branch-free as
// Select(Neg(v), v, Less(Zero(), v)).
func Abs(v Float32x8) Float32x8 {
	return Select(Neg(v), v, Less(zeroVec, v))
}

// Min returns the element-wise minimum of a and b.
// A lane where either input is NaN yields b's lane.
func Min(a, b Float32x8) Float32x8 {
	return Select(b, a, Less(a, b))
}

// Max returns the element-wise maximum of a and b.
// A lane where either input is NaN yields b's lane.
func Max(a, b Float32x8) Float32x8 {
	return Select(b, a, Greater(a, b))
}
