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

// Package ftrl provides the FTRL-proximal per-feature weight update as used
// by large-scale online logistic regression, in two equivalent forms:
//
//   - Update applies the recurrence to one feature with ordinary branching
//     float arithmetic. It is the reference.
//   - UpdateVector applies it to 8 features at once on hwy.Float32x8 values,
//     with every conditional (sign deadzone, L1 zeroing) rewritten as a
//     comparison mask plus hwy.Select.
//
// For each gradient g the state (z, n, w) evolves as
//
//	sigma = (sqrt(n + g²) - sqrt(n)) / alpha
//	z    += g - sigma*w
//	n    += g²
//	w     = 0                                                if |z| <= lambda1
//	w     = (sign(z)*lambda1 - z) / ((beta + sqrt(n))/alpha + lambda2)  otherwise
//
// where sign has a deadzone: |z| <= 1e-8 counts as zero.
//
// Both kernels report non-finite weights instead of storing them: Update
// returns a *DegenerateError and UpdateVector returns a *LaneError naming
// the failing lanes. Table is a feature table that drives UpdateVector over
// groups of 8 features and finishes the remainder with Update.
package ftrl
