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

// Package contrib holds algorithms built on the hwy Float32x8 vector.
//
// # Subpackages
//
//   - ftrl: FTRL-proximal per-feature updates, with a scalar kernel, an
//     8-lane vector kernel and a dense feature Table that batches them.
//
// # FTRL (hwy/contrib/ftrl)
//
//	import "github.com/evilmucedin/SIMDNumber/hwy/contrib/ftrl"
//
//	table, err := ftrl.NewTable(len(gradients), ftrl.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	err = table.Apply(gradients) // full groups of 8 use the vector kernel
//
// # Build Requirements
//
// The portable kernels build everywhere. The AVX2 kernel requires:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX2 support
//
// Set HWY_NO_SIMD=1 to force the portable kernels at runtime.
package contrib
