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

// NOTE: This file is named "z_update_amd64.go" (starting with 'z')
// to ensure its init() runs AFTER the other files of the package.

package ftrl

import "github.com/evilmucedin/SIMDNumber/hwy"

func init() {
	if hwy.NoSimdEnv() {
		return
	}
	if hwy.HasAVX2() {
		updateVectorImpl = UpdateVector_AVX2
	}
}
