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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled. No hardware kernels
// are compiled in, so the level stays scalar; the CPU's own capability is
// still recorded for diagnostics.

// cpuHasAVX2 reports what the processor supports, independent of the
// kernels compiled into this binary.
var cpuHasAVX2 bool

func init() {
	cpuHasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA

	// Build with GOEXPERIMENT=simd for AVX2/AVX512 kernels.
	setScalarMode()
}

// CPUHasAVX2 reports whether the processor supports AVX2, even when this
// binary was built without the hardware kernels.
func CPUHasAVX2() bool {
	return cpuHasAVX2
}
