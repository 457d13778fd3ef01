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

// ProcessWithTail is a helper for processing arrays with vectors that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of NumLanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data),
//	    func(offset int) {
//	        v := hwy.Load(buf, offset)
//	        hwy.Store(hwy.Add(v, v), buf, offset)
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            data[i] += data[i]
//	        }
//	    },
//	)
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / NumLanes
	for i := range fullVectors {
		fullFn(i * NumLanes)
	}

	remaining := size % NumLanes
	if remaining > 0 {
		tailFn(fullVectors*NumLanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of NumLanes.
// This is useful for allocating buffers that will be processed with vectors.
func AlignedSize(size int) int {
	return ((size + NumLanes - 1) / NumLanes) * NumLanes
}
