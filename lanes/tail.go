// Copyright 2025 openvec Authors
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

package lanes

// TailMask creates a mask with the first count lanes active, for handling
// the remainder of an array whose length is not a multiple of the lane
// count.
//
// Example:
//
//	maxLanes := lanes.MaxLanes[float32]()
//	rem := len(data) % maxLanes
//	if rem > 0 {
//	    m := lanes.TailMask[float32](rem)
//	    v := lanes.MaskLoad(m, data[len(data)-rem:])
//	    // ... process tail
//	    lanes.MaskStore(m, result, out[len(out)-rem:])
//	}
func TailMask[T Element](count int) Mask[T] {
	return firstN[T](count, MaxLanes[T]())
}

// ProcessWithTail iterates a buffer in full-vector steps and hands the
// remainder to a masked tail step.
//
// It calls:
//   - fullFn(offset) for each full vector
//   - tailFn(offset, count) once if size is not a multiple of the lane count
//
// Example:
//
//	lanes.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        v := lanes.Load(data[offset:])
//	        lanes.Store(lanes.Add(v, v), out[offset:])
//	    },
//	    func(offset, count int) {
//	        m := lanes.TailMask[float32](count)
//	        v := lanes.MaskLoad(m, data[offset:])
//	        lanes.MaskStore(m, lanes.Add(v, v), out[offset:])
//	    },
//	)
func ProcessWithTail[T Element](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	if rem := size % maxLanes; rem > 0 {
		tailFn(fullVectors*maxLanes, rem)
	}
}

// ProcessWithTailNoMask covers the remainder by re-processing the last
// full vector at an overlapping offset instead of masking. Simpler than
// ProcessWithTail, but the overlap region is visited twice, so fullFn must
// be idempotent over its output range.
func ProcessWithTailNoMask[T Element](size int, fullFn func(offset int)) {
	maxLanes := MaxLanes[T]()

	if size < maxLanes {
		fullFn(0)
		return
	}

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	if size%maxLanes > 0 {
		fullFn(size - maxLanes)
	}
}

// AlignedSize rounds size up to the next multiple of the lane count,
// for allocating buffers that will be walked in full-vector steps.
func AlignedSize[T Element](size int) int {
	maxLanes := MaxLanes[T]()
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned reports whether size is a multiple of the lane count.
func IsAligned[T Element](size int) bool {
	return size%MaxLanes[T]() == 0
}
