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

// Vec is a value-semantic vector of lanes of element type T. Operations
// never mutate their operands; each produces a new value. A
// default-constructed Vec has zero lanes; vectors obtained from Load, Set,
// Zero or the tagged constructors always have every lane initialized.
//
// Vec instances should not be created directly; use Load, Set, Zero,
// FromSlice or the *With tagged constructors.
type Vec[T Element] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lane values as a slice. This is primarily for tests and
// diagnostics; mutating the returned slice breaks value semantics.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst, stopping at the shorter length.
// This is the method form of the Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask holds one boolean predicate per vector lane. A mask is produced by
// lane-wise comparisons and consumed by IfThenElse, MaskLoad, MaskStore and
// the masked gather/scatter operations. Mask lane i always corresponds to
// vector lane i of the same descriptor.
type Mask[T Element] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane is active.
func (m Mask[T]) AllTrue() bool {
	for _, b := range m.bits {
		if !b {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is active.
func (m Mask[T]) AnyTrue() bool {
	for _, b := range m.bits {
		if b {
			return true
		}
	}
	return false
}

// NoneTrue reports whether no lane is active.
func (m Mask[T]) NoneTrue() bool {
	return !m.AnyTrue()
}

// CountTrue returns the number of active lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, b := range m.bits {
		if b {
			count++
		}
	}
	return count
}

// GetBit reports whether lane i is active. Out-of-range lanes read false.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// Bits returns the per-lane predicate values as a slice. Primarily for
// tests and diagnostics.
func (m Mask[T]) Bits() []bool {
	return m.bits
}
