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

// MaskFromSlice builds a mask from explicit per-lane predicates.
func MaskFromSlice[T Element](bits []bool) Mask[T] {
	out := make([]bool, len(bits))
	copy(out, bits)
	return Mask[T]{bits: out}
}

// MaskTrue returns an all-true mask with the scalable lane count.
func MaskTrue[T Element]() Mask[T] {
	bits := make([]bool, MaxLanes[T]())
	for i := range bits {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskFalse returns an all-false mask with the scalable lane count.
func MaskFalse[T Element]() Mask[T] {
	return Mask[T]{bits: make([]bool, MaxLanes[T]())}
}

// FirstN returns a mask with the first count lanes active out of the
// scalable lane count. Counts are clamped to [0, MaxLanes].
func FirstN[T Element](count int) Mask[T] {
	return firstN[T](count, MaxLanes[T]())
}

// FirstNWith returns a mask with the first count lanes active out of the
// lane count the tag resolves to.
func FirstNWith[T Element](tag Tag, count int) Mask[T] {
	return firstN[T](count, Describe[T](tag).Lanes)
}

func firstN[T Element](count, total int) Mask[T] {
	if count < 0 {
		count = 0
	}
	if count > total {
		count = total
	}
	bits := make([]bool, total)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskAnd combines two masks lane-wise with logical AND.
func MaskAnd[T Element](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr combines two masks lane-wise with logical OR.
func MaskOr[T Element](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor combines two masks lane-wise with logical XOR.
func MaskXor[T Element](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Element](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, b := range m.bits {
		bits[i] = !b
	}
	return Mask[T]{bits: bits}
}

// MaskAndNot computes (!a) && b lane-wise.
func MaskAndNot[T Element](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = !a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// FindFirstTrue returns the lowest active lane index, or -1 if none.
func FindFirstTrue[T Element](m Mask[T]) int {
	for i, b := range m.bits {
		if b {
			return i
		}
	}
	return -1
}

// FindLastTrue returns the highest active lane index, or -1 if none.
func FindLastTrue[T Element](m Mask[T]) int {
	for i := len(m.bits) - 1; i >= 0; i-- {
		if m.bits[i] {
			return i
		}
	}
	return -1
}

// VecFromMask expands a mask to a vector: all-ones bits in active lanes,
// zero elsewhere. Float lanes become NaN-patterned all-ones, matching what
// hardware comparison results look like.
func VecFromMask[T Element](m Mask[T]) Vec[T] {
	out := make([]T, len(m.bits))
	var zero T
	ones := bitNot(zero)
	for i, b := range m.bits {
		if b {
			out[i] = ones
		}
	}
	return Vec[T]{data: out}
}

// MaskFromVec derives a mask from a vector: lanes comparing unequal to
// zero become active.
func MaskFromVec[T Element](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	var zero T
	for i, x := range v.data {
		bits[i] = x != zero
	}
	return Mask[T]{bits: bits}
}
