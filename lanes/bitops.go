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

import "math/bits"

// Per-lane bit counting for integer vectors, built on math/bits so each
// lane compiles to the corresponding CPU instruction where one exists.

// PopCount counts the set bits in each lane.
func PopCount[T Integers](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = T(bits.OnesCount64(toBits64(x)))
	}
	return Vec[T]{data: out}
}

// LeadingZeroCount counts the leading zero bits in each lane, relative to
// the lane's own width: an all-zero uint8 lane counts 8, not 64.
func LeadingZeroCount[T Integers](v Vec[T]) Vec[T] {
	width := Traits[T]().Bits()
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = T(bits.LeadingZeros64(toBits64(x)) - (64 - width))
	}
	return Vec[T]{data: out}
}

// TrailingZeroCount counts the trailing zero bits in each lane. An
// all-zero lane counts the lane width.
func TrailingZeroCount[T Integers](v Vec[T]) Vec[T] {
	width := Traits[T]().Bits()
	out := make([]T, len(v.data))
	for i, x := range v.data {
		n := bits.TrailingZeros64(toBits64(x))
		if n > width {
			n = width
		}
		out[i] = T(n)
	}
	return Vec[T]{data: out}
}

// HighestSetBitIndex returns the index of the highest set bit per lane,
// or -1 for zero lanes (signed element types only report -1 faithfully).
func HighestSetBitIndex[T Integers](v Vec[T]) Vec[T] {
	width := Traits[T]().Bits()
	out := make([]T, len(v.data))
	for i, x := range v.data {
		lz := bits.LeadingZeros64(toBits64(x)) - (64 - width)
		out[i] = T(width - 1 - lz)
	}
	return Vec[T]{data: out}
}

// toBits64 zero-extends a lane value to its unsigned 64-bit pattern.
// Signed values must not sign-extend past the lane width, otherwise an
// int8(-1) would count 64 set bits instead of 8.
func toBits64[T Integers](x T) uint64 {
	switch v := any(x).(type) {
	case int8:
		return uint64(uint8(v))
	case int16:
		return uint64(uint16(v))
	case int32:
		return uint64(uint32(v))
	case int64:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	default:
		// Defined integer types: mask to the lane width after conversion.
		width := Traits[T]().Bits()
		u := uint64(int64(x))
		if width < 64 {
			u &= (1 << width) - 1
		}
		return u
	}
}

// ShiftLeftVar shifts each lane of v left by the per-lane count in counts.
// Counts at or past the lane width produce zero, matching hardware
// variable-shift behavior.
func ShiftLeftVar[T Integers](v, counts Vec[T]) Vec[T] {
	width := Traits[T]().Bits()
	n := min(len(v.data), len(counts.data))
	out := make([]T, n)
	for i := range n {
		c := int64(counts.data[i])
		if c >= 0 && c < int64(width) {
			out[i] = v.data[i] << c
		}
	}
	return Vec[T]{data: out}
}

// ShiftRightVar shifts each lane of v right by the per-lane count in
// counts. Signed elements shift arithmetically, unsigned logically.
// Counts at or past the lane width saturate to width-1 for signed types
// (preserving the sign fill) and produce zero for unsigned.
func ShiftRightVar[T Integers](v, counts Vec[T]) Vec[T] {
	t := Traits[T]()
	width := int64(t.Bits())
	n := min(len(v.data), len(counts.data))
	out := make([]T, n)
	for i := range n {
		c := int64(counts.data[i])
		if c < 0 {
			c = 0
		}
		if c >= width {
			if t.Kind == KindSigned {
				c = width - 1
			} else {
				continue
			}
		}
		out[i] = v.data[i] >> c
	}
	return Vec[T]{data: out}
}

// RotateRight rotates each lane's bits right by the given count, which is
// reduced modulo the lane width.
func RotateRight[T Integers](v Vec[T], count int) Vec[T] {
	width := Traits[T]().Bits()
	c := ((count % width) + width) % width
	out := make([]T, len(v.data))
	for i, x := range v.data {
		u := toBits64(x)
		r := (u >> c) | (u << (width - c))
		if width < 64 {
			r &= (1 << width) - 1
		}
		out[i] = T(r)
	}
	return Vec[T]{data: out}
}
