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

// Saturated integer arithmetic clamps results to the element's value range
// instead of wrapping: uint8 250+10 = 255, not 4. The overflow checks work
// on the wrapped result, so no widening is needed for any lane width.

// SaturatedAdd adds lane-wise with saturation.
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	lo, hi := integerRange[T]()
	signed := Traits[T]().Kind == KindSigned
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		x, y := a.data[i], b.data[i]
		s := x + y
		if signed {
			switch {
			case y > 0 && s < x:
				s = hi
			case y < 0 && s > x:
				s = lo
			}
		} else if s < x {
			s = hi
		}
		out[i] = s
	}
	return Vec[T]{data: out}
}

// SaturatedSub subtracts lane-wise with saturation.
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	lo, hi := integerRange[T]()
	signed := Traits[T]().Kind == KindSigned
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		x, y := a.data[i], b.data[i]
		d := x - y
		if signed {
			switch {
			case y < 0 && d < x:
				d = hi
			case y > 0 && d > x:
				d = lo
			}
		} else if y > x {
			d = lo
		}
		out[i] = d
	}
	return Vec[T]{data: out}
}

// integerRange returns the minimum and maximum representable values of an
// integer element type.
func integerRange[T Integers]() (lo, hi T) {
	t := Traits[T]()
	if t.Kind == KindUnsigned {
		var zero T
		return zero, ^zero
	}
	width := t.Bits()
	hi = T(uint64(1)<<(width-1) - 1)
	lo = ^hi
	return lo, hi
}

// Clamp limits each lane of v to the range [lo, hi].
func Clamp[T Element](v, lo, hi Vec[T]) Vec[T] {
	n := min(len(v.data), min(len(lo.data), len(hi.data)))
	out := make([]T, n)
	for i := range n {
		x := v.data[i]
		if x < lo.data[i] {
			x = lo.data[i]
		}
		if x > hi.data[i] {
			x = hi.data[i]
		}
		out[i] = x
	}
	return Vec[T]{data: out}
}

// AbsDiff computes |a - b| per lane as max(a,b) - min(a,b), which cannot
// overflow for unsigned elements the way abs(a-b) would.
func AbsDiff[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		if a.data[i] >= b.data[i] {
			out[i] = a.data[i] - b.data[i]
		} else {
			out[i] = b.data[i] - a.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Avg computes the rounded average (a + b + 1) / 2 per lane without
// overflowing: (a | b) - ((a ^ b) >> 1).
func Avg[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		x, y := a.data[i], b.data[i]
		out[i] = (x | y) - ((x ^ y) >> 1)
	}
	return Vec[T]{data: out}
}

// MulHigh returns the upper half of the widening product a*b per lane:
// for n-bit elements the product has 2n bits, and this keeps bits [2n-1:n].
func MulHigh[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = mulHigh(a.data[i], b.data[i])
	}
	return Vec[T]{data: out}
}

func mulHigh[T Integers](a, b T) T {
	t := Traits[T]()
	if width := t.Bits(); width < 64 {
		if t.Kind == KindSigned {
			return T((int64(a) * int64(b)) >> width)
		}
		return T((toBits64(a) * toBits64(b)) >> width)
	}
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	if t.Kind == KindSigned {
		// Fix up the unsigned product for two's-complement operands.
		s := int64(hi)
		if int64(a) < 0 {
			s -= int64(b)
		}
		if int64(b) < 0 {
			s -= int64(a)
		}
		return T(s)
	}
	return T(hi)
}
