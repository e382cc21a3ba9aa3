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

import (
	"math"

	"github.com/chewxy/math32"
)

// This file is the emulation layer: per-lane realizations of the uniform
// operation set, total over every element type. Hot float paths route
// through the kernel tables bound in dispatch.go; everything else runs the
// per-lane loop directly. Both paths satisfy the same contract: lane i of
// the result equals the Go scalar operation applied to lane i of the
// operands. Integer overflow wraps and integer division by zero panics,
// exactly as the scalar counterparts do.

// Load creates a vector from the leading elements of src, up to the
// scalable lane count. Loading never reads past min(len(src), MaxLanes)
// elements.
func Load[T Element](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadWith creates a vector from src sized by the given tag's descriptor.
// Missing elements are zero-filled; no memory past len(src) is read.
func LoadWith[T Element](tag Tag, src []T) Vec[T] {
	d := Describe[T](tag)
	data := make([]T, d.Lanes)
	copy(data, src[:min(len(src), d.Lanes)])
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst, stopping at the shorter length.
func Store[T Element](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with every lane set to value (broadcast).
func Set[T Element](value T) Vec[T] {
	return SetWith(ScalableTag[T]{}, value)
}

// SetWith broadcasts value across a vector sized by the given tag.
func SetWith[T Element](tag Tag, value T) Vec[T] {
	d := Describe[T](tag)
	data := make([]T, d.Lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with every lane zero.
func Zero[T Element]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// ZeroWith creates a zero vector sized by the given tag.
func ZeroWith[T Element](tag Tag) Vec[T] {
	return Vec[T]{data: make([]T, Describe[T](tag).Lanes)}
}

// FromSlice creates a vector holding exactly the given lane values, in
// order. Unlike Load, the lane count follows the slice, not the target.
func FromSlice[T Element](values []T) Vec[T] {
	data := make([]T, len(values))
	copy(data, values)
	return Vec[T]{data: data}
}

// Iota returns a vector with lanes [0, 1, 2, ...].
func Iota[T Element]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Add performs lane-wise addition.
func Add[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		kernelF32.add(any(out).([]float32), av[:n], any(b.data).([]float32)[:n])
	case []float64:
		kernelF64.add(any(out).([]float64), av[:n], any(b.data).([]float64)[:n])
	case []int32:
		kernelI32.add(any(out).([]int32), av[:n], any(b.data).([]int32)[:n])
	default:
		for i := range n {
			out[i] = a.data[i] + b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Sub performs lane-wise subtraction.
func Sub[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		kernelF32.sub(any(out).([]float32), av[:n], any(b.data).([]float32)[:n])
	case []float64:
		kernelF64.sub(any(out).([]float64), av[:n], any(b.data).([]float64)[:n])
	case []int32:
		kernelI32.sub(any(out).([]int32), av[:n], any(b.data).([]int32)[:n])
	default:
		for i := range n {
			out[i] = a.data[i] - b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Mul performs lane-wise multiplication.
func Mul[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		kernelF32.mul(any(out).([]float32), av[:n], any(b.data).([]float32)[:n])
	case []float64:
		kernelF64.mul(any(out).([]float64), av[:n], any(b.data).([]float64)[:n])
	case []int32:
		kernelI32.mul(any(out).([]int32), av[:n], any(b.data).([]int32)[:n])
	default:
		for i := range n {
			out[i] = a.data[i] * b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Div performs lane-wise division. Integer division truncates and panics
// on a zero divisor, matching the scalar operator.
func Div[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		kernelF32.div(any(out).([]float32), av[:n], any(b.data).([]float32)[:n])
	case []float64:
		kernelF64.div(any(out).([]float64), av[:n], any(b.data).([]float64)[:n])
	default:
		for i := range n {
			out[i] = a.data[i] / b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Neg negates every lane. Unsigned lanes wrap. Float lanes flip the sign
// bit, so negating +0.0 yields -0.0 exactly as the scalar operator does.
func Neg[T Element](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}
	return Vec[T]{data: out}
}

// Abs computes the lane-wise absolute value. Unsigned lanes pass through;
// the minimum signed value wraps to itself, as the scalar expression does.
func Abs[T Element](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	var zero T
	for i, x := range v.data {
		if x < zero {
			out[i] = zero - x
		} else {
			out[i] = x
		}
	}
	return Vec[T]{data: out}
}

// Min returns the lane-wise minimum.
func Min[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		kernelF32.vmin(any(out).([]float32), av[:n], any(b.data).([]float32)[:n])
	case []float64:
		kernelF64.vmin(any(out).([]float64), av[:n], any(b.data).([]float64)[:n])
	case []int32:
		kernelI32.vmin(any(out).([]int32), av[:n], any(b.data).([]int32)[:n])
	default:
		for i := range n {
			if a.data[i] < b.data[i] {
				out[i] = a.data[i]
			} else {
				out[i] = b.data[i]
			}
		}
	}
	return Vec[T]{data: out}
}

// Max returns the lane-wise maximum.
func Max[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		kernelF32.vmax(any(out).([]float32), av[:n], any(b.data).([]float32)[:n])
	case []float64:
		kernelF64.vmax(any(out).([]float64), av[:n], any(b.data).([]float64)[:n])
	case []int32:
		kernelI32.vmax(any(out).([]int32), av[:n], any(b.data).([]int32)[:n])
	default:
		for i := range n {
			if a.data[i] > b.data[i] {
				out[i] = a.data[i]
			} else {
				out[i] = b.data[i]
			}
		}
	}
	return Vec[T]{data: out}
}

// Sqrt computes the lane-wise square root. The float32 path computes in
// float32 precision, matching a float32 scalar sqrt.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	switch vv := any(v.data).(type) {
	case []float32:
		o := any(out).([]float32)
		for i, x := range vv {
			o[i] = math32.Sqrt(x)
		}
	case []float64:
		o := any(out).([]float64)
		for i, x := range vv {
			o[i] = math.Sqrt(x)
		}
	default:
		for i, x := range v.data {
			out[i] = T(math.Sqrt(float64(x)))
		}
	}
	return Vec[T]{data: out}
}

// FMA performs lane-wise fused multiply-add: a*b + c. Both lane widths
// evaluate through the float64 math.FMA, so the product is never rounded
// separately. For float32 lanes the float64 result is narrowed once; that
// narrowing can differ by one ulp from a hardware single-precision FMA in
// rare cases, but the evaluation is the same for every register kind, so
// results never vary by target.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	out := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		kernelF32.fma(any(out).([]float32), av[:n], any(b.data).([]float32)[:n], any(c.data).([]float32)[:n])
	case []float64:
		kernelF64.fma(any(out).([]float64), av[:n], any(b.data).([]float64)[:n], any(c.data).([]float64)[:n])
	default:
		fmaFallback(out, a.data[:n], b.data[:n], c.data[:n])
	}
	return Vec[T]{data: out}
}

// MulAdd is FMA with the conventional a*b + c argument order spelled out.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

func fmaLanes[E floatElem](dst, a, b, c []E) {
	for i := range dst {
		dst[i] = E(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
}

func fmaFallback[T Floats](dst, a, b, c []T) {
	for i := range dst {
		dst[i] = T(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
}

// Equal performs lane-wise equality comparison.
func Equal[T Element](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs lane-wise inequality comparison.
func NotEqual[T Element](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan performs lane-wise less-than comparison.
func LessThan[T Element](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs lane-wise less-than-or-equal comparison.
func LessEqual[T Element](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterThan performs lane-wise greater-than comparison.
func GreaterThan[T Element](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs lane-wise greater-than-or-equal comparison.
func GreaterEqual[T Element](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask of lanes holding NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = x != x
	}
	return Mask[T]{bits: bits}
}

// IsInf returns a mask of lanes holding infinity.
// sign > 0 matches only +Inf, sign < 0 only -Inf, sign 0 either.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	bits := make([]bool, len(v.data))
	switch vv := any(v.data).(type) {
	case []float32:
		for i, x := range vv {
			bits[i] = math32.IsInf(x, sign)
		}
	case []float64:
		for i, x := range vv {
			bits[i] = math.IsInf(x, sign)
		}
	default:
		for i, x := range v.data {
			bits[i] = math.IsInf(float64(x), sign)
		}
	}
	return Mask[T]{bits: bits}
}

// IsFinite returns a mask of lanes holding finite values.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = x-x == 0
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a's lane where the mask is true, b's lane otherwise.
// This is the masked-select (blend) operation.
func IfThenElse[T Element](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), min(len(a.data), len(b.data)))
	out := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// IfThenElseZero returns a's lane where the mask is true, zero otherwise.
func IfThenElseZero[T Element](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data))
	out := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			out[i] = a.data[i]
		}
	}
	return Vec[T]{data: out}
}

// IfThenZeroElse returns zero where the mask is true, b's lane otherwise.
func IfThenZeroElse[T Element](mask Mask[T], b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(b.data))
	out := make([]T, n)
	for i := range n {
		if !mask.bits[i] {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// MaskLoad loads src[i] only for lanes where the mask is true; other lanes
// are zero. Memory for masked-off lanes is never read, so a mask covering
// the valid prefix of a short buffer is safe at sequence boundaries.
func MaskLoad[T Element](mask Mask[T], src []T) Vec[T] {
	out := make([]T, len(mask.bits))
	n := min(len(src), len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			out[i] = src[i]
		}
	}
	return Vec[T]{data: out}
}

// MaskStore stores v's lanes to dst only where the mask is true.
// Masked-off destination memory is never written.
func MaskStore[T Element](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// And performs lane-wise bitwise AND. Float lanes combine their IEEE bit
// patterns.
func And[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = bitAnd(a.data[i], b.data[i])
	}
	return Vec[T]{data: out}
}

// Or performs lane-wise bitwise OR.
func Or[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = bitOr(a.data[i], b.data[i])
	}
	return Vec[T]{data: out}
}

// Xor performs lane-wise bitwise XOR.
func Xor[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = bitXor(a.data[i], b.data[i])
	}
	return Vec[T]{data: out}
}

// Not performs lane-wise bitwise complement.
func Not[T Element](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = bitNot(x)
	}
	return Vec[T]{data: out}
}

// AndNot computes (^a) & b lane-wise.
func AndNot[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = bitAnd(bitNot(a.data[i]), b.data[i])
	}
	return Vec[T]{data: out}
}

// ShiftLeft shifts every lane left by a constant bit count.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = x << bits
	}
	return Vec[T]{data: out}
}

// ShiftRight shifts every lane right by a constant bit count: arithmetic
// for signed lanes, logical for unsigned, as the scalar operator behaves.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = x >> bits
	}
	return Vec[T]{data: out}
}

// SignBit returns a vector with only the sign (high) bit set in each lane.
// For floats this is -0.0.
func SignBit[T Element]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	s := signBitValue[T]()
	for i := range data {
		data[i] = s
	}
	return Vec[T]{data: data}
}

func signBitValue[T Element]() T {
	switch any(T(0)).(type) {
	case float32:
		return any(math.Float32frombits(1 << 31)).(T)
	case float64:
		return any(math.Float64frombits(1 << 63)).(T)
	case int8:
		return any(int8(-1 << 7)).(T)
	case int16:
		return any(int16(-1 << 15)).(T)
	case int32:
		return any(int32(-1 << 31)).(T)
	case int64:
		return any(int64(-1 << 63)).(T)
	case uint8:
		return any(uint8(1 << 7)).(T)
	case uint16:
		return any(uint16(1 << 15)).(T)
	case uint32:
		return any(uint32(1 << 31)).(T)
	case uint64:
		return any(uint64(1 << 63)).(T)
	default:
		return T(0)
	}
}

// Helpers reinterpreting lanes as raw bits for the logical operations.
// Defined types with ~float underlying fall through to the integer-style
// default and combine their values directly.

func bitAnd[T Element](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bu := math.Float32bits(any(b).(float32))
		return any(math.Float32frombits(math.Float32bits(av) & bu)).(T)
	case float64:
		bu := math.Float64bits(any(b).(float64))
		return any(math.Float64frombits(math.Float64bits(av) & bu)).(T)
	case int8:
		return any(av & any(b).(int8)).(T)
	case int16:
		return any(av & any(b).(int16)).(T)
	case int32:
		return any(av & any(b).(int32)).(T)
	case int64:
		return any(av & any(b).(int64)).(T)
	case uint8:
		return any(av & any(b).(uint8)).(T)
	case uint16:
		return any(av & any(b).(uint16)).(T)
	case uint32:
		return any(av & any(b).(uint32)).(T)
	case uint64:
		return any(av & any(b).(uint64)).(T)
	default:
		return a
	}
}

func bitOr[T Element](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bu := math.Float32bits(any(b).(float32))
		return any(math.Float32frombits(math.Float32bits(av) | bu)).(T)
	case float64:
		bu := math.Float64bits(any(b).(float64))
		return any(math.Float64frombits(math.Float64bits(av) | bu)).(T)
	case int8:
		return any(av | any(b).(int8)).(T)
	case int16:
		return any(av | any(b).(int16)).(T)
	case int32:
		return any(av | any(b).(int32)).(T)
	case int64:
		return any(av | any(b).(int64)).(T)
	case uint8:
		return any(av | any(b).(uint8)).(T)
	case uint16:
		return any(av | any(b).(uint16)).(T)
	case uint32:
		return any(av | any(b).(uint32)).(T)
	case uint64:
		return any(av | any(b).(uint64)).(T)
	default:
		return a
	}
}

func bitXor[T Element](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bu := math.Float32bits(any(b).(float32))
		return any(math.Float32frombits(math.Float32bits(av) ^ bu)).(T)
	case float64:
		bu := math.Float64bits(any(b).(float64))
		return any(math.Float64frombits(math.Float64bits(av) ^ bu)).(T)
	case int8:
		return any(av ^ any(b).(int8)).(T)
	case int16:
		return any(av ^ any(b).(int16)).(T)
	case int32:
		return any(av ^ any(b).(int32)).(T)
	case int64:
		return any(av ^ any(b).(int64)).(T)
	case uint8:
		return any(av ^ any(b).(uint8)).(T)
	case uint16:
		return any(av ^ any(b).(uint16)).(T)
	case uint32:
		return any(av ^ any(b).(uint32)).(T)
	case uint64:
		return any(av ^ any(b).(uint64)).(T)
	default:
		return a
	}
}

func bitNot[T Element](a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(^math.Float32bits(av))).(T)
	case float64:
		return any(math.Float64frombits(^math.Float64bits(av))).(T)
	case int8:
		return any(^av).(T)
	case int16:
		return any(^av).(T)
	case int32:
		return any(^av).(T)
	case int64:
		return any(^av).(T)
	case uint8:
		return any(^av).(T)
	case uint16:
		return any(^av).(T)
	case uint32:
		return any(^av).(T)
	case uint64:
		return any(^av).(T)
	default:
		return a
	}
}
