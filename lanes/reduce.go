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

// Horizontal reductions combine all lanes into one scalar. Integer sums
// are order-independent (wrapping addition is associative). Floating-point
// sums are not, so they always use the canonical pairwise tree in
// dispatch.go: the same combination order for every register kind, making
// the rounding reproducible when the backing layout changes.

// ReduceSum sums all lanes.
func ReduceSum[T Element](v Vec[T]) T {
	switch vv := any(v.data).(type) {
	case []float32:
		return any(kernelF32.sum(vv)).(T)
	case []float64:
		return any(kernelF64.sum(vv)).(T)
	case []int32:
		return any(kernelI32.sum(vv)).(T)
	default:
		var sum T
		for _, x := range v.data {
			sum += x
		}
		return sum
	}
}

// ReduceMin returns the smallest lane value. An empty vector reduces to
// zero.
func ReduceMin[T Element](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	best := v.data[0]
	for _, x := range v.data[1:] {
		if x < best {
			best = x
		}
	}
	return best
}

// ReduceMax returns the largest lane value. An empty vector reduces to
// zero.
func ReduceMax[T Element](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	best := v.data[0]
	for _, x := range v.data[1:] {
		if x > best {
			best = x
		}
	}
	return best
}

// ReduceAnd bitwise-ANDs all lanes. An empty vector reduces to all-ones,
// the identity of AND.
func ReduceAnd[T Integers](v Vec[T]) T {
	var zero T
	acc := ^zero
	for _, x := range v.data {
		acc &= x
	}
	return acc
}

// ReduceOr bitwise-ORs all lanes. An empty vector reduces to zero.
func ReduceOr[T Integers](v Vec[T]) T {
	var acc T
	for _, x := range v.data {
		acc |= x
	}
	return acc
}

// ReduceXor bitwise-XORs all lanes.
func ReduceXor[T Integers](v Vec[T]) T {
	var acc T
	for _, x := range v.data {
		acc ^= x
	}
	return acc
}

// MaskedReduceSum sums only the lanes where the mask is true, using the
// canonical tree over the compacted values for float elements.
func MaskedReduceSum[T Element](mask Mask[T], v Vec[T]) T {
	n := min(len(mask.bits), len(v.data))
	kept := make([]T, 0, n)
	for i := range n {
		if mask.bits[i] {
			kept = append(kept, v.data[i])
		}
	}
	return ReduceSum(Vec[T]{data: kept})
}
