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

// Numeric conversions between lane types. Float-to-int conversions
// truncate toward zero and saturate: values past the integer range clamp
// to the range bounds, NaN converts to zero. Go's native conversion leaves
// the out-of-range result implementation-defined, which would break the
// lane-independence contract.

// ConvertToInt32 converts float lanes to int32, truncating toward zero
// with saturation.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	out := make([]int32, len(v.data))
	for i, x := range v.data {
		out[i] = int32(clampToInt(float64(x), math.MinInt32, math.MaxInt32))
	}
	return Vec[int32]{data: out}
}

// ConvertToInt64 converts float lanes to int64, truncating toward zero
// with saturation.
func ConvertToInt64[T Floats](v Vec[T]) Vec[int64] {
	out := make([]int64, len(v.data))
	for i, x := range v.data {
		out[i] = clampToInt(float64(x), math.MinInt64, math.MaxInt64)
	}
	return Vec[int64]{data: out}
}

func clampToInt(x float64, lo, hi int64) int64 {
	if math.IsNaN(x) {
		return 0
	}
	// float64(hi) rounds up for MaxInt64, so compare with >= on the
	// rounded bound.
	if x >= float64(hi) {
		return hi
	}
	if x <= float64(lo) {
		return lo
	}
	return int64(x)
}

// ConvertToFloat32 converts int32 or int64 lanes to float32. Large int64
// values round to the nearest representable float32.
func ConvertToFloat32[T ~int32 | ~int64](v Vec[T]) Vec[float32] {
	out := make([]float32, len(v.data))
	for i, x := range v.data {
		out[i] = float32(x)
	}
	return Vec[float32]{data: out}
}

// ConvertToFloat64 converts int32 or int64 lanes to float64. int32 values
// convert exactly.
func ConvertToFloat64[T ~int32 | ~int64](v Vec[T]) Vec[float64] {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = float64(x)
	}
	return Vec[float64]{data: out}
}

// Round rounds each lane to the nearest integer, ties to even. The
// float64 round trip is exact for integral results within float32 range.
func Round[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, func(x float32) float32 {
		return float32(math.RoundToEven(float64(x)))
	}, math.RoundToEven)
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Trunc, math.Trunc)
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Ceil, math.Ceil)
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math32.Floor, math.Floor)
}

// mapFloat applies the width-matched function to every lane, avoiding the
// float32 -> float64 -> float32 round trip for 32-bit lanes.
func mapFloat[T Floats](v Vec[T], f32 func(float32) float32, f64 func(float64) float64) Vec[T] {
	out := make([]T, len(v.data))
	switch vv := any(v.data).(type) {
	case []float32:
		o := any(out).([]float32)
		for i, x := range vv {
			o[i] = f32(x)
		}
	case []float64:
		o := any(out).([]float64)
		for i, x := range vv {
			o[i] = f64(x)
		}
	default:
		for i, x := range v.data {
			out[i] = T(f64(float64(x)))
		}
	}
	return Vec[T]{data: out}
}

// BitCastF32ToU32 reinterprets float32 lane bits as uint32. No numeric
// conversion takes place.
func BitCastF32ToU32(v Vec[float32]) Vec[uint32] {
	out := make([]uint32, len(v.data))
	for i, x := range v.data {
		out[i] = math.Float32bits(x)
	}
	return Vec[uint32]{data: out}
}

// BitCastU32ToF32 reinterprets uint32 lane bits as float32.
func BitCastU32ToF32(v Vec[uint32]) Vec[float32] {
	out := make([]float32, len(v.data))
	for i, x := range v.data {
		out[i] = math.Float32frombits(x)
	}
	return Vec[float32]{data: out}
}

// BitCastF64ToU64 reinterprets float64 lane bits as uint64.
func BitCastF64ToU64(v Vec[float64]) Vec[uint64] {
	out := make([]uint64, len(v.data))
	for i, x := range v.data {
		out[i] = math.Float64bits(x)
	}
	return Vec[uint64]{data: out}
}

// BitCastU64ToF64 reinterprets uint64 lane bits as float64.
func BitCastU64ToF64(v Vec[uint64]) Vec[float64] {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = math.Float64frombits(x)
	}
	return Vec[float64]{data: out}
}

// BitCastF32ToI32 reinterprets float32 lane bits as int32.
func BitCastF32ToI32(v Vec[float32]) Vec[int32] {
	out := make([]int32, len(v.data))
	for i, x := range v.data {
		out[i] = int32(math.Float32bits(x))
	}
	return Vec[int32]{data: out}
}

// BitCastI32ToF32 reinterprets int32 lane bits as float32.
func BitCastI32ToF32(v Vec[int32]) Vec[float32] {
	out := make([]float32, len(v.data))
	for i, x := range v.data {
		out[i] = math.Float32frombits(uint32(x))
	}
	return Vec[float32]{data: out}
}

// PromoteF32ToF64 widens float32 lanes to float64, exactly.
func PromoteF32ToF64(v Vec[float32]) Vec[float64] {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = float64(x)
	}
	return Vec[float64]{data: out}
}

// DemoteF64ToF32 narrows float64 lanes to float32, rounding to nearest.
func DemoteF64ToF32(v Vec[float64]) Vec[float32] {
	out := make([]float32, len(v.data))
	for i, x := range v.data {
		out[i] = float32(x)
	}
	return Vec[float32]{data: out}
}

// PromoteI16ToI32 widens int16 lanes to int32 with sign extension.
func PromoteI16ToI32(v Vec[int16]) Vec[int32] {
	out := make([]int32, len(v.data))
	for i, x := range v.data {
		out[i] = int32(x)
	}
	return Vec[int32]{data: out}
}

// DemoteI32ToI16 narrows int32 lanes to int16 with saturation, the packed
// narrowing hardware provides.
func DemoteI32ToI16(v Vec[int32]) Vec[int16] {
	out := make([]int16, len(v.data))
	for i, x := range v.data {
		switch {
		case x > math.MaxInt16:
			out[i] = math.MaxInt16
		case x < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(x)
		}
	}
	return Vec[int16]{data: out}
}
