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

import "unsafe"

// The constraints below form the closed element trait table: they enumerate
// every scalar type vectors can hold. Instantiating any operation with a
// type outside this set is rejected by the compiler, never at runtime.

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for all types that can occupy a vector lane.
type Element interface {
	Floats | Integers
}

// ElemKind classifies an element type for trait lookups.
type ElemKind uint8

const (
	// KindSigned is a signed two's-complement integer element.
	KindSigned ElemKind = iota

	// KindUnsigned is an unsigned integer element.
	KindUnsigned

	// KindFloat is an IEEE 754 binary floating-point element.
	KindFloat
)

// String returns a human-readable name for the element kind.
func (k ElemKind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// ElemTraits describes a supported element type: its size, alignment and
// classification. Size and alignment are fixed properties of the type.
type ElemTraits struct {
	// Size is the element size in bytes.
	Size int

	// Align is the required alignment in bytes. For all supported
	// elements this equals Size.
	Align int

	// Kind classifies the element for dispatch decisions.
	Kind ElemKind
}

// Bits returns the element width in bits.
func (t ElemTraits) Bits() int {
	return t.Size * 8
}

// Traits returns the trait entry for element type T.
func Traits[T Element]() ElemTraits {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return ElemTraits{
		Size:  size,
		Align: size,
		Kind:  kindOf(zero),
	}
}

func kindOf[T Element](zero T) ElemKind {
	switch any(zero).(type) {
	case float32, float64:
		return KindFloat
	case int8, int16, int32, int64:
		return KindSigned
	case uint8, uint16, uint32, uint64:
		return KindUnsigned
	}
	// Defined types (~T) classify by probing the arithmetic behavior of
	// the underlying type: unsigned wraps to a large value on underflow,
	// floats keep fractions.
	var one T = 1
	var two T = 2
	if one/two != 0 {
		return KindFloat
	}
	if zero-one > zero {
		return KindUnsigned
	}
	return KindSigned
}
