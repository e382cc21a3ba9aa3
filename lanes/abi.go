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
	"fmt"
	"unsafe"
)

// RegisterKind states how a vector value is physically backed.
type RegisterKind uint8

const (
	// RegisterScalar backs each lane with an independent scalar; used when
	// the target has no vector capability for the element type.
	RegisterScalar RegisterKind = iota

	// RegisterNative backs the whole vector with a single native register.
	RegisterNative

	// RegisterEmulated composes the vector from multiple native-sized
	// blocks because the requested width exceeds every native register.
	RegisterEmulated
)

// String returns a human-readable name for the register kind.
func (k RegisterKind) String() string {
	switch k {
	case RegisterScalar:
		return "scalar"
	case RegisterNative:
		return "native"
	case RegisterEmulated:
		return "emulated"
	default:
		return "unknown"
	}
}

// Descriptor is the resolved layout backing a vector type: the element
// traits, the logical lane count, and how lanes map onto registers.
//
// For RegisterEmulated, lanes are distributed across Blocks sub-vectors of
// BlockLanes lanes each: lane i lives in block i/BlockLanes at position
// i%BlockLanes. For RegisterNative, Blocks is 1 and BlockLanes equals
// Lanes. For RegisterScalar, BlockLanes is 1 and Blocks equals Lanes.
type Descriptor struct {
	Elem         ElemTraits
	Lanes        int
	Kind         RegisterKind
	RegisterBits int // width of one backing register
	Blocks       int
	BlockLanes   int
}

// Bits returns the total logical vector width in bits.
func (d Descriptor) Bits() int {
	return d.Lanes * d.Elem.Bits()
}

// IsNative reports whether the descriptor is backed by a single hardware
// register.
func (d Descriptor) IsNative() bool {
	return d.Kind == RegisterNative
}

// String formats the descriptor for diagnostics, e.g. "native256x8" or
// "emulated(4x128)x32".
func (d Descriptor) String() string {
	switch d.Kind {
	case RegisterNative:
		return fmt.Sprintf("native%dx%d", d.RegisterBits, d.Lanes)
	case RegisterEmulated:
		return fmt.Sprintf("emulated(%dx%d)x%d", d.Blocks, d.RegisterBits, d.Lanes)
	default:
		return fmt.Sprintf("scalarx%d", d.Lanes)
	}
}

// BlockOf returns the block index and in-block position of logical lane i.
func (d Descriptor) BlockOf(i int) (block, pos int) {
	return i / d.BlockLanes, i % d.BlockLanes
}

// Tag requests a vector width. Tags carry no data beyond the request; the
// selector turns a tag into a concrete Descriptor for the current target.
type Tag interface {
	// Width returns the requested width in bytes.
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string
}

// ScalableTag requests the widest vector the target supports for T.
// This is the recommended tag: lane counts adapt per build target.
type ScalableTag[T Element] struct{}

// Width returns the current native register width in bytes.
func (ScalableTag[T]) Width() int { return currentWidth }

// Name returns the current target name.
func (ScalableTag[T]) Name() string { return currentTarget.String() }

// MaxLanes returns the number of lanes this tag resolves to.
func (ScalableTag[T]) MaxLanes() int { return MaxLanes[T]() }

// FixedTag128 requests 128-bit vectors regardless of target.
type FixedTag128[T Element] struct{}

// Width returns 16 bytes.
func (FixedTag128[T]) Width() int { return 16 }

// Name returns "128bit".
func (FixedTag128[T]) Name() string { return "128bit" }

// FixedTag256 requests 256-bit vectors regardless of target.
type FixedTag256[T Element] struct{}

// Width returns 32 bytes.
func (FixedTag256[T]) Width() int { return 32 }

// Name returns "256bit".
func (FixedTag256[T]) Name() string { return "256bit" }

// FixedTag512 requests 512-bit vectors regardless of target.
type FixedTag512[T Element] struct{}

// Width returns 64 bytes.
func (FixedTag512[T]) Width() int { return 64 }

// Name returns "512bit".
func (FixedTag512[T]) Name() string { return "512bit" }

// RepeatedTag requests an explicit lane count, which may exceed any native
// register; the selector then composes the vector from native-sized blocks.
type RepeatedTag[T Element] struct {
	Count int
}

// Width returns Count elements worth of bytes.
func (t RepeatedTag[T]) Width() int {
	var zero T
	return t.Count * int(unsafe.Sizeof(zero))
}

// Name returns "repeated".
func (RepeatedTag[T]) Name() string { return "repeated" }

// Describe resolves a tag to a concrete Descriptor for element type T on
// the current target. The resolution is a pure function of the element
// traits, the requested lane count and the capability set fixed at init;
// it never inspects the CPU.
//
// Policy:
//   - the request fits one native register: RegisterNative;
//   - the request exceeds every native register: RegisterEmulated, composed
//     of the smallest number of native-sized blocks covering the lanes;
//   - no vector capability: RegisterScalar, one lane per backing scalar.
//
// A non-positive lane request is a configuration error and panics; tags
// with hardware-derived widths can never trigger it.
func Describe[T Element](tag Tag) Descriptor {
	traits := Traits[T]()
	return describeLanes(traits, tag.Width()/traits.Size)
}

// DescribeLanes resolves an explicit lane count for element type T.
func DescribeLanes[T Element](count int) Descriptor {
	return describeLanes(Traits[T](), count)
}

func describeLanes(traits ElemTraits, count int) Descriptor {
	if count <= 0 {
		panic(fmt.Sprintf("lanes: lane count must be positive, got %d", count))
	}
	d := Descriptor{Elem: traits, Lanes: count}

	if currentTarget == TargetScalar {
		d.Kind = RegisterScalar
		d.RegisterBits = traits.Bits()
		d.BlockLanes = 1
		d.Blocks = count
		return d
	}

	nativeLanes := currentWidth / traits.Size
	d.RegisterBits = currentWidth * 8
	if count <= nativeLanes {
		d.Kind = RegisterNative
		d.BlockLanes = count
		d.Blocks = 1
		return d
	}

	d.Kind = RegisterEmulated
	d.BlockLanes = nativeLanes
	d.Blocks = (count + nativeLanes - 1) / nativeLanes
	return d
}
