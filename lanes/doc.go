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

// Package lanes provides a portable abstraction for explicit data-parallel
// (SIMD-style) computation: vector values holding N scalar lanes processed
// in lockstep, with per-lane boolean masks, masked memory operations, and
// cross-lane shuffles and reductions.
//
// The number of lanes and the kernel used to realize each operation are
// resolved once, during package initialization, from the build target's
// capability set. After that, no operation branches on the instruction set:
// every call resolves through kernel tables bound at init, and any operation
// a kernel cannot realize is synthesized by the per-lane emulation layer,
// which is total over every element type.
//
// The core correctness contract is lane independence: a vector operation is
// exactly N independent applications of the corresponding Go scalar
// operation, in lane order, with no cross-lane leakage. Results are
// bit-identical regardless of which backing layout (native register width,
// multi-block emulated, or sequential scalar) was selected.
//
// Basic usage:
//
//	a := lanes.Load(x)
//	b := lanes.Load(y)
//	sum := lanes.Add(a, b)
//	lanes.Store(sum, out)
//
// Partial vectors at sequence boundaries use masks so that no memory beyond
// the valid region is touched:
//
//	m := lanes.TailMask[float32](rem)
//	v := lanes.MaskLoad(m, data[off:])
package lanes
