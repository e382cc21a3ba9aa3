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

// Operation dispatch: per element kind, a table of kernel function pointers
// bound once when the target is selected. Operations call through the bound
// table with no per-call capability inspection. Every kernel variant must
// produce bit-identical per-lane results; variants differ only in loop
// shape, so results never depend on which table is bound.
//
// Types outside the hot kinds (float32, float64, int32) resolve directly
// to the per-lane emulation loops in ops.go, which are total over every
// element type.

// floatElem is the constraint for kernel-table element types.
type floatElem interface {
	~float32 | ~float64
}

// floatKernels is the dispatch table for one floating-point element kind.
// All slice arguments have equal length.
type floatKernels[E floatElem] struct {
	add  func(dst, a, b []E)
	sub  func(dst, a, b []E)
	mul  func(dst, a, b []E)
	div  func(dst, a, b []E)
	vmin func(dst, a, b []E)
	vmax func(dst, a, b []E)
	fma  func(dst, a, b, c []E)
	sum  func(x []E) E
}

// intKernels is the dispatch table for the hot integer element kind.
// Integer addition wraps and is associative, so there is no canonical-order
// concern; sum is a plain accumulation.
type intKernels[E ~int32] struct {
	add  func(dst, a, b []E)
	sub  func(dst, a, b []E)
	mul  func(dst, a, b []E)
	vmin func(dst, a, b []E)
	vmax func(dst, a, b []E)
	sum  func(x []E) E
}

// Bound kernel tables. Package-level var initialization runs before any
// init function, so the tables are valid even before bindKernels runs.
var (
	kernelF32  = genericKernels[float32]()
	kernelF64  = genericKernels[float64]()
	kernelI32  = genericIntKernels[int32]()
	kernelName = "generic"
)

// kernelEntry is one registered kernel variant. minWidth is the native
// register width in bytes the variant is tuned for; an entry is usable when
// the selected target has at least that width and is not scalar
// (except the generic entry, which is always usable).
type kernelEntry struct {
	name     string
	minWidth int
	priority int
	bind     func()
}

var kernelRegistry = []kernelEntry{
	{
		name:     "generic",
		minWidth: 0,
		priority: 0,
		bind: func() {
			kernelF32 = genericKernels[float32]()
			kernelF64 = genericKernels[float64]()
			kernelI32 = genericIntKernels[int32]()
		},
	},
	{
		name:     "block4",
		minWidth: 16,
		priority: 10,
		bind: func() {
			kernelF32 = blockKernels[float32]()
			kernelF64 = blockKernels[float64]()
			kernelI32 = blockIntKernels[int32]()
		},
	},
	{
		name:     "block8",
		minWidth: 32,
		priority: 20,
		bind: func() {
			kernelF32 = blockKernels[float32]()
			kernelF64 = blockKernels[float64]()
			kernelI32 = blockIntKernels[int32]()
		},
	},
}

// bindKernels selects the highest-priority usable kernel variant for the
// current target. Called from setTarget during init; never on a hot path.
func bindKernels() {
	best := kernelRegistry[0]
	for _, e := range kernelRegistry[1:] {
		if e.priority > best.priority && kernelUsable(e) {
			best = e
		}
	}
	best.bind()
	kernelName = best.name
}

func kernelUsable(e kernelEntry) bool {
	if e.minWidth == 0 {
		return true
	}
	return currentTarget != TargetScalar && currentWidth >= e.minWidth
}

// bindKernelsByName forces a specific kernel variant regardless of target.
// Intended for tests comparing variants; reports whether name was found.
func bindKernelsByName(name string) bool {
	for _, e := range kernelRegistry {
		if e.name == name {
			e.bind()
			kernelName = e.name
			return true
		}
	}
	return false
}

// KernelName returns the name of the kernel variant bound at init.
func KernelName() string {
	return kernelName
}

// kernelNames lists the registered variants in registration order.
func kernelNames() []string {
	names := make([]string, len(kernelRegistry))
	for i, e := range kernelRegistry {
		names[i] = e.name
	}
	return names
}

// genericKernels builds the straightforward per-lane table.
func genericKernels[E floatElem]() floatKernels[E] {
	return floatKernels[E]{
		add: func(dst, a, b []E) {
			for i := range dst {
				dst[i] = a[i] + b[i]
			}
		},
		sub: func(dst, a, b []E) {
			for i := range dst {
				dst[i] = a[i] - b[i]
			}
		},
		mul: func(dst, a, b []E) {
			for i := range dst {
				dst[i] = a[i] * b[i]
			}
		},
		div: func(dst, a, b []E) {
			for i := range dst {
				dst[i] = a[i] / b[i]
			}
		},
		vmin: func(dst, a, b []E) {
			for i := range dst {
				if a[i] < b[i] {
					dst[i] = a[i]
				} else {
					dst[i] = b[i]
				}
			}
		},
		vmax: func(dst, a, b []E) {
			for i := range dst {
				if a[i] > b[i] {
					dst[i] = a[i]
				} else {
					dst[i] = b[i]
				}
			}
		},
		fma:  fmaLanes[E],
		sum:  pairwiseSum[E],
	}
}

// blockKernels builds the 4x unrolled table used on vector-capable
// targets. The unrolling exposes independent operations to the compiler's
// instruction scheduler; per-lane results are identical to the generic
// table.
func blockKernels[E floatElem]() floatKernels[E] {
	return floatKernels[E]{
		add: func(dst, a, b []E) {
			i := 0
			for ; i+4 <= len(dst); i += 4 {
				dst[i] = a[i] + b[i]
				dst[i+1] = a[i+1] + b[i+1]
				dst[i+2] = a[i+2] + b[i+2]
				dst[i+3] = a[i+3] + b[i+3]
			}
			for ; i < len(dst); i++ {
				dst[i] = a[i] + b[i]
			}
		},
		sub: func(dst, a, b []E) {
			i := 0
			for ; i+4 <= len(dst); i += 4 {
				dst[i] = a[i] - b[i]
				dst[i+1] = a[i+1] - b[i+1]
				dst[i+2] = a[i+2] - b[i+2]
				dst[i+3] = a[i+3] - b[i+3]
			}
			for ; i < len(dst); i++ {
				dst[i] = a[i] - b[i]
			}
		},
		mul: func(dst, a, b []E) {
			i := 0
			for ; i+4 <= len(dst); i += 4 {
				dst[i] = a[i] * b[i]
				dst[i+1] = a[i+1] * b[i+1]
				dst[i+2] = a[i+2] * b[i+2]
				dst[i+3] = a[i+3] * b[i+3]
			}
			for ; i < len(dst); i++ {
				dst[i] = a[i] * b[i]
			}
		},
		div: func(dst, a, b []E) {
			i := 0
			for ; i+4 <= len(dst); i += 4 {
				dst[i] = a[i] / b[i]
				dst[i+1] = a[i+1] / b[i+1]
				dst[i+2] = a[i+2] / b[i+2]
				dst[i+3] = a[i+3] / b[i+3]
			}
			for ; i < len(dst); i++ {
				dst[i] = a[i] / b[i]
			}
		},
		vmin: func(dst, a, b []E) {
			for i := range dst {
				if a[i] < b[i] {
					dst[i] = a[i]
				} else {
					dst[i] = b[i]
				}
			}
		},
		vmax: func(dst, a, b []E) {
			for i := range dst {
				if a[i] > b[i] {
					dst[i] = a[i]
				} else {
					dst[i] = b[i]
				}
			}
		},
		fma:  fmaLanes[E],
		sum:  pairwiseSum[E],
	}
}

func genericIntKernels[E ~int32]() intKernels[E] {
	return intKernels[E]{
		add: func(dst, a, b []E) {
			for i := range dst {
				dst[i] = a[i] + b[i]
			}
		},
		sub: func(dst, a, b []E) {
			for i := range dst {
				dst[i] = a[i] - b[i]
			}
		},
		mul: func(dst, a, b []E) {
			for i := range dst {
				dst[i] = a[i] * b[i]
			}
		},
		vmin: func(dst, a, b []E) {
			for i := range dst {
				if a[i] < b[i] {
					dst[i] = a[i]
				} else {
					dst[i] = b[i]
				}
			}
		},
		vmax: func(dst, a, b []E) {
			for i := range dst {
				if a[i] > b[i] {
					dst[i] = a[i]
				} else {
					dst[i] = b[i]
				}
			}
		},
		sum: func(x []E) E {
			var acc E
			for _, v := range x {
				acc += v
			}
			return acc
		},
	}
}

func blockIntKernels[E ~int32]() intKernels[E] {
	k := genericIntKernels[E]()
	k.add = func(dst, a, b []E) {
		i := 0
		for ; i+4 <= len(dst); i += 4 {
			dst[i] = a[i] + b[i]
			dst[i+1] = a[i+1] + b[i+1]
			dst[i+2] = a[i+2] + b[i+2]
			dst[i+3] = a[i+3] + b[i+3]
		}
		for ; i < len(dst); i++ {
			dst[i] = a[i] + b[i]
		}
	}
	k.sum = func(x []E) E {
		var s0, s1, s2, s3 E
		i := 0
		for ; i+4 <= len(x); i += 4 {
			s0 += x[i]
			s1 += x[i+1]
			s2 += x[i+2]
			s3 += x[i+3]
		}
		acc := s0 + s1 + s2 + s3
		for ; i < len(x); i++ {
			acc += x[i]
		}
		return acc
	}
	return k
}

// pairwiseSum is the canonical floating-point summation order: a balanced
// pairwise tree over the logical lane count, split at the midpoint. Every
// kernel variant and every register kind uses this same tree, so reduction
// results are bit-for-bit reproducible when the backing layout changes.
func pairwiseSum[E floatElem](x []E) E {
	switch len(x) {
	case 0:
		var zero E
		return zero
	case 1:
		return x[0]
	case 2:
		return x[0] + x[1]
	}
	h := len(x) / 2
	return pairwiseSum(x[:h]) + pairwiseSum(x[h:])
}
