package lanes

import "unsafe"

// Additional memory operations. Go slices are always safely addressable,
// so Load/Store carry the unaligned contract; SliceAligned lets callers
// verify a buffer's actual alignment when they allocate for it. Partial
// forms (LoadN/StoreN) never touch memory beyond the stated element count,
// which makes them safe against buffers that end at a page boundary.

// LoadN loads exactly min(n, len(src)) elements into the leading lanes of
// a scalable vector, zero-filling the rest. Memory past the n-th element
// of src is never read, even when it would be in bounds.
func LoadN[T Element](src []T, n int) Vec[T] {
	lanes := MaxLanes[T]()
	if n > lanes {
		n = lanes
	}
	if n > len(src) {
		n = len(src)
	}
	if n < 0 {
		n = 0
	}
	data := make([]T, lanes)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// StoreN stores the first min(n, NumLanes) lanes of v to dst. Memory past
// the n-th element of dst is never written.
func StoreN[T Element](v Vec[T], dst []T, n int) {
	if n > len(v.data) {
		n = len(v.data)
	}
	if n > len(dst) {
		n = len(dst)
	}
	if n < 0 {
		n = 0
	}
	copy(dst[:n], v.data[:n])
}

// BlendedStore stores v's lanes to dst only where the mask is true,
// explicitly preserving existing destination values elsewhere.
func BlendedStore[T Element](v Vec[T], mask Mask[T], dst []T) {
	n := min(len(dst), min(len(mask.bits), len(v.data)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// Undefined returns a vector whose lane values callers must not rely on.
// It is zero-initialized here; use it for outputs that will be fully
// overwritten.
func Undefined[T Element]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// LoadDup128 loads one 128-bit block from src and repeats it across the
// whole vector. With 128-bit registers this is a plain load; with 256-bit
// registers the block appears twice, and so on.
func LoadDup128[T Element](src []T) Vec[T] {
	t := Traits[T]()
	blockLanes := 16 / t.Size
	total := MaxLanes[T]()
	data := make([]T, total)
	srcLanes := min(len(src), blockLanes)
	for i := range data {
		if i%blockLanes < srcLanes {
			data[i] = src[i%blockLanes]
		}
	}
	return Vec[T]{data: data}
}

// SliceAligned reports whether the first element of s sits on an address
// aligned to the given byte boundary. An empty slice counts as aligned.
func SliceAligned[T Element](s []T, bytes int) bool {
	if len(s) == 0 || bytes <= 1 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(bytes) == 0
}

// LoadInterleaved2 deinterleaves pairs [a0,b0,a1,b1,...] into two vectors
// [a0,a1,...] and [b0,b1,...] (AoS to SoA).
func LoadInterleaved2[T Element](src []T) (Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	for i := 0; i < n && 2*i+1 < len(src); i++ {
		a[i] = src[2*i]
		b[i] = src[2*i+1]
	}
	return Vec[T]{data: a}, Vec[T]{data: b}
}

// LoadInterleaved3 deinterleaves triples [a0,b0,c0,a1,...] into three
// vectors (AoS to SoA), e.g. packed RGB or XYZ data.
func LoadInterleaved3[T Element](src []T) (Vec[T], Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)
	for i := 0; i < n && 3*i+2 < len(src); i++ {
		a[i] = src[3*i]
		b[i] = src[3*i+1]
		c[i] = src[3*i+2]
	}
	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}
}

// LoadInterleaved4 deinterleaves quads [a0,b0,c0,d0,a1,...] into four
// vectors (AoS to SoA), e.g. packed RGBA or quaternion data.
func LoadInterleaved4[T Element](src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)
	d := make([]T, n)
	for i := 0; i < n && 4*i+3 < len(src); i++ {
		a[i] = src[4*i]
		b[i] = src[4*i+1]
		c[i] = src[4*i+2]
		d[i] = src[4*i+3]
	}
	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}, Vec[T]{data: d}
}

// StoreInterleaved2 interleaves two vectors into dst as pairs
// [a0,b0,a1,b1,...] (SoA to AoS). Inverse of LoadInterleaved2.
func StoreInterleaved2[T Element](a, b Vec[T], dst []T) {
	n := min(len(a.data), len(b.data))
	for i := 0; i < n && 2*i+1 < len(dst); i++ {
		dst[2*i] = a.data[i]
		dst[2*i+1] = b.data[i]
	}
}

// StoreInterleaved3 interleaves three vectors into dst as triples.
// Inverse of LoadInterleaved3.
func StoreInterleaved3[T Element](a, b, c Vec[T], dst []T) {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	for i := 0; i < n && 3*i+2 < len(dst); i++ {
		dst[3*i] = a.data[i]
		dst[3*i+1] = b.data[i]
		dst[3*i+2] = c.data[i]
	}
}

// StoreInterleaved4 interleaves four vectors into dst as quads.
// Inverse of LoadInterleaved4.
func StoreInterleaved4[T Element](a, b, c, d Vec[T], dst []T) {
	n := min(min(len(a.data), len(b.data)), min(len(c.data), len(d.data)))
	for i := 0; i < n && 4*i+3 < len(dst); i++ {
		dst[4*i] = a.data[i]
		dst[4*i+1] = b.data[i]
		dst[4*i+2] = c.data[i]
		dst[4*i+3] = d.data[i]
	}
}
