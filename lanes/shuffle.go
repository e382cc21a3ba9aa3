package lanes

// Shuffle and permutation operations. Permute-by-index uses one policy for
// out-of-range indices across every register kind: indices clamp to the
// valid lane range [0, NumLanes-1]. Clamping is branch-free on hardware,
// deterministic, and keeps a program's observable behavior identical when
// the backing layout changes. TableLookupLanesOr offers an explicit
// fallback value instead of clamping.

// TableLookupLanes permutes lanes: lane i of the result holds
// tbl's lane indices[i]. Out-of-range indices clamp to the nearest valid
// lane.
func TableLookupLanes[T Element, I LaneIndex](tbl Vec[T], indices Vec[I]) Vec[T] {
	n := len(tbl.data)
	if n == 0 {
		return Vec[T]{}
	}
	out := make([]T, min(n, len(indices.data)))
	for i := range out {
		out[i] = tbl.data[clampIndex(int(indices.data[i]), n)]
	}
	return Vec[T]{data: out}
}

// TableLookupLanesOr permutes like TableLookupLanes but substitutes
// fallback's lane i when indices[i] is out of range.
func TableLookupLanesOr[T Element, I LaneIndex](tbl Vec[T], indices Vec[I], fallback Vec[T]) Vec[T] {
	n := min(len(tbl.data), min(len(indices.data), len(fallback.data)))
	out := make([]T, n)
	for i := range n {
		if j := int(indices.data[i]); j >= 0 && j < len(tbl.data) {
			out[i] = tbl.data[j]
		} else {
			out[i] = fallback.data[i]
		}
	}
	return Vec[T]{data: out}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Reverse reverses the lane order.
func Reverse[T Element](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := make([]T, n)
	for i := range n {
		out[i] = v.data[n-1-i]
	}
	return Vec[T]{data: out}
}

// Reverse2 reverses within each pair of lanes:
// [0,1,2,3] -> [1,0,3,2]. A trailing odd lane stays in place.
func Reverse2[T Element](v Vec[T]) Vec[T] {
	return reverseGroups(v, 2)
}

// Reverse4 reverses within each group of 4 lanes:
// [0,1,2,3,4,5,6,7] -> [3,2,1,0,7,6,5,4].
func Reverse4[T Element](v Vec[T]) Vec[T] {
	return reverseGroups(v, 4)
}

// Reverse8 reverses within each group of 8 lanes.
func Reverse8[T Element](v Vec[T]) Vec[T] {
	return reverseGroups(v, 8)
}

func reverseGroups[T Element](v Vec[T], group int) Vec[T] {
	n := len(v.data)
	out := make([]T, n)
	for base := 0; base < n; base += group {
		g := min(group, n-base)
		for j := 0; j < g; j++ {
			out[base+j] = v.data[base+g-1-j]
		}
	}
	return Vec[T]{data: out}
}

// Broadcast replicates the value of one lane across all lanes.
// Out-of-range lane indices clamp, matching the permute policy.
func Broadcast[T Element](v Vec[T], lane int) Vec[T] {
	n := len(v.data)
	if n == 0 {
		return v
	}
	out := make([]T, n)
	x := v.data[clampIndex(lane, n)]
	for i := range out {
		out[i] = x
	}
	return Vec[T]{data: out}
}

// GetLane extracts one lane value. Out-of-range indices read zero.
func GetLane[T Element](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a copy of v with val at the given lane. Out-of-range
// indices return v unchanged.
func InsertLane[T Element](v Vec[T], idx int, val T) Vec[T] {
	if idx < 0 || idx >= len(v.data) {
		return v
	}
	out := make([]T, len(v.data))
	copy(out, v.data)
	out[idx] = val
	return Vec[T]{data: out}
}

// InterleaveLower interleaves the lower halves of two vectors:
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1].
func InterleaveLower[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := 0; i < n/2; i++ {
		out[2*i] = a.data[i]
		out[2*i+1] = b.data[i]
	}
	return Vec[T]{data: out}
}

// InterleaveUpper interleaves the upper halves of two vectors:
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3].
func InterleaveUpper[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	out := make([]T, n)
	for i := 0; i < half; i++ {
		out[2*i] = a.data[half+i]
		out[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: out}
}

// ConcatLowerLower concatenates the lower halves: -> [a0,a1,b0,b1].
func ConcatLowerLower[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	out := make([]T, n)
	copy(out[:half], a.data[:half])
	copy(out[half:], b.data[:half])
	return Vec[T]{data: out}
}

// ConcatUpperUpper concatenates the upper halves: -> [a2,a3,b2,b3].
func ConcatUpperUpper[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	out := make([]T, n)
	copy(out[:half], a.data[half:n])
	copy(out[half:], b.data[half:n])
	return Vec[T]{data: out}
}

// ConcatLowerUpper concatenates a's lower half with b's upper half:
// -> [a0,a1,b2,b3].
func ConcatLowerUpper[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	out := make([]T, n)
	copy(out[:half], a.data[:half])
	copy(out[half:], b.data[half:n])
	return Vec[T]{data: out}
}

// ConcatUpperLower concatenates a's upper half with b's lower half:
// -> [a2,a3,b0,b1].
func ConcatUpperLower[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	out := make([]T, n)
	copy(out[:half], a.data[half:n])
	copy(out[half:], b.data[:half])
	return Vec[T]{data: out}
}

// OddEven takes odd lanes from a and even lanes from b:
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [b0,a1,b2,a3].
func OddEven[T Element](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		if i%2 == 0 {
			out[i] = b.data[i]
		} else {
			out[i] = a.data[i]
		}
	}
	return Vec[T]{data: out}
}

// DupEven duplicates each even lane over the following odd lane:
// [a0,a1,a2,a3] -> [a0,a0,a2,a2].
func DupEven[T Element](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := make([]T, n)
	for i := 0; i < n; i += 2 {
		out[i] = v.data[i]
		if i+1 < n {
			out[i+1] = v.data[i]
		}
	}
	return Vec[T]{data: out}
}

// DupOdd duplicates each odd lane over the preceding even lane:
// [a0,a1,a2,a3] -> [a1,a1,a3,a3]. A trailing unpaired lane stays.
func DupOdd[T Element](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := make([]T, n)
	for i := 0; i < n; i += 2 {
		if i+1 < n {
			out[i] = v.data[i+1]
			out[i+1] = v.data[i+1]
		} else {
			out[i] = v.data[i]
		}
	}
	return Vec[T]{data: out}
}

// SlideUpLanes shifts lanes toward higher indices, zero-filling the bottom:
// [1,2,3,4] with offset 1 -> [0,1,2,3].
func SlideUpLanes[T Element](v Vec[T], offset int) Vec[T] {
	n := len(v.data)
	out := make([]T, n)
	if offset <= 0 {
		copy(out, v.data)
	} else if offset < n {
		copy(out[offset:], v.data[:n-offset])
	}
	return Vec[T]{data: out}
}

// SlideDownLanes shifts lanes toward lower indices, zero-filling the top:
// [1,2,3,4] with offset 1 -> [2,3,4,0].
func SlideDownLanes[T Element](v Vec[T], offset int) Vec[T] {
	n := len(v.data)
	out := make([]T, n)
	if offset <= 0 {
		copy(out, v.data)
	} else if offset < n {
		copy(out[:n-offset], v.data[offset:])
	}
	return Vec[T]{data: out}
}

// Slide1Up shifts all lanes up by one.
func Slide1Up[T Element](v Vec[T]) Vec[T] {
	return SlideUpLanes(v, 1)
}

// Slide1Down shifts all lanes down by one.
func Slide1Down[T Element](v Vec[T]) Vec[T] {
	return SlideDownLanes(v, 1)
}

// SwapAdjacentBlocks swaps adjacent 128-bit blocks, the block-boundary
// crossing primitive for emulated compositions: a 256-bit layout swaps its
// two halves, a 512-bit layout swaps blocks pairwise.
func SwapAdjacentBlocks[T Element](v Vec[T]) Vec[T] {
	t := Traits[T]()
	blockLanes := 16 / t.Size
	n := len(v.data)
	out := make([]T, n)
	for i := 0; i < n; i += 2 * blockLanes {
		if i+2*blockLanes <= n {
			copy(out[i:], v.data[i+blockLanes:i+2*blockLanes])
			copy(out[i+blockLanes:], v.data[i:i+blockLanes])
		} else {
			copy(out[i:], v.data[i:])
		}
	}
	return Vec[T]{data: out}
}

// Shuffle4 permutes within each 4-lane group by the given pattern, e.g.
// Shuffle4(v, 3, 2, 1, 0) reverses each group. Pattern indices clamp to
// [0,3]. Trailing partial groups are copied through.
func Shuffle4[T Element](v Vec[T], i0, i1, i2, i3 int) Vec[T] {
	n := len(v.data)
	out := make([]T, n)
	p := [4]int{clampIndex(i0, 4), clampIndex(i1, 4), clampIndex(i2, 4), clampIndex(i3, 4)}
	for base := 0; base+4 <= n; base += 4 {
		out[base] = v.data[base+p[0]]
		out[base+1] = v.data[base+p[1]]
		out[base+2] = v.data[base+p[2]]
		out[base+3] = v.data[base+p[3]]
	}
	if rem := n % 4; rem != 0 {
		copy(out[n-rem:], v.data[n-rem:])
	}
	return Vec[T]{data: out}
}

// Per4LaneBlockShuffle is Shuffle4 with the pattern packed into one byte,
// two bits per destination lane: bits [1:0] select for lane 0, [3:2] for
// lane 1, and so on.
func Per4LaneBlockShuffle[T Element](v Vec[T], pattern uint8) Vec[T] {
	return Shuffle4(v,
		int(pattern&0x03),
		int(pattern>>2&0x03),
		int(pattern>>4&0x03),
		int(pattern>>6&0x03),
	)
}
