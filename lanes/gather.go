package lanes

// Gather and scatter move lanes between vectors and non-contiguous memory
// locations. The out-of-range policy is uniform: a gather from an invalid
// index yields zero, a scatter to an invalid index is skipped, and a
// masked-off lane performs no memory access at all.

// LaneIndex constrains the element type of index vectors.
type LaneIndex interface {
	~int32 | ~int64
}

// GatherIndex loads src[indices[i]] into lane i. Out-of-range indices
// (negative or past the end of src) yield zero.
func GatherIndex[T Element, I LaneIndex](src []T, indices Vec[I]) Vec[T] {
	out := make([]T, len(indices.data))
	for i, idx := range indices.data {
		if j := int(idx); j >= 0 && j < len(src) {
			out[i] = src[j]
		}
	}
	return Vec[T]{data: out}
}

// GatherIndexMasked gathers only lanes where the mask is true; masked-off
// lanes are zero and their source memory is never read. This is the safe
// form near buffer boundaries.
func GatherIndexMasked[T Element, I LaneIndex](src []T, indices Vec[I], mask Mask[T]) Vec[T] {
	out := make([]T, len(indices.data))
	n := min(len(mask.bits), len(indices.data))
	for i := range n {
		if !mask.bits[i] {
			continue
		}
		if j := int(indices.data[i]); j >= 0 && j < len(src) {
			out[i] = src[j]
		}
	}
	return Vec[T]{data: out}
}

// ScatterIndex stores lane i of v to dst[indices[i]]. Out-of-range stores
// are skipped. When two lanes target the same index, the higher lane wins,
// matching sequential lane order.
func ScatterIndex[T Element, I LaneIndex](v Vec[T], dst []T, indices Vec[I]) {
	n := min(len(indices.data), len(v.data))
	for i := range n {
		if j := int(indices.data[i]); j >= 0 && j < len(dst) {
			dst[j] = v.data[i]
		}
	}
}

// ScatterIndexMasked scatters only lanes where the mask is true;
// masked-off lanes never write their destination.
func ScatterIndexMasked[T Element, I LaneIndex](v Vec[T], dst []T, indices Vec[I], mask Mask[T]) {
	n := min(len(mask.bits), min(len(indices.data), len(v.data)))
	for i := range n {
		if !mask.bits[i] {
			continue
		}
		if j := int(indices.data[i]); j >= 0 && j < len(dst) {
			dst[j] = v.data[i]
		}
	}
}

// GatherStride loads src[base + i*stride] into lane i, the common pattern
// for walking a column of row-major data. Out-of-range lanes yield zero.
func GatherStride[T Element](src []T, base, stride, count int) Vec[T] {
	out := make([]T, count)
	for i := range count {
		if j := base + i*stride; j >= 0 && j < len(src) {
			out[i] = src[j]
		}
	}
	return Vec[T]{data: out}
}

// IndicesFromFunc creates an index vector by calling f for each lane.
func IndicesFromFunc[I LaneIndex](numLanes int, f func(lane int) I) Vec[I] {
	out := make([]I, numLanes)
	for i := range numLanes {
		out[i] = f(i)
	}
	return Vec[I]{data: out}
}

// IndicesIota creates an index vector [0, 1, 2, ...].
func IndicesIota[I LaneIndex](numLanes int) Vec[I] {
	out := make([]I, numLanes)
	for i := range numLanes {
		out[i] = I(i)
	}
	return Vec[I]{data: out}
}

// IndicesStride creates an index vector [start, start+stride, ...].
func IndicesStride[I LaneIndex](numLanes int, start, stride I) Vec[I] {
	out := make([]I, numLanes)
	for i := range numLanes {
		out[i] = start + I(i)*stride
	}
	return Vec[I]{data: out}
}
