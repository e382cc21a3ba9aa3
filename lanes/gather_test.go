package lanes

import "testing"

func TestGatherIndex(t *testing.T) {
	src := []float32{10, 20, 30, 40, 50}
	idx := FromSlice([]int32{4, 0, 2, 2})

	v := GatherIndex(src, idx)
	want := []float32{50, 10, 30, 30}
	for i, w := range want {
		if v.data[i] != w {
			t.Errorf("GatherIndex: lane %d: got %v, want %v", i, v.data[i], w)
		}
	}
}

func TestGatherIndexOutOfRangeYieldsZero(t *testing.T) {
	src := []int64{1, 2, 3}
	idx := FromSlice([]int64{-1, 3, 100, 1})

	v := GatherIndex(src, idx)
	want := []int64{0, 0, 0, 2}
	for i, w := range want {
		if v.data[i] != w {
			t.Errorf("GatherIndex OOB: lane %d: got %v, want %v", i, v.data[i], w)
		}
	}
}

func TestGatherIndexMasked(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	idx := FromSlice([]int32{3, 2, 1, 0})
	m := MaskFromSlice[float64]([]bool{true, false, true, false})

	v := GatherIndexMasked(src, idx, m)
	want := []float64{4, 0, 2, 0}
	for i, w := range want {
		if v.data[i] != w {
			t.Errorf("GatherIndexMasked: lane %d: got %v, want %v", i, v.data[i], w)
		}
	}
}

func TestScatterIndex(t *testing.T) {
	dst := make([]int32, 5)
	v := FromSlice([]int32{7, 8, 9})
	idx := FromSlice([]int32{4, 0, 2})

	ScatterIndex(v, dst, idx)
	want := []int32{8, 0, 9, 0, 7}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("ScatterIndex: dst[%d]: got %v, want %v", i, dst[i], w)
		}
	}
}

func TestScatterIndexConflictHigherLaneWins(t *testing.T) {
	dst := make([]int8, 2)
	v := FromSlice([]int8{1, 2, 3})
	idx := FromSlice([]int32{1, 1, 1})

	ScatterIndex(v, dst, idx)
	if dst[1] != 3 {
		t.Errorf("ScatterIndex conflict: got %v, want 3", dst[1])
	}
}

func TestScatterIndexOutOfRangeSkipped(t *testing.T) {
	dst := []uint16{9, 9}
	v := FromSlice([]uint16{1, 2, 3})
	idx := FromSlice([]int64{-5, 2, 0})

	ScatterIndex(v, dst, idx)
	want := []uint16{3, 9}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("ScatterIndex OOB: dst[%d]: got %v, want %v", i, dst[i], w)
		}
	}
}

func TestScatterIndexMasked(t *testing.T) {
	dst := []float32{9, 9, 9}
	v := FromSlice([]float32{1, 2, 3})
	idx := FromSlice([]int32{0, 1, 2})
	m := MaskFromSlice[float32]([]bool{false, true, false})

	ScatterIndexMasked(v, dst, idx, m)
	want := []float32{9, 2, 9}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("ScatterIndexMasked: dst[%d]: got %v, want %v", i, dst[i], w)
		}
	}
}

func TestGatherStride(t *testing.T) {
	// Column 1 of a 3-wide row-major matrix.
	src := []float32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	}
	v := GatherStride(src, 1, 3, 3)
	want := []float32{1, 4, 7}
	for i, w := range want {
		if v.data[i] != w {
			t.Errorf("GatherStride: lane %d: got %v, want %v", i, v.data[i], w)
		}
	}
}

func TestIndicesHelpers(t *testing.T) {
	iota := IndicesIota[int32](4)
	for i := range 4 {
		if iota.data[i] != int32(i) {
			t.Errorf("IndicesIota: lane %d: got %v", i, iota.data[i])
		}
	}

	strided := IndicesStride[int64](3, 10, -2)
	want := []int64{10, 8, 6}
	for i, w := range want {
		if strided.data[i] != w {
			t.Errorf("IndicesStride: lane %d: got %v, want %v", i, strided.data[i], w)
		}
	}

	fn := IndicesFromFunc(3, func(lane int) int32 { return int32(lane * lane) })
	wantFn := []int32{0, 1, 4}
	for i, w := range wantFn {
		if fn.data[i] != w {
			t.Errorf("IndicesFromFunc: lane %d: got %v, want %v", i, fn.data[i], w)
		}
	}
}
