package lanes

import "testing"

func TestVecValueSemantics(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	a := FromSlice(src)
	b := Add(a, a)

	// The operand is untouched.
	for i, w := range src {
		if a.data[i] != w {
			t.Errorf("operand mutated: lane %d: got %v, want %v", i, a.data[i], w)
		}
	}
	if b.data[0] != 2 {
		t.Errorf("result: got %v, want 2", b.data[0])
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []int32{1, 2}
	v := FromSlice(src)
	src[0] = 99

	if v.data[0] != 1 {
		t.Error("FromSlice aliased the caller's slice")
	}
}

func TestVecStoreMethod(t *testing.T) {
	v := FromSlice([]int64{7, 8, 9})
	dst := make([]int64, 2)
	v.Store(dst)

	if dst[0] != 7 || dst[1] != 8 {
		t.Errorf("Store method: got %v", dst)
	}
}

func TestZeroValueVecIsEmpty(t *testing.T) {
	var v Vec[float64]
	if v.NumLanes() != 0 {
		t.Errorf("zero Vec: got %d lanes", v.NumLanes())
	}

	// Operations on empty vectors yield empty results, not panics.
	if got := Add(v, v).NumLanes(); got != 0 {
		t.Errorf("Add of empty: got %d lanes", got)
	}
	if got := ReduceSum(v); got != 0 {
		t.Errorf("ReduceSum of empty: got %v", got)
	}
}

func TestMismatchedLaneCountsTruncate(t *testing.T) {
	a := FromSlice([]int32{1, 2, 3, 4})
	b := FromSlice([]int32{10, 20})

	sum := Add(a, b)
	if sum.NumLanes() != 2 {
		t.Errorf("Add mismatched: got %d lanes, want 2", sum.NumLanes())
	}
	if sum.data[0] != 11 || sum.data[1] != 22 {
		t.Errorf("Add mismatched: got %v", sum.data)
	}
}
