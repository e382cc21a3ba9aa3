package lanes

import "testing"

func TestMaskQueries(t *testing.T) {
	m := MaskFromSlice[int32]([]bool{true, false, true, true})

	if m.AllTrue() {
		t.Error("AllTrue on mixed mask")
	}
	if !m.AnyTrue() {
		t.Error("AnyTrue false on mixed mask")
	}
	if m.NoneTrue() {
		t.Error("NoneTrue on mixed mask")
	}
	if got := m.CountTrue(); got != 3 {
		t.Errorf("CountTrue: got %d, want 3", got)
	}
	if !m.GetBit(0) || m.GetBit(1) {
		t.Error("GetBit mismatch")
	}
}

func TestMaskTrueFalse(t *testing.T) {
	mt := MaskTrue[float32]()
	mf := MaskFalse[float32]()

	if !mt.AllTrue() {
		t.Error("MaskTrue not all true")
	}
	if !mf.NoneTrue() {
		t.Error("MaskFalse not all false")
	}
	if mt.NumLanes() != MaxLanes[float32]() {
		t.Errorf("MaskTrue: got %d lanes, want %d", mt.NumLanes(), MaxLanes[float32]())
	}
}

func TestFirstN(t *testing.T) {
	maxLanes := MaxLanes[float64]()
	m := FirstN[float64](2)

	if m.NumLanes() != maxLanes {
		t.Errorf("FirstN: got %d lanes, want %d", m.NumLanes(), maxLanes)
	}
	if got := m.CountTrue(); got != min(2, maxLanes) {
		t.Errorf("FirstN(2): got %d active, want %d", got, min(2, maxLanes))
	}
	for i := range m.NumLanes() {
		want := i < 2
		if m.GetBit(i) != want {
			t.Errorf("FirstN(2): lane %d: got %v, want %v", i, m.GetBit(i), want)
		}
	}

	// Counts clamp rather than panic.
	if got := FirstN[float64](-1).CountTrue(); got != 0 {
		t.Errorf("FirstN(-1): got %d active", got)
	}
	if got := FirstN[float64](maxLanes + 10).CountTrue(); got != maxLanes {
		t.Errorf("FirstN(max+10): got %d active, want %d", got, maxLanes)
	}
}

func TestMaskLogic(t *testing.T) {
	a := MaskFromSlice[int8]([]bool{true, true, false, false})
	b := MaskFromSlice[int8]([]bool{true, false, true, false})

	and := MaskAnd(a, b)
	or := MaskOr(a, b)
	xor := MaskXor(a, b)
	not := MaskNot(a)
	andnot := MaskAndNot(a, b)

	wantAnd := []bool{true, false, false, false}
	wantOr := []bool{true, true, true, false}
	wantXor := []bool{false, true, true, false}
	wantNot := []bool{false, false, true, true}
	wantAndNot := []bool{false, false, true, false}
	for i := range 4 {
		if and.bits[i] != wantAnd[i] {
			t.Errorf("MaskAnd: lane %d: got %v", i, and.bits[i])
		}
		if or.bits[i] != wantOr[i] {
			t.Errorf("MaskOr: lane %d: got %v", i, or.bits[i])
		}
		if xor.bits[i] != wantXor[i] {
			t.Errorf("MaskXor: lane %d: got %v", i, xor.bits[i])
		}
		if not.bits[i] != wantNot[i] {
			t.Errorf("MaskNot: lane %d: got %v", i, not.bits[i])
		}
		if andnot.bits[i] != wantAndNot[i] {
			t.Errorf("MaskAndNot: lane %d: got %v", i, andnot.bits[i])
		}
	}
}

func TestFindFirstLastTrue(t *testing.T) {
	m := MaskFromSlice[uint32]([]bool{false, true, false, true, false})

	if got := FindFirstTrue(m); got != 1 {
		t.Errorf("FindFirstTrue: got %d, want 1", got)
	}
	if got := FindLastTrue(m); got != 3 {
		t.Errorf("FindLastTrue: got %d, want 3", got)
	}

	empty := MaskFromSlice[uint32]([]bool{false, false})
	if got := FindFirstTrue(empty); got != -1 {
		t.Errorf("FindFirstTrue on empty: got %d, want -1", got)
	}
	if got := FindLastTrue(empty); got != -1 {
		t.Errorf("FindLastTrue on empty: got %d, want -1", got)
	}
}

func TestVecFromMaskRoundTrip(t *testing.T) {
	m := MaskFromSlice[uint16]([]bool{true, false, true})
	v := VecFromMask(m)

	if v.data[0] != 0xFFFF || v.data[1] != 0 || v.data[2] != 0xFFFF {
		t.Errorf("VecFromMask: got %v", v.data)
	}

	back := MaskFromVec(v)
	for i := range 3 {
		if back.bits[i] != m.bits[i] {
			t.Errorf("MaskFromVec: lane %d: got %v, want %v", i, back.bits[i], m.bits[i])
		}
	}
}

func TestMaskFromSliceCopies(t *testing.T) {
	bits := []bool{true, false}
	m := MaskFromSlice[int32](bits)
	bits[0] = false

	if !m.GetBit(0) {
		t.Error("MaskFromSlice aliased the caller's slice")
	}
}
