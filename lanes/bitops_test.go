package lanes

import "testing"

func TestPopCount(t *testing.T) {
	v := FromSlice([]uint8{0, 0xFF, 0b1010})
	r := PopCount(v)
	want := []uint8{0, 8, 2}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("PopCount: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestPopCountSignedDoesNotSignExtend(t *testing.T) {
	v := FromSlice([]int8{-1})
	r := PopCount(v)
	if r.data[0] != 8 {
		t.Errorf("PopCount(int8 -1): got %v, want 8", r.data[0])
	}
}

func TestLeadingZeroCount(t *testing.T) {
	v := FromSlice([]uint16{0, 1, 0x8000})
	r := LeadingZeroCount(v)
	want := []uint16{16, 15, 0}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("LeadingZeroCount: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestTrailingZeroCount(t *testing.T) {
	v := FromSlice([]uint32{0, 1, 8})
	r := TrailingZeroCount(v)
	want := []uint32{32, 0, 3}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("TrailingZeroCount: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestHighestSetBitIndex(t *testing.T) {
	v := FromSlice([]int32{1, 8, 0})
	r := HighestSetBitIndex(v)
	want := []int32{0, 3, -1}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("HighestSetBitIndex: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestShiftLeftVar(t *testing.T) {
	v := FromSlice([]uint8{1, 1, 1, 0xFF})
	counts := FromSlice([]uint8{0, 3, 8, 4})

	r := ShiftLeftVar(v, counts)
	want := []uint8{1, 8, 0, 0xF0}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("ShiftLeftVar: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestShiftRightVar(t *testing.T) {
	v := FromSlice([]int8{-128, -128, 64})
	counts := FromSlice([]int8{1, 100, 2})

	r := ShiftRightVar(v, counts)
	// Oversized signed counts saturate to width-1: sign fill.
	want := []int8{-64, -1, 16}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("ShiftRightVar signed: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}

	u := FromSlice([]uint8{0x80, 0x80})
	uc := FromSlice([]uint8{7, 8})
	ur := ShiftRightVar(u, uc)
	if ur.data[0] != 1 || ur.data[1] != 0 {
		t.Errorf("ShiftRightVar unsigned: got %v", ur.data)
	}
}

func TestRotateRight(t *testing.T) {
	v := FromSlice([]uint8{0b00000001, 0b10000000})

	r := RotateRight(v, 1)
	if r.data[0] != 0b10000000 || r.data[1] != 0b01000000 {
		t.Errorf("RotateRight(1): got %08b %08b", r.data[0], r.data[1])
	}

	// Counts reduce modulo the lane width; negative counts rotate left.
	full := RotateRight(v, 8)
	if full.data[0] != v.data[0] || full.data[1] != v.data[1] {
		t.Errorf("RotateRight(8): got %v", full.data)
	}
	left := RotateRight(v, -1)
	if left.data[0] != 0b00000010 {
		t.Errorf("RotateRight(-1): got %08b", left.data[0])
	}
}

func TestRotateRight64(t *testing.T) {
	v := FromSlice([]uint64{1})
	r := RotateRight(v, 1)
	if r.data[0] != 1<<63 {
		t.Errorf("RotateRight uint64: got %#x", r.data[0])
	}
}
