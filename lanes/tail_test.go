package lanes

import "testing"

func TestTailMask(t *testing.T) {
	maxLanes := MaxLanes[float32]()
	m := TailMask[float32](1)

	if m.NumLanes() != maxLanes {
		t.Errorf("TailMask: got %d lanes, want %d", m.NumLanes(), maxLanes)
	}
	if m.CountTrue() != 1 {
		t.Errorf("TailMask(1): got %d active", m.CountTrue())
	}
	if got := TailMask[float32](maxLanes + 5).CountTrue(); got != maxLanes {
		t.Errorf("TailMask clamp: got %d active, want %d", got, maxLanes)
	}
}

func TestProcessWithTail(t *testing.T) {
	maxLanes := MaxLanes[float32]()
	size := 3*maxLanes + 2 // guaranteed uneven: lane counts are >= 4

	data := make([]float32, size)
	out := make([]float32, size)
	for i := range data {
		data[i] = float32(i)
	}

	ProcessWithTail[float32](size,
		func(offset int) {
			v := Load(data[offset:])
			Store(Add(v, v), out[offset:])
		},
		func(offset, count int) {
			m := TailMask[float32](count)
			v := MaskLoad(m, data[offset:])
			MaskStore(m, Add(v, v), out[offset:])
		},
	)

	for i := range out {
		if out[i] != 2*data[i] {
			t.Errorf("ProcessWithTail: element %d: got %v, want %v", i, out[i], 2*data[i])
		}
	}
}

func TestProcessWithTailExactMultiple(t *testing.T) {
	maxLanes := MaxLanes[float64]()
	size := 2 * maxLanes

	var fullCalls, tailCalls int
	ProcessWithTail[float64](size,
		func(int) { fullCalls++ },
		func(int, int) { tailCalls++ },
	)

	if fullCalls != 2 {
		t.Errorf("full calls: got %d, want 2", fullCalls)
	}
	if tailCalls != 0 {
		t.Errorf("tail calls: got %d, want 0", tailCalls)
	}
}

func TestProcessWithTailNoMask(t *testing.T) {
	maxLanes := MaxLanes[float32]()
	size := maxLanes + 1

	data := make([]float32, size)
	out := make([]float32, size)
	for i := range data {
		data[i] = float32(i + 1)
	}

	ProcessWithTailNoMask[float32](size, func(offset int) {
		v := Load(data[offset:])
		Store(Mul(v, v), out[offset:])
	})

	for i := range out {
		want := data[i] * data[i]
		if out[i] != want {
			t.Errorf("ProcessWithTailNoMask: element %d: got %v, want %v", i, out[i], want)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	maxLanes := MaxLanes[float32]()

	if got := AlignedSize[float32](1); got != maxLanes {
		t.Errorf("AlignedSize(1): got %d, want %d", got, maxLanes)
	}
	if got := AlignedSize[float32](maxLanes); got != maxLanes {
		t.Errorf("AlignedSize(max): got %d, want %d", got, maxLanes)
	}
	if got := AlignedSize[float32](0); got != 0 {
		t.Errorf("AlignedSize(0): got %d, want 0", got)
	}

	if !IsAligned[float32](2 * maxLanes) {
		t.Error("IsAligned(2*max) false")
	}
	if IsAligned[float32](maxLanes + 1) {
		t.Error("IsAligned(max+1) true")
	}
}
