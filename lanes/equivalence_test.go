package lanes

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cross-target equivalence: the same program must produce bit-identical
// lane values on every register kind. These tests run a composite
// computation under each target and compare the raw bit patterns.

func targetsUnderTest() []Target {
	return []Target{TargetScalar, TargetSSE2, TargetNEON, TargetAVX2, TargetAVX512}
}

func TestArithmeticEquivalentAcrossTargets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 64
	xs := make([]float32, n)
	ys := make([]float32, n)
	for i := range xs {
		xs[i] = float32(rng.NormFloat64() * 100)
		ys[i] = float32(rng.NormFloat64()*10 + 0.5)
	}

	compute := func() []float32 {
		out := make([]float32, n)
		ProcessWithTail[float32](n,
			func(off int) {
				a := Load(xs[off:])
				b := Load(ys[off:])
				r := FMA(Sub(a, b), Max(a, b), Div(a, b))
				Store(Sqrt(Abs(r)), out[off:])
			},
			func(off, count int) {
				m := TailMask[float32](count)
				a := MaskLoad(m, xs[off:])
				b := MaskLoad(m, ys[off:])
				r := FMA(Sub(a, b), Max(a, b), Div(a, b))
				MaskStore(m, Sqrt(Abs(r)), out[off:])
			},
		)
		return out
	}

	var base []float32
	for _, target := range targetsUnderTest() {
		withTarget(target, func() {
			got := compute()
			if base == nil {
				base = got
				return
			}
			for i := range got {
				require.Equal(t, math.Float32bits(base[i]), math.Float32bits(got[i]),
					"target %v lane %d: %g != %g", target, i, got[i], base[i])
			}
		})
	}
}

func TestReductionEquivalentAcrossTags(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 96
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64() * 1e6
	}
	v := FromSlice(xs)

	want := ReduceSum(v)
	for _, target := range targetsUnderTest() {
		withTarget(target, func() {
			got := ReduceSum(v)
			require.Equal(t, math.Float64bits(want), math.Float64bits(got),
				"target %v: sum %g != %g", target, got, want)
		})
	}
}

func TestMaskedSelectIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 32
	xs := make([]int32, n)
	ys := make([]int32, n)
	bits := make([]bool, n)
	for i := range xs {
		xs[i] = rng.Int31() - 1<<30
		ys[i] = rng.Int31() - 1<<30
		bits[i] = rng.Intn(2) == 0
	}
	a := FromSlice(xs)
	b := FromSlice(ys)
	m := MaskFromSlice[int32](bits)

	// select(m, a, a) == a
	same := IfThenElse(m, a, a)
	require.Equal(t, a.Data(), same.Data())

	// select(m, a, b) == select(!m, b, a)
	sel := IfThenElse(m, a, b)
	selInv := IfThenElse(MaskNot(m), b, a)
	require.Equal(t, sel.Data(), selInv.Data())

	// select(m, a, 0) + select(!m, b, 0) == select(m, a, b)
	partA := IfThenElseZero(m, a)
	partB := IfThenElseZero(MaskNot(m), b)
	require.Equal(t, sel.Data(), Add(partA, partB).Data())

	// Mask counting is consistent with FindFirstTrue/FindLastTrue.
	if m.NoneTrue() {
		require.Equal(t, -1, FindFirstTrue(m))
	} else {
		first := FindFirstTrue(m)
		last := FindLastTrue(m)
		require.True(t, m.GetBit(first))
		require.True(t, m.GetBit(last))
		require.LessOrEqual(t, first, last)
	}
}

func TestGatherScatterInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const n = 24
	src := make([]float64, n)
	for i := range src {
		src[i] = rng.NormFloat64()
	}

	// A permutation's gather followed by its scatter restores the source.
	perm := rng.Perm(n)
	idx := IndicesFromFunc(n, func(lane int) int64 { return int64(perm[lane]) })

	gathered := GatherIndex(src, idx)
	restored := make([]float64, n)
	ScatterIndex(gathered, restored, idx)

	require.Equal(t, src, restored)
}

func TestMaskedMemoryEquivalence(t *testing.T) {
	// MaskStore after MaskLoad with the same mask copies exactly the
	// selected lanes and nothing else.
	rng := rand.New(rand.NewSource(5))
	n := MaxLanes[float32]()
	src := make([]float32, n)
	dst := make([]float32, n)
	keep := make([]float32, n)
	bits := make([]bool, n)
	for i := range src {
		src[i] = float32(rng.NormFloat64())
		dst[i] = float32(rng.NormFloat64())
		keep[i] = dst[i]
		bits[i] = rng.Intn(2) == 0
	}
	m := MaskFromSlice[float32](bits)

	MaskStore(m, MaskLoad(m, src), dst)

	for i := range dst {
		if bits[i] {
			require.Equal(t, src[i], dst[i], "lane %d not copied", i)
		} else {
			require.Equal(t, keep[i], dst[i], "lane %d disturbed", i)
		}
	}
}
