package znorm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mprof/znorm"
)

// naiveMeanStd computes a single window's mean and population std the
// slow, obvious way, as a reference for MeanStd.
func naiveMeanStd(w []float64) (float64, float64) {
	var sum float64
	for _, v := range w {
		sum += v
	}
	mu := sum / float64(len(w))
	var ssd float64
	for _, v := range w {
		ssd += (v - mu) * (v - mu)
	}
	return mu, math.Sqrt(ssd / float64(len(w)))
}

// zNormDistance computes the z-normalized Euclidean distance between two
// equal-length windows by explicit normalization, as a reference for the
// dot-product-based formula.
func zNormDistance(a, b []float64) float64 {
	norm := func(w []float64) []float64 {
		mu, sd := naiveMeanStd(w)
		out := make([]float64, len(w))
		for i, v := range w {
			out[i] = (v - mu) / sd
		}
		return out
	}
	na, nb := norm(a), norm(b)
	var acc float64
	for i := range na {
		acc += (na[i] - nb[i]) * (na[i] - nb[i])
	}
	return math.Sqrt(acc)
}

// TestMeanStd_AgainstNaive checks rolling statistics against the direct
// per-window computation.
func TestMeanStd_AgainstNaive(t *testing.T) {
	T := []float64{584, -11, 23, 79, 1001, 0, -19, 3.5, 42, -7}
	m := 4
	mean, std := znorm.MeanStd(T, m)
	assert.Len(t, mean, len(T)-m+1, "one entry per window")

	for i := range mean {
		wantMu, wantSd := naiveMeanStd(T[i : i+m])
		assert.InDelta(t, wantMu, mean[i], 1e-12, "mean of window %d", i)
		assert.InDelta(t, wantSd, std[i], 1e-12, "std of window %d", i)
	}
}

// TestMeanStd_NonFiniteSentinel verifies the μ=+Inf, σ=NaN sentinel for
// every window touching a non-finite point, and only for those windows.
func TestMeanStd_NonFiniteSentinel(t *testing.T) {
	T := []float64{1, 2, 3, math.NaN(), 5, 6, 7, 8}
	m := 3
	mean, std := znorm.MeanStd(T, m)

	for i := range mean {
		touches := i <= 3 && i+m > 3
		if touches {
			assert.True(t, math.IsInf(mean[i], 1), "window %d must carry μ=+Inf", i)
			assert.True(t, math.IsNaN(std[i]), "window %d must carry σ=NaN", i)
		} else {
			assert.False(t, math.IsInf(mean[i], 1), "window %d must stay finite", i)
			assert.False(t, math.IsNaN(std[i]), "window %d must stay finite", i)
		}
	}
}

// TestMeanStd_BadWindow covers the degenerate window sizes.
func TestMeanStd_BadWindow(t *testing.T) {
	mean, std := znorm.MeanStd([]float64{1, 2}, 3)
	assert.Nil(t, mean, "m > len(T) yields no windows")
	assert.Nil(t, std, "m > len(T) yields no windows")
}

// TestSlidingDotProduct_Small checks the kernel on a hand-computed case.
func TestSlidingDotProduct_Small(t *testing.T) {
	Q := []float64{1, 2}
	T := []float64{3, 4, 5, 6}
	got := znorm.SlidingDotProduct(Q, T)
	assert.Equal(t, []float64{11, 14, 17}, got, "window dot products")
}

// TestSquaredDistance_MatchesExplicitNormalization cross-checks the
// dot-product distance formula against explicit z-normalization.
func TestSquaredDistance_MatchesExplicitNormalization(t *testing.T) {
	a := []float64{584, -11, 23, 79}
	b := []float64{1001, 0, -19, 3.5}
	m := len(a)

	muA, sdA := naiveMeanStd(a)
	muB, sdB := naiveMeanStd(b)
	qt := znorm.Dot(a, b)

	got := math.Sqrt(znorm.SquaredDistance(m, qt, muA, sdA, muB, sdB))
	want := zNormDistance(a, b)
	assert.InDelta(t, want, got, 1e-9, "formula must agree with explicit normalization")
}

// TestSquaredDistance_Degenerate covers sentinel and constant windows.
func TestSquaredDistance_Degenerate(t *testing.T) {
	inf := math.Inf(1)
	m := 5

	assert.True(t, math.IsInf(znorm.SquaredDistance(m, 0, inf, math.NaN(), 1, 1), 1),
		"sentinel query must force +Inf")
	assert.True(t, math.IsInf(znorm.SquaredDistance(m, 0, 1, 1, inf, math.NaN()), 1),
		"sentinel target must force +Inf")
	assert.Equal(t, 0.0, znorm.SquaredDistance(m, 0, 3, 0, 7, 0),
		"two constant windows are identical after normalization")
	assert.Equal(t, float64(m), znorm.SquaredDistance(m, 0, 3, 0, 7, 2),
		"constant vs non-constant is m")
	assert.Equal(t, 0.0, znorm.SquaredDistance(m, 1e12, 1, 1, 1, 1),
		"correlation clamp keeps the distance non-negative")
}

// TestApplyExclusionZone_Clipping exercises interior and boundary bands.
func TestApplyExclusionZone_Clipping(t *testing.T) {
	inf := math.Inf(1)

	D := []float64{1, 2, 3, 4, 5}
	znorm.ApplyExclusionZone(D, 2, 1, inf)
	assert.Equal(t, []float64{1, inf, inf, inf, 5}, D, "interior band")

	D = []float64{1, 2, 3, 4, 5}
	znorm.ApplyExclusionZone(D, 0, 2, inf)
	assert.Equal(t, []float64{inf, inf, inf, 4, 5}, D, "band clipped at the front")

	D = []float64{1, 2, 3, 4, 5}
	znorm.ApplyExclusionZone(D, 4, 2, inf)
	assert.Equal(t, []float64{1, 2, inf, inf, inf}, D, "band clipped at the back")
}

// TestExclusionZone_Width pins the ceil(m/4) rule.
func TestExclusionZone_Width(t *testing.T) {
	assert.Equal(t, 1, znorm.ExclusionZone(3))
	assert.Equal(t, 1, znorm.ExclusionZone(4))
	assert.Equal(t, 2, znorm.ExclusionZone(5))
	assert.Equal(t, 5, znorm.ExclusionZone(20))
}

// TestSearchRight_TieSemantics verifies insert-after-equal rank lookup.
func TestSearchRight_TieSemantics(t *testing.T) {
	a := []float64{1, 2, 2, 3, math.Inf(1)}
	assert.Equal(t, 0, znorm.SearchRight(a, 0.5))
	assert.Equal(t, 3, znorm.SearchRight(a, 2), "new tie lands after existing equals")
	assert.Equal(t, 4, znorm.SearchRight(a, 10))
}

// TestShiftInsert_DiscardsWorst checks ranked insertion into a full row.
func TestShiftInsert_DiscardsWorst(t *testing.T) {
	inf := math.Inf(1)
	p := []float64{1, 3, inf}
	i := []int{10, 20, -1}

	idx := znorm.SearchRight(p, 2)
	znorm.ShiftInsert(p, idx, 2)
	znorm.ShiftInsertInt(i, idx, 30)

	assert.Equal(t, []float64{1, 2, 3}, p, "previous worst entry dropped")
	assert.Equal(t, []int{10, 30, 20}, i, "indices follow their distances")
}
