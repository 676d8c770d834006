package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlnorm/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestOneNorm_Basic verifies the textbook fixtures and the empty-input rule.
func TestOneNorm_Basic(t *testing.T) {
	assert.Equal(t, 10.0, vector.OneNorm([]float64{1, -2, 3, -4}), "mixed signs must sum absolute values")
	assert.Equal(t, 0.0, vector.OneNorm(nil), "empty sum is zero")
	assert.Equal(t, 0.0, vector.OneNorm([]float64{}), "empty sum is zero")
}

// TestMaxNorm_Basic verifies max-magnitude selection and the empty-input error.
func TestMaxNorm_Basic(t *testing.T) {
	got, err := vector.MaxNorm([]float64{1, -2, 3, -4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, got, "largest magnitude wins regardless of sign")

	_, err = vector.MaxNorm(nil)
	assert.ErrorIs(t, err, vector.ErrEmptyVector, "max of nothing is undefined")
}

// TestTwoNorm_Basic checks the 3-4-5 triangle and all-zero input.
func TestTwoNorm_Basic(t *testing.T) {
	assert.InDelta(t, 5.0, vector.TwoNorm([]float64{3, 4}), eps)
	assert.InDelta(t, 4.0, vector.TwoNorm([]float64{2, -2, 2, -2}), eps)
	assert.Equal(t, 0.0, vector.TwoNorm([]float64{0, 0, 0}))
	assert.Equal(t, 0.0, vector.TwoNorm(nil))
}

// TestTwoNorm_ExtremeMagnitudes ensures the scaled recurrence survives values
// whose naive squares would overflow or underflow float64.
func TestTwoNorm_ExtremeMagnitudes(t *testing.T) {
	huge := 1e200
	got := vector.TwoNorm([]float64{huge, huge})
	assert.InDelta(t, huge*math.Sqrt2, got, huge*1e-12, "no overflow for large entries")

	tiny := 1e-200
	got = vector.TwoNorm([]float64{tiny, tiny})
	assert.InDelta(t, tiny*math.Sqrt2, got, tiny*1e-12, "no underflow for small entries")
}

// TestPNorm_OrdersAndErrors covers representative orders and the fail-fast
// rejection of invalid ones.
func TestPNorm_OrdersAndErrors(t *testing.T) {
	v := []float64{1, -2, 3, -4}

	for _, tc := range []struct {
		name string
		p    float64
		want float64
	}{
		{"p=1 matches OneNorm", 1, vector.OneNorm(v)},
		{"p=2 matches TwoNorm", 2, vector.TwoNorm(v)},
		{"p=3 cube-root of cubes", 3, math.Pow(1+8+27+64, 1.0/3.0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.PNorm(v, tc.p)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}

	for _, bad := range []float64{0, 0.5, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := vector.PNorm(v, bad)
		assert.ErrorIs(t, err, vector.ErrBadOrder, "order %v must be rejected", bad)
	}

	// Empty input with a valid order follows the empty-sum convention.
	got, err := vector.PNorm(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestNormOrdering checks the classic chain one_norm ≥ max_norm ≥ 0
// on a spread of vectors.
func TestNormOrdering(t *testing.T) {
	for _, v := range [][]float64{
		{1},
		{0, 0, 0},
		{1, -2, 3, -4},
		{-7.5, 2.25, 0, 100},
		{1e-9, -1e9},
	} {
		one := vector.OneNorm(v)
		max, err := vector.MaxNorm(v)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, one, max, "one-norm dominates max-norm for %v", v)
		assert.GreaterOrEqual(t, max, 0.0)
	}
}

// TestPrevDiffNorm_Basic verifies the |v₀| + Σ|Δ| formula and the
// minimum-length rule.
func TestPrevDiffNorm_Basic(t *testing.T) {
	got, err := vector.PrevDiffNorm([]float64{2, 5, 1, -3})
	require.NoError(t, err)
	assert.InDelta(t, 13.0, got, eps, "|2|+|3|+|4|+|4| = 13")

	got, err = vector.PrevDiffNorm([]float64{-4, -2, 7})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got, eps, "|-4|+|2|+|9| = 15")

	_, err = vector.PrevDiffNorm([]float64{1})
	assert.ErrorIs(t, err, vector.ErrTooShort)
	_, err = vector.PrevDiffNorm(nil)
	assert.ErrorIs(t, err, vector.ErrTooShort)
}

// TestDot covers the inner product and length-mismatch rejection.
func TestDot(t *testing.T) {
	got, err := vector.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, eps)

	_, err = vector.Dot([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestNormalize checks unit length, input immutability and error cases.
func TestNormalize(t *testing.T) {
	v := []float64{3, 4}
	unit, err := vector.Normalize(v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, vector.TwoNorm(unit), eps, "result must have unit two-norm")
	assert.Equal(t, []float64{3, 4}, v, "input must not be mutated")
	assert.InDelta(t, 0.6, unit[0], eps)
	assert.InDelta(t, 0.8, unit[1], eps)

	_, err = vector.Normalize(nil)
	assert.ErrorIs(t, err, vector.ErrEmptyVector)
	_, err = vector.Normalize([]float64{0, 0})
	assert.ErrorIs(t, err, vector.ErrZeroVector)
}
