package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlnorm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestOneNorm_MaxColumnSum verifies the induced 1-norm on textbook fixtures
// and its defining identity against ColumnSums.
func TestOneNorm_MaxColumnSum(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"2x3 mixed signs", [][]float64{{1, -2, 3}, {-4, 5, -6}}, 9},
		{"3x2 positive", [][]float64{{1, 2}, {3, 4}, {5, 6}}, 12},
		{"all zeros", [][]float64{{0, 0}, {0, 0}}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := MustFromRows(t, tc.rows)
			got, err := matrix.OneNorm(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)

			// Defining identity: OneNorm == max over ColumnSums.
			sums, err := matrix.ColumnSums(m)
			require.NoError(t, err)
			best := sums[0]
			for _, s := range sums[1:] {
				if s > best {
					best = s
				}
			}
			assert.InDelta(t, best, got, eps)
		})
	}
}

// TestInfinityNorm_MaxRowSum verifies the induced ∞-norm and its defining
// identity against RowSums.
func TestInfinityNorm_MaxRowSum(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, -2, 3}, {-4, 5, 6}, {7, -8, 9}})

	got, err := matrix.InfinityNorm(m)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, got, eps, "|7|+|-8|+|9| = 24 is the largest row sum")

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	best := sums[0]
	for _, s := range sums[1:] {
		if s > best {
			best = s
		}
	}
	assert.InDelta(t, best, got, eps)
}

// TestFrobeniusNorm covers the textbook value, extreme magnitudes, and the
// fallback path.
func TestFrobeniusNorm(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	got, err := matrix.FrobeniusNorm(m)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(30), got, eps, "√(1+4+9+16)")

	// The scaled accumulation must survive entries whose squares overflow.
	big := MustFromRows(t, [][]float64{{1e200, 1e200}})
	got, err = matrix.FrobeniusNorm(big)
	require.NoError(t, err)
	assert.InDelta(t, 1e200*math.Sqrt2, got, 1e188)

	// Interface fallback agrees with the fast path.
	got2, err := matrix.FrobeniusNorm(hide{m})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(30), got2, eps)

	zero := MustDense(t, 2, 2)
	got, err = matrix.FrobeniusNorm(zero)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestMaxNorm picks the largest magnitude regardless of sign.
func TestMaxNorm(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"2x3", [][]float64{{1, -5, 3}, {2, 4, -6}}, 6},
		{"2x2", [][]float64{{-1, -2}, {0, 2}}, 2},
		{"zeros", [][]float64{{0, 0}, {0, 0}}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := MustFromRows(t, tc.rows)
			got, err := matrix.MaxNorm(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)

			got2, err := matrix.MaxNorm(hide{m})
			require.NoError(t, err)
			assert.Equal(t, got, got2, "fallback must agree")
		})
	}
}

// TestTwoNorm_Spectral verifies the largest singular value on fixtures with
// known spectra.
func TestTwoNorm_Spectral(t *testing.T) {
	opts := matrix.DefaultEigenOptions()

	// Known value for [[1,2],[3,4]]: σ_max ≈ 5.464985704219043.
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	got, err := matrix.TwoNorm(m, opts)
	require.NoError(t, err)
	assert.InDelta(t, 5.464985704219043, got, 1e-6)

	// Diagonal matrix: σ_max is the largest |diagonal| entry.
	d := MustFromRows(t, [][]float64{{-2, 0}, {0, 1}})
	got, err = matrix.TwoNorm(d, opts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-8)

	// Zero matrix has zero spectral norm.
	z := MustDense(t, 2, 2)
	got, err = matrix.TwoNorm(z, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-8)

	// Rectangular input: Gram matrix is square, so this must work too.
	rect := MustFromRows(t, [][]float64{{3, 0}, {0, 4}, {0, 0}})
	got, err = matrix.TwoNorm(rect, opts)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-8)

	// SpectralNorm facade matches TwoNorm under defaults.
	facade, err := matrix.SpectralNorm(m)
	require.NoError(t, err)
	direct, err := matrix.TwoNorm(m, matrix.DefaultEigenOptions())
	require.NoError(t, err)
	assert.Equal(t, direct, facade)
}

// TestNorms_NilInput confirms the uniform nil guard across all norms.
func TestNorms_NilInput(t *testing.T) {
	_, err := matrix.OneNorm(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.InfinityNorm(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FrobeniusNorm(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MaxNorm(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.TwoNorm(nil, matrix.DefaultEigenOptions())
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
