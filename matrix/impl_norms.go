// SPDX-License-Identifier: MIT
// Package matrix: norm kernels.
//
// Purpose:
//   - Implement the classic matrix norms on top of the canonical kernels:
//     induced 1-norm and ∞-norm (via ColumnSums/RowSums), entrywise Frobenius
//     and max norms, and the spectral 2-norm (via the Gram matrix spectrum).
//
// Determinism & Policy:
//   - Fixed loop orders; inputs are never mutated; errors wrap sentinels with
//     the operation tag via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// maxOf returns the maximum of a non-empty slice; callers guarantee len > 0.
func maxOf(xs []float64) float64 {
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}

	return best
}

// OneNorm returns the induced 1-norm: the maximum absolute column sum,
// ‖A‖₁ = maxⱼ Σᵢ |a[i,j]| (also called the column sum norm).
//
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(c).
func OneNorm(m Matrix) (float64, error) {
	// Delegate accumulation to the canonical kernel.
	sums, err := ColumnSums(m)
	if err != nil {
		return 0, matrixErrorf(opOneNorm, err)
	}

	// Dense construction guarantees cols ≥ 1, so sums is non-empty.
	return maxOf(sums), nil
}

// InfinityNorm returns the induced ∞-norm: the maximum absolute row sum,
// ‖A‖_∞ = maxᵢ Σⱼ |a[i,j]| (also called the row sum norm).
//
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r).
func InfinityNorm(m Matrix) (float64, error) {
	// Delegate accumulation to the canonical kernel.
	sums, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf(opInfNorm, err)
	}

	return maxOf(sums), nil
}

// FrobeniusNorm returns ‖A‖_F = √(Σ a[i,j]²), the entrywise Euclidean norm.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: Fast-path accumulates squares over the flat *Dense slice with
//     the scaled sum-of-squares recurrence (no overflow/underflow before the
//     final square root); fallback reads via At.
//
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(1).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	var scale float64 // largest |entry| seen so far
	ssq := 1.0        // Σ (entry/scale)², seeded at 1 for the current scale
	var abs, r float64

	// accumulate folds one entry into the (scale, ssq) pair.
	accumulate := func(x float64) {
		if x == 0 {
			return
		}
		abs = math.Abs(x)
		if scale < abs {
			r = scale / abs
			ssq = 1 + ssq*r*r
			scale = abs
		} else {
			r = abs / scale
			ssq += r * r
		}
	}

	// Fast-path: single flat walk on *Dense.
	if d, ok := m.(*Dense); ok {
		for _, x := range d.data {
			accumulate(x)
		}
	} else {
		// Fallback: generic i→j loop via At.
		rows, cols := m.Rows(), m.Cols()
		var i, j int
		var v float64
		var err error
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return 0, matrixErrorf(opFrobenius, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				accumulate(v)
			}
		}
	}

	if scale == 0 {
		return 0, nil // all-zero matrix
	}

	return scale * math.Sqrt(ssq), nil
}

// MaxNorm returns the entrywise max norm ‖A‖_max = max |a[i,j]|.
//
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(1).
func MaxNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxNorm, err)
	}

	best := NormZero
	var abs float64

	// Fast-path: single flat walk on *Dense.
	if d, ok := m.(*Dense); ok {
		for _, x := range d.data {
			abs = math.Abs(x)
			if abs > best {
				best = abs
			}
		}

		return best, nil
	}

	// Fallback: generic i→j loop via At.
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opMaxNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			abs = math.Abs(v)
			if abs > best {
				best = abs
			}
		}
	}

	return best, nil
}

// TwoNorm returns the spectral norm ‖A‖₂ — the largest singular value of A.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Form the Gram matrix G = AᵀA.
//   - Stage 2: G is symmetric positive semi-definite, so its spectrum is real
//     and non-negative; diagonalize it with Jacobi sweeps (EigenSym) under
//     opts and return √(max eigenvalue). |·| guards the tiny negative values
//     rotation round-off can leave on the diagonal.
//
// Rectangular inputs are fine: G is always square (c×c).
//
// Inputs:
//   - m: non-nil matrix (r×c).
//   - opts: eigen configuration; DefaultEigenOptions() is a good start.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrEigenFailed (Jacobi did not converge under opts — pathological).
//
// Complexity:
//   - Time O(r*c² + sweeps·c³) dominated by the Gram product and Jacobi,
//     Space O(c²).
func TwoNorm(m Matrix, opts EigenOptions) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTwoNorm, err)
	}

	// G = AᵀA: square, symmetric, PSD.
	mt, err := Transpose(m)
	if err != nil {
		return 0, matrixErrorf(opTwoNorm, err)
	}
	gram, err := Mul(mt, m)
	if err != nil {
		return 0, matrixErrorf(opTwoNorm, err)
	}

	// Diagonalize the Gram matrix; its eigenvalues are the squared singular values.
	eigs, _, err := EigenSym(gram, opts.Tol, opts.MaxIter)
	if err != nil {
		return 0, matrixErrorf(opTwoNorm, err)
	}

	// σ_max = √(max |λ|); eigs is non-empty because gram is at least 1×1.
	best := math.Abs(eigs[0])
	var abs float64
	for _, lambda := range eigs[1:] {
		abs = math.Abs(lambda)
		if abs > best {
			best = abs
		}
	}

	return math.Sqrt(best), nil
}
