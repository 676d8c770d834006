// SPDX-License-Identifier: MIT
// Package matrix: spectral kernels.
//
// Purpose:
//   - EigenSym: Jacobi rotation sweeps for symmetric matrices (values + vectors).
//   - QR: Householder factorization A = Q·R for square matrices.
//   - Eigenvalues: all eigenvalues of a general square matrix via shifted QR
//     iteration with trailing deflation, delegating to EigenSym when the
//     input is symmetric within tolerance.
//
// Numeric policy:
//   - Convergence is judged against the caller's tol (DefaultEigenTol=1e-10);
//     iteration counts are capped by maxIter (DefaultEigenMaxIter=10000).
//   - A spectrum with a complex conjugate pair has no real representation
//     here, so the iteration reports ErrEigenFailed instead of a wrong answer.

package matrix

import (
	"fmt"
	"math"
)

// asDense returns m as a working *Dense copy: Clone for *Dense inputs, an
// element-by-element copy via At otherwise. The input is never mutated.
// Complexity: O(r*c) time and memory.
func asDense(m Matrix) (*Dense, error) {
	// Fast-path: structural clone keeps the flat layout.
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	// Fallback: densify through the interface.
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol (not nil, square,
//     |A[i,j]-A[j,i]| ≤ tol). Densify into a working copy A and initialize
//     the orthogonal accumulator Q to identity.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a Jacobi rotation, accumulating each rotation into Q.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, index order).
//   - Matrix: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (validation),
//     ErrEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n²) per sweep scan plus O(n) per rotation; Space O(n²).
//
// Notes:
//   - If |A[p,q]| ≤ tol, the rotation is skipped via (c=1,s=0) to avoid
//     numerical blow-ups.
func EigenSym(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Validate: notNil; Square; Symmetric.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Prepare working copy A and orthogonal accumulator Q.
	n := m.Rows()
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int // loop iterators over rows and columns
	// Initialize Q as identity: Q[i,i] = 1.
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	// Jacobi rotations.
	var (
		iter               int     // iteration counter
		base               int     // helper offset into the flat data slice
		p, pivQ            int     // current pivot indices
		maxOff, off        float64 // maxOff - current max |A[p,q]|; off - temporary
		app, aqq, apq      float64 // entries A[p,p], A[q,q], A[p,q]
		aip, aiq, qip, qiq float64 // temporaries for A[i,p], A[i,q] and Q[i,p], Q[i,q]
		newIP, newIQ       float64 // updated values for A[i,p] and A[i,q]
		theta, t           float64 // intermediate rotation parameters
		c, s               float64 // cosine and sine of the rotation angle
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,q) maximizing |A[p,q]| over the upper triangle.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, pivQ = off, i, j
				}
			}
		}

		// J.2: Check convergence: if maxOff < tol, we are diagonal enough.
		if maxOff < tol {
			break
		}

		// J.3: Compute rotation parameters from A[p,p], A[q,q], A[p,q].
		app = a.data[p*n+p]
		aqq = a.data[pivQ*n+pivQ]
		apq = a.data[p*n+pivQ]
		// Guard: avoid division by ~zero off-diagonal.
		if math.Abs(apq) <= tol {
			// No-op rotation (c=1,s=0) keeps determinism and prevents blow-ups.
			continue
		}
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)).
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		// c = 1/√(1+t²), s = t·c.
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply rotation to A, preserving symmetry.
		for i = 0; i < n; i++ {
			if i == p || i == pivQ {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+pivQ]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			// assign symmetrically to [i,p]/[p,i] and [i,q]/[q,i]
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+pivQ], a.data[pivQ*n+i] = newIQ, newIQ
		}
		// update diagonals and zero out A[p,q], A[q,p]
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[pivQ*n+pivQ] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+pivQ], a.data[pivQ*n+p] = 0, 0

		// J.5: Accumulate rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+pivQ]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+pivQ] = s*qip + c*qiq
		}
	}

	// Final convergence check: recompute max off-diagonal.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Extract eigenvalues from the diagonal of A.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	// Return eigenvalues and eigenvectors.
	return eigs, q, nil
}

// QR factorizes a square matrix as A = Q·R via Householder reflections,
// where Q is orthogonal and R is upper triangular.
//
// Implementation:
//   - Stage 1: Validate not-nil and square; densify A into the R workspace
//     and initialize Q to identity.
//   - Stage 2: For each column k, build the Householder vector that
//     annihilates the subdiagonal of column k, apply the reflection to R
//     from the left and accumulate it into Q from the right.
//
// Returns:
//   - Matrix: Q (n×n, orthogonal: QᵀQ = I).
//   - Matrix: R (n×n, upper triangular up to round-off).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed k→j→i orders; sign choice via Copysign is data-dependent but
//     stable for identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QR(m Matrix) (Matrix, Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	n := m.Rows()

	// Prepare R workspace (starts as A) and orthogonal accumulator Q = I.
	r, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	// Householder reflection workspace.
	v := make([]float64, n)
	var (
		i, j, k     int     // loop indices
		norm, beta  float64 // column norm and β = vᵀv
		alpha, tau  float64 // reflection scalar and 2/β factor
		sum, colVal float64 // accumulator and temporary
	)
	for k = 0; k < n; k++ {
		// H.1: Compute the norm of column k below (and including) the diagonal.
		norm = NormZero
		for i = k; i < n; i++ {
			colVal = r.data[i*n+k]
			norm += colVal * colVal
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // zero column: nothing to annihilate
		}

		// H.2: alpha = -sign(R[k,k]) · norm avoids cancellation in v[k].
		alpha = -math.Copysign(norm, r.data[k*n+k])

		// H.3: Build the Householder vector v = x - alpha·e_k.
		for i = 0; i < k; i++ {
			v[i] = 0.0
		}
		for i = k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha

		// H.4: β = vᵀv and τ = 2/β.
		beta = NormZero
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		// Guard: degenerate reflection (x already equals alpha·e_k).
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// H.5: Apply the reflection to R from the left: R ← (I − τvvᵀ)R.
		for j = k; j < n; j++ {
			sum = ZeroSum
			for i = k; i < n; i++ {
				sum += v[i] * r.data[i*n+j]
			}
			for i = k; i < n; i++ {
				r.data[i*n+j] -= tau * v[i] * sum
			}
		}

		// H.6: Accumulate into Q from the right: Q ← Q(I − τvvᵀ),
		// so that the product of reflections ends up as the true Q of A = Q·R.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for j = k; j < n; j++ {
				sum += q.data[i*n+j] * v[j]
			}
			for j = k; j < n; j++ {
				q.data[i*n+j] -= tau * v[j] * sum
			}
		}
	}

	// Finalize: R's subdiagonal is annihilated up to round-off; zero it
	// explicitly so the returned factor is exactly triangular.
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			r.data[i*n+j] = 0.0
		}
	}

	return q, r, nil
}

// Eigenvalues returns all eigenvalues of a square matrix.
//
// Implementation:
//   - Stage 1: Validate not-nil and square. If the input is symmetric within
//     opts.Tol, delegate to EigenSym (Jacobi): its spectrum is real and the
//     sweeps are both faster and more robust than general iteration.
//   - Stage 2: Otherwise run shifted QR iteration with trailing deflation on
//     a working copy: repeatedly factor (A − μI) = Q·R with a Wilkinson-style
//     shift μ from the trailing 2×2 block, form A ← R·Q + μI, and peel off
//     converged eigenvalues when the last subdiagonal entry vanishes.
//     Remaining 2×2 blocks are solved in closed form.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: tolerance and iteration cap; DefaultEigenOptions() is a good start.
//
// Returns:
//   - []float64: eigenvalues with algebraic multiplicity, in no particular order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrEigenFailed — the iteration did not converge within opts.MaxIter
//     steps for some eigenvalue, or a trailing 2×2 block has a complex
//     conjugate pair (negative discriminant), which cannot be represented
//     as float64 results.
//
// Determinism:
//   - Fixed deflation order and shift rule; identical inputs give identical
//     outputs.
//
// Complexity:
//   - Time O(iters · n³) via Householder QR per step, Space O(n²).
func Eigenvalues(m Matrix, opts EigenOptions) ([]float64, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEigenvals, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigenvals, err)
	}

	// Symmetric inputs take the Jacobi road.
	if err := ValidateSymmetric(m, opts.Tol); err == nil {
		eigs, _, symErr := EigenSym(m, opts.Tol, opts.MaxIter)
		if symErr != nil {
			return nil, matrixErrorf(opEigenvals, symErr)
		}

		return eigs, nil
	}

	// General path: shifted QR iteration on a working copy.
	work, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvals, err)
	}

	n := m.Rows()
	eigs := make([]float64, 0, n)

	var (
		size          int     // active block dimension
		iter          int     // QR steps spent on the current trailing eigenvalue
		mu            float64 // shift
		a, b, c, d    float64 // trailing 2×2 block entries
		mean, disc    float64 // 2×2 closed-form intermediates
		subdiag, gate float64 // deflation test values
	)
	for size = n; size > 0; {
		// D.1: 1×1 block — the eigenvalue is the entry itself.
		if size == 1 {
			eigs = append(eigs, work.data[0])
			break
		}

		// D.2: Trailing deflation test on |A[size-1, size-2]|.
		subdiag = math.Abs(work.data[(size-1)*size+(size-2)])
		gate = opts.Tol * (math.Abs(work.data[(size-2)*size+(size-2)]) + math.Abs(work.data[(size-1)*size+(size-1)]))
		if gate < opts.Tol {
			gate = opts.Tol // absolute floor for near-zero diagonals
		}
		if subdiag <= gate {
			// A[size-1,size-1] has converged: record and shrink by one.
			eigs = append(eigs, work.data[(size-1)*size+(size-1)])
			work, err = shrinkLeading(work, size-1)
			if err != nil {
				return nil, matrixErrorf(opEigenvals, err)
			}
			size--
			iter = 0

			continue
		}

		// D.3: 2×2 block — closed form; a negative discriminant means a
		// complex conjugate pair that float64 results cannot express.
		if size == 2 {
			a, b = work.data[0], work.data[1]
			c, d = work.data[2], work.data[3]
			mean = (a + d) / 2
			disc = (a-d)*(a-d)/4 + b*c
			if disc < 0 {
				return nil, matrixErrorf(opEigenvals, ErrEigenFailed)
			}
			disc = math.Sqrt(disc)
			eigs = append(eigs, mean+disc, mean-disc)
			break
		}

		// D.4: Iteration budget for the current trailing eigenvalue.
		if iter >= opts.MaxIter {
			return nil, matrixErrorf(opEigenvals, ErrEigenFailed)
		}
		iter++

		// D.5: Wilkinson-style shift from the trailing 2×2 block — the real
		// eigenvalue of the block closest to A[size-1,size-1], falling back
		// to the entry itself when the block's spectrum is complex.
		a = work.data[(size-2)*size+(size-2)]
		b = work.data[(size-2)*size+(size-1)]
		c = work.data[(size-1)*size+(size-2)]
		d = work.data[(size-1)*size+(size-1)]
		mean = (a + d) / 2
		disc = (a-d)*(a-d)/4 + b*c
		if disc >= 0 {
			disc = math.Sqrt(disc)
			if math.Abs(mean+disc-d) < math.Abs(mean-disc-d) {
				mu = mean + disc
			} else {
				mu = mean - disc
			}
		} else {
			mu = d
		}

		// D.6: One shifted QR step: A ← R·Q + μI.
		if work, err = qrStep(work, mu); err != nil {
			return nil, matrixErrorf(opEigenvals, err)
		}
	}

	return eigs, nil
}

// qrStep performs one shifted QR iteration step on a square working matrix:
// factor (A − μI) = Q·R, then return R·Q + μI as a fresh *Dense.
// Complexity: O(n³) time, O(n²) space.
func qrStep(a *Dense, mu float64) (*Dense, error) {
	n := a.r
	var i int

	// Shift in place on the working copy (callers own it).
	for i = 0; i < n; i++ {
		a.data[i*n+i] -= mu
	}

	q, r, err := QR(a)
	if err != nil {
		return nil, err
	}
	next, err := Mul(r, q)
	if err != nil {
		return nil, err
	}

	// Un-shift and hand back the similar matrix.
	nd := next.(*Dense) // Mul always returns *Dense
	for i = 0; i < n; i++ {
		nd.data[i*n+i] += mu
	}

	return nd, nil
}

// shrinkLeading returns the leading s×s block of a as a fresh *Dense.
// Used by Eigenvalues to deflate converged trailing eigenvalues.
// Complexity: O(s²) time and memory.
func shrinkLeading(a *Dense, s int) (*Dense, error) {
	out, err := NewDense(s, s)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < s; i++ {
		copy(out.data[i*s:(i+1)*s], a.data[i*a.c:i*a.c+s])
	}

	return out, nil
}
