package vector

import (
	"errors"
	"math"
)

// Sentinel errors for the vector package.
// All entry points return these (never panic) and callers match via errors.Is.
var (
	// ErrEmptyVector indicates an empty input where at least one element is required.
	ErrEmptyVector = errors.New("vector: input must be non-empty")

	// ErrTooShort indicates an input shorter than the two elements
	// PrevDiffNorm needs to form at least one consecutive difference.
	ErrTooShort = errors.New("vector: input must have at least two elements")

	// ErrBadOrder indicates a p-norm order that is not a finite number ≥ 1.
	ErrBadOrder = errors.New("vector: norm order p must be finite and >= 1")

	// ErrDimensionMismatch indicates two vectors of unequal length.
	ErrDimensionMismatch = errors.New("vector: vectors must have equal length")

	// ErrZeroVector indicates a vector with zero Euclidean norm where a
	// direction is required (Normalize).
	ErrZeroVector = errors.New("vector: cannot normalize a zero vector")
)

// OneNorm returns the 1-norm (taxicab norm) Σ|vᵢ|.
// The empty sum is zero, so an empty slice yields 0.
//
// Complexity: O(n) time, O(1) space.
func OneNorm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += math.Abs(x) // accumulate absolute values
	}

	return sum
}

// MaxNorm returns the infinity norm max|vᵢ|.
// Unlike OneNorm there is no neutral element for max, so an empty input
// returns ErrEmptyVector.
//
// Complexity: O(n) time, O(1) space.
func MaxNorm(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}

	best := 0.0
	var abs float64
	for _, x := range v {
		abs = math.Abs(x)
		if abs > best {
			best = abs
		}
	}

	return best, nil
}

// PNorm returns the p-norm (Σ|vᵢ|ᵖ)^(1/p) for a finite order p ≥ 1.
//
//   - p = 1 reproduces OneNorm.
//   - p = 2 reproduces TwoNorm within floating-point tolerance.
//   - p → ∞ approaches MaxNorm (use MaxNorm directly instead).
//
// Orders below 1, NaN or ±Inf return ErrBadOrder: such "norms" violate the
// triangle inequality and are rejected fail-fast.  An empty slice yields 0.
//
// Complexity: O(n) time, O(1) space.
func PNorm(v []float64, p float64) (float64, error) {
	// Validate the order before touching the data.
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 1 {
		return 0, ErrBadOrder
	}

	sum := 0.0
	for _, x := range v {
		sum += math.Pow(math.Abs(x), p) // accumulate |x|^p
	}

	return math.Pow(sum, 1/p), nil
}

// TwoNorm returns the Euclidean norm √(Σvᵢ²).
//
// It is computed with the scaled sum-of-squares recurrence rather than a
// naive Σvᵢ² so that vectors with very large or very tiny entries neither
// overflow nor underflow before the final square root.  An empty slice
// yields 0.
//
// Complexity: O(n) time, O(1) space.
func TwoNorm(v []float64) float64 {
	var scale float64 // largest |vᵢ| seen so far
	ssq := 1.0        // Σ (vᵢ/scale)², seeded at 1 for the current scale
	var abs, r float64
	for _, x := range v {
		if x == 0 {
			continue // zeros contribute nothing
		}
		abs = math.Abs(x)
		if scale < abs {
			// re-scale the accumulated sum to the new, larger pivot
			r = scale / abs
			ssq = 1 + ssq*r*r
			scale = abs
		} else {
			r = abs / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return 0 // all-zero (or empty) input
	}

	return scale * math.Sqrt(ssq)
}

// PrevDiffNorm returns the previous-difference norm
//
//	|v₀| + |v₁−v₀| + |v₂−v₁| + ... + |vₙ₋₁−vₙ₋₂|
//
// i.e. the absolute first element plus the total variation of the sequence.
// Inputs shorter than two elements return ErrTooShort, since no consecutive
// difference exists.
//
// Complexity: O(n) time, O(1) space.
func PrevDiffNorm(v []float64) (float64, error) {
	if len(v) < 2 {
		return 0, ErrTooShort
	}

	// Seed with the first element, then walk the consecutive differences.
	sum := math.Abs(v[0])
	for i := 1; i < len(v); i++ {
		sum += math.Abs(v[i] - v[i-1])
	}

	return sum, nil
}

// Dot returns the inner product Σ aᵢ·bᵢ.
// Slices of unequal length return ErrDimensionMismatch.
//
// Complexity: O(n) time, O(1) space.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Normalize returns a fresh slice holding v scaled to unit Euclidean length.
// The input is never mutated.  Empty input returns ErrEmptyVector; a vector
// of all zeros has no direction and returns ErrZeroVector.
//
// Complexity: O(n) time, O(n) space for the result.
func Normalize(v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, ErrEmptyVector
	}

	norm := TwoNorm(v)
	if norm == 0 {
		return nil, ErrZeroVector
	}

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}

	return out, nil
}
