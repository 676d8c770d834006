// Package vector computes elementary norms and helpers over plain
// []float64 slices.
//
// 🚀 What is a norm?
//
//	A norm maps a vector to a single non-negative number measuring its
//	"size".  Different norms weight the coordinates differently and are
//	widely used in:
//	  • Numerical analysis & conditioning estimates
//	  • Machine learning (regularization, distance metrics)
//	  • Signal processing (energy, total variation)
//
// ✨ Provided norms:
//   - OneNorm      — Σ|vᵢ| (taxicab length)
//   - TwoNorm      — √(Σvᵢ²) (Euclidean length, overflow-safe)
//   - PNorm        — (Σ|vᵢ|ᵖ)^(1/p) for any finite p ≥ 1
//   - MaxNorm      — max|vᵢ| (infinity norm)
//   - PrevDiffNorm — |v₀| + Σ|vᵢ − vᵢ₋₁| (total-variation style)
//
// Plus the helpers Dot (inner product) and Normalize (unit vector).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnorm/vector"
//
//	vector.OneNorm([]float64{1, -2, 3, -4}) // 10
//	vector.TwoNorm([]float64{3, 4})         // 5
//
//	n, err := vector.PNorm([]float64{1, -2, 3, -4}, 3)
//	if err != nil {
//	  // ErrBadOrder: p must be finite and ≥ 1
//	}
//
// All functions are pure: inputs are never mutated and identical inputs
// produce identical outputs.  Invalid input is reported through sentinel
// errors checked via errors.Is; nothing panics.
//
// See example_test.go for runnable examples.
package vector
