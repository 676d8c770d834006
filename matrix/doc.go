// Package matrix provides a row-major dense matrix of float64 values,
// the classic induced and entrywise matrix norms, and the elementary
// operations behind them.
//
// The matrix package provides:
//
//   - Dense — a concrete, row-major Matrix implementation with O(1)
//     bounds-checked element access and cache-friendly flat storage.
//   - Norms: OneNorm (max column sum), InfinityNorm (max row sum),
//     FrobeniusNorm, MaxNorm (largest |entry|), and TwoNorm (largest
//     singular value via the Gram matrix).
//   - Operations: Transpose, Mul, MatVec, Add, Sub, Scale, ColumnSums,
//     RowSums.
//   - Spectra: EigenSym (Jacobi sweeps for symmetric input), QR
//     (Householder factorization) and Eigenvalues (shifted QR iteration
//     for general square input).
//
// All functions perform strict fail-fast validation and return clear
// sentinel errors on shape violations; nothing panics on user input.
// Inputs are never mutated; every kernel allocates a fresh result and
// runs deterministic loop orders, so identical inputs always produce
// identical outputs.
//
// See the examples in this package for usage patterns.
package matrix
