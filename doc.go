// Package lvlnorm is a small, dependency-free toolbox of vector and
// matrix norms with the elementary dense-matrix operations behind them.
//
// 🚀 What is lvlnorm?
//
//	A pure-Go numeric utility library that brings together:
//		• Vector norms: 1-norm, 2-norm, p-norm, max norm, previous-difference norm
//		• Matrix norms: 1-norm, ∞-norm, Frobenius, max, spectral (2-norm)
//		• Dense kernels: transpose, multiply, row/column sums, mat-vec
//		• Spectra: Jacobi eigen-decomposition & QR-iteration eigenvalues
//
// ✨ Why choose lvlnorm?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – sentinel errors, strict shape validation
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, identical results for identical inputs
//
// Everything is organized under two subpackages:
//
//	vector/ — norms and helpers over plain []float64 slices
//	matrix/ — row-major Dense matrix, norms, operations & eigenvalues
//
// Quick taste:
//
//	vector.OneNorm([]float64{1, -2, 3, -4}) // 10
//	vector.TwoNorm([]float64{3, 4})         // 5
//
// Dive into the package docs and example_test.go files for full usage.
//
//	go get github.com/katalvlaran/lvlnorm
package lvlnorm
