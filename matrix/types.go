// Package matrix defines the core Matrix interface for linear algebra operations.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional
//	mutable arrays of float64 values, enabling every norm and kernel in this
//	package to operate generically on any implementation (e.g., Dense).
//	This design ensures safety through bounds checking and supports deep
//	cloning for immutability guarantees in algorithm pipelines.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// kernels detect *Dense and take flat-slice fast paths, falling back to
// At/Set for any other implementation.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// EigenOptions configures the iterative eigenvalue routines.
//
// Fields:
//   - Tol     — convergence threshold on off-diagonal (Jacobi) or
//     subdiagonal (QR iteration) magnitude. Typical: 1e-9..1e-12.
//   - MaxIter — safety cap on rotations (Jacobi) or QR steps per
//     eigenvalue before the routine gives up with ErrEigenFailed.
//
// Example:
//
//	opts := matrix.DefaultEigenOptions()
//	opts.Tol = 1e-12
//	eigs, err := matrix.Eigenvalues(m, opts)
type EigenOptions struct {
	Tol     float64
	MaxIter int
}

// DefaultEigenTol is the default convergence threshold for eigen routines.
const DefaultEigenTol = 1e-10

// DefaultEigenMaxIter is the default iteration cap for eigen routines.
// Jacobi counts individual rotations, so the budget grows with n²; this
// value is comfortable for matrices up to a few hundred rows.
const DefaultEigenMaxIter = 10_000

// DefaultEigenOptions returns the recommended eigen configuration:
// Tol=1e-10, MaxIter=10000.
func DefaultEigenOptions() EigenOptions {
	return EigenOptions{Tol: DefaultEigenTol, MaxIter: DefaultEigenMaxIter}
}
