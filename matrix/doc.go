// Package matrix provides the dense linear-algebra primitives the
// sweepline geometry is built on: a small Matrix interface, a
// row-major Dense implementation, fixed-size 2×3 and 3×3 value types,
// mutating views (row permutation, sub-matrix, transposed, minor), and
// a Gaussian-elimination solver for systems in canonical form.
//
// Views are read-write pass-throughs: a Set through a view mutates the
// underlying matrix, and the view observes external mutations. The
// RowView additionally maintains a logical→physical row indirection
// with O(1) SwapRows, which is exactly what partial pivoting needs.
//
// Solve accepts an n×(n+1) matrix encoding the system
//
//	a₁₁·x₁ + … + a₁ₙ·xₙ + a₁,ₙ₊₁ = 0
//	...
//
// (one equation per row, constant term in the last column) and returns
// either the unique solution of length n or ErrNoUniqueSolution.
//
// Errors (sentinel):
//
//	– ErrBadShape           invalid dimensions for a constructor or view
//	– ErrOutOfRange         row or column index outside valid bounds
//	– ErrDimensionMismatch  incompatible operand shapes
//	– ErrNonSquare          square matrix required
//	– ErrNilMatrix          nil Matrix passed where one is required
//	– ErrNoUniqueSolution   the linear system has no unique solution
//
// All indexers return errors rather than panicking; panics are
// reserved for programmer errors in private helpers.
package matrix
