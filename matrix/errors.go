// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimensions, or a view window that does not fit).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub on different shapes, or Mul where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input was not square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoUniqueSolution is returned by Solve when the encoded linear
	// system cannot be reduced to exactly one solution (singular,
	// under-determined, or inconsistent).
	ErrNoUniqueSolution = errors.New("matrix: no unique solution")
)
