// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every kernel returns one of these sentinels (optionally wrapped with
// an operation tag) and tests match them via errors.Is. No kernel panics on
// user-triggered conditions; panics are reserved for invalid Option values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Kernels wrap sentinels as "<Op>: <sentinel>" via matrixErrorf; callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (dimensions, square, same size) -> numeric (NaN/Inf) -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Minor return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: different sizes,
	// a non-square operand where a square one is required, or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (ingestion through NewDenseFrom, or a non-finite determinant).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by Inverse when |det(A)| is below the singularity epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrTooLarge is returned when cofactor expansion is requested for an order
	// above the configured cofactor limit.
	ErrTooLarge = errors.New("matrix: order exceeds cofactor expansion limit")
)
