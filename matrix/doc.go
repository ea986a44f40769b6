// SPDX-License-Identifier: MIT

// Package matrix provides dense square-matrix arithmetic over float64.
//
// What & Why:
//
//	The package is the pure core of the matcalc calculator. Every operation is
//	a deterministic function of its inputs: operands are never mutated and each
//	result is a freshly allocated *Dense.
//
// Operations:
//
//   - Add, Sub (Subtract), Mul (Multiply): binary, both operands n×n of equal n.
//   - Scale (MultiplyScalar), Transpose, NewIdentity (Identity).
//   - Determinant: recursive cofactor expansion along the first row (O(n!)),
//     bounded by DefaultCofactorLimit; WithLU switches to partial-pivot
//     Gaussian elimination (O(n³)).
//   - Minor, Cofactor, CofactorMatrix, Adjugate: building blocks of Inverse.
//   - Inverse: adjugate / det, failing with ErrSingular when |det| < eps
//     (DefaultSingularEpsilon = 1e-10, override with WithEpsilon).
//   - AllClose: tolerance comparison for verification and tests.
//
// Errors:
//
//	All failures are sentinel errors from errors.go, wrapped with an operation
//	tag ("Inverse: matrix: singular matrix"); match them with errors.Is.
//
// Concurrency:
//
//	The package holds no state. Calls on distinct or shared (read-only)
//	operands may run concurrently.
package matrix
