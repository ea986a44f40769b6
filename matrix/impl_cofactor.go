// SPDX-License-Identifier: MIT
// Package matrix - determinant, cofactors, adjugate and inverse.
//
// Purpose:
//   - Determinant by recursive first-row cofactor expansion (default) or by
//     partial-pivot elimination (WithLU, see impl_lu.go).
//   - Inverse by the adjugate method: A⁻¹ = adj(A) * (1/det A), where
//     adj(A) = Cᵀ and C[i][j] = (−1)^(i+j) * det(minor(A, i, j)).
//
// Determinism:
//   - Expansion always runs along row 0 with j ascending and the sign
//     alternating from +1; cofactors are filled i→j. Results are reproducible
//     bit for bit across runs and platforms with IEEE-754 float64.
//
// Complexity:
//   - Cofactor determinant: O(n!) time, O(n²) live memory per recursion level.
//   - Inverse: n² cofactor determinants of order n−1, i.e. O(n² · (n−1)!).

package matrix

import (
	"fmt"
	"math"
)

// rowsOf snapshots m into a slice of rows so that recursive kernels can
// build minors without touching the operand.
func rowsOf(m Matrix) ([][]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.RawRows(), nil
	}

	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// minorRows returns a with row `row` and column `col` removed.
// The result never aliases a.
func minorRows(a [][]float64, row, col int) [][]float64 {
	n := len(a)
	out := make([][]float64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		r := make([]float64, 0, n-1)
		r = append(r, a[i][:col]...)
		r = append(r, a[i][col+1:]...)
		out = append(out, r)
	}

	return out
}

// detCofactor expands along the first row:
//
//	n = 0: 1 (empty product; only reached through minors of a 1×1 matrix)
//	n = 1: a00
//	n = 2: a00*a11 − a01*a10
//	n > 2: Σ_j (−1)^j * a0j * det(minor(a, 0, j))
func detCofactor(a [][]float64) float64 {
	n := len(a)
	switch n {
	case 0:
		return 1
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	det := ZeroSum
	sign := 1.0
	for j := 0; j < n; j++ {
		det += sign * a[0][j] * detCofactor(minorRows(a, 0, j))
		sign = -sign
	}

	return det
}

// determinantRows dispatches on the configured method.
func determinantRows(a [][]float64, o Options) (float64, error) {
	if o.method == MethodLU {
		return detLU(a), nil
	}
	if len(a) > o.cofactorLimit {
		return 0, fmt.Errorf("order %d above limit %d: %w", len(a), o.cofactorLimit, ErrTooLarge)
	}

	return detCofactor(a), nil
}

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Determinant returns det(m) for a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: snapshot rows; dispatch to cofactor expansion (default) or LU.
//   - Stage 3: reject a non-finite result (overflow or non-finite cells set via Set).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrTooLarge when n exceeds the cofactor limit under MethodCofactor.
//   - ErrNaNInf when the determinant is not finite.
//
// Complexity:
//   - O(n!) with MethodCofactor, O(n³) with MethodLU.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	a, err := rowsOf(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	det, err := determinantRows(a, gatherOptions(opts...))
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if isNonFinite(det) {
		return 0, matrixErrorf(opDeterminant, ErrNaNInf)
	}

	return det, nil
}

// Minor returns m with row i and column j removed, as a new (n−1)×(n−1) *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrInvalidDimensions when n < 2 (the minor would be empty).
//   - ErrOutOfRange when i or j is outside [0, n).
func Minor(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	a, err := rowsOf(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return newDenseFromTrusted(minorRows(a, i, j)), nil
}

// Cofactor returns (−1)^(i+j) * det(minor(m, i, j)).
// For a 1×1 matrix the minor is empty and the cofactor is 1.
//
// Errors:
//   - same as Minor (except n=1, which is accepted), plus ErrTooLarge from the
//     determinant of the minor.
func Cofactor(m Matrix, i, j int, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	a, err := rowsOf(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	d, err := determinantRows(minorRows(a, i, j), gatherOptions(opts...))
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorSign(i, j) * d, nil
}

// cofactorRows builds C[i][j] = (−1)^(i+j) * det(minor(a, i, j)), filled i→j.
func cofactorRows(a [][]float64, o Options) ([][]float64, error) {
	n := len(a)
	out := make([][]float64, n)
	var d float64
	var err error
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if d, err = determinantRows(minorRows(a, i, j), o); err != nil {
				return nil, err
			}
			out[i][j] = cofactorSign(i, j) * d
		}
	}

	return out, nil
}

// CofactorMatrix returns the matrix of cofactors C of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrTooLarge.
//
// Complexity: n² determinants of order n−1.
func CofactorMatrix(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	a, err := rowsOf(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	c, err := cofactorRows(a, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return newDenseFromTrusted(c), nil
}

// Adjugate returns adj(m) = CofactorMatrix(m)ᵀ.
func Adjugate(m Matrix, opts ...Option) (Matrix, error) {
	c, err := CofactorMatrix(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns A⁻¹ computed by the adjugate method.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); det = determinant(A).
//   - Stage 2: |det| < eps ⇒ ErrSingular (no partial result is returned).
//   - Stage 3: C = cofactors; adj = Cᵀ; out = Scale(adj, 1/det).
//   - Stage 4: every entry of out must be finite.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrTooLarge.
//   - ErrNaNInf when det, 1/det or any entry of the result is not finite.
//   - ErrSingular when |det| < eps (DefaultSingularEpsilon unless WithEpsilon).
//
// Notes:
//   - The cofactor sign convention and the transpose-then-scale order are fixed;
//     do not replace with Gauss–Jordan, rounding would differ.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	a, err := rowsOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	det, err := determinantRows(a, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if isNonFinite(det) {
		return nil, matrixErrorf(opInverse, ErrNaNInf)
	}
	if math.Abs(det) < o.eps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	inv := 1 / det
	if isNonFinite(inv) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("1/det=%g: %w", inv, ErrNaNInf))
	}

	c, err := cofactorRows(a, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj, err := Transpose(newDenseFromTrusted(c))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	out, err := MultiplyScalar(inv, adj)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// a cofactor off row 0 can overflow while det stays finite
	if err = ValidateFinite(out); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}
