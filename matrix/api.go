// SPDX-License-Identifier: MIT
// Public API facades.
//
// Purpose:
//   - Expose the calculator's operation vocabulary (subtract, multiply,
//     multiplyScalar, identity) as thin, intention-revealing entry points.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.

package matrix

// Subtract is an alias for Sub: element-wise a − b.
// Complexity: O(n²).
func Subtract(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Multiply is an alias for Mul: matrix product a × b.
// Complexity: O(n³).
func Multiply(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// MultiplyScalar returns k·m; the scalar comes first as in k × A.
// Complexity: O(n²).
func MultiplyScalar(k float64, m Matrix) (Matrix, error) { return Scale(m, k) }

// Identity is an alias for NewIdentity returning the Matrix interface.
func Identity(n int) (Matrix, error) {
	id, err := NewIdentity(n)
	if err != nil {
		return nil, err
	}

	return id, nil
}

// Det is a short alias for Determinant.
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// IdentityLike returns I with dimension = Rows(m); requires a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}
