// SPDX-License-Identifier: MIT
// Package matrix - LU determinant (MethodLU).
//
// Gaussian elimination with partial pivoting: A = Pᵀ·L·U, det(A) = sign(P)·Π U[k][k].
// Selected with WithLU; O(n³) instead of the O(n!) cofactor expansion, and not
// bound by the cofactor limit.

package matrix

import "math"

// detLU returns det(a) by in-place elimination on a private copy of a.
//
// Implementation:
//   - Stage 1: copy rows (the operand snapshot is reused by other kernels).
//   - Stage 2: for each column k pick the row with the largest |a[i][k]|, i ≥ k;
//     a zero pivot column means det = 0.
//   - Stage 3: swap (flipping the sign), multiply det by the pivot, eliminate below.
//
// Complexity: Time O(n³), Space O(n²).
func detLU(a [][]float64) float64 {
	n := len(a)
	w := make([][]float64, n)
	for i := range a {
		w[i] = append([]float64(nil), a[i]...)
	}

	det := 1.0
	var i, j, k, p int
	var best, pivot, f float64
	for k = 0; k < n; k++ {
		// Partial pivot search.
		p, best = k, math.Abs(w[k][k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(w[i][k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return 0
		}
		if p != k {
			w[p], w[k] = w[k], w[p]
			det = -det
		}

		pivot = w[k][k]
		det *= pivot
		for i = k + 1; i < n; i++ {
			f = w[i][k] / pivot
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w[i][j] -= f * w[k][j]
			}
		}
	}

	return det
}
