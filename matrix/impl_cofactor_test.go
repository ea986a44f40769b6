// Package matrix_test contains tests for determinant, cofactors and inverse.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestDeterminant_Concrete(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4 triangular", [][]float64{{2, 1, 1, 1}, {0, 3, 1, 1}, {0, 0, 4, 1}, {0, 0, 0, 5}}, 120},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustFrom(t, tc.rows)

			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			lu, err := matrix.Determinant(hide{m}, matrix.WithLU())
			require.NoError(t, err)
			require.InDelta(t, tc.want, lu, 1e-9)
		})
	}
}

func TestDeterminant_IdentityIsOne(t *testing.T) {
	for n := 2; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			id, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			det, err := matrix.Det(id)
			require.NoError(t, err)
			require.Equal(t, 1.0, det)
		})
	}
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Determinant:")

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, math.Inf(1)))
	require.NoError(t, m.Set(1, 1, 1))
	_, err = matrix.Determinant(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDeterminant_CofactorLimit(t *testing.T) {
	id, err := matrix.NewIdentity(11)
	require.NoError(t, err)

	_, err = matrix.Determinant(id)
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	det, err := matrix.Determinant(id, matrix.WithLU())
	require.NoError(t, err)
	require.Equal(t, 1.0, det)

	small, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	_, err = matrix.Determinant(small, matrix.WithCofactorLimit(3))
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}

func TestMinor(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	m, err := matrix.Minor(a, 1, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {7, 8}}, m)

	m, err = matrix.Minor(hide{a}, 0, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 6}, {8, 9}}, m)

	_, err = matrix.Minor(a, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(MustFrom(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Operand untouched.
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a)
}

func TestCofactorAndAdjugate(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	c01, err := matrix.Cofactor(a, 0, 1)
	require.NoError(t, err)
	require.Equal(t, -3.0, c01)

	_, err = matrix.Cofactor(a, -1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	c, err := matrix.CofactorMatrix(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, -3}, {-2, 1}}, c)

	adj, err := matrix.Adjugate(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, -2}, {-3, 1}}, adj)

	one, err := matrix.Cofactor(MustFrom(t, [][]float64{{5}}), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, one)
}

// TestAdjugateIdentity checks A·adj(A) = det(A)·I.
func TestAdjugateIdentity(t *testing.T) {
	a := RandomIntDense(t, 4, -5, 5, 7)

	adj, err := matrix.Adjugate(a)
	require.NoError(t, err)
	det, err := matrix.Determinant(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, adj)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	want, err := matrix.Scale(id, det)
	require.NoError(t, err)
	CompareClose(t, ToRows(t, want), prod, 1e-9)
}

func TestInverse_Concrete(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv, 1e-12)

	inv, err = matrix.Inverse(MustFrom(t, [][]float64{{4}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, inv)
}

func TestInverse_Singular(t *testing.T) {
	tests := map[string][][]float64{
		"identical rows": {{1, 2, 3}, {1, 2, 3}, {4, 5, 6}},
		"zero column":    {{0, 1}, {0, 2}},
		"rank 2":         {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	for name, rows := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Inverse(MustFrom(t, rows))
			require.ErrorIs(t, err, matrix.ErrSingular)
			require.Contains(t, err.Error(), "Inverse:")
		})
	}
}

func TestInverse_Epsilon(t *testing.T) {
	// det = 1e-12: singular under the default epsilon, invertible with eps=0.
	a := MustFrom(t, [][]float64{{1e-6, 0}, {0, 1e-6}})

	_, err := matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	inv, err := matrix.Inverse(a, matrix.WithEpsilon(0))
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1e6, 0}, {0, 1e6}}, inv, 1e-3)
}

func TestInverse_NonFiniteResult(t *testing.T) {
	t.Run("cofactor overflow", func(t *testing.T) {
		// det = 1e100 is finite, but C[2][2] = 1e400 overflows.
		a := MustFrom(t, [][]float64{{1e200, 0, 0}, {0, 1e200, 0}, {0, 0, 1e-300}})
		det, err := matrix.Determinant(a)
		require.NoError(t, err)
		require.InDelta(t, 1e100, det, 1e88)

		inv, err := matrix.Inverse(a)
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		require.Nil(t, inv)
	})

	t.Run("reciprocal overflow", func(t *testing.T) {
		// det = 1e-320 is subnormal; 1/det is +Inf.
		a := MustFrom(t, [][]float64{{1e-160, 0}, {0, 1e-160}})
		inv, err := matrix.Inverse(a, matrix.WithEpsilon(0))
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		require.Nil(t, inv)
	})

	t.Run("fallback path", func(t *testing.T) {
		a := MustFrom(t, [][]float64{{1e200, 0, 0}, {0, 1e200, 0}, {0, 0, 1e-300}})
		_, err := matrix.Inverse(hide{a})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Inverse(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	id, err := matrix.NewIdentity(12)
	require.NoError(t, err)
	_, err = matrix.Inverse(id)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}

func TestInverse_LUMatchesCofactor(t *testing.T) {
	a := DiagonallyDominant(t, RandomIntDense(t, 5, -9, 9, 99))

	cof, err := matrix.Inverse(a)
	require.NoError(t, err)
	lu, err := matrix.Inverse(a, matrix.WithLU())
	require.NoError(t, err)

	ok, err := matrix.AllClose(cof, lu, 1e-9, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}
