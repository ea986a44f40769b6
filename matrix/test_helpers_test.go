// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed so numeric checks stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Tolerances used across the suite.
const (
	tolRoundTrip = 1e-9
	tolInverse   = 1e-6
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from literal rows or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// ToRows reads any Matrix into a slice of rows.
func ToRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// CompareExact fails unless m equals want cell for cell.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, want, ToRows(t, m))
}

// CompareClose fails unless every |m[i][j] − want[i][j]| ≤ tol.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

// RandomIntDense returns an n×n matrix of integers in [lo, hi] from a seeded source.
// Integer entries keep cofactor arithmetic exact for the small orders under test.
func RandomIntDense(t testing.TB, n int, lo, hi int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(hi-lo+1) + lo)
		}
	}

	return MustFrom(t, rows)
}

// RandomFill overwrites m with uniform values in [-1, 1) from a seeded source.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// ToGonum converts m into a gonum *mat.Dense for oracle comparisons.
func ToGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range ToRows(t, m) {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// DiagonallyDominant adds 100 to every diagonal entry of m, which makes
// small random integer matrices safely invertible.
func DiagonallyDominant(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		require.NoError(t, m.Set(i, i, MustAt(t, m, i, i)+100))
	}

	return m
}
