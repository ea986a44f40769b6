// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/matrix"
)

// emit writes res with Result.Text under --plain, otherwise with render.
func emit(w io.Writer, rf *rootFlags, res *calc.Result) error {
	if rf.plain {
		_, err := io.WriteString(w, res.Text())
		return err
	}

	return render(w, res)
}

// render prints a result: title line, then the scalar or the matrix at four
// decimals, then the A × A⁻¹ check for inverses.
func render(w io.Writer, res *calc.Result) error {
	if _, err := fmt.Fprintln(w, res.Title); err != nil {
		return err
	}
	if res.IsScalar {
		_, err := fmt.Fprintln(w, calc.FormatValue(res.Scalar))
		return err
	}
	if err := printMatrix(w, res.Matrix); err != nil {
		return err
	}
	if res.Verification == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, calc.VerificationTitle); err != nil {
		return err
	}

	return printMatrix(w, res.Verification)
}

// printOperands echoes generated grids so the user sees what was computed.
func printOperands(w io.Writer, s *calc.Session, withB bool) error {
	grids := []calc.Grid{calc.GridA}
	if withB {
		grids = append(grids, calc.GridB)
	}
	for _, g := range grids {
		m, err := s.ReadMatrix(g)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%v =\n", g); err != nil {
			return err
		}
		if err := printMatrix(w, m); err != nil {
			return err
		}
	}

	return nil
}

func printMatrix(w io.Writer, m matrix.Matrix) error {
	g, err := toGonum(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%.4f\n", mat.Formatted(g))

	return err
}

// toGonum copies m into a gonum dense matrix for formatting.
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(r, c, data), nil
}
