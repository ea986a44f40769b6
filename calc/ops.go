// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// Op is a calculator operation. Values match the CLI and button names.
type Op string

const (
	OpAdd            Op = "add"
	OpSubtract       Op = "subtract"
	OpMultiply       Op = "multiply"
	OpMultiplyScalar Op = "multiply-scalar"
	OpTranspose      Op = "transpose"
	OpDeterminant    Op = "determinant"
	OpInverse        Op = "inverse"
	OpIdentity       Op = "identity"
)

// Ops lists every operation in display order.
var Ops = []Op{
	OpAdd, OpSubtract, OpMultiply, OpMultiplyScalar,
	OpTranspose, OpDeterminant, OpInverse, OpIdentity,
}

// ParseOp maps a name to an Op.
func ParseOp(name string) (Op, error) {
	for _, op := range Ops {
		if string(op) == name {
			return op, nil
		}
	}

	return "", fmt.Errorf("%q: %w", name, ErrUnknownOperation)
}

// VerificationTitle heads the A × A⁻¹ product shown after an inverse.
const VerificationTitle = "Check: A × A⁻¹ (should be the identity)"

// Result is the outcome of one Evaluate call. Exactly one of Matrix or
// Scalar is meaningful, as reported by IsScalar.
type Result struct {
	Op       Op
	Title    string
	IsScalar bool
	Scalar   float64
	Matrix   matrix.Matrix

	// Verification is A × A⁻¹, set only for OpInverse.
	Verification matrix.Matrix
}

// Evaluate runs op against the current grids.
//
// Binary operations read grids A and B; multiply-scalar reads A and k;
// identity reads nothing but the size. Errors are wrapped with the op name.
func (s *Session) Evaluate(op Op) (*Result, error) {
	res, err := s.evaluate(op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res.Op = op

	return res, nil
}

func (s *Session) evaluate(op Op) (*Result, error) {
	switch op {
	case OpIdentity:
		id, err := matrix.Identity(s.size)
		if err != nil {
			return nil, err
		}
		return &Result{Title: fmt.Sprintf("Identity I%d", s.size), Matrix: id}, nil
	case OpAdd, OpSubtract, OpMultiply, OpMultiplyScalar, OpTranspose, OpDeterminant, OpInverse:
	default:
		return nil, ErrUnknownOperation
	}

	a, err := s.ReadMatrix(GridA)
	if err != nil {
		return nil, err
	}

	switch op {
	case OpAdd, OpSubtract, OpMultiply:
		b, err := s.ReadMatrix(GridB)
		if err != nil {
			return nil, err
		}
		return binary(op, a, b)

	case OpMultiplyScalar:
		k, err := s.ReadScalar()
		if err != nil {
			return nil, err
		}
		m, err := matrix.MultiplyScalar(k, a)
		if err != nil {
			return nil, err
		}
		return &Result{Title: fmt.Sprintf("%g × A", k), Matrix: m}, nil

	case OpTranspose:
		m, err := matrix.Transpose(a)
		if err != nil {
			return nil, err
		}
		return &Result{Title: "Transpose Aᵀ", Matrix: m}, nil

	case OpDeterminant:
		det, err := matrix.Determinant(a, s.opts...)
		if err != nil {
			return nil, err
		}
		return &Result{Title: "Determinant of A", IsScalar: true, Scalar: det}, nil

	default: // OpInverse
		inv, err := matrix.Inverse(a, s.opts...)
		if err != nil {
			return nil, err
		}
		check, err := matrix.Multiply(a, inv)
		if err != nil {
			return nil, err
		}
		return &Result{Title: "Inverse A⁻¹", Matrix: inv, Verification: check}, nil
	}
}

func binary(op Op, a, b matrix.Matrix) (*Result, error) {
	var (
		m     matrix.Matrix
		err   error
		title string
	)
	switch op {
	case OpAdd:
		m, err = matrix.Add(a, b)
		title = "A + B"
	case OpSubtract:
		m, err = matrix.Subtract(a, b)
		title = "A - B"
	default:
		m, err = matrix.Multiply(a, b)
		title = "A × B"
	}
	if err != nil {
		return nil, err
	}

	return &Result{Title: title, Matrix: m}, nil
}

// Text renders the result as plain text: the title, then the scalar or one
// line per row with FormatValue cells, then the verification block if any.
func (r *Result) Text() string {
	out := r.Title + "\n"
	if r.IsScalar {
		return out + FormatValue(r.Scalar) + "\n"
	}
	out += joinRows(formatRows(r.Matrix))
	if r.Verification != nil {
		out += VerificationTitle + "\n" + joinRows(formatRows(r.Verification))
	}

	return out
}

func formatRows(m matrix.Matrix) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		out[i] = make([]string, m.Cols())
		for j := range out[i] {
			v, _ := m.At(i, j)
			out[i][j] = FormatValue(v)
		}
	}

	return out
}

func joinRows(rows [][]string) string {
	var out string
	for _, row := range rows {
		for j, cell := range row {
			if j > 0 {
				out += "  "
			}
			out += cell
		}
		out += "\n"
	}

	return out
}
