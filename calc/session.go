// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// Grid size bounds offered by the calculator.
const (
	MinSize     = 2
	MaxSize     = 10
	DefaultSize = 3
)

// Grid names one of the two operand grids.
type Grid int

const (
	GridA Grid = iota
	GridB
)

// String returns "A" or "B".
func (g Grid) String() string {
	switch g {
	case GridA:
		return "A"
	case GridB:
		return "B"
	default:
		return fmt.Sprintf("Grid(%d)", int(g))
	}
}

// Session is the calculator state. The zero value is not usable; call New.
type Session struct {
	size   int
	cells  [2][]string // row-major raw cell text, len == size*size
	scalar string
	opts   []matrix.Option
}

// New returns a session with empty grids of the given size. opts are passed
// to every determinant/inverse evaluation.
func New(size int, opts ...matrix.Option) (*Session, error) {
	s := &Session{opts: opts}
	if err := s.SetSize(size); err != nil {
		return nil, err
	}

	return s, nil
}

// Size returns the current grid order n.
func (s *Session) Size() int { return s.size }

// Options returns the matrix options the session evaluates with.
func (s *Session) Options() matrix.Options { return matrix.NewOptions(s.opts...) }

// SetSize regenerates both grids at order n with empty cells.
func (s *Session) SetSize(n int) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("size %d not in [%d, %d]: %w", n, MinSize, MaxSize, ErrInvalidSize)
	}
	s.size = n
	s.cells[GridA] = make([]string, n*n)
	s.cells[GridB] = make([]string, n*n)

	return nil
}

func (s *Session) grid(g Grid) ([]string, error) {
	if g != GridA && g != GridB {
		return nil, fmt.Errorf("%v: %w", g, ErrUnknownGrid)
	}

	return s.cells[g], nil
}

// SetCell stores the raw text of cell (row, col) of grid g (0-based).
func (s *Session) SetCell(g Grid, row, col int, text string) error {
	cells, err := s.grid(g)
	if err != nil {
		return err
	}
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return fmt.Errorf("cell (%d,%d) of %v: %w", row, col, g, matrix.ErrOutOfRange)
	}
	cells[row*s.size+col] = text

	return nil
}

// Cell returns the raw text of cell (row, col) of grid g.
func (s *Session) Cell(g Grid, row, col int) (string, error) {
	cells, err := s.grid(g)
	if err != nil {
		return "", err
	}
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return "", fmt.Errorf("cell (%d,%d) of %v: %w", row, col, g, matrix.ErrOutOfRange)
	}

	return cells[row*s.size+col], nil
}

// SetGrid replaces every cell of grid g. cells is row-major and must hold
// exactly Size()² entries.
func (s *Session) SetGrid(g Grid, cells []string) error {
	if _, err := s.grid(g); err != nil {
		return err
	}
	if len(cells) != s.size*s.size {
		return fmt.Errorf("grid %v has %d cells, want %d: %w", g, len(cells), s.size*s.size, ErrIncompleteGrid)
	}
	s.cells[g] = append([]string(nil), cells...)

	return nil
}

// SetGridText parses text with ParseGridText and stores it into grid g.
// The parsed grid must be Size()×Size().
func (s *Session) SetGridText(g Grid, text string) error {
	rows, err := ParseGridText(text)
	if err != nil {
		return fmt.Errorf("grid %v: %w", g, err)
	}
	if len(rows) != s.size {
		return fmt.Errorf("grid %v has %d rows, want %d: %w", g, len(rows), s.size, matrix.ErrDimensionMismatch)
	}
	flat := make([]string, 0, s.size*s.size)
	for i, row := range rows {
		if len(row) != s.size {
			return fmt.Errorf("grid %v row %d has %d cells, want %d: %w", g, i+1, len(row), s.size, matrix.ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return s.SetGrid(g, flat)
}

// SetScalar stores the raw text of the scalar k.
func (s *Session) SetScalar(text string) { s.scalar = text }

// ReadMatrix parses grid g into a *matrix.Dense.
//
// Errors:
//   - ErrIncompleteGrid when the cell count is not Size()².
//   - ErrInvalidInput naming the first blank or non-numeric cell (1-based).
func (s *Session) ReadMatrix(g Grid) (*matrix.Dense, error) {
	cells, err := s.grid(g)
	if err != nil {
		return nil, err
	}
	n := s.size
	if len(cells) != n*n {
		return nil, fmt.Errorf("grid %v: %w", g, ErrIncompleteGrid)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := ParseNumber(cells[i*n+j])
			if err != nil {
				return nil, fmt.Errorf("grid %v row %d, column %d: %w", g, i+1, j+1, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewDenseFrom(rows)
}

// ReadScalar parses the scalar k.
func (s *Session) ReadScalar() (float64, error) {
	k, err := ParseNumber(s.scalar)
	if err != nil {
		return 0, fmt.Errorf("scalar k: %w", err)
	}

	return k, nil
}

// String renders the raw grids, mostly for debugging.
func (s *Session) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size=%d k=%q\n", s.size, s.scalar)
	for _, g := range []Grid{GridA, GridB} {
		fmt.Fprintf(&sb, "%v:\n", g)
		for i := 0; i < s.size; i++ {
			fmt.Fprintf(&sb, "  %q\n", s.cells[g][i*s.size:(i+1)*s.size])
		}
	}

	return sb.String()
}
