// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber parses one cell. Surrounding whitespace is ignored; the rest
// must be a finite decimal or exponent literal. Blank cells are invalid.
func ParseNumber(text string) (float64, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, fmt.Errorf("empty value: %w", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidInput)
	}

	return v, nil
}

// ParseGridText splits grid text into rows of raw cells.
// Rows are separated by ';' or newlines, cells by whitespace or ','.
// Blank rows are skipped. "1 2; 3 4" yields [["1" "2"] ["3" "4"]].
//
// Cell text is not validated here; ReadMatrix does that so errors carry
// coordinates. An empty grid is ErrIncompleteGrid.
func ParseGridText(text string) ([][]string, error) {
	isRowSep := func(r rune) bool { return r == ';' || r == '\n' }
	isCellSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	var rows [][]string
	for _, line := range strings.FieldsFunc(text, isRowSep) {
		cells := strings.FieldsFunc(line, isCellSep)
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrIncompleteGrid)
	}

	return rows, nil
}

// FormatValue renders v with four decimals.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
