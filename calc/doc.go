// SPDX-License-Identifier: MIT

// Package calc is the calculator session that sits in front of package matrix.
//
// A Session is an explicit state object: the current grid size (2..10), the
// raw text of grids A and B, and the scalar k. Callers edit cells, fill grids
// (random, example, clear), and Evaluate an Op; the session parses and
// validates input, calls the matrix kernels, and returns a Result.
//
// Input validation lives here, not in package matrix: a blank or non-numeric
// cell is reported as ErrInvalidInput naming its 1-based row and column, and a
// grid with the wrong number of cells as ErrIncompleteGrid. Failures from the
// kernels (ErrSingular, ErrDimensionMismatch, ...) are passed through wrapped
// with the operation name, so errors.Is keeps working.
//
// Numbers are displayed with four decimals (FormatValue).
package calc
