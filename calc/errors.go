// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrInvalidInput reports a cell or scalar that is not a finite number.
	ErrInvalidInput = errors.New("calc: invalid numeric input")

	// ErrIncompleteGrid reports a grid whose cell count does not match size².
	ErrIncompleteGrid = errors.New("calc: matrix grid is incomplete")

	// ErrInvalidSize reports a grid size outside [MinSize, MaxSize].
	ErrInvalidSize = errors.New("calc: grid size out of range")

	// ErrUnknownOperation reports an Op the session does not implement.
	ErrUnknownOperation = errors.New("calc: unknown operation")

	// ErrUnknownGrid reports a Grid other than GridA or GridB.
	ErrUnknownGrid = errors.New("calc: unknown grid")

	// ErrUnknownFill reports a FillAction the session does not implement.
	ErrUnknownFill = errors.New("calc: unknown fill action")

	// ErrNoRandomSource reports a random or example fill without an RNG.
	ErrNoRandomSource = errors.New("calc: fill needs a random source")
)
