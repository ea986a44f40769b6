// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math/rand"
	"strconv"
)

// FillAction names a bulk edit of one grid.
type FillAction string

const (
	FillRandom  FillAction = "random"  // integers in [-10, 10]
	FillExample FillAction = "example" // integers in [1, 5]
	FillClear   FillAction = "clear"   // empty cells
)

// Fill rewrites every cell of grid g. rng is required for FillRandom and
// FillExample; pass a seeded source for reproducible grids.
func (s *Session) Fill(g Grid, action FillAction, rng *rand.Rand) error {
	cells, err := s.grid(g)
	if err != nil {
		return err
	}

	var next func() string
	switch action {
	case FillRandom:
		next = func() string { return strconv.Itoa(rng.Intn(21) - 10) }
	case FillExample:
		next = func() string { return strconv.Itoa(rng.Intn(5) + 1) }
	case FillClear:
		next = func() string { return "" }
	default:
		return fmt.Errorf("%q: %w", action, ErrUnknownFill)
	}
	if rng == nil && action != FillClear {
		return fmt.Errorf("%s fill: %w", action, ErrNoRandomSource)
	}

	for i := range cells {
		cells[i] = next()
	}

	return nil
}
