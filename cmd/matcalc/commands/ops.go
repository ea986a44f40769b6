// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/matrix"
)

func opCmd(rf *rootFlags, use, short string, op calc.Op) *cobra.Command {
	in := &inputFlags{}
	needB := op == calc.OpAdd || op == calc.OpSubtract || op == calc.OpMultiply

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.seeded = cmd.Flags().Changed("seed")
			in.sized = cmd.Flags().Changed("size")
			s, generated, err := buildSession(rf, in, needB)
			if err != nil {
				return err
			}
			if op == calc.OpMultiplyScalar {
				s.SetScalar(in.k)
			}
			if generated {
				if err := printOperands(cmd.OutOrStdout(), s, needB); err != nil {
					return err
				}
			}

			res, err := s.Evaluate(op)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), rf, res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&in.a, "a", "a", "", `matrix A, e.g. "1 2; 3 4"`)
	if needB {
		f.StringVarP(&in.b, "b", "b", "", `matrix B, same size as A`)
	}
	if op == calc.OpMultiplyScalar {
		f.StringVarP(&in.k, "k", "k", "", "scalar k")
		_ = cmd.MarkFlagRequired("k")
	}
	f.StringVar(&in.fill, "fill", "", "generate missing operands: random (-10..10) or example (1..5)")
	f.IntVar(&in.size, "size", calc.DefaultSize, "order of generated operands; must match -a when both are set")
	f.Int64Var(&in.seed, "seed", 0, "seed for --fill (default: time based)")

	return cmd
}

func identityCmd(rf *rootFlags) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Identity matrix I_n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := calc.New(size, rf.opts...)
			if err != nil {
				return err
			}
			res, err := s.Evaluate(calc.OpIdentity)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), rf, res)
		},
	}
	cmd.Flags().IntVar(&size, "size", calc.DefaultSize, "order n")

	return cmd
}

// buildSession turns operand flags into a session. The order comes from -a
// when given, otherwise from --size; an explicit --size must agree with -a.
// It reports whether any grid was generated.
func buildSession(rf *rootFlags, in *inputFlags, needB bool) (*calc.Session, bool, error) {
	var rng *rand.Rand
	if in.fill != "" {
		seed := in.seed
		if !in.seeded {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	size := in.size
	if in.a != "" {
		rows, err := calc.ParseGridText(in.a)
		if err != nil {
			return nil, false, fmt.Errorf("matrix A: %w", err)
		}
		if in.sized && in.size != len(rows) {
			return nil, false, fmt.Errorf("--size %d conflicts with %d-row matrix A: %w", in.size, len(rows), matrix.ErrDimensionMismatch)
		}
		size = len(rows)
	} else if in.fill == "" {
		return nil, false, errNoOperand
	}

	s, err := calc.New(size, rf.opts...)
	if err != nil {
		return nil, false, err
	}

	generated := false
	load := func(g calc.Grid, text string) error {
		if text != "" {
			return s.SetGridText(g, text)
		}
		if in.fill == "" {
			return fmt.Errorf("matrix %v is required (use -%s or --fill)", g, lower(g))
		}
		generated = true
		return s.Fill(g, calc.FillAction(in.fill), rng)
	}

	if err := load(calc.GridA, in.a); err != nil {
		return nil, false, err
	}
	if needB {
		if err := load(calc.GridB, in.b); err != nil {
			return nil, false, err
		}
	}

	return s, generated, nil
}

func lower(g calc.Grid) string {
	if g == calc.GridB {
		return "b"
	}
	return "a"
}
