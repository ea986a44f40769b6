// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/matrix"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	eps           float64
	lu            bool
	cofactorLimit int
	plain         bool

	opts []matrix.Option // resolved in PersistentPreRunE
}

// inputFlags holds the operand flags of one subcommand.
type inputFlags struct {
	a, b   string
	k      string
	fill   string
	size   int
	sized  bool
	seed   int64
	seeded bool
}

var errNoOperand = errors.New("matrix A is required (use -a or --fill)")

// Execute runs the matcalc command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Tests call it directly with
// SetArgs/SetOut so no state leaks between runs.
func NewRootCmd() *cobra.Command {
	rf := &rootFlags{}

	root := &cobra.Command{
		Use:          "matcalc",
		Short:        "Dense square-matrix calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(rf.eps) || math.IsInf(rf.eps, 0) || rf.eps < 0 {
				return fmt.Errorf("--eps must be a finite, non-negative number")
			}
			if rf.cofactorLimit < 1 {
				return fmt.Errorf("--cofactor-limit must be >= 1")
			}
			rf.opts = []matrix.Option{
				matrix.WithEpsilon(rf.eps),
				matrix.WithCofactorLimit(rf.cofactorLimit),
			}
			if rf.lu {
				rf.opts = append(rf.opts, matrix.WithLU())
			}
			return nil
		},
	}

	root.PersistentFlags().Float64Var(&rf.eps, "eps", matrix.DefaultSingularEpsilon, "singularity threshold for inverse")
	root.PersistentFlags().BoolVar(&rf.lu, "lu", false, "compute determinants by LU elimination instead of cofactor expansion")
	root.PersistentFlags().IntVar(&rf.cofactorLimit, "cofactor-limit", matrix.DefaultCofactorLimit, "largest order for cofactor expansion")
	root.PersistentFlags().BoolVar(&rf.plain, "plain", false, "print results as plain rows instead of bracketed matrices")

	root.AddCommand(
		opCmd(rf, "add", "Add two matrices: A + B", calc.OpAdd),
		opCmd(rf, "sub", "Subtract two matrices: A - B", calc.OpSubtract),
		opCmd(rf, "mul", "Multiply two matrices: A × B", calc.OpMultiply),
		opCmd(rf, "scale", "Multiply a matrix by a scalar: k × A", calc.OpMultiplyScalar),
		opCmd(rf, "transpose", "Transpose a matrix: Aᵀ", calc.OpTranspose),
		opCmd(rf, "det", "Determinant of a matrix", calc.OpDeterminant),
		opCmd(rf, "inverse", "Inverse of a matrix, with the A × A⁻¹ check", calc.OpInverse),
		identityCmd(rf),
	)

	return root
}
