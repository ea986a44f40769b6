// SPDX-License-Identifier: MIT

// Package commands defines the matcalc CLI.
//
// Commands
//
//   - add, sub, mul   A op B            (-a, -b)
//   - scale           k × A             (-a, -k)
//   - transpose       Aᵀ                (-a)
//   - det             det(A)            (-a)
//   - inverse         A⁻¹ and A × A⁻¹   (-a)
//   - identity        I_n               (--size)
//
// Grids are written as text, rows separated by ';' or newlines and cells by
// spaces or commas: -a "1 2; 3 4". Instead of -a/-b, --fill random|example
// with --size and --seed generates the operands. When both -a and --size are
// given they must agree.
//
// # Implementation
//
// Every command builds a calc.Session from its flags, evaluates one
// calc.Op, and renders the result with gonum's mat.Formatted at four
// decimals, or with calc.Result.Text under --plain. The other persistent
// flags (--eps, --lu, --cofactor-limit) become matrix.Options applied to
// determinant and inverse.
package commands
