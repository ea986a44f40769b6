// Package matcalc is a small dense square-matrix calculator.
//
// The module is organized in three layers:
//
//	matrix/         Dense type, validators, Add/Sub/Mul, Transpose, Scale,
//	                Identity, Determinant (cofactor or LU), Minor, Cofactor,
//	                Adjugate and Inverse with a singularity threshold
//	calc/           Session: two text grids A and B, a scalar k, fill actions
//	                and Evaluate(op), which turns cell text into results
//	cmd/matcalc/    cobra CLI over calc (add, sub, mul, scale, transpose,
//	                det, inverse, identity)
//
// Quick example:
//
//	$ matcalc inverse -a "1 2; 3 4"
//	Inverse A⁻¹
//	⎡-2.0000   1.0000⎤
//	⎣ 1.5000  -0.5000⎦
//	Check: A × A⁻¹ (should be the identity)
//	...
//
// Install the CLI:
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
