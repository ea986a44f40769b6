package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// ExampleInverse demonstrates the adjugate inverse and its verification product.
func ExampleInverse() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})

	det, _ := matrix.Determinant(a)
	inv, _ := matrix.Inverse(a)
	check, _ := matrix.Multiply(a, inv)

	fmt.Println("det:", det)
	fmt.Print(inv)
	fmt.Print(check)
	// Output:
	// det: -2
	// [-2, 1]
	// [1.5, -0.5]
	// [1, 0]
	// [0, 1]
}

// ExampleInverse_singular shows how callers distinguish a singular matrix.
func ExampleInverse_singular() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}})

	_, err := matrix.Inverse(a)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	fmt.Println(err)
	// Output:
	// true
	// Inverse: det=0: matrix: singular matrix
}

// ExampleMultiplyScalar scales every entry by k.
func ExampleMultiplyScalar() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	s, _ := matrix.MultiplyScalar(2, a)
	fmt.Print(s)
	// Output:
	// [2, 4]
	// [6, 8]
}

// ExampleDeterminant_lu selects the O(n³) elimination method.
func ExampleDeterminant_lu() {
	id, _ := matrix.NewIdentity(12)
	_, err := matrix.Determinant(id)
	fmt.Println(errors.Is(err, matrix.ErrTooLarge))

	det, _ := matrix.Determinant(id, matrix.WithLU())
	fmt.Println(det)
	// Output:
	// true
	// 1
}
