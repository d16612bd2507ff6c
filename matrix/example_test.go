package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/threadpool"
)

// ExampleMul multiplies a 2×3 matrix by I₃.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]float64{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}, matrix.RowMajor)
	id, _ := matrix.NewIdentity[float64](3)

	c, err := matrix.Mul(a, id)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output:
	// | RowMajor Matrix of height X width: 2X3 |
	// |-------------------------------|
	// |  0.100000  0.200000  0.300000 |
	// |  0.400000  0.500000  0.600000 |
	// |-------------------------------|
}

// ExampleAdd shows that mixed layouts produce a RowMajor result.
func ExampleAdd() {
	a, _ := matrix.NewFromRows([][]int{{1, 3}, {5, 7}}, matrix.ColumnMajor)
	b, _ := matrix.NewFromRows([][]int{{9, 11}, {13, 17}}, matrix.RowMajor)

	sum, _ := matrix.Add(a, b)
	fmt.Println(sum.Layout())
	fmt.Println(sum.Data())
	// Output:
	// RowMajor
	// [10 14 18 24]
}

// ExampleWithPool spreads a product over four workers.
func ExampleWithPool() {
	pool, err := threadpool.New(4)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer pool.Stop()

	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}}, matrix.RowMajor)
	c, _ := matrix.Mul(a, a, matrix.WithPool(pool), matrix.WithMinOpsPerThread(1))
	fmt.Println(c.Data())
	// Output:
	// [7 10 15 22]
}

// ExampleDense_At shows bounds-checked access.
func ExampleDense_At() {
	m, _ := matrix.NewZeros[float64](2, 2, matrix.RowMajor)
	_ = m.Set(1, 1, 2.5)

	v, _ := m.At(1, 1)
	fmt.Println(v)
	_, err := m.At(2, 0)
	fmt.Println(err)
	// Output:
	// 2.5
	// Dense.At(2,0): matrix: index out of range
}
