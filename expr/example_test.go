package expr_test

import (
	"fmt"

	"github.com/katalvlaran/matexpr/expr"
	"github.com/katalvlaran/matexpr/matrix"
)

// ExampleNewProduct builds the tree for A·B + C and renders it.
func ExampleNewProduct() {
	am, _ := matrix.NewDense(2, 3)
	bm, _ := matrix.NewDense(3, 4)
	cm, _ := matrix.NewDense(2, 4)

	a, _ := expr.NewLeaf(am, "A")
	b, _ := expr.NewLeaf(bm, "B")
	c, _ := expr.NewLeaf(cm, "C")

	ab, err := expr.NewProduct(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	root, err := expr.NewSum(ab, c)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(root)
	fmt.Printf("shape=%dx%d\n", root.Rows(), root.Cols())
	// Output:
	// ((A * B) + C)
	// shape=2x4
}
