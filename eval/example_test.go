package eval_test

import (
	"fmt"

	"github.com/katalvlaran/matexpr/eval"
	"github.com/katalvlaran/matexpr/expr"
	"github.com/katalvlaran/matexpr/matrix"
)

// ExampleEvaluate reduces (A·B) + C to a concrete matrix.
func ExampleEvaluate() {
	am, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	bm, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	cm, _ := matrix.NewDenseFromRows([][]float64{{10, 10}, {10, 10}})

	a, _ := expr.NewLeaf(am, "A")
	b, _ := expr.NewLeaf(bm, "B")
	c, _ := expr.NewLeaf(cm, "C")

	ab, _ := expr.NewProduct(a, b)
	root, _ := expr.NewSum(ab, c)

	out, err := eval.Evaluate(root)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(root)
	fmt.Print(out)
	// Output:
	// ((A * B) + C)
	// [12, 11]
	// [14, 13]
}
