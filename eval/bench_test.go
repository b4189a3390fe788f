package eval_test

import (
	"testing"

	"github.com/katalvlaran/matexpr/chain"
	"github.com/katalvlaran/matexpr/eval"
	"github.com/katalvlaran/matexpr/expr"
	"github.com/katalvlaran/matexpr/matrix"
)

// benchLeaf builds an all-ones r×c leaf, stopping the benchmark on error.
func benchLeaf(b *testing.B, r, c int, label string) *expr.Leaf {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	l, err := expr.NewLeaf(m.Fill(1), label)
	if err != nil {
		b.Fatalf("NewLeaf failed: %v", err)
	}

	return l
}

// referenceChain builds the naive association of the A(400×300) B(300×30)
// C(30×500) D(500×400) scenario.
func referenceChain(b *testing.B) expr.Expr {
	b.Helper()
	a := benchLeaf(b, 400, 300, "A")
	bb := benchLeaf(b, 300, 30, "B")
	c := benchLeaf(b, 30, 500, "C")
	d := benchLeaf(b, 500, 400, "D")

	ab, err := expr.NewProduct(a, bb)
	if err != nil {
		b.Fatalf("NewProduct failed: %v", err)
	}
	abc, err := expr.NewProduct(ab, c)
	if err != nil {
		b.Fatalf("NewProduct failed: %v", err)
	}
	abcd, err := expr.NewProduct(abc, d)
	if err != nil {
		b.Fatalf("NewProduct failed: %v", err)
	}

	return abcd
}

// BenchmarkEvaluate_NaiveAssociation evaluates the chain as written
// (89,600,000 scalar multiplications).
func BenchmarkEvaluate_NaiveAssociation(b *testing.B) {
	tree := referenceChain(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eval.Evaluate(tree); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_Rearranged evaluates the optimized grouping
// (14,400,000 scalar multiplications) for a direct before/after reading.
func BenchmarkEvaluate_Rearranged(b *testing.B) {
	tree, err := chain.Rearrange(referenceChain(b))
	if err != nil {
		b.Fatalf("Rearrange failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eval.Evaluate(tree); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkEvaluateWith_Parallel evaluates a sum of two independent
// rearranged chains with fork-join enabled.
func BenchmarkEvaluateWith_Parallel(b *testing.B) {
	left, err := chain.Rearrange(referenceChain(b))
	if err != nil {
		b.Fatalf("Rearrange failed: %v", err)
	}
	right, err := chain.Rearrange(referenceChain(b))
	if err != nil {
		b.Fatalf("Rearrange failed: %v", err)
	}
	root, err := expr.NewSum(left, right)
	if err != nil {
		b.Fatalf("NewSum failed: %v", err)
	}

	opts := eval.DefaultOptions()
	opts.Parallel = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eval.EvaluateWith(root, &opts); err != nil {
			b.Fatalf("EvaluateWith failed: %v", err)
		}
	}
}
