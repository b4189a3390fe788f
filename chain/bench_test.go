package chain_test

import (
	"testing"

	"github.com/katalvlaran/matexpr/chain"
	"github.com/katalvlaran/matexpr/expr"
	"github.com/katalvlaran/matexpr/matrix"
)

// benchDims builds a boundary sequence of n operands with predictable,
// uneven dimensions so the optimizer has real work to do.
func benchDims(n int) []int {
	dims := make([]int, n+1)
	for i := range dims {
		dims[i] = 5 + (i*37)%90 // deterministic, non-uniform
	}

	return dims
}

// benchmarkOptimize runs Optimize on an n-operand chain.
func benchmarkOptimize(b *testing.B, n int) {
	dims := benchDims(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := chain.Optimize(dims); err != nil {
			b.Fatalf("Optimize failed: %v", err)
		}
	}
}

// BenchmarkOptimize_Small benchmarks a 10-operand chain.
func BenchmarkOptimize_Small(b *testing.B) { benchmarkOptimize(b, 10) }

// BenchmarkOptimize_Medium benchmarks a 50-operand chain.
func BenchmarkOptimize_Medium(b *testing.B) { benchmarkOptimize(b, 50) }

// BenchmarkOptimize_Large benchmarks a 200-operand chain.
func BenchmarkOptimize_Large(b *testing.B) { benchmarkOptimize(b, 200) }

// BenchmarkRearrange_DeepChain benchmarks the full rewrite of a strictly
// left-associated 32-operand chain of leaves.
func BenchmarkRearrange_DeepChain(b *testing.B) {
	dims := benchDims(32)
	var tree expr.Expr
	for i := 1; i < len(dims); i++ {
		m, err := matrix.NewDense(dims[i-1], dims[i])
		if err != nil {
			b.Fatalf("NewDense failed: %v", err)
		}
		l, err := expr.NewLeaf(m, "")
		if err != nil {
			b.Fatalf("NewLeaf failed: %v", err)
		}
		if tree == nil {
			tree = l
			continue
		}
		if tree, err = expr.NewProduct(tree, l); err != nil {
			b.Fatalf("NewProduct failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chain.Rearrange(tree); err != nil {
			b.Fatalf("Rearrange failed: %v", err)
		}
	}
}
