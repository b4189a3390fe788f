// Package matexpr is a small compiler for matrix expressions: it represents
// chains of matrix multiplications and additions as immutable trees, finds
// the multiplication order that minimizes scalar work, rewrites the tree
// into that order, and evaluates it against concrete dense matrices.
//
// 🚀 What is matexpr?
//
//	A pure-Go library that brings together:
//		• expr/   — immutable expression trees (Leaf, Product, Sum) with
//		            shape-checked constructors and stable rendering
//		• chain/  — chain flattening, the exact matrix-chain-order DP
//		            (O(n³) time, O(n²) space) and the tree rewriter
//		• eval/   — bottom-up evaluation to a dense matrix, with an
//		            optional fork-join parallel mode
//		• matrix/ — row-major dense storage and the Add/Mul kernels
//
// ✨ Why choose matexpr?
//
//   - Exact, not heuristic – the optimizer enumerates the associativity
//     lattice via dynamic programming and is provably minimal
//   - Deterministic – leftmost tie-breaking and fixed loop orders make
//     every rewrite and every result reproducible bit-for-bit
//   - Referentially transparent – trees are never mutated; rewriting
//     always yields a fresh tree and the original stays valid
//   - Pure Go – no cgo, no hidden deps
//
// Typical usage composes the two entry points:
//
//	opt, err := chain.Rearrange(tree)   // minimize multiplication work
//	out, err := eval.Evaluate(opt)      // reduce to a concrete matrix
//
// Evaluating the original tree directly is also supported, e.g. for
// before/after benchmarking of the rewrite.
package matexpr
