// Package chain solves the matrix-chain-ordering problem over expression
// trees: it flattens maximal multiplicative runs into operand sequences,
// computes the minimum-cost parenthesization by exact dynamic programming,
// and rewrites trees into that optimal order.
//
// 🚀 What is chain ordering?
//
//	Matrix multiplication is associative but the amount of scalar work
//	depends heavily on the grouping: for A(10×100), B(100×5), C(5×50),
//	(A·B)·C costs 7,500 multiplications while A·(B·C) costs 75,000.
//	The optimizer finds the provably cheapest grouping for every maximal
//	run of consecutive multiplications.
//
// ✨ Key features:
//   - Flatten — isolates the largest contiguous multiplicative run,
//     treating Sum sub-trees and leaves as opaque operands
//   - Optimize — the classic O(n³)-time / O(n²)-space DP over the
//     boundary dimension sequence p[0..n]; exact, not heuristic
//   - leftmost tie-break — equal-cost splits always resolve to the
//     smallest k, a fixed contract that keeps rewrites deterministic
//   - Rearrange — correctness-preserving rewrite: identical root shape,
//     mathematically equivalent result, sums optimized independently
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matexpr/chain"
//
//	opt, err := chain.Rearrange(tree) // tree stays valid and unchanged
//
// Performance:
//
//   - Optimize: O(n³) time, O(n²) memory for n chain operands
//   - Rearrange: one Optimize per maximal run plus O(n) reconstruction
package chain
