// Package eval reduces an expression tree to a concrete dense matrix: a
// Leaf yields its stored matrix, a Product the dense multiplication of its
// evaluated children, a Sum their elementwise addition.
//
// ✨ Key features:
//   - pure bottom-up reduction — no caching across calls, no side effects
//     beyond allocating result matrices
//   - defensive shape re-validation — realized child shapes are checked
//     against the declared node shapes; a disagreement surfaces as
//     ErrShapeDrift and signals a library bug, never bad user input
//   - optional fork-join parallelism — independent subtrees of a Product
//     or Sum evaluate concurrently when the node's estimated scalar work
//     reaches Options.ParallelThreshold; operands combine in declared
//     order, so the result is bit-for-bit identical to the serial path
//
// ⚙️ Usage:
//
//	out, err := eval.Evaluate(tree)
//
//	opts := eval.DefaultOptions()
//	opts.Parallel = true
//	out, err = eval.EvaluateWith(tree, &opts)
//
// Numeric semantics are plain IEEE float64 throughout; NaN and Inf
// propagate as standard arithmetic results without special handling.
package eval
