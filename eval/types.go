// Package eval: evaluation options.
package eval

// DefaultParallelThreshold is the estimated scalar-operation count at which
// the parallel evaluator starts forking subtrees. Below it, goroutine
// scheduling costs more than the arithmetic it would overlap.
const DefaultParallelThreshold int64 = 1 << 20

// Options configures evaluation.
//
// Fields:
//   - Parallel          — evaluate independent subtrees of a Product/Sum
//     concurrently (fork-join). Off by default; results are identical to
//     the serial path either way, because operands always combine in
//     declared order.
//   - ParallelThreshold — minimum estimated scalar work at a node before
//     its children are forked (a Product estimates rows·inner·cols, a Sum
//     rows·cols). Values ≤ 0 fall back to DefaultParallelThreshold.
//
// Example:
//
//	opts := eval.DefaultOptions()
//	opts.Parallel = true
//	out, err := eval.EvaluateWith(tree, &opts)
type Options struct {
	Parallel          bool
	ParallelThreshold int64
}

// DefaultOptions returns the canonical defaults: serial evaluation with
// DefaultParallelThreshold armed for callers that flip Parallel on.
func DefaultOptions() Options {
	return Options{
		Parallel:          false,
		ParallelThreshold: DefaultParallelThreshold,
	}
}
