package chain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matexpr/expr"
)

// Plan is the result of one Optimize invocation: the minimum-cost
// parenthesization of a chain, backed by the write-once cost and split
// tables. A Plan is read-only after construction; its tables are scoped to
// the invocation that produced it and are never updated afterwards.
type Plan struct {
	dims  []int     // boundary sequence p[0..n]; operand i is (p[i-1], p[i])
	cost  [][]int64 // cost[i][j] = min scalar multiplications for operands i..j
	split [][]int   // split[i][j] = chosen break point k, i ≤ k < j
}

// Optimize computes the minimum-cost parenthesization for a chain whose
// operand shapes are given as the boundary sequence dims = p[0..n], where
// operand i (1-indexed) has shape (p[i-1], p[i]).
//
// Algorithm (exact dynamic programming, not a heuristic):
//
//  1. cost[i][i] = 0 for every single operand.
//  2. For chain lengths L = 2..n, for every start i with end j = i+L-1:
//     cost[i][j] = min over k in [i, j) of
//     cost[i][k] + cost[k+1][j] + p[i-1]·p[k]·p[j]
//     recording the minimizing k in split[i][j].
//  3. cost[1][n] is the total minimum; split reconstructs the grouping.
//
// Tie-break contract: when several k achieve the minimum, the smallest
// (leftmost) k wins. The scan visits k in ascending order and replaces the
// incumbent only on a strictly smaller cost, so re-running Optimize on the
// same input always yields the same tables.
//
// Costs are int64 counts of scalar multiplications; arithmetic overflow is
// not guarded.
//
// Errors: ErrBadBoundary for fewer than two dims entries or a non-positive
// dimension.
// Complexity: Θ(n³) time, Θ(n²) memory.
func Optimize(dims []int) (*Plan, error) {
	n := len(dims) - 1
	if n < 1 {
		return nil, fmt.Errorf("Optimize: %d boundary entries: %w", len(dims), ErrBadBoundary)
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("Optimize: p[%d]=%d: %w", i, d, ErrBadBoundary)
		}
	}

	// Tables are 1-indexed on [1..n] to match the classic recurrence;
	// row/column 0 stays unused.
	cost := make([][]int64, n+1)
	split := make([][]int, n+1)
	for i := range cost {
		cost[i] = make([]int64, n+1)
		split[i] = make([]int, n+1)
	}

	// Bottom-up fill by increasing sub-chain length.
	var i, j, k, length int
	var best, candidate int64
	var bestK int
	for length = 2; length <= n; length++ {
		for i = 1; i+length-1 <= n; i++ {
			j = i + length - 1
			best, bestK = math.MaxInt64, i
			for k = i; k < j; k++ { // ascending k: strict < keeps the leftmost minimum
				candidate = cost[i][k] + cost[k+1][j] +
					int64(dims[i-1])*int64(dims[k])*int64(dims[j])
				if candidate < best {
					best, bestK = candidate, k
				}
			}
			cost[i][j], split[i][j] = best, bestK
		}
	}

	p := &Plan{dims: dims, cost: cost, split: split}

	return p, nil
}

// Len returns the number of chain operands n.
func (p *Plan) Len() int { return len(p.dims) - 1 }

// Cost returns the minimum total scalar multiplications for the whole
// chain, i.e. cost[1][n]. Zero for a single-operand chain.
func (p *Plan) Cost() int64 { return p.cost[1][p.Len()] }

// CostAt returns cost[i][j] for the sub-chain of operands i..j (1-indexed,
// i ≤ j). Returns ErrTableRange for indices outside the tables.
func (p *Plan) CostAt(i, j int) (int64, error) {
	if i < 1 || j > p.Len() || i > j {
		return 0, fmt.Errorf("CostAt(%d,%d): %w", i, j, ErrTableRange)
	}

	return p.cost[i][j], nil
}

// Split returns the chosen break point k for the sub-chain of operands
// i..j (1-indexed, i < j): the optimal grouping multiplies (i..k) by
// (k+1..j). Returns ErrTableRange for indices outside the tables.
func (p *Plan) Split(i, j int) (int, error) {
	if i < 1 || j > p.Len() || i >= j {
		return 0, fmt.Errorf("Split(%d,%d): %w", i, j, ErrTableRange)
	}

	return p.split[i][j], nil
}

// Build reconstructs the optimal binary product tree over the given
// operands via the split table: for range [i,j], operand i when i == j,
// otherwise Product(build(i, split[i][j]), build(split[i][j]+1, j)).
//
// len(ops) must equal Plan.Len(); the operands must be the same sequence
// (by shape) the plan was computed for, or the Product constructors will
// reject the reconstruction.
//
// Errors: ErrMalformedChain on an operand-count mismatch; constructor
// errors propagate unchanged.
// Complexity: O(n) constructed nodes.
func (p *Plan) Build(ops []expr.Expr) (expr.Expr, error) {
	if len(ops) != p.Len() {
		return nil, fmt.Errorf("Build: %d operands for a %d-operand plan: %w",
			len(ops), p.Len(), ErrMalformedChain)
	}

	return p.build(ops, 1, p.Len())
}

// build is the recursive reconstruction over the 1-indexed range [i, j].
func (p *Plan) build(ops []expr.Expr, i, j int) (expr.Expr, error) {
	if i == j {
		return ops[i-1], nil
	}

	k := p.split[i][j]
	left, err := p.build(ops, i, k)
	if err != nil {
		return nil, err
	}
	right, err := p.build(ops, k+1, j)
	if err != nil {
		return nil, err
	}

	return expr.NewProduct(left, right)
}

// LeftToRightCost returns the scalar-multiplication cost of the strict
// left-to-right association (((A₁·A₂)·A₃)…·Aₙ) for the boundary sequence
// dims = p[0..n]: the sum of p[0]·p[i-1]·p[i] for i = 2..n. It is the
// natural baseline for the optimizer — Optimize(dims).Cost() is never
// larger.
//
// Errors: ErrBadBoundary for fewer than two dims entries or a non-positive
// dimension.
// Complexity: O(n).
func LeftToRightCost(dims []int) (int64, error) {
	if len(dims) < 2 {
		return 0, fmt.Errorf("LeftToRightCost: %d boundary entries: %w", len(dims), ErrBadBoundary)
	}
	for i, d := range dims {
		if d <= 0 {
			return 0, fmt.Errorf("LeftToRightCost: p[%d]=%d: %w", i, d, ErrBadBoundary)
		}
	}

	var total int64
	for i := 2; i < len(dims); i++ {
		total += int64(dims[0]) * int64(dims[i-1]) * int64(dims[i])
	}

	return total, nil
}
