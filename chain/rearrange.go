package chain

import (
	"fmt"

	"github.com/katalvlaran/matexpr/expr"
)

// Rearrange rewrites a tree into minimum-multiplication-cost order while
// preserving its meaning: the result has the identical root shape and
// evaluates to the same value (exactly, up to floating-point association
// effects), with every maximal multiplicative run re-grouped optimally.
//
// Recursive cases:
//   - Leaf → returned as-is (leaves are immutable and safely shared).
//   - Sum  → a fresh Sum of the rearranged children; sums are never
//     chain-optimized and act as boundaries between runs.
//   - Product → the run is flattened to its operand sequence, each operand
//     is rearranged first (so sums nested inside the chain are optimized
//     before the chain treats them as opaque shapes), then the optimizer
//     runs on the boundary dimensions and the run is rebuilt from the
//     split table.
//
// The input tree is never mutated; rewriting is all-or-nothing — on any
// error the original tree remains valid and no partially-rewritten tree is
// returned.
//
// Errors: ErrNilExpr for a nil tree, ErrUnsupportedConstruct for a node
// outside the closed variant set; chain errors propagate unchanged.
// Complexity: O(n³) per maximal run of n operands, from Optimize.
func Rearrange(e expr.Expr) (expr.Expr, error) {
	switch node := e.(type) {
	case nil:
		return nil, fmt.Errorf("Rearrange: %w", expr.ErrNilExpr)

	case *expr.Leaf:
		return node, nil

	case *expr.Sum:
		left, err := Rearrange(node.Left())
		if err != nil {
			return nil, err
		}
		right, err := Rearrange(node.Right())
		if err != nil {
			return nil, err
		}

		return expr.NewSum(left, right)

	case *expr.Product:
		return rearrangeRun(node)

	default:
		return nil, fmt.Errorf("Rearrange: %T: %w", e, expr.ErrUnsupportedConstruct)
	}
}

// rearrangeRun optimizes one maximal multiplicative run rooted at p.
func rearrangeRun(p *expr.Product) (expr.Expr, error) {
	ops, err := Flatten(p)
	if err != nil {
		return nil, err
	}

	// Rearrange operands before ordering the run, so that nested sums are
	// already optimal when the optimizer sees them as opaque shapes.
	// Rearranging preserves shapes, so the boundary sequence is unaffected.
	for i := range ops {
		if ops[i], err = Rearrange(ops[i]); err != nil {
			return nil, err
		}
	}

	dims, err := Dims(ops)
	if err != nil {
		return nil, err
	}
	plan, err := Optimize(dims)
	if err != nil {
		return nil, err
	}

	return plan.Build(ops)
}
