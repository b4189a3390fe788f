package eval

import (
	"fmt"

	"github.com/katalvlaran/matexpr/expr"
	"github.com/katalvlaran/matexpr/matrix"
)

// Evaluate reduces the tree to a concrete matrix, bottom-up and serially.
//
// A Leaf returns its stored matrix as a shared read-only reference (no
// copy, no recomputation); composite nodes allocate fresh results. Each
// call is independent — nothing is cached between evaluations.
//
// Errors: ErrNilExpr for a nil tree, ErrUnsupportedConstruct for a node
// outside the closed variant set, ErrShapeDrift when a realized child
// shape disagrees with its declaration (defensive; unreachable for trees
// built through the expr constructors).
// Complexity: the sum of the dense kernel costs over all composite nodes.
func Evaluate(e expr.Expr) (matrix.Matrix, error) {
	return evaluate(e)
}

// EvaluateWith reduces the tree under the given options. A nil opts is
// equivalent to DefaultOptions(). With Parallel set, independent subtrees
// of a Product or Sum evaluate concurrently once a node's estimated work
// reaches ParallelThreshold; operands still combine in declared order, so
// the numeric result is identical to Evaluate's.
func EvaluateWith(e expr.Expr, opts *Options) (matrix.Matrix, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ParallelThreshold <= 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	if !o.Parallel {
		return evaluate(e)
	}

	return evaluateParallel(e, o.ParallelThreshold)
}

// checkShape re-validates a realized result against its node's declaration.
func checkShape(decl expr.Expr, got matrix.Matrix) error {
	if got.Rows() != decl.Rows() || got.Cols() != decl.Cols() {
		return fmt.Errorf("got %dx%d, declared %dx%d: %w",
			got.Rows(), got.Cols(), decl.Rows(), decl.Cols(), ErrShapeDrift)
	}

	return nil
}

// evaluate is the serial bottom-up reduction.
func evaluate(e expr.Expr) (matrix.Matrix, error) {
	switch node := e.(type) {
	case nil:
		return nil, fmt.Errorf("Evaluate: %w", expr.ErrNilExpr)

	case *expr.Leaf:
		return node.Matrix(), nil

	case *expr.Product:
		left, err := evaluate(node.Left())
		if err != nil {
			return nil, err
		}
		right, err := evaluate(node.Right())
		if err != nil {
			return nil, err
		}

		return combineProduct(node, left, right)

	case *expr.Sum:
		left, err := evaluate(node.Left())
		if err != nil {
			return nil, err
		}
		right, err := evaluate(node.Right())
		if err != nil {
			return nil, err
		}

		return combineSum(node, left, right)

	default:
		return nil, fmt.Errorf("Evaluate: %T: %w", e, expr.ErrUnsupportedConstruct)
	}
}

// evaluateParallel forks the two children of a composite node when its
// estimated work reaches the threshold; smaller subtrees drop to the
// serial path. The left child runs in a spawned goroutine while the right
// runs on the current one; the join preserves operand order.
func evaluateParallel(e expr.Expr, threshold int64) (matrix.Matrix, error) {
	switch node := e.(type) {
	case nil:
		return nil, fmt.Errorf("Evaluate: %w", expr.ErrNilExpr)

	case *expr.Leaf:
		return node.Matrix(), nil

	case *expr.Product:
		left, right, err := forkJoin(node.Left(), node.Right(), nodeWork(node), threshold)
		if err != nil {
			return nil, err
		}

		return combineProduct(node, left, right)

	case *expr.Sum:
		left, right, err := forkJoin(node.Left(), node.Right(), nodeWork(node), threshold)
		if err != nil {
			return nil, err
		}

		return combineSum(node, left, right)

	default:
		return nil, fmt.Errorf("Evaluate: %T: %w", e, expr.ErrUnsupportedConstruct)
	}
}

// forkJoin evaluates two sibling subtrees, concurrently when work reaches
// the threshold. On a double failure the left error wins, keeping error
// reporting deterministic.
func forkJoin(l, r expr.Expr, work, threshold int64) (matrix.Matrix, matrix.Matrix, error) {
	if work < threshold {
		lm, err := evaluate(l)
		if err != nil {
			return nil, nil, err
		}
		rm, err := evaluate(r)
		if err != nil {
			return nil, nil, err
		}

		return lm, rm, nil
	}

	var (
		lm, rm     matrix.Matrix
		lerr, rerr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		lm, lerr = evaluateParallel(l, threshold)
	}()
	rm, rerr = evaluateParallel(r, threshold)
	<-done

	if lerr != nil {
		return nil, nil, lerr
	}
	if rerr != nil {
		return nil, nil, rerr
	}

	return lm, rm, nil
}

// nodeWork estimates the scalar operations the node itself performs: a
// Product costs rows·inner·cols, a Sum rows·cols. Leaves cost nothing.
func nodeWork(e expr.Expr) int64 {
	switch node := e.(type) {
	case *expr.Product:
		return int64(node.Rows()) * int64(node.Left().Cols()) * int64(node.Cols())
	case *expr.Sum:
		return int64(node.Rows()) * int64(node.Cols())
	default:
		return 0
	}
}

// combineProduct multiplies realized children in declared order after the
// defensive shape checks.
func combineProduct(node *expr.Product, left, right matrix.Matrix) (matrix.Matrix, error) {
	if err := checkShape(node.Left(), left); err != nil {
		return nil, err
	}
	if err := checkShape(node.Right(), right); err != nil {
		return nil, err
	}

	return matrix.Mul(left, right)
}

// combineSum adds realized children in declared order after the defensive
// shape checks.
func combineSum(node *expr.Sum, left, right matrix.Matrix) (matrix.Matrix, error) {
	if err := checkShape(node.Left(), left); err != nil {
		return nil, err
	}
	if err := checkShape(node.Right(), right); err != nil {
		return nil, err
	}

	return matrix.Add(left, right)
}
