package chain_test

import (
	"testing"

	"github.com/katalvlaran/matexpr/chain"
	"github.com/katalvlaran/matexpr/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRearrange_Leaf verifies leaves pass through unchanged (same node).
func TestRearrange_Leaf(t *testing.T) {
	a := leaf(t, 3, 4, "A")

	got, err := chain.Rearrange(a)
	require.NoError(t, err)
	assert.Same(t, expr.Expr(a), got)
}

// TestRearrange_ReferenceScenario verifies the naive (((A·B)·C)·D)
// association is rewritten into (A·B)·(C·D) with the root shape intact,
// and that the input tree is left untouched.
func TestRearrange_ReferenceScenario(t *testing.T) {
	a := leaf(t, 400, 300, "A")
	b := leaf(t, 300, 30, "B")
	c := leaf(t, 30, 500, "C")
	d := leaf(t, 500, 400, "D")
	naive := product(t, product(t, product(t, a, b), c), d)

	got, err := chain.Rearrange(naive)
	require.NoError(t, err)
	assert.Equal(t, "((A * B) * (C * D))", got.String())
	assert.Equal(t, naive.Rows(), got.Rows())
	assert.Equal(t, naive.Cols(), got.Cols())

	// Referential transparency: the original tree is not mutated.
	assert.Equal(t, "(((A * B) * C) * D)", naive.String())
}

// TestRearrange_DegenerateChain verifies a 2-operand product is a no-op
// modulo tree identity: same grouping, same shape.
func TestRearrange_DegenerateChain(t *testing.T) {
	p := product(t, leaf(t, 2, 3, "A"), leaf(t, 3, 4, "B"))

	got, err := chain.Rearrange(p)
	require.NoError(t, err)
	assert.Equal(t, "(A * B)", got.String())
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, 4, got.Cols())
}

// TestRearrange_SumIsolation verifies a sum boundary: the chain on one side
// is optimized independently, the unrelated leaf passes through, and no
// fusion happens across the sum.
func TestRearrange_SumIsolation(t *testing.T) {
	a := leaf(t, 400, 300, "A")
	b := leaf(t, 300, 30, "B")
	c := leaf(t, 30, 500, "C")
	d := leaf(t, 500, 400, "D")
	x := leaf(t, 400, 400, "X")
	root := sum(t, product(t, product(t, product(t, a, b), c), d), x)

	got, err := chain.Rearrange(root)
	require.NoError(t, err)
	assert.Equal(t, "(((A * B) * (C * D)) + X)", got.String())

	s, ok := got.(*expr.Sum)
	require.True(t, ok, "root must stay a sum")
	assert.Same(t, expr.Expr(x), s.Right(), "untouched leaf passes through")
}

// TestRearrange_SumInsideChain verifies a sum nested inside a chain is
// treated as one opaque operand but its own children are optimized first.
func TestRearrange_SumInsideChain(t *testing.T) {
	a := leaf(t, 4, 300, "A")
	// S = ((P·Q)·R) + Z: a 300×6 operand carrying its own 3-chain.
	p := leaf(t, 300, 2, "P")
	q := leaf(t, 2, 100, "Q")
	r := leaf(t, 100, 6, "R")
	z := leaf(t, 300, 6, "Z")
	s := sum(t, product(t, product(t, p, q), r), z)
	e := leaf(t, 6, 5, "E")
	root := product(t, product(t, a, s), e)

	got, err := chain.Rearrange(root)
	require.NoError(t, err)

	// Inner chain: (P·Q)·R costs 300·2·100 + 300·100·6 = 240,000 while
	// P·(Q·R) costs 2·100·6 + 300·2·6 = 4,800 — the rewrite must regroup it.
	// Outer chain: A·(S·E) costs 300·6·5 + 4·300·5 = 15,000 versus
	// (A·S)·E = 4·300·6 + 4·6·5 = 7,320, so the left grouping stays.
	assert.Equal(t, "((A * ((P * (Q * R)) + Z)) * E)", got.String())
	assert.Equal(t, 4, got.Rows())
	assert.Equal(t, 5, got.Cols())
}

// TestRearrange_ShapePreservation verifies shape(rearrange(T)) == shape(T)
// over assorted tree forms.
func TestRearrange_ShapePreservation(t *testing.T) {
	a := leaf(t, 7, 3, "A")
	b := leaf(t, 3, 9, "B")
	c := leaf(t, 9, 2, "C")
	trees := []expr.Expr{
		a,
		product(t, a, b),
		product(t, product(t, a, b), c),
		sum(t, product(t, a, b), leaf(t, 7, 9, "X")),
		sum(t, sum(t, leaf(t, 7, 9, "U"), leaf(t, 7, 9, "V")), product(t, a, b)),
	}

	for _, tree := range trees {
		got, err := chain.Rearrange(tree)
		require.NoError(t, err, "tree=%s", tree)
		assert.Equal(t, tree.Rows(), got.Rows(), "tree=%s", tree)
		assert.Equal(t, tree.Cols(), got.Cols(), "tree=%s", tree)
	}
}

// TestRearrange_NilTree verifies nil input errors.
func TestRearrange_NilTree(t *testing.T) {
	_, err := chain.Rearrange(nil)
	assert.ErrorIs(t, err, expr.ErrNilExpr)
}
