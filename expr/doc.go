// Package expr defines the immutable expression-tree model for matrix
// computations: a Leaf wrapping a concrete matrix, a Product of two
// sub-expressions, and a Sum of two sub-expressions.
//
// ✨ Key features:
//   - closed variant set — Expr is sealed; *Leaf, *Product and *Sum are
//     the only implementations, so consumers can type-switch exhaustively
//   - eager validation — NewProduct and NewSum check shape invariants at
//     construction time and return ErrShapeMismatch, never a bad node
//   - immutability — nodes carry unexported fields and accessor methods;
//     a tree is never mutated after construction, so rewriting always
//     yields a fresh tree while the original stays valid
//   - stable rendering — String() produces a deterministic `(A * B)` /
//     `(A + B)` form, convenient for debugging and golden tests
//
// Shape invariants:
//
//	Product(a, b): a.Cols == b.Rows; shape = (a.Rows, b.Cols)
//	Sum(a, b):     identical shapes;  shape = a's shape
//
// A Leaf stores its Matrix by reference and never clones it; callers must
// not mutate a matrix after wrapping it in a tree.
package expr
