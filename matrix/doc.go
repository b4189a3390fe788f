// Package matrix provides the dense linear-algebra primitives used by the
// expression evaluator: a row-major Dense storage type behind a minimal
// Matrix interface, plus elementwise addition and standard matrix
// multiplication kernels.
//
// ✨ Key features:
//   - Dense: flat row-major float64 backing slice, cache-friendly
//   - Add / Mul kernels with a *Dense fast path and a generic
//     interface fallback (fixed, deterministic loop orders)
//   - central validators and package-level sentinel errors, matched
//     with errors.Is
//
// The package is intentionally small: expression evaluation needs exactly
// elementwise addition and the dense product, nothing more. All kernels
// allocate a fresh result and never mutate their operands.
//
// Performance:
//
//   - Add: O(r·c) time, O(r·c) space
//   - Mul: O(r·n·c) time, O(r·c) space (i→k→j order on the fast path)
package matrix
