// Package matrix provides a generic dense matrix whose shape lives in its type.
//
// The matrix package provides:
//
//   - Matrix[T, R, C]: an R×C row-major matrix of T, where R and C are
//     dim.Dim types. Shape is never stored at run time.
//   - Shape-checked kernels: Add/Sub/Hadamard need identical shapes, Mul needs
//     a shared inner dimension, Transpose swaps the shape. A non-conformable
//     expression does not compile.
//   - Capability-checked kernels: each operation asks only for the algebra
//     capabilities it uses (Add needs algebra.Adder, Mul needs algebra.Semiring).
//   - Runtime-checked edges: construction from dynamically sized data
//     (ErrShapeMismatch), cell access (ErrIndexOutOfBounds), and bridging
//     between distinct Dim types (As, Reshape).
//
// Ownership: every producing operation allocates a fresh matrix; no result
// aliases an operand. Copying a Matrix struct by value shares its storage;
// use Clone for an independent copy.
//
// See the examples in this package for usage patterns.
package matrix
