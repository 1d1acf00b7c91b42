// Package matrix is a generic matrix library whose shapes are checked by the
// Go compiler.
//
// 🚀 What is inside?
//
//	A small, pure-Go library built around one type, Matrix[T, R, C]:
//		• Phantom dimensions: R and C are types (dim.D2, dim.D3, or your own)
//		• Shape-checked algebra: Add, Sub, Mul, Transpose refuse non-conformable operands at compile time
//		• Capability-checked elements: Mul needs a semiring, Transpose needs nothing
//		• Numeric elements: Int, Uint8, Float64, Complex128, BigInt and more
//		• Other algebras: min-plus, max-min and boolean semirings for path problems
//		• gonum interop: to and from *mat.Dense, seeded random fills, approximate equality
//
// ✨ Why a typed shape?
//
//   - A (2,3)×(4,5) product is a type error, not a panic at run time
//   - Transpose of a 2×3 is a 3×2 in its type, so mistakes surface early
//   - The only runtime failures left are data-driven: a slice of the wrong
//     length, or an index out of range
//
// Everything is organized under these subpackages:
//
//	dim/       : the Dim interface and the predefined extents D1…D16
//	algebra/   : single-method element capabilities (Adder, Multiplier, …) and semiring constraints
//	scalar/    : Go numerics (and math/big integers) as element types
//	matrix/    : Matrix[T, R, C]: construction, indexing, kernels, row operations
//	semiring/  : MinPlus, MaxMin, Boolean; Floyd–Warshall and product closure
//	gonumconv/ : conversion to and from gonum/mat, random fills, tolerance checks
//
// Quick example:
//
//	a := matrix.Must(matrix.New[scalar.Int, dim.D2, dim.D2](1, 2, 3, 4))
//	b := matrix.Must(matrix.New[scalar.Int, dim.D2, dim.D2](5, 6, 7, 8))
//	fmt.Print(matrix.Mul(a, b)) // [19, 22]\n[43, 50]\n
//
// Runnable programs live under examples/.
//
//	go get github.com/s0lst1ce/matrix
package matrix
