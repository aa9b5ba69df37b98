// Package dimension models physical dimensions as integer exponent vectors
// over the seven SI base dimensions.
//
// 🚀 What is a dimension vector?
//
//	Every physical quantity has a "shape": velocity is length¹·time⁻¹,
//	force is mass¹·length¹·time⁻², a bare number has the all-zero shape.
//	A Vector records one integer exponent per base dimension:
//
//	  index: Mass Length Time Substance Luminous Current Temperature
//	  force:   1    1     -2      0         0       0        0
//
// ✨ Key properties:
//   - Total — every base dimension always has an entry (arrays, not maps);
//     an "absent" dimension is simply exponent 0.
//   - Immutable — Add, Sub and Neg return fresh vectors, never mutate.
//   - Comparable — two vectors are equal iff all seven exponents match,
//     and plain == is that test (Vector is a comparable array type).
//
// ⚙️ Usage:
//
//	velocity := dimension.Vector{dimension.Length: 1, dimension.Time: -1}
//	duration := dimension.Vector{dimension.Time: 1}
//
//	distance := velocity.Add(duration)  // multiply quantities → add exponents
//	distance.IsZero()                   // false: length¹ remains
//
// All operations are total: there are no error paths over well-formed vectors.
package dimension
