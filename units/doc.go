// Package units implements dimension-tracking quantities and arithmetic
// over a fixed catalog of SI-based unit kinds.
//
// 🚀 What is a Quantity?
//
//	A Quantity pairs a magnitude with a unit Kind (meter, kilometer, newton,
//	…). The magnitude is stored on the kind's canonical SI scale, so two
//	quantities of the same dimension are always directly comparable no
//	matter which native scale they were built from:
//
//	  units.Kilometer(5)   // stored as 5000 (meters)
//	  units.Meter(500)     // stored as 500
//
// ✨ Key behaviors:
//
//   - Multiplication and division combine dimension exponents; when every
//     exponent cancels the result collapses to a bare Scalar, otherwise an
//     ad-hoc compound unit (symbol like m¹s⁻²) is synthesized.
//   - Addition and subtraction require exact dimensional equality and keep
//     the left operand's native scale: Kilometer(5) + Meter(500) is 5.5 km.
//   - Every operation returns a fresh value; quantities are immutable.
//
// ⚙️ Usage:
//
//	v, err := units.Div(units.Meter(10), units.Second(2))
//	if err != nil {
//	  // ErrIncompatibleUnits or ErrInvalidOperand
//	}
//	fmt.Println(v)                      // 5m¹s⁻¹
//	fmt.Println(v.(units.Quantity).TypeName()) // velocity
//
// Operands and results are expressed through the closed Value sum type:
// Scalar (a bare number) or Quantity. Passing a nil Value to any operation
// yields ErrInvalidOperand; combining quantities of differing dimensions
// where equality is required yields ErrIncompatibleUnits. There are no
// other failure modes — arithmetic itself is total, with IEEE float
// semantics for division by zero.
//
// Known quirks, kept deliberately for compatibility:
//
//   - Dividing a bare number by a quantity always produces a compound
//     result, even when the quantity was dimensionless — it never collapses
//     to a Scalar the way quantity/quantity division does.
//   - Addition of affine-scaled kinds (degrees Celsius, degrees Fahrenheit)
//     sums canonical magnitudes, so the scale offset is counted twice.
//     Affine scales are not closed under addition; see Add.
package units
