// Package units: this file implements the four operators — Mul, Div, Add,
// Sub — and the synthesis of compound kinds for unnamed dimension
// combinations.
package units

import (
	"fmt"

	"github.com/katalvlaran/unitful/dimension"
	"github.com/katalvlaran/unitful/symbol"
)

// Mul multiplies two values.
//
// Arms:
//   - Scalar · Scalar   → Scalar product.
//   - Scalar · Quantity → the quantity scaled on its native scale; the
//     result keeps the quantity's own kind. Commutative with the next arm.
//   - Quantity · Scalar → same as above.
//   - Quantity · Quantity → canonical magnitudes multiply, dimension
//     exponents add. A fully cancelled (all-zero) vector collapses to a
//     Scalar; otherwise a compound Quantity is synthesized.
//
// A nil operand fails with ErrInvalidOperand.
func Mul(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return x * y, nil
		case Quantity:
			return y.scale(float64(x)), nil
		}
	case Quantity:
		switch y := b.(type) {
		case Scalar:
			return x.scale(float64(y)), nil
		case Quantity:
			return merge(x.si*y.si, x.Dims().Add(y.Dims())), nil
		}
	}

	return nil, badOperands("multiply", a, b)
}

// Div divides a by b.
//
// Arms:
//   - Scalar / Scalar   → Scalar quotient.
//   - Quantity / Scalar → the quantity divided on its native scale; the
//     result keeps the quantity's own kind.
//   - Quantity / Quantity → canonical magnitudes divide, dimension
//     exponents subtract, with the same collapse rule as Mul.
//   - Scalar / Quantity → the reciprocal: the quotient of native values is
//     converted to canonical through the divisor's own rule and tagged with
//     the negated dimension vector. This arm ALWAYS yields a compound
//     Quantity, even when the divisor was dimensionless — unlike the
//     quantity/quantity arm it never collapses to a Scalar. Kept as-is for
//     compatibility.
//
// Division by zero follows IEEE float semantics (±Inf, NaN); a nil operand
// fails with ErrInvalidOperand.
func Div(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return x / y, nil
		case Quantity:
			si := y.k().toCanonical(float64(x) / y.Native())

			return compound(si, y.Dims().Neg()), nil
		}
	case Quantity:
		switch y := b.(type) {
		case Scalar:
			return quantityOf(x.k(), x.Native()/float64(y)), nil
		case Quantity:
			return merge(x.si/y.si, x.Dims().Sub(y.Dims())), nil
		}
	}

	return nil, badOperands("divide", a, b)
}

// Add sums two values.
//
// Both operands must be quantities with exactly equal dimension vectors;
// the result is a new quantity of the LEFT operand's kind, so
// Kilometer(5) + Meter(500) is 5.5 km. Canonical magnitudes are summed and
// re-entered through the left kind's native scale.
//
// For affine kinds (degrees Celsius, degrees Fahrenheit) this double-counts
// the scale offset: 0°C + 10°C yields 283.15°C, not 10°C. Affine scales are
// not closed under addition; the behavior is kept for compatibility rather
// than corrected.
//
// Two Scalars sum to a Scalar. Mixing a Scalar with a Quantity fails with
// ErrInvalidOperand (a bare number carries no unit); quantities of
// differing dimensions fail with ErrIncompatibleUnits.
func Add(a, b Value) (Value, error) {
	return addSub("add", a, b, false)
}

// Sub subtracts b from a, under exactly the rules of Add.
func Sub(a, b Value) (Value, error) {
	return addSub("subtract", a, b, true)
}

func addSub(op string, a, b Value, negate bool) (Value, error) {
	switch x := a.(type) {
	case Scalar:
		if y, ok := b.(Scalar); ok {
			if negate {
				return x - y, nil
			}

			return x + y, nil
		}
	case Quantity:
		y, ok := b.(Quantity)
		if !ok {
			break
		}
		if x.Dims() != y.Dims() {
			return nil, fmt.Errorf("%w: cannot %s %s and %s",
				ErrIncompatibleUnits, op, x.k().label(), y.k().label())
		}
		si := x.si + y.si
		if negate {
			si = x.si - y.si
		}

		// Re-enter construction through the native scale of the left kind.
		return quantityOf(x.k(), x.k().fromCanonical(si)), nil
	}

	return nil, badOperands(op, a, b)
}

// scale rebuilds the quantity from its native magnitude times k, keeping
// its own kind (and therefore its scale and symbol).
func (q Quantity) scale(k float64) Quantity {
	return quantityOf(q.k(), q.Native()*k)
}

// merge resolves the result of a quantity·quantity multiply or divide:
// a Scalar when every exponent cancelled, a compound Quantity otherwise.
func merge(si float64, dims dimension.Vector) Value {
	if dims.IsZero() {
		return Scalar(si)
	}

	return compound(si, dims)
}

// compound synthesizes a Quantity for an unnamed dimension combination.
// The magnitude is already canonical, so the kind's conversion pair is the
// identity; the symbol is built from base-unit symbols with formatted
// exponents, in base-dimension declaration order, frozen at construction.
func compound(si float64, dims dimension.Vector) Quantity {
	return Quantity{
		kind: &Kind{
			symbol:   compoundSymbol(dims),
			dims:     dims,
			compound: true,
		},
		si: si,
	}
}

// compoundSymbol renders e.g. {Length:1, Time:-2} as "m¹s⁻²"
// (or "m^1*s^-2" in ASCII notation).
func compoundSymbol(dims dimension.Vector) string {
	var terms []symbol.Term
	for _, t := range dims.Terms() {
		terms = append(terms, symbol.Term{Symbol: baseSymbols[t.Dim], Exp: t.Exp})
	}

	return symbol.Format(terms)
}

// badOperands reports an operand pair outside the closed Value sum type.
func badOperands(op string, a, b Value) error {
	return fmt.Errorf("%w: cannot %s %s and %s",
		ErrInvalidOperand, op, operandName(a), operandName(b))
}

func operandName(v Value) string {
	switch x := v.(type) {
	case Scalar:
		return "a number"
	case Quantity:
		return x.k().label()
	default:
		return fmt.Sprintf("%T", v)
	}
}
