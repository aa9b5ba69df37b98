// Package units: this file declares the Kind descriptor, the Quantity value,
// the closed Value sum type, and the New constructor.
package units

import (
	"fmt"

	"github.com/katalvlaran/unitful/dimension"
)

// Kind is the static descriptor of one unit variant: its name, display
// symbol, dimension vector, and the conversion pair between its native
// scale and the canonical SI scale.
//
// Named kinds live in the catalog (see catalog.go) and are created once at
// init; compound kinds are synthesized during multiplication and division.
// A Kind is immutable after construction.
type Kind struct {
	name   string
	symbol string
	dims   dimension.Vector

	// toSI/fromSI convert between the native and canonical scales.
	// nil means identity (the native scale is the canonical scale).
	toSI   func(float64) float64
	fromSI func(float64) float64

	// compound marks kinds synthesized for unnamed dimension combinations.
	compound bool
}

// Name returns the kind's human-readable name ("meter", "newton").
// Compound kinds have no name and return "".
func (k *Kind) Name() string { return k.name }

// Symbol returns the kind's display symbol ("m", "N", or a synthesized
// compound symbol like "m¹s⁻²").
func (k *Kind) Symbol() string { return k.symbol }

// Dims returns the kind's dimension vector.
func (k *Kind) Dims() dimension.Vector { return k.dims }

// IsCompound reports whether the kind was synthesized for an unnamed
// dimension combination rather than declared in the catalog.
func (k *Kind) IsCompound() bool { return k.compound }

// toCanonical converts a native-scale value to the canonical SI scale.
func (k *Kind) toCanonical(v float64) float64 {
	if k.toSI == nil {
		return v
	}

	return k.toSI(v)
}

// fromCanonical converts a canonical SI value to the native scale.
func (k *Kind) fromCanonical(v float64) float64 {
	if k.fromSI == nil {
		return v
	}

	return k.fromSI(v)
}

// label names a kind in error messages: the name when it has one, the
// symbol otherwise.
func (k *Kind) label() string {
	if k.name != "" {
		return k.name
	}
	if k.symbol != "" {
		return k.symbol
	}

	return "scalar"
}

// Value is the closed sum type over operands and results of unit
// arithmetic: either a bare Scalar or a Quantity. No other implementations
// exist; every operation matches both arms explicitly and rejects anything
// else (a nil Value) with ErrInvalidOperand.
type Value interface {
	// isValue seals the interface to this package.
	isValue()
}

// Scalar is a bare dimensionless number: the input to scaling operations
// and the result of arithmetic whose dimensions cancel completely.
type Scalar float64

func (Scalar) isValue() {}

// Quantity is an immutable magnitude tagged with a unit Kind. The
// magnitude is stored on the canonical SI scale; the kind supplies the
// native scale and display symbol. The zero Quantity behaves as a
// dimensionless zero.
type Quantity struct {
	kind *Kind
	si   float64
}

func (Quantity) isValue() {}

// scalarKind backs the zero Quantity so its methods never dereference nil.
var scalarKind = &Kind{}

// k returns the quantity's kind, substituting a dimensionless identity
// kind for the zero value.
func (q Quantity) k() *Kind {
	if q.kind == nil {
		return scalarKind
	}

	return q.kind
}

// New constructs a Quantity of kind k from v.
//
// A Scalar is taken as a native-scale magnitude and converted to canonical
// immediately. A Quantity with the same dimension vector has its canonical
// magnitude copied verbatim — no rescaling, since the canonical scale is
// shared by every kind of a dimension — which is how values convert
// between scales:
//
//	km, err := units.New(units.KindKilometer, units.Meter(2500)) // 2.5 km
//
// A Quantity of a different dimension fails with ErrIncompatibleUnits;
// any other operand (a nil Value or nil kind) fails with ErrInvalidOperand.
func New(k *Kind, v Value) (Quantity, error) {
	if k == nil {
		return Quantity{}, fmt.Errorf("%w: nil kind", ErrInvalidOperand)
	}

	switch x := v.(type) {
	case Scalar:
		return quantityOf(k, float64(x)), nil
	case Quantity:
		if x.k().dims != k.dims {
			return Quantity{}, fmt.Errorf("%w: cannot construct %s from %s",
				ErrIncompatibleUnits, k.label(), x.k().label())
		}

		return Quantity{kind: k, si: x.si}, nil
	default:
		return Quantity{}, fmt.Errorf("%w: %T is neither a number nor a quantity",
			ErrInvalidOperand, v)
	}
}

// quantityOf builds a Quantity from a native-scale magnitude.
func quantityOf(k *Kind, native float64) Quantity {
	return Quantity{kind: k, si: k.toCanonical(native)}
}

// Native returns the magnitude on the quantity's own native scale.
func (q Quantity) Native() float64 { return q.k().fromCanonical(q.si) }

// Canonical returns the magnitude on the canonical SI scale.
func (q Quantity) Canonical() float64 { return q.si }

// Kind returns the quantity's unit kind.
func (q Quantity) Kind() *Kind { return q.k() }

// Symbol returns the display symbol of the quantity's kind.
func (q Quantity) Symbol() string { return q.k().symbol }

// Dims returns the quantity's dimension vector.
func (q Quantity) Dims() dimension.Vector { return q.k().dims }

// String renders the native magnitude followed by the unit symbol,
// e.g. "5.5km" or "5m¹s⁻¹".
func (q Quantity) String() string {
	return fmt.Sprintf("%g%s", q.Native(), q.Symbol())
}
