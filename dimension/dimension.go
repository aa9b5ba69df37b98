package dimension

// Dim identifies one of the seven SI base dimensions.
//
// The set is closed: values are never created or destroyed at runtime, and
// the declaration order below is the canonical ordering used everywhere a
// vector is rendered (compound symbols, dimension breakdowns).
type Dim int

// Base dimensions, in canonical declaration order. The ordering follows
// the conventional way compound SI symbols are written (kg·m·s, as in
// N = kg¹m¹s⁻²), so rendered vectors read naturally.
const (
	// Mass is the mass base dimension (SI kilogram).
	Mass Dim = iota

	// Length is the spatial-extent base dimension (SI meter).
	Length

	// Time is the duration base dimension (SI second).
	Time

	// Substance is the amount-of-substance base dimension (SI mole).
	Substance

	// Luminous is the luminous-intensity base dimension (SI candela).
	Luminous

	// Current is the electric-current base dimension (SI ampere).
	Current

	// Temperature is the thermodynamic-temperature base dimension (SI kelvin).
	Temperature

	// Count is the number of base dimensions; also the length of a Vector.
	Count
)

// dimNames maps each base dimension to its full human-readable name.
var dimNames = [Count]string{
	Mass:        "mass",
	Length:      "length",
	Time:        "time",
	Substance:   "substance",
	Luminous:    "luminous intensity",
	Current:     "electrical current",
	Temperature: "temperature",
}

// String returns the full name of the dimension ("time", "length", …).
// Out-of-range values render as "unknown".
func (d Dim) String() string {
	if d < 0 || d >= Count {
		return "unknown"
	}

	return dimNames[d]
}

// Vector is a total mapping from base dimension to integer exponent.
//
// The zero Vector is the dimensionless vector. Vector is a comparable array
// type: a == b is the exponent-wise equality test required for addition,
// subtraction and same-dimension construction.
type Vector [Count]int

// Zero is the dimensionless vector (every exponent 0).
var Zero Vector

// Add returns a new vector with exponent-wise sums. It is the dimension rule
// for multiplying two quantities.
func (v Vector) Add(o Vector) Vector {
	var r Vector
	for d := Dim(0); d < Count; d++ {
		r[d] = v[d] + o[d]
	}

	return r
}

// Sub returns a new vector with exponent-wise differences. It is the
// dimension rule for dividing one quantity by another.
func (v Vector) Sub(o Vector) Vector {
	var r Vector
	for d := Dim(0); d < Count; d++ {
		r[d] = v[d] - o[d]
	}

	return r
}

// Neg returns a new vector with every exponent sign-flipped. It is the
// dimension rule for dividing a plain number by a quantity.
func (v Vector) Neg() Vector {
	var r Vector
	for d := Dim(0); d < Count; d++ {
		r[d] = -v[d]
	}

	return r
}

// IsZero reports whether every exponent is 0, i.e. the vector is
// dimensionless.
func (v Vector) IsZero() bool {
	return v == Zero
}

// Term is one nonzero component of a vector: a base dimension and its
// exponent.
type Term struct {
	Dim Dim
	Exp int
}

// Terms returns the nonzero components of v in canonical declaration order.
// A dimensionless vector yields nil.
func (v Vector) Terms() []Term {
	var ts []Term
	for d := Dim(0); d < Count; d++ {
		if v[d] != 0 {
			ts = append(ts, Term{Dim: d, Exp: v[d]})
		}
	}

	return ts
}
