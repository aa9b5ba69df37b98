// Package units: this file implements quantity introspection — the
// dimension breakdown string and the named-type lookup.
package units

import (
	"github.com/katalvlaran/unitful/dimension"
	"github.com/katalvlaran/unitful/symbol"
)

// ComplexType is the TypeName fallback for a dimension combination with no
// registered name.
const ComplexType = "complex type"

// namedType pairs a human-readable quantity-type name with its dimension
// vector.
type namedType struct {
	name string
	dims dimension.Vector
}

// namedTypes is the ordered table behind TypeName. Lookup is a linear
// first-match scan, so when two entries share a vector the earlier one
// wins; keep the table a slice and only ever append.
var namedTypes = []namedType{
	// Base quantities.
	{"time", dimension.Vector{dimension.Time: 1}},
	{"length", dimension.Vector{dimension.Length: 1}},
	{"mass", dimension.Vector{dimension.Mass: 1}},
	{"substance", dimension.Vector{dimension.Substance: 1}},
	{"luminous intensity", dimension.Vector{dimension.Luminous: 1}},
	{"electrical current", dimension.Vector{dimension.Current: 1}},
	{"temperature", dimension.Vector{dimension.Temperature: 1}},

	// Common derived quantities.
	{"velocity", dimension.Vector{dimension.Length: 1, dimension.Time: -1}},
	{"acceleration", dimension.Vector{dimension.Length: 1, dimension.Time: -2}},
	{"momentum", dimension.Vector{dimension.Mass: 1, dimension.Length: 1, dimension.Time: -1}},
	{"force", dimension.Vector{dimension.Mass: 1, dimension.Length: 1, dimension.Time: -2}},
	{"energy", dimension.Vector{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -2}},

	// Appended after the originals so earlier lookups never change.
	{"frequency", dimension.Vector{dimension.Time: -1}},
	{"power", dimension.Vector{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -3}},
	{"pressure", dimension.Vector{dimension.Mass: 1, dimension.Length: -1, dimension.Time: -2}},
	{"charge", dimension.Vector{dimension.Time: 1, dimension.Current: 1}},
}

// Describe renders the quantity's nonzero dimension exponents with full
// dimension names, in declaration order, per the active notation:
// "length¹time⁻¹" (Unicode) or "length^1*time^-1" (ASCII). A dimensionless
// quantity renders as the empty string.
func (q Quantity) Describe() string {
	var terms []symbol.Term
	for _, t := range q.Dims().Terms() {
		terms = append(terms, symbol.Term{Symbol: t.Dim.String(), Exp: t.Exp})
	}

	return symbol.Format(terms)
}

// TypeName returns the first registered quantity-type name whose dimension
// vector equals the quantity's exactly ("velocity", "force", …), or
// ComplexType when no name is registered for the combination.
func (q Quantity) TypeName() string {
	dims := q.Dims()
	for _, nt := range namedTypes {
		if nt.dims == dims {
			return nt.name
		}
	}

	return ComplexType
}
