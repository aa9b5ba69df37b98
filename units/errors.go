package units

import "errors"

var (
	// ErrIncompatibleUnits indicates two quantities whose dimension vectors
	// differ were combined where dimensional equality is required
	// (construction-by-copy, Add, Sub).
	ErrIncompatibleUnits = errors.New("units: incompatible dimensions")

	// ErrInvalidOperand indicates an operation received an operand it does
	// not recognize (nil Value, or a bare number where a quantity is
	// required).
	ErrInvalidOperand = errors.New("units: invalid operand")
)
