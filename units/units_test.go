package units_test

import (
	"testing"

	"github.com/katalvlaran/unitful/dimension"
	"github.com/katalvlaran/unitful/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestNew_FromScalarConvertsToCanonical verifies a plain-number input is
// stored on the canonical scale immediately.
func TestNew_FromScalarConvertsToCanonical(t *testing.T) {
	q, err := units.New(units.KindKilometer, units.Scalar(5))
	require.NoError(t, err, "scalar construction must succeed")

	assert.InDelta(t, 5000, q.Canonical(), eps, "5 km must be 5000 canonical meters")
	assert.InDelta(t, 5, q.Native(), eps, "native magnitude must stay 5")
	assert.Equal(t, "km", q.Symbol())
}

// TestNew_FromQuantityCopiesCanonical verifies same-dimension construction
// copies the canonical magnitude verbatim, with no conversion call.
func TestNew_FromQuantityCopiesCanonical(t *testing.T) {
	km, err := units.New(units.KindKilometer, units.Meter(2500))
	require.NoError(t, err, "meter → kilometer conversion must succeed")

	assert.Equal(t, units.Meter(2500).Canonical(), km.Canonical(),
		"canonical magnitude must be copied verbatim")
	assert.InDelta(t, 2.5, km.Native(), eps, "2500 m must read as 2.5 km")
}

// TestNew_IncompatibleDimensions verifies cross-dimension construction
// fails with ErrIncompatibleUnits naming both kinds.
func TestNew_IncompatibleDimensions(t *testing.T) {
	_, err := units.New(units.KindKilometer, units.Second(3))
	require.ErrorIs(t, err, units.ErrIncompatibleUnits)
	assert.Contains(t, err.Error(), "kilometer", "error must name the target kind")
	assert.Contains(t, err.Error(), "second", "error must name the source kind")
}

// TestNew_InvalidOperand verifies nil operands and nil kinds are rejected.
func TestNew_InvalidOperand(t *testing.T) {
	_, err := units.New(units.KindMeter, nil)
	assert.ErrorIs(t, err, units.ErrInvalidOperand, "nil Value must be rejected")

	_, err = units.New(nil, units.Scalar(1))
	assert.ErrorIs(t, err, units.ErrInvalidOperand, "nil kind must be rejected")
}

// TestRoundTrip_SameDimensionPairs verifies A(x) → B → A reproduces x for
// representative magnitudes, including zero, negative and fractional.
func TestRoundTrip_SameDimensionPairs(t *testing.T) {
	pairs := []struct {
		name string
		a, b *units.Kind
	}{
		{"meter/kilometer", units.KindMeter, units.KindKilometer},
		{"kilogram/gram", units.KindKilogram, units.KindGram},
		{"second/hour", units.KindSecond, units.KindHour},
		{"kelvin/celsius", units.KindKelvin, units.KindDegreesCelsius},
		{"celsius/fahrenheit", units.KindDegreesCelsius, units.KindDegreesFahrenheit},
		{"millimeter/centimeter", units.KindMillimeter, units.KindCentimeter},
	}
	magnitudes := []float64{0, 1, -4.2, 0.75, 123456.5}

	for _, p := range pairs {
		for _, x := range magnitudes {
			orig, err := units.New(p.a, units.Scalar(x))
			require.NoError(t, err, "%s: construct", p.name)

			there, err := units.New(p.b, orig)
			require.NoError(t, err, "%s: convert forward", p.name)

			back, err := units.New(p.a, there)
			require.NoError(t, err, "%s: convert back", p.name)

			assert.InDelta(t, x, back.Native(), 1e-8,
				"%s: round trip of %v", p.name, x)
		}
	}
}

// TestQuantity_CelsiusCanonicalOffset pins the affine storage rule:
// 0°C is canonically 273.15.
func TestQuantity_CelsiusCanonicalOffset(t *testing.T) {
	q := units.DegreesCelsius(0)
	assert.InDelta(t, 273.15, q.Canonical(), eps)
	assert.InDelta(t, 0, q.Native(), eps)
}

// TestQuantity_Accessors covers the small introspection surface.
func TestQuantity_Accessors(t *testing.T) {
	q := units.Newton(3)

	assert.Equal(t, "N", q.Symbol())
	assert.Equal(t, "newton", q.Kind().Name())
	assert.False(t, q.Kind().IsCompound(), "catalog kinds are not compound")
	assert.Equal(t,
		dimension.Vector{dimension.Mass: 1, dimension.Length: 1, dimension.Time: -2},
		q.Dims())
	assert.Equal(t, "3N", q.String())
}

// TestQuantity_ZeroValue verifies the zero Quantity behaves as a
// dimensionless zero instead of panicking.
func TestQuantity_ZeroValue(t *testing.T) {
	var q units.Quantity

	assert.True(t, q.Dims().IsZero())
	assert.Zero(t, q.Native())
	assert.Equal(t, "0", q.String())
}
