package units_test

import (
	"testing"

	"github.com/katalvlaran/unitful/units"
	"github.com/stretchr/testify/require"
)

// Arithmetic helpers narrowing results the test knows the shape of.

func mulQ(t *testing.T, a, b units.Value) units.Quantity {
	t.Helper()
	v, err := units.Mul(a, b)

	return asQuantity(t, v, err)
}

func divQ(t *testing.T, a, b units.Value) units.Quantity {
	t.Helper()
	v, err := units.Div(a, b)

	return asQuantity(t, v, err)
}

func addQ(t *testing.T, a, b units.Value) units.Quantity {
	t.Helper()
	v, err := units.Add(a, b)

	return asQuantity(t, v, err)
}

func subQ(t *testing.T, a, b units.Value) units.Quantity {
	t.Helper()
	v, err := units.Sub(a, b)

	return asQuantity(t, v, err)
}

func mulS(t *testing.T, a, b units.Value) units.Scalar {
	t.Helper()
	v, err := units.Mul(a, b)

	return asScalar(t, v, err)
}

func divS(t *testing.T, a, b units.Value) units.Scalar {
	t.Helper()
	v, err := units.Div(a, b)

	return asScalar(t, v, err)
}

func asQuantity(t *testing.T, v units.Value, err error) units.Quantity {
	t.Helper()
	require.NoError(t, err)
	q, ok := v.(units.Quantity)
	require.True(t, ok, "expected a Quantity, got %T", v)

	return q
}

func asScalar(t *testing.T, v units.Value, err error) units.Scalar {
	t.Helper()
	require.NoError(t, err)
	s, ok := v.(units.Scalar)
	require.True(t, ok, "expected a Scalar, got %T", v)

	return s
}
