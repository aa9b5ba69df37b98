// Package units: this file declares the fixed unit catalog — one base kind
// per dimension, the named derived kinds, their constructors — and the
// ordered named-type table behind TypeName.
package units

import "github.com/katalvlaran/unitful/dimension"

// baseSymbols maps each base dimension to its canonical base-unit symbol,
// used when synthesizing compound symbols.
var baseSymbols = [dimension.Count]string{
	dimension.Mass:        "kg",
	dimension.Length:      "m",
	dimension.Time:        "s",
	dimension.Substance:   "mol",
	dimension.Luminous:    "cd",
	dimension.Current:     "A",
	dimension.Temperature: "K",
}

// linear returns a conversion pair scaling the native value by factor to
// reach the canonical scale.
func linear(factor float64) (to, from func(float64) float64) {
	return func(v float64) float64 { return v * factor },
		func(v float64) float64 { return v / factor }
}

// Base SI kinds, one per dimension. Their native scale is the canonical
// scale, so the conversion pair is the identity.
var (
	KindSecond   = &Kind{name: "second", symbol: "s", dims: dimension.Vector{dimension.Time: 1}}
	KindMeter    = &Kind{name: "meter", symbol: "m", dims: dimension.Vector{dimension.Length: 1}}
	KindKilogram = &Kind{name: "kilogram", symbol: "kg", dims: dimension.Vector{dimension.Mass: 1}}
	KindMole     = &Kind{name: "mole", symbol: "mol", dims: dimension.Vector{dimension.Substance: 1}}
	KindCandela  = &Kind{name: "candela", symbol: "cd", dims: dimension.Vector{dimension.Luminous: 1}}
	KindAmpere   = &Kind{name: "ampere", symbol: "A", dims: dimension.Vector{dimension.Current: 1}}
	KindKelvin   = &Kind{name: "kelvin", symbol: "K", dims: dimension.Vector{dimension.Temperature: 1}}
)

// Named derived kinds: scaled, affine and compound-dimension units.
var (
	KindNewton = &Kind{
		name:   "newton",
		symbol: "N",
		dims:   dimension.Vector{dimension.Mass: 1, dimension.Length: 1, dimension.Time: -2},
	}
	KindJoule = &Kind{
		name:   "joule",
		symbol: "J",
		dims:   dimension.Vector{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -2},
	}
	KindKilometer = scaled("kilometer", "km", dimension.Vector{dimension.Length: 1}, 1000)
	KindGram      = scaled("gram", "g", dimension.Vector{dimension.Mass: 1}, 1e-3)

	// KindDegreesCelsius is affine: si = c + 273.15.
	KindDegreesCelsius = &Kind{
		name:   "degrees Celsius",
		symbol: "C",
		dims:   dimension.Vector{dimension.Temperature: 1},
		toSI:   func(v float64) float64 { return v + 273.15 },
		fromSI: func(v float64) float64 { return v - 273.15 },
	}

	KindMillimeter = scaled("millimeter", "mm", dimension.Vector{dimension.Length: 1}, 1e-3)
	KindCentimeter = scaled("centimeter", "cm", dimension.Vector{dimension.Length: 1}, 1e-2)
	KindMinute     = scaled("minute", "min", dimension.Vector{dimension.Time: 1}, 60)
	KindHour       = scaled("hour", "h", dimension.Vector{dimension.Time: 1}, 3600)
	KindMilligram  = scaled("milligram", "mg", dimension.Vector{dimension.Mass: 1}, 1e-6)
	KindTonne      = scaled("tonne", "t", dimension.Vector{dimension.Mass: 1}, 1000)

	KindWatt = &Kind{
		name:   "watt",
		symbol: "W",
		dims:   dimension.Vector{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -3},
	}
	KindPascal = &Kind{
		name:   "pascal",
		symbol: "Pa",
		dims:   dimension.Vector{dimension.Mass: 1, dimension.Length: -1, dimension.Time: -2},
	}
	KindHertz = &Kind{
		name:   "hertz",
		symbol: "Hz",
		dims:   dimension.Vector{dimension.Time: -1},
	}

	// KindDegreesFahrenheit is affine: si = (f + 459.67) · 5⁄9.
	KindDegreesFahrenheit = &Kind{
		name:   "degrees Fahrenheit",
		symbol: "F",
		dims:   dimension.Vector{dimension.Temperature: 1},
		toSI:   func(v float64) float64 { return (v + 459.67) * 5 / 9 },
		fromSI: func(v float64) float64 { return v*9/5 - 459.67 },
	}
)

// scaled declares a kind whose native scale is a pure factor of canonical.
func scaled(name, sym string, dims dimension.Vector, factor float64) *Kind {
	k := &Kind{name: name, symbol: sym, dims: dims}
	k.toSI, k.fromSI = linear(factor)

	return k
}

// catalog lists every named kind in registration order. Lookup resolves
// symbol clashes first-registered-wins, so the order is load-bearing and
// deliberately a slice, not a map.
var catalog = []*Kind{
	KindSecond,
	KindMeter,
	KindKilogram,
	KindMole,
	KindCandela,
	KindAmpere,
	KindKelvin,
	KindNewton,
	KindJoule,
	KindKilometer,
	KindGram,
	KindDegreesCelsius,
	KindMillimeter,
	KindCentimeter,
	KindMinute,
	KindHour,
	KindMilligram,
	KindTonne,
	KindWatt,
	KindPascal,
	KindHertz,
	KindDegreesFahrenheit,
}

// Catalog returns the named kinds in registration order. The slice is a
// copy; the kinds themselves are shared and immutable.
func Catalog() []*Kind {
	out := make([]*Kind, len(catalog))
	copy(out, catalog)

	return out
}

// Lookup resolves a display symbol to its catalog kind,
// first-registered-wins. The second result reports whether a kind with
// that symbol exists.
func Lookup(symbol string) (*Kind, bool) {
	for _, k := range catalog {
		if k.symbol == symbol {
			return k, true
		}
	}

	return nil, false
}

// Constructors, one per named kind, taking a native-scale magnitude.

// Second builds a quantity of v seconds.
func Second(v float64) Quantity { return quantityOf(KindSecond, v) }

// Meter builds a quantity of v meters.
func Meter(v float64) Quantity { return quantityOf(KindMeter, v) }

// Kilogram builds a quantity of v kilograms.
func Kilogram(v float64) Quantity { return quantityOf(KindKilogram, v) }

// Mole builds a quantity of v moles.
func Mole(v float64) Quantity { return quantityOf(KindMole, v) }

// Candela builds a quantity of v candelas.
func Candela(v float64) Quantity { return quantityOf(KindCandela, v) }

// Ampere builds a quantity of v amperes.
func Ampere(v float64) Quantity { return quantityOf(KindAmpere, v) }

// Kelvin builds a quantity of v kelvins.
func Kelvin(v float64) Quantity { return quantityOf(KindKelvin, v) }

// Newton builds a quantity of v newtons.
func Newton(v float64) Quantity { return quantityOf(KindNewton, v) }

// Joule builds a quantity of v joules.
func Joule(v float64) Quantity { return quantityOf(KindJoule, v) }

// Kilometer builds a quantity of v kilometers (canonically v·1000 meters).
func Kilometer(v float64) Quantity { return quantityOf(KindKilometer, v) }

// Gram builds a quantity of v grams (canonically v⁄1000 kilograms).
func Gram(v float64) Quantity { return quantityOf(KindGram, v) }

// DegreesCelsius builds a quantity of v °C (canonically v+273.15 kelvins).
func DegreesCelsius(v float64) Quantity { return quantityOf(KindDegreesCelsius, v) }

// Millimeter builds a quantity of v millimeters.
func Millimeter(v float64) Quantity { return quantityOf(KindMillimeter, v) }

// Centimeter builds a quantity of v centimeters.
func Centimeter(v float64) Quantity { return quantityOf(KindCentimeter, v) }

// Minute builds a quantity of v minutes.
func Minute(v float64) Quantity { return quantityOf(KindMinute, v) }

// Hour builds a quantity of v hours.
func Hour(v float64) Quantity { return quantityOf(KindHour, v) }

// Milligram builds a quantity of v milligrams.
func Milligram(v float64) Quantity { return quantityOf(KindMilligram, v) }

// Tonne builds a quantity of v tonnes.
func Tonne(v float64) Quantity { return quantityOf(KindTonne, v) }

// Watt builds a quantity of v watts.
func Watt(v float64) Quantity { return quantityOf(KindWatt, v) }

// Pascal builds a quantity of v pascals.
func Pascal(v float64) Quantity { return quantityOf(KindPascal, v) }

// Hertz builds a quantity of v hertz.
func Hertz(v float64) Quantity { return quantityOf(KindHertz, v) }

// DegreesFahrenheit builds a quantity of v °F.
func DegreesFahrenheit(v float64) Quantity { return quantityOf(KindDegreesFahrenheit, v) }
