// Package unitful is a compact dimensional-analysis and unit-conversion
// toolkit: typed physical quantities, arithmetic that tracks how dimensions
// combine and cancel, and conversion between unit scales through a shared
// canonical (SI) representation.
//
// 🚀 What is unitful?
//
//	A small, dependency-light library that brings together:
//		• Dimension vectors: integer exponents over the seven SI base dimensions
//		• Quantities: immutable values tagged with a dimension vector and scale
//		• Arithmetic: Mul/Div/Add/Sub with exponent bookkeeping and
//		  collapse-to-scalar when every dimension cancels
//		• Compound synthesis: ad-hoc units like m¹s⁻² for unnamed combinations
//		• A fixed catalog of base and derived SI units (plus a few affine
//		  temperature scales)
//
// ✨ Why choose unitful?
//
//   - Dimensionally sound – meters + seconds is an error value,
//     never a silent coercion
//   - Value semantics – every operation returns a fresh value; nothing is
//     mutated, so concurrent reads are trivially safe
//   - Predictable – the catalog and type tables are explicitly ordered, so
//     lookups are reproducible across runs and platforms
//
// Everything is organized under three subpackages:
//
//	dimension/ — base-dimension enumeration and exponent-vector arithmetic
//	symbol/    — exponent and unit-string rendering (Unicode or ASCII)
//	units/     — quantities, arithmetic, compound synthesis and the catalog
//
// Quick example:
//
//	v, _ := units.Div(units.Meter(10), units.Second(2))
//	fmt.Println(v) // 5m¹s⁻¹
//
// A demo calculator lives in cmd/unitcalc; see README.md for a feature tour.
//
//	go get github.com/katalvlaran/unitful/units
package unitful
