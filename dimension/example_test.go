package dimension_test

import (
	"fmt"

	"github.com/katalvlaran/unitful/dimension"
)

// ExampleVector_Add shows how multiplying quantities sums exponents,
// cancelling the shared time dimension.
func ExampleVector_Add() {
	velocity := dimension.Vector{dimension.Length: 1, dimension.Time: -1}
	duration := dimension.Vector{dimension.Time: 1}

	distance := velocity.Add(duration)
	fmt.Println(distance.Terms())
	fmt.Println(distance.IsZero())
	// Output:
	// [{length 1}]
	// false
}

// ExampleVector_Neg shows the reciprocal rule: every exponent flips sign.
func ExampleVector_Neg() {
	force := dimension.Vector{dimension.Mass: 1, dimension.Length: 1, dimension.Time: -2}

	fmt.Println(force.Neg().Terms())
	// Output: [{mass -1} {length -1} {time 2}]
}
