package units_test

import (
	"fmt"

	"github.com/katalvlaran/unitful/symbol"
	"github.com/katalvlaran/unitful/units"
)

// ExampleAdd demonstrates same-dimension addition across scales: the
// result lands on the left operand's native scale.
func ExampleAdd() {
	sum, err := units.Add(units.Kilometer(5), units.Meter(500))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output: 5.5km
}

// ExampleDiv demonstrates compound synthesis and the named-type lookup.
func ExampleDiv() {
	v, err := units.Div(units.Meter(10), units.Second(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	q := v.(units.Quantity)
	fmt.Println(q)
	fmt.Println(q.TypeName())
	// Output:
	// 5m¹s⁻¹
	// velocity
}

// ExampleMul demonstrates collapse to a bare number when every dimension
// cancels.
func ExampleMul() {
	speed, _ := units.Div(units.Meter(10), units.Second(2)) // 5 m/s
	total, _ := units.Mul(speed, units.Second(4))           // dimensions cancel

	fmt.Println(total)
	// Output: 20
}

// ExampleNew demonstrates conversion between kinds of one dimension.
func ExampleNew() {
	km, err := units.New(units.KindKilometer, units.Meter(2500))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(km)
	// Output: 2.5km
}

// ExampleQuantity_Describe demonstrates the dimension breakdown in ASCII
// notation.
func ExampleQuantity_Describe() {
	symbol.SetNotation(symbol.ASCII)
	defer symbol.SetNotation(symbol.Unicode)

	fmt.Println(units.Joule(1).Describe())
	// Output: mass^1*length^2*time^-2
}
