// SPDX-License-Identifier: MIT
package complexnum_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlinalg/complexnum"
)

// ExampleNumber_Add shows field arithmetic on two scalars.
func ExampleNumber_Add() {
	c1 := complexnum.New(-1, 3)
	c2 := complexnum.New(9, -5)

	fmt.Printf("(%v) + (%v) = %v\n", c1, c2, c1.Add(c2))
	fmt.Printf("(%v) * (%v) = %v\n", c1, c2, c1.Mul(c2))

	// Output:
	// (-1+3i) + (9-5i) = 8-2i
	// (-1+3i) * (9-5i) = 6+32i
}

// ExampleNumber_Div covers subtraction, division, modulus and conjugate.
func ExampleNumber_Div() {
	c1 := complexnum.New(9, 3)
	c2 := complexnum.New(10, -5)

	q, err := c1.Div(c2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("(%v) - (%v) = %v\n", c1, c2, c1.Sub(c2))
	fmt.Printf("(%v) / (%v) = %v\n", c1, c2, q)
	fmt.Printf("|%v| = %.4f\n", c1, c1.Abs())
	fmt.Printf("Conj[%v] = %v\n", c1, c1.Conj())

	_, err = c1.Div(complexnum.Zero())
	fmt.Println(err)

	// Output:
	// (9+3i) - (10-5i) = -1+8i
	// (9+3i) / (10-5i) = 0.6+0.6i
	// |9+3i| = 9.4868
	// Conj[9+3i] = 9-3i
	// Div: complexnum: division by zero
}

// ExampleCartesian_Polar converts between coordinate systems.
func ExampleCartesian_Polar() {
	c := complexnum.Cartesian{X: -1, Y: 1}

	p := c.Polar()
	fmt.Printf("principal: (%.4f, %.4f)\n", p.Magnitude, p.Phase)

	p = c.Polar(complexnum.WithPhaseFullQuadrant())
	fmt.Printf("full:      (%.4f, %.4f)\n", p.Magnitude, p.Phase)

	back := complexnum.Polar{Magnitude: math.Sqrt(2), Phase: 3 * math.Pi / 4}.Cartesian()
	fmt.Printf("cartesian: (%.4f, %.4f)\n", back.X, back.Y)

	// Output:
	// principal: (1.4142, -0.7854)
	// full:      (1.4142, 2.3562)
	// cartesian: (-1.0000, 1.0000)
}

// ExampleFromPolar rotates a point by 90° and doubles its distance from the
// origin by multiplying with a polar factor.
func ExampleFromPolar() {
	factor := complexnum.FromPolar(complexnum.Polar{Magnitude: 2, Phase: math.Pi / 2})
	p := complexnum.New(1, 0).Mul(factor)

	fmt.Printf("(%.0f, %.0f)\n", p.Real(), p.Imag())

	// Output:
	// (0, 2)
}
