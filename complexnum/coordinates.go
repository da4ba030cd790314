// SPDX-License-Identifier: MIT

// Package complexnum - Cartesian and polar views of the complex plane.
//
// Conversions are pure and lossless in the Cartesian direction. The polar
// round trip is only approximate: cos/sin rounding always applies, and the
// principal phase formula loses the quadrant for x < 0.

package complexnum

import (
	"fmt"
	"math"
)

// Cartesian is the (x, y) view of a complex number.
type Cartesian struct {
	X float64
	Y float64
}

// Polar is the (magnitude, phase) view of a complex number.
// Phase is in radians.
type Polar struct {
	Magnitude float64
	Phase     float64
}

// Cartesian returns n as (re, im).
func (n Number) Cartesian() Cartesian {
	return Cartesian{X: n.re, Y: n.im}
}

// Polar returns n as (Abs(n), phase). See PhaseMode for the phase formula.
func (n Number) Polar(opts ...PolarOption) Polar {
	return n.Cartesian().Polar(opts...)
}

// FromCartesian builds the Number x + y·i.
func FromCartesian(c Cartesian) Number {
	return New(c.X, c.Y)
}

// FromPolar builds the Number m·cos(p) + m·sin(p)·i.
func FromPolar(p Polar) Number {
	return FromCartesian(p.Cartesian())
}

// Polar converts c to polar coordinates.
// Magnitude is sqrt(x² + y²); the phase follows the selected PhaseMode.
func (c Cartesian) Polar(opts ...PolarOption) Polar {
	o := gatherPolarOptions(opts...)

	var phase float64
	switch o.phase {
	case PhaseFullQuadrant:
		phase = math.Atan2(c.Y, c.X)
	default:
		phase = math.Atan(c.Y / c.X)
	}

	return Polar{
		Magnitude: math.Sqrt(c.X*c.X + c.Y*c.Y),
		Phase:     phase,
	}
}

// Cartesian converts p to (m·cos(phase), m·sin(phase)).
func (p Polar) Cartesian() Cartesian {
	return Cartesian{
		X: p.Magnitude * math.Cos(p.Phase),
		Y: p.Magnitude * math.Sin(p.Phase),
	}
}

// String renders c as "(x, y)".
func (c Cartesian) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(c.X), formatFloat(c.Y))
}

// String renders p as "(magnitude, phase)".
func (p Polar) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(p.Magnitude), formatFloat(p.Phase))
}
