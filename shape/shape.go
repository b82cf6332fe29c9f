// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the pure phase-warp functions that define how
// an animation moves through a keyframe interval. Shapes operate on the
// normalized phase m in [0,1] and know nothing about the value being
// animated.
package shape

import "math"

// Kind identifies a shape function. Numeric values match the ABI-level
// contract.
type Kind int

const (
	Discrete Kind = iota
	Linear
	Cosine
	Quadratic
	Cubic
)

// String returns the kind's name, for logging and config parsing.
func (k Kind) String() string {
	switch k {
	case Discrete:
		return "discrete"
	case Linear:
		return "linear"
	case Cosine:
		return "cosine"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Params carries the optional control-point coordinates for Quadratic and
// Cubic shapes. Quadratic uses only (X0,Y0); Cubic uses both points. Both
// are scalar [0,1]-style shape parameters on the phase plane, not values
// in the animated kind. The zero value describes a degenerate curve
// rather than an error.
type Params struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Warp maps a phase m in [0,1] to a warped phase m' in [0,1] according to
// kind. Unknown kinds warp as Linear.
func Warp(kind Kind, m float64, p Params) float64 {
	switch kind {
	case Discrete:
		return discrete(m)
	case Cosine:
		return cosine(m)
	case Quadratic:
		return quadraticBezier(m, p)
	case Cubic:
		return cubicBezier(m, p)
	default:
		return m
	}
}

// discrete returns 0 until the end of the interval, then jumps to 1.
func discrete(m float64) float64 {
	if m < 1 {
		return 0
	}
	return 1
}

// cosine eases in/out following half of a raised cosine.
func cosine(m float64) float64 {
	return (1 - math.Cos(m*math.Pi)) / 2
}

// bernsteinQuadratic evaluates the quadratic Bezier basis (0,0)-(cx,cy)-(1,1)
// at parameter t, following the same combination arithmetic as
// math32.NewBezierQuadratic's equation closure, specialized from Vector3
// triples to a single scalar axis.
func bernsteinQuadratic(t, v0, v1, v2 float64) float64 {
	a0 := 1 - t
	return a0*a0*v0 + 2*t*a0*v1 + t*t*v2
}

// bernsteinCubic evaluates the cubic Bezier basis at parameter t, lifted
// from math32.NewBezierCubic's equation closure the same way.
func bernsteinCubic(t, v0, v1, v2, v3 float64) float64 {
	a0 := 1 - t
	return a0*a0*a0*v0 + 3*t*a0*a0*v1 + 3*t*t*a0*v2 + t*t*t*v3
}

// solveT finds t in [0,1] such that x(t) == target via bisection. x must
// be monotonic non-decreasing over [0,1], which holds for the phase-plane
// curves etch constructs (endpoints pinned at x(0)=0, x(1)=1).
func solveT(target float64, x func(t float64) float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if x(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// quadraticBezier solves for t such that x(t) = m on the curve
// (0,0)-(p.X0,p.Y0)-(1,1), and returns y(t) as m'. An all-zero Params
// describes a straight line through the midpoint, which solves to the
// identity warp.
func quadraticBezier(m float64, p Params) float64 {
	x := func(t float64) float64 { return bernsteinQuadratic(t, 0, p.X0, 1) }
	y := func(t float64) float64 { return bernsteinQuadratic(t, 0, p.Y0, 1) }
	t := solveT(m, x)
	return y(t)
}

// cubicBezier solves for t such that x(t) = m on the curve
// (0,0)-(p.X0,p.Y0)-(p.X1,p.Y1)-(1,1), and returns y(t) as m'.
func cubicBezier(m float64, p Params) float64 {
	x := func(t float64) float64 { return bernsteinCubic(t, 0, p.X0, p.X1, 1) }
	y := func(t float64) float64 { return bernsteinCubic(t, 0, p.Y0, p.Y1, 1) }
	t := solveT(m, x)
	return y(t)
}
