// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscrete(t *testing.T) {
	assert.Equal(t, 0.0, Warp(Discrete, 0, Params{}))
	assert.Equal(t, 0.0, Warp(Discrete, 0.999, Params{}))
	assert.Equal(t, 1.0, Warp(Discrete, 1, Params{}))
}

func TestLinear(t *testing.T) {
	for _, m := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.Equal(t, m, Warp(Linear, m, Params{}))
	}
}

func TestCosineEndpoints(t *testing.T) {
	assert.InDelta(t, 0.0, Warp(Cosine, 0, Params{}), 1e-9)
	assert.InDelta(t, 1.0, Warp(Cosine, 1, Params{}), 1e-9)
	assert.InDelta(t, 0.5, Warp(Cosine, 0.5, Params{}), 1e-9)
}

func TestQuadraticEndpointsAndMonotonic(t *testing.T) {
	p := Params{X0: 0.25, Y0: 0.75}
	assert.InDelta(t, 0.0, Warp(Quadratic, 0, p), 1e-6)
	assert.InDelta(t, 1.0, Warp(Quadratic, 1, p), 1e-6)

	prev := -1.0
	for i := 0; i <= 20; i++ {
		m := float64(i) / 20
		v := Warp(Quadratic, m, p)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestCubicEndpointsAndMonotonic(t *testing.T) {
	p := Params{X0: 0.1, Y0: 0.9, X1: 0.9, Y1: 0.1}
	assert.InDelta(t, 0.0, Warp(Cubic, 0, p), 1e-6)
	assert.InDelta(t, 1.0, Warp(Cubic, 1, p), 1e-6)

	prev := -1.0
	for i := 0; i <= 20; i++ {
		m := float64(i) / 20
		v := Warp(Cubic, m, p)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestUnknownKindWarpsLinear(t *testing.T) {
	assert.Equal(t, 0.42, Warp(Kind(99), 0.42, Params{}))
}
