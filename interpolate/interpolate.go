// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interpolate implements the per-value-kind reducers that turn a
// pair of keyframe values and a warped phase into a concrete value.
package interpolate

import (
	"math"

	"github.com/flowmotion/etch/value"
)

// Func reduces (a, b, m') to a value of a's kind, writing into res. A
// Func must not allocate on its hot path; the animation passes a pointer
// to a local result slot and then stores the result as its current value.
type Func func(a, b value.Value, m float64, res *value.Value, udata interface{})

// ByKind returns the built-in reducer for kind, or nil for KindExternal
// (the caller must supply its own Func for external animations).
func ByKind(k value.Kind) Func {
	switch k {
	case value.KindU32:
		return U32
	case value.KindI32:
		return I32
	case value.KindF32:
		return F32
	case value.KindF64:
		return F64
	case value.KindARGB:
		return ARGB
	case value.KindString:
		return String
	default:
		return nil
	}
}

// U32 reduces two u32 values with the ceiling rule: round((1-m)a + mb)
// using ceiling. a==b short-circuits to a verbatim.
func U32(a, b value.Value, m float64, res *value.Value, _ interface{}) {
	if a.U32 == b.U32 {
		*res = a
		return
	}
	r := (1-m)*float64(a.U32) + m*float64(b.U32)
	*res = value.U32Value(uint32(math.Ceil(r)))
}

// I32 reduces two i32 values with the ceiling rule.
func I32(a, b value.Value, m float64, res *value.Value, _ interface{}) {
	if a.I32 == b.I32 {
		*res = a
		return
	}
	r := (1-m)*float64(a.I32) + m*float64(b.I32)
	*res = value.I32Value(int32(math.Ceil(r)))
}

// F32 linearly combines two f32 values with no rounding.
func F32(a, b value.Value, m float64, res *value.Value, _ interface{}) {
	if a.F32 == b.F32 {
		*res = a
		return
	}
	r := (1-m)*float64(a.F32) + m*float64(b.F32)
	*res = value.F32Value(float32(r))
}

// F64 linearly combines two f64 values with no rounding.
func F64(a, b value.Value, m float64, res *value.Value, _ interface{}) {
	if a.F64 == b.F64 {
		*res = a
		return
	}
	r := (1-m)*a.F64 + m*b.F64
	*res = value.F64Value(r)
}

// ARGB mixes two packed 0xAARRGGBB colors per-channel, in two 16-bit
// lanes (AG and RB) using fixed-point scaled by 256, avoiding
// de-interleaving the four 8-bit channels; it saturates naturally
// because inputs are bounded.
func ARGB(a, b value.Value, m float64, res *value.Value, _ interface{}) {
	ac, bc := a.ARGB, b.ARGB
	if ac == bc {
		*res = a
		return
	}
	*res = value.ARGBValue(mixARGB(ac, bc, m))
}

func mixARGB(a, b uint32, m float64) uint32 {
	rangeScale := uint32(math.Round(256 * m))
	ag := ((((b>>8)&0xff00ff)-((a>>8)&0xff00ff))*rangeScale + (a & 0xff00ff00)) & 0xff00ff00
	rb := (((((b&0xff00ff)-(a&0xff00ff))*rangeScale)>>8 + (a & 0xff00ff))) & 0xff00ff
	return ag + rb
}

// String is discrete-only: m' < 1 reports a, else b. No lexical blending.
func String(a, b value.Value, m float64, res *value.Value, _ interface{}) {
	if m < 1 {
		*res = a
		return
	}
	*res = b
}
