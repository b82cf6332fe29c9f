// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animation implements the per-animation timeline processing
// state machine and keyframe interval resolver: the core of etch.
package animation

import (
	"github.com/flowmotion/etch/shape"
	"github.com/flowmotion/etch/value"
)

// Keyframe is one point on an animation's local timeline. Shape and
// ShapeParams describe the interval starting at this keyframe and ending
// at the next one; the last keyframe's shape is unused.
type Keyframe struct {
	anim *Animation

	time        value.Time
	val         value.Value
	shapeKind   shape.Kind
	shapeParams shape.Params

	aux      interface{}
	auxFree  func(interface{})
}

// Time returns the keyframe's time on the animation's local timeline.
func (k *Keyframe) Time() value.Time { return k.time }

// Value returns the target value at this keyframe's time.
func (k *Keyframe) Value() value.Value { return k.val }

// Shape returns the warp kind for the interval starting at this keyframe.
func (k *Keyframe) Shape() shape.Kind { return k.shapeKind }

// ShapeParams returns the control-point coordinates for Quadratic/Cubic
// shapes.
func (k *Keyframe) ShapeParams() shape.Params { return k.shapeParams }

// SetValue sets the keyframe's value. v.Kind must equal the owning
// animation's kind.
func (k *Keyframe) SetValue(v value.Value) {
	k.val = v
}

// SetShape sets the warp kind for the interval starting at this keyframe.
func (k *Keyframe) SetShape(s shape.Kind) {
	k.shapeKind = s
}

// SetShapeParams sets the control-point coordinates for Quadratic/Cubic
// shapes. Unused fields for the current shape kind are ignored.
func (k *Keyframe) SetShapeParams(p shape.Params) {
	k.shapeParams = p
}

// SetAux attaches an opaque annotation to the keyframe, not read by the
// engine. Any previously attached aux is released via its destructor
// before the new one is stored.
func (k *Keyframe) SetAux(data interface{}, free func(interface{})) {
	k.releaseAux()
	k.aux = data
	k.auxFree = free
}

// Aux returns the keyframe's opaque annotation.
func (k *Keyframe) Aux() interface{} { return k.aux }

func (k *Keyframe) releaseAux() {
	if k.auxFree != nil {
		k.auxFree(k.aux)
	}
	k.aux = nil
	k.auxFree = nil
}

// SetTime updates the keyframe's time and re-orders the owning
// animation's sorted keyframe list to match. A no-op if t equals the
// keyframe's current time.
func (k *Keyframe) SetTime(t value.Time) {
	if t == k.time {
		return
	}
	k.anim.reorderKeyframe(k, t)
}
