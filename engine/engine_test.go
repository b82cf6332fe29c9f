// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowmotion/etch/animation"
	"github.com/flowmotion/etch/value"
)

func TestNewDefaults(t *testing.T) {
	e := New()
	assert.Equal(t, uint(30), e.FPS())
	assert.Equal(t, uint64(0), e.Frame())
	assert.Equal(t, value.Time(0), e.GetTime())
}

func TestTickAdvancesClock(t *testing.T) {
	e := New()
	e.Tick()
	assert.Equal(t, uint64(1), e.Frame())
	assert.Equal(t, e.TimePerFrame(), e.GetTime())
}

// P8: idempotent seek.
func TestIdempotentSeek(t *testing.T) {
	e := New()
	e.SetFPS(60)
	e.SeekFrame(10)
	frame1, curr1 := e.Frame(), e.GetTime()
	e.SetFPS(60)
	e.SeekFrame(10)
	assert.Equal(t, frame1, e.Frame())
	assert.Equal(t, curr1, e.GetTime())
}

func TestAddAnimationRejectsExternalKind(t *testing.T) {
	e := New()
	a, err := e.AddAnimation(value.KindExternal, animation.Callbacks{}, nil)
	assert.Nil(t, a)
	assert.Error(t, err)
}

func TestAddExternalAnimationRequiresInterpolator(t *testing.T) {
	e := New()
	a, err := e.AddExternalAnimation(nil, animation.Callbacks{}, nil)
	assert.Nil(t, a)
	assert.Error(t, err)
}

func TestProcessAllVisitsInRegistrationOrder(t *testing.T) {
	e := New()
	var order []int
	for i := 0; i < 3; i++ {
		id := i
		a, err := e.AddAnimation(value.KindU32, animation.Callbacks{
			OnValue: func(k *animation.Keyframe, curr, prev value.Value, udata interface{}) {
				order = append(order, id)
			},
		}, nil)
		assert.NoError(t, err)
		k1 := a.AddKeyframe()
		k1.SetValue(value.U32Value(0))
		k2 := a.AddKeyframe()
		k2.SetTime(value.SECOND)
		k2.SetValue(value.U32Value(1))
	}
	e.Tick()
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestRemoveAnimationStopsProcessing(t *testing.T) {
	e := New()
	calls := 0
	a, _ := e.AddAnimation(value.KindU32, animation.Callbacks{
		OnValue: func(k *animation.Keyframe, curr, prev value.Value, udata interface{}) { calls++ },
	}, nil)
	k1 := a.AddKeyframe()
	k1.SetValue(value.U32Value(0))
	k2 := a.AddKeyframe()
	k2.SetTime(value.SECOND)
	k2.SetValue(value.U32Value(1))

	e.RemoveAnimation(a)
	e.SeekTime(value.SECOND / 2)
	assert.Equal(t, 0, calls)
	assert.Len(t, e.Animations(), 0)
}
