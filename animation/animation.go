// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animation

import (
	"github.com/flowmotion/etch/interpolate"
	"github.com/flowmotion/etch/value"
)

// ValueCallback is invoked whenever an animation's interpolated value
// changes. k is the keyframe starting the active interval; curr is the
// value produced on this tick and prev the value produced before it (both
// are the current value when the warped phase did not move). udata is the opaque
// pointer supplied at animation creation.
type ValueCallback func(k *Keyframe, curr, prev value.Value, udata interface{})

// StateCallback is invoked when an animation starts, stops, or completes
// a repeat cycle.
type StateCallback func(a *Animation, udata interface{})

// Callbacks bundles the notifications an animation can emit. OnValue is
// required; the state callbacks are optional.
type Callbacks struct {
	OnValue  ValueCallback
	OnStart  StateCallback
	OnStop   StateCallback
	OnRepeat StateCallback
}

// Animation drives one typed value along a piecewise-defined time curve.
// An animation owns its keyframes and animates exactly one value.Kind,
// fixed at creation.
type Animation struct {
	kind         value.Kind
	interpolator interpolate.Func

	keysOrdered   []*Keyframe // sorted strictly by time ascending
	keysInsertion []*Keyframe // insertion order, for index-based access

	start, end value.Time // cached min/max keyframe times

	repeat int        // 1=once, n>1=n times, negative=infinite
	offset value.Time // time shift added to every boundary

	callbacks Callbacks
	udata     interface{}

	enabled bool
	started bool

	curr, prev value.Value
	mLast      float64 // sentinel -1 before the first evaluation
	// kLast is the interval-start keyframe of the last evaluation; the
	// mLast short-circuit applies only while the interval is unchanged.
	kLast *Keyframe

	log interface {
		Debug(format string, v ...interface{})
		Warn(format string, v ...interface{})
	}
}

// New constructs an animation of kind, using interpolator to reduce
// keyframe pairs to values. interpolator must be non-nil for
// value.KindExternal; for built-in kinds pass interpolate.ByKind(kind).
func New(kind value.Kind, interpolator interpolate.Func, cb Callbacks, udata interface{}) *Animation {
	return &Animation{
		kind:         kind,
		interpolator: interpolator,
		repeat:       1,
		enabled:      true,
		mLast:        -1,
		callbacks:    cb,
		udata:        udata,
		curr:         zeroValue(kind),
		prev:         zeroValue(kind),
	}
}

func zeroValue(k value.Kind) value.Value {
	return value.Value{Kind: k}
}

// Kind returns the value kind this animation drives.
func (a *Animation) Kind() value.Kind { return a.kind }

// Enabled reports whether the animation is processed on each tick.
func (a *Animation) Enabled() bool { return a.enabled }

// Enable gates processing on.
func (a *Animation) Enable() { a.enabled = true }

// Disable gates processing off; the timeline state machine is skipped
// entirely for a disabled animation.
func (a *Animation) Disable() { a.enabled = false }

// SetRepeat sets how many times the animation plays. n=1 plays once,
// n>1 plays n times, any negative value repeats forever.
func (a *Animation) SetRepeat(n int) { a.repeat = n }

// Repeat returns the configured repeat count.
func (a *Animation) Repeat() int { return a.repeat }

// AddOffset adds dt to the animation's time offset.
func (a *Animation) AddOffset(dt value.Time) { a.offset += dt }

// Offset returns the animation's current time offset.
func (a *Animation) Offset() value.Time { return a.offset }

// Start returns the cached minimum keyframe time (0 if there are no
// keyframes).
func (a *Animation) Start() value.Time { return a.start }

// End returns the cached maximum keyframe time (0 if there are no
// keyframes).
func (a *Animation) End() value.Time { return a.end }

// Value returns the last value produced by this animation.
func (a *Animation) Value() value.Value { return a.curr }

// KeyframeCount returns the number of keyframes.
func (a *Animation) KeyframeCount() int { return len(a.keysInsertion) }

// KeyframeAt returns the keyframe at insertion-order index i.
func (a *Animation) KeyframeAt(i int) *Keyframe { return a.keysInsertion[i] }

// Keyframes returns the keyframes in time order. The returned slice is
// owned by the animation and must not be mutated by the caller.
func (a *Animation) Keyframes() []*Keyframe { return a.keysOrdered }

// AddKeyframe appends a new, blank keyframe (time 0, zero value,
// Discrete shape) to the animation and returns it. Because new keyframes
// default to time 0, it sorts to the front until its time is set.
func (a *Animation) AddKeyframe() *Keyframe {
	k := &Keyframe{
		anim: a,
		val:  zeroValue(a.kind),
	}
	a.keysInsertion = append(a.keysInsertion, k)
	a.insertOrdered(k)
	a.updateStartEnd()
	return k
}

// RemoveKeyframe detaches k from the animation, releases its aux payload
// via its destructor if any, and recomputes start/end.
func (a *Animation) RemoveKeyframe(k *Keyframe) {
	k.releaseAux()
	a.keysOrdered = removeKeyframe(a.keysOrdered, k)
	a.keysInsertion = removeKeyframe(a.keysInsertion, k)
	a.updateStartEnd()
}

func removeKeyframe(s []*Keyframe, k *Keyframe) []*Keyframe {
	for i, kf := range s {
		if kf == k {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// insertOrdered inserts k into keysOrdered, keeping it sorted by time
// ascending. Used both on first add (time 0) and whenever a keyframe's
// time changes.
func (a *Animation) insertOrdered(k *Keyframe) {
	idx := len(a.keysOrdered)
	for i, kf := range a.keysOrdered {
		if kf.time >= k.time {
			idx = i
			break
		}
	}
	a.keysOrdered = append(a.keysOrdered, nil)
	copy(a.keysOrdered[idx+1:], a.keysOrdered[idx:])
	a.keysOrdered[idx] = k
}

// reorderKeyframe implements set_time: remove k from keysOrdered, update
// its time, then reinsert before the first element with time >= t (or
// append if none). O(n), acceptable for the small keyframe counts etch
// expects.
func (a *Animation) reorderKeyframe(k *Keyframe, t value.Time) {
	a.keysOrdered = removeKeyframe(a.keysOrdered, k)
	k.time = t
	a.insertOrdered(k)
	a.updateStartEnd()
}

func (a *Animation) updateStartEnd() {
	if len(a.keysOrdered) == 0 {
		a.start, a.end = 0, 0
		return
	}
	a.start = a.keysOrdered[0].time
	a.end = a.keysOrdered[len(a.keysOrdered)-1].time
}
