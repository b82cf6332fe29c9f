// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animation

import (
	"github.com/flowmotion/etch/shape"
	"github.com/flowmotion/etch/value"
)

// SetLogger attaches a logger to the animation. Engine.AddAnimation calls
// this with a child of its own logger; an animation with no logger
// attached simply skips logging.
func (a *Animation) SetLogger(log interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}) {
	a.log = log
}

func (a *Animation) debugf(format string, v ...interface{}) {
	if a.log != nil {
		a.log.Debug(format, v...)
	}
}

func (a *Animation) warnf(format string, v ...interface{}) {
	if a.log != nil {
		a.log.Warn(format, v...)
	}
}

// Process runs the timeline state machine for one tick: start/repeat/stop
// detection against the global clock curr, with this animation's offset
// and repeat count. tpf is the engine's time-per-frame, used to detect
// the repeat-wrap edge.
func (a *Animation) Process(curr value.Time, tpf value.Time) {
	if !a.enabled {
		return
	}
	a.debugf("process curr=%s offset=%s start=%s end=%s repeat=%d",
		curr, a.offset, a.start, a.end, a.repeat)

	// before the animation
	if curr < a.start+a.offset {
		return
	}
	// degenerate: 0-length
	if a.end == a.start {
		return
	}

	if a.repeat >= 0 {
		absEnd := a.end*value.Time(a.repeat) + a.offset
		if curr > absEnd {
			if a.started {
				a.debugf("stopping at %s (end %s)", curr, a.end)
				a.animate(a.end)
				a.started = false
				if a.callbacks.OnStop != nil {
					a.callbacks.OnStop(a, a.udata)
				}
			}
			return
		}
	}

	// time into the repeating window
	local := curr - (a.start + a.offset)
	length := a.end - a.start
	phaseTime := (local % length) + a.start

	// repeat edge detection: if the previous tick would have mapped
	// below start, we've just wrapped.
	if (phaseTime-tpf) < a.start && a.started {
		a.debugf("repeating at %s", curr)
		a.animate(a.end)
		if a.callbacks.OnRepeat != nil {
			a.callbacks.OnRepeat(a, a.udata)
		}
		return
	}

	if !a.started {
		a.debugf("starting at %s", curr)
		if a.callbacks.OnStart != nil {
			a.callbacks.OnStart(a, a.udata)
		}
		a.started = true
	}

	a.animate(phaseTime)
}

// animate locates the bracketing keyframe pair for tLocal, computes the
// normalized phase, warps it by the interval's shape function, reduces it
// via the animation's interpolator, and emits OnValue.
func (a *Animation) animate(tLocal value.Time) {
	if len(a.keysOrdered) == 0 {
		return
	}
	if a.interpolator == nil {
		a.warnf("no interpolator available for kind %s", a.kind)
		return
	}

	for i := 0; i < len(a.keysOrdered)-1; i++ {
		ki := a.keysOrdered[i]
		kn := a.keysOrdered[i+1]
		if tLocal < ki.time || tLocal > kn.time {
			continue
		}

		var m float64
		switch {
		case tLocal == ki.time:
			m = 0
		case tLocal == kn.time:
			m = 1
		default:
			m = float64(tLocal-ki.time) / float64(kn.time-ki.time)
		}

		mPrime := shape.Warp(ki.shapeKind, m, ki.shapeParams)

		if mPrime == a.mLast && ki == a.kLast {
			if a.callbacks.OnValue != nil {
				a.callbacks.OnValue(ki, a.curr, a.curr, a.udata)
			}
			return
		}
		a.mLast = mPrime
		a.kLast = ki

		prev := a.curr
		var res value.Value
		a.interpolator(ki.val, kn.val, mPrime, &res, a.udata)
		a.curr = res
		a.prev = prev

		if a.callbacks.OnValue != nil {
			a.callbacks.OnValue(ki, a.curr, a.prev, a.udata)
		}
		return
	}
}
