// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the global clock and animation registry:
// the host-facing entry point of etch.
package engine

import (
	"fmt"

	"github.com/flowmotion/etch/animation"
	"github.com/flowmotion/etch/interpolate"
	"github.com/flowmotion/etch/util/logger"
	"github.com/flowmotion/etch/value"
)

const defaultFPS = 30

// Engine owns a set of animations and drives their shared global clock.
// The engine persists until the host drops its last reference; there is
// no explicit shutdown beyond that, and logging is a per-Engine concern
// rather than a process-wide one.
type Engine struct {
	animations []*animation.Animation

	fps   uint
	tpf   value.Time
	frame uint64
	curr  value.Time

	log *logger.Logger
}

// New creates an engine initialized at frame=0, curr=0, fps=30.
func New() *Engine {
	e := &Engine{
		log: logger.New("ENGINE", logger.Default),
	}
	e.SetFPS(defaultFPS)
	return e
}

// SetFPS sets the frame rate and recomputes time-per-frame.
// fps must be at least 1; etch does not validate this (a caller bug, per
// the engine's error-handling design).
func (e *Engine) SetFPS(fps uint) {
	e.fps = fps
	e.tpf = value.SECOND / value.Time(fps)
}

// FPS returns the configured frame rate.
func (e *Engine) FPS() uint { return e.fps }

// TimePerFrame returns the current time-per-frame derived from FPS.
func (e *Engine) TimePerFrame() value.Time { return e.tpf }

// Frame returns the monotonic tick counter.
func (e *Engine) Frame() uint64 { return e.frame }

// GetTime returns the engine's current global time.
func (e *Engine) GetTime() value.Time { return e.curr }

// Tick advances the clock by one frame and processes every animation.
func (e *Engine) Tick() {
	e.frame++
	e.curr += e.tpf
	e.processAll()
}

// SeekFrame jumps directly to frame n (curr = n*tpf) and processes every
// animation from the new time.
func (e *Engine) SeekFrame(n uint64) {
	e.frame = n
	e.curr = value.Time(n) * e.tpf
	e.processAll()
}

// SeekTime jumps directly to global time t and processes every animation.
// The frame counter is left untouched; callers mixing SeekTime with Tick
// should expect frame to drift from curr/tpf.
func (e *Engine) SeekTime(t value.Time) {
	e.curr = t
	e.processAll()
}

func (e *Engine) processAll() {
	for _, a := range e.animations {
		a.Process(e.curr, e.tpf)
	}
}

// AddAnimation creates and registers a built-in animation of kind,
// wiring up the matching interpolator. kind must not be
// value.KindExternal; use AddExternalAnimation for that.
func (e *Engine) AddAnimation(kind value.Kind, cb animation.Callbacks, udata interface{}) (*animation.Animation, error) {
	if kind == value.KindExternal {
		return nil, fmt.Errorf("engine: AddAnimation: use AddExternalAnimation for external kind")
	}
	interp := interpolate.ByKind(kind)
	a := animation.New(kind, interp, cb, udata)
	a.SetLogger(logger.New(kind.String(), e.log))
	e.animations = append(e.animations, a)
	return a, nil
}

// AddExternalAnimation creates and registers an animation of
// value.KindExternal, using the caller-supplied interpolator.
func (e *Engine) AddExternalAnimation(interp interpolate.Func, cb animation.Callbacks, udata interface{}) (*animation.Animation, error) {
	if interp == nil {
		return nil, fmt.Errorf("engine: AddExternalAnimation: interpolator is required")
	}
	a := animation.New(value.KindExternal, interp, cb, udata)
	a.SetLogger(logger.New("external", e.log))
	e.animations = append(e.animations, a)
	return a, nil
}

// RemoveAnimation detaches a from the engine's registry without freeing
// it; it will no longer be processed on tick.
func (e *Engine) RemoveAnimation(a *animation.Animation) {
	for i, cand := range e.animations {
		if cand == a {
			e.animations = append(e.animations[:i], e.animations[i+1:]...)
			return
		}
	}
}

// DeleteAnimation removes a from the registry. There is no separate
// free step in the Go port: once detached and unreferenced, a is
// reclaimed by the garbage collector.
func (e *Engine) DeleteAnimation(a *animation.Animation) {
	e.RemoveAnimation(a)
}

// Animations returns the animations currently registered, in
// registration order. The returned slice is owned by the engine and
// must not be mutated by the caller.
func (e *Engine) Animations() []*animation.Animation {
	return e.animations
}
