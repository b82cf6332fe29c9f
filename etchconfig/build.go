// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package etchconfig

import (
	"fmt"

	"github.com/flowmotion/etch/animation"
	"github.com/flowmotion/etch/engine"
	"github.com/flowmotion/etch/value"
)

// Built is the result of BuildEngine: a live engine plus its animations
// keyed by preset name, so the host can attach callbacks after
// construction (the config format carries no callback information).
type Built struct {
	Engine     *engine.Engine
	Animations map[string]*animation.Animation
}

// BuildEngine walks cfg and constructs a live *engine.Engine with one
// *animation.Animation per preset, populated with the declared
// keyframes: the second phase of the parse-then-build pattern, where
// AnimationPreset trees become live animations.
func BuildEngine(cfg *Config) (*Built, error) {
	e := engine.New()
	e.SetFPS(cfg.FPS)

	built := &Built{Engine: e, Animations: make(map[string]*animation.Animation, len(cfg.Presets))}

	for _, p := range cfg.Presets {
		kind, err := ParseKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("etchconfig: preset %q: %w", p.Name, err)
		}

		repeat := p.Repeat
		if repeat == 0 {
			repeat = cfg.DefaultRepeat
		}

		a, err := e.AddAnimation(kind, animation.Callbacks{}, nil)
		if err != nil {
			return nil, fmt.Errorf("etchconfig: preset %q: %w", p.Name, err)
		}
		a.SetRepeat(repeat)
		a.AddOffset(value.Time(p.OffsetMS) * value.MSECOND)

		for _, kp := range p.Keys {
			sk, err := ParseShape(kp.Shape)
			if err != nil {
				return nil, fmt.Errorf("etchconfig: preset %q: %w", p.Name, err)
			}
			v, err := ParseValue(kind, kp.Value)
			if err != nil {
				return nil, fmt.Errorf("etchconfig: preset %q: %w", p.Name, err)
			}

			k := a.AddKeyframe()
			k.SetTime(value.Time(kp.TimeMS) * value.MSECOND)
			k.SetValue(v)
			k.SetShape(sk)
			k.SetShapeParams(shapeParams(kp.Params))
		}

		if _, exists := built.Animations[p.Name]; exists {
			return nil, fmt.Errorf("etchconfig: duplicate preset name %q", p.Name)
		}
		built.Animations[p.Name] = a
	}

	return built, nil
}
