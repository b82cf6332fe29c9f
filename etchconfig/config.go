// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package etchconfig loads engine and animation setup from a declarative
// YAML document: parse into tagged structs, then build live objects
// from the parsed tree.
package etchconfig

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/flowmotion/etch/shape"
	"github.com/flowmotion/etch/value"
)

// Config is the root of a parsed etch configuration document.
type Config struct {
	FPS           uint              `yaml:"fps"`
	DefaultRepeat int               `yaml:"default_repeat"`
	LogLevel      string            `yaml:"log_level"`
	Presets       []AnimationPreset `yaml:"presets"`
}

// AnimationPreset is a named, declarative description of one animation.
type AnimationPreset struct {
	Name     string           `yaml:"name"`
	Kind     string           `yaml:"kind"`
	Repeat   int              `yaml:"repeat"`
	OffsetMS int64            `yaml:"offset_ms"`
	Keys     []KeyframePreset `yaml:"keys"`
}

// KeyframePreset is a declarative description of one keyframe.
type KeyframePreset struct {
	TimeMS int64     `yaml:"time_ms"`
	Value  string    `yaml:"value"`
	Shape  string    `yaml:"shape"`
	Params []float64 `yaml:"params"`
}

// Load parses a YAML document into a Config. Unknown fields are ignored;
// malformed YAML returns an error.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("etchconfig: read: %w", err)
	}
	cfg := &Config{FPS: 30, DefaultRepeat: 1}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("etchconfig: parse: %w", err)
	}
	return cfg, nil
}

// ParseKind maps a preset's textual kind to a value.Kind.
func ParseKind(s string) (value.Kind, error) {
	switch strings.ToLower(s) {
	case "u32":
		return value.KindU32, nil
	case "i32":
		return value.KindI32, nil
	case "f32":
		return value.KindF32, nil
	case "f64":
		return value.KindF64, nil
	case "argb":
		return value.KindARGB, nil
	case "string":
		return value.KindString, nil
	default:
		return 0, fmt.Errorf("etchconfig: unknown kind %q", s)
	}
}

// ParseShape maps a preset's textual shape to a shape.Kind.
func ParseShape(s string) (shape.Kind, error) {
	switch strings.ToLower(s) {
	case "", "discrete":
		return shape.Discrete, nil
	case "linear":
		return shape.Linear, nil
	case "cosine":
		return shape.Cosine, nil
	case "quadratic":
		return shape.Quadratic, nil
	case "cubic":
		return shape.Cubic, nil
	default:
		return 0, fmt.Errorf("etchconfig: unknown shape %q", s)
	}
}

// ParseValue decodes a preset's textual value according to kind.
func ParseValue(kind value.Kind, s string) (value.Value, error) {
	switch kind {
	case value.KindU32:
		n, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return value.Value{}, fmt.Errorf("etchconfig: u32 value %q: %w", s, err)
		}
		return value.U32Value(uint32(n)), nil
	case value.KindI32:
		n, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return value.Value{}, fmt.Errorf("etchconfig: i32 value %q: %w", s, err)
		}
		return value.I32Value(int32(n)), nil
	case value.KindF32:
		n, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return value.Value{}, fmt.Errorf("etchconfig: f32 value %q: %w", s, err)
		}
		return value.F32Value(float32(n)), nil
	case value.KindF64:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("etchconfig: f64 value %q: %w", s, err)
		}
		return value.F64Value(n), nil
	case value.KindARGB:
		// "#AARRGGBB" is hex; anything else follows Go's prefix rules.
		digits := s
		if strings.HasPrefix(s, "#") {
			digits = "0x" + s[1:]
		}
		n, err := strconv.ParseUint(digits, 0, 32)
		if err != nil {
			return value.Value{}, fmt.Errorf("etchconfig: argb value %q: %w", s, err)
		}
		return value.ARGBValue(uint32(n)), nil
	case value.KindString:
		return value.StringValue(s), nil
	default:
		return value.Value{}, fmt.Errorf("etchconfig: cannot parse value for kind %s", kind)
	}
}

// shapeParams flattens a params slice (x0,y0[,x1,y1]) into a shape.Params.
func shapeParams(p []float64) shape.Params {
	var sp shape.Params
	if len(p) >= 2 {
		sp.X0, sp.Y0 = p[0], p[1]
	}
	if len(p) >= 4 {
		sp.X1, sp.Y1 = p[2], p[3]
	}
	return sp
}
