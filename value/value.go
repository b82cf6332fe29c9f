// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// Kind identifies the type of value an animation carries. Kind is fixed
// at animation creation; every keyframe's value must carry the same Kind
// as its owning animation.
type Kind int

// The value kinds etch can animate. Numeric values match the ABI-level
// contract: a host embedding etch via cgo or a wire format may rely on
// these exact ordinals.
const (
	KindU32 Kind = iota
	KindI32
	KindF32
	KindF64
	KindARGB
	KindString
	KindExternal
)

// String returns the kind's name, for logging.
func (k Kind) String() string {
	switch k {
	case KindU32:
		return "u32"
	case KindI32:
		return "i32"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindARGB:
		return "argb"
	case KindString:
		return "string"
	case KindExternal:
		return "external"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged discriminated value over Kind. Only the field
// matching Kind is meaningful; reducers and callers must check Kind
// before reading a field.
type Value struct {
	Kind Kind

	U32    uint32
	I32    int32
	F32    float32
	F64    float64
	ARGB   uint32 // packed 0xAARRGGBB
	Str    string
	// External carries an opaque, caller-owned pointer, meaningful only
	// together with a user-provided interpolator. etch never dereferences it.
	External interface{}
}

// U32Value builds a Value of kind u32.
func U32Value(v uint32) Value { return Value{Kind: KindU32, U32: v} }

// I32Value builds a Value of kind i32.
func I32Value(v int32) Value { return Value{Kind: KindI32, I32: v} }

// F32Value builds a Value of kind f32.
func F32Value(v float32) Value { return Value{Kind: KindF32, F32: v} }

// F64Value builds a Value of kind f64.
func F64Value(v float64) Value { return Value{Kind: KindF64, F64: v} }

// ARGBValue builds a Value of kind argb, packed 0xAARRGGBB.
func ARGBValue(v uint32) Value { return Value{Kind: KindARGB, ARGB: v} }

// StringValue builds a Value of kind string.
func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

// ExternalValue builds a Value of kind external, carrying an opaque
// caller pointer.
func ExternalValue(v interface{}) Value { return Value{Kind: KindExternal, External: v} }

// Equal reports whether two values are structurally equal. Kind mismatch
// is never equal, even if both undefined fields happen to match.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindU32:
		return v.U32 == o.U32
	case KindI32:
		return v.I32 == o.I32
	case KindF32:
		return v.F32 == o.F32
	case KindF64:
		return v.F64 == o.F64
	case KindARGB:
		return v.ARGB == o.ARGB
	case KindString:
		return v.Str == o.Str
	case KindExternal:
		return v.External == o.External
	default:
		return false
	}
}
