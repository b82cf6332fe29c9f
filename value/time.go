// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value defines the tagged value and time types animated by etch.
package value

import "fmt"

// Time is a signed nanosecond time scalar shared by every timestamp and
// duration in the engine. It is monotonic and never wraps in practice.
type Time int64

// Time unit constants, matching the engine's wire-level time contract.
const (
	MSECOND Time = 1_000_000
	SECOND  Time = 1_000_000_000
)

// String renders t as h:mm:ss.nnnnnnnnn, with the hours unpadded.
func (t Time) String() string {
	hours := t / (SECOND * 60 * 60)
	minutes := (t / (SECOND * 60)) % 60
	seconds := (t / SECOND) % 60
	nanos := t % SECOND
	return fmt.Sprintf("%d:%02d:%02d.%09d", hours, minutes, seconds, nanos)
}
