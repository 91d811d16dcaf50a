// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts the time source for testability. Production
// code injects Real(); tests inject Fake() and control the reported
// time directly. Report timestamps are the only time-dependent output
// of this project, so the interface carries just Now.
package clock

import "time"

// Clock provides the current time. Production functions that would
// call time.Now accept a Clock (or sit on a struct with a Clock field)
// instead of calling the time package directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
