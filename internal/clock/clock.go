/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package clock provides the weakly monotonic time source used for default
// record timestamps.
//
// Wall clocks may step backwards (NTP adjustments, manual changes). Records
// created in sequence must never observe that, so Now is derived from a
// fixed wall-clock origin plus the monotonic time elapsed since it.
package clock

import (
	"sync"
	"time"
)

// Source yields points in time. Implementations used for record timestamps
// must be non-decreasing across calls.
type Source interface {
	Now() time.Time
}

// Monotonic is a Source anchored at a wall-clock origin. The zero value is
// not usable; use NewMonotonic.
type Monotonic struct {
	origin time.Time
}

// NewMonotonic returns a Source anchored at the current wall-clock time.
func NewMonotonic() *Monotonic {
	return &Monotonic{origin: time.Now()}
}

// Now returns origin + monotonic elapsed time. The result carries no
// monotonic reading of its own, so it compares and serializes as plain
// wall-clock time.
func (m *Monotonic) Now() time.Time {
	return m.origin.Round(0).Add(time.Since(m.origin))
}

// Origin returns the wall-clock anchor of m.
func (m *Monotonic) Origin() time.Time {
	return m.origin.Round(0)
}

var (
	mu      sync.RWMutex
	current Source = NewMonotonic()
)

// Now reads the process-wide source.
func Now() time.Time {
	mu.RLock()
	s := current
	mu.RUnlock()
	return s.Now()
}

// Set replaces the process-wide source and returns the previous one.
// It is meant for program start-up and tests; a nil s is ignored.
func Set(s Source) Source {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	if s != nil {
		current = s
	}
	return prev
}
