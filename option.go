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

package terrors

import "time"

// Option configures a Record under construction. Options are applied in
// order by New and the variant constructors.
type Option func(*Record)

// WithTimestamp sets an explicit creation time instead of reading the
// process clock. A zero t is ignored.
func WithTimestamp(t time.Time) Option {
	return func(r *Record) {
		if !t.IsZero() {
			r.Timestamp = t
		}
	}
}

// WithData sets the data bag. The map is held by reference; a nil map
// leaves the default empty bag in place.
func WithData(data map[string]any) Option {
	return func(r *Record) {
		if data != nil {
			r.Data = data
		}
	}
}

// WithDatum adds one key/value to the data bag.
//
// The bag is copied first, so a map passed to WithData earlier is never
// modified.
func WithDatum(k string, v any) Option {
	return func(r *Record) {
		m := make(map[string]any, len(r.Data)+1)
		for k0, v0 := range r.Data {
			m[k0] = v0
		}
		m[k] = v
		r.Data = m
	}
}

// WithCause attaches whatever triggered the error. Any value is accepted,
// including nil and non-error values.
func WithCause(cause any) Option {
	return func(r *Record) { r.Cause = cause }
}
