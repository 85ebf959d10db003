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

import (
	"errors"
	"reflect"
	"time"

	"dirpx.dev/terrors/internal/clock"
	"dirpx.dev/terrors/internal/stack"
)

// TypeRecord is the type identifier of the base Record.
const TypeRecord = "ErrorRecord"

// Typed is implemented by every error the codec can tag: records, foreign
// errors and their variants. TypeName must return the same identifier for
// every value of a concrete type; it is what the encoder emits and what the
// registry is keyed by.
type Typed interface {
	error
	TypeName() string
}

// Recorder is implemented by Record and by every variant embedding *Record.
type Recorder interface {
	Typed

	// Base returns the embedded base record. It is never nil for values
	// built with New or a variant constructor.
	Base() *Record
}

// FieldEncoder is implemented by variants that carry fields beyond the base
// record. EncodeFields adds them to the encoded "data" payload; the variant's
// registered decode routine reads them back.
type FieldEncoder interface {
	EncodeFields(fields map[string]any)
}

// Describer exposes the static, per-type description of an error variant.
type Describer interface {
	Description() string
}

// Record is one error occurrence.
//
// It carries:
//   - Message: human-oriented text, may be empty;
//   - Data: open key/value diagnostic context, never nil;
//   - Cause: whatever triggered this error (another record, a foreign or
//     plain Go error, any value, or nil), held by reference;
//   - Timestamp: creation time, weakly monotonic within a process;
//   - Stack: opaque trace captured at construction.
//
// Variants embed *Record and override TypeName (and optionally
// Description):
//
//	type NotFound struct{ *terrors.Record }
//
//	func (*NotFound) TypeName() string    { return "NotFound" }
//	func (*NotFound) Description() string { return "resource not found" }
//
// A variant that does not override TypeName is encoded as the base record.
type Record struct {
	Message   string
	Data      map[string]any
	Cause     any
	Timestamp time.Time
	Stack     string
}

// New constructs a Record. Data defaults to an empty map and Timestamp to
// the process clock; the stack is captured at the caller of New.
//
// Usage:
//
//	return terrors.New("cannot open store",
//	    terrors.WithDatum("path", p),
//	    terrors.WithCause(err),
//	)
func New(msg string, opts ...Option) *Record {
	return build(1, msg, opts)
}

// build is shared by New and the variant constructors of this package.
// skip is the distance from build to the constructor whose caller is the
// error site.
func build(skip int, msg string, opts []Option) *Record {
	r := &Record{Message: msg}
	for _, opt := range opts {
		opt(r)
	}
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = clock.Now()
	}
	r.Stack = stack.Capture(skip + 1)
	return r
}

// Error implements the built-in error interface and returns the message.
func (r *Record) Error() string {
	if r == nil {
		return "<nil>"
	}
	return r.Message
}

// Unwrap returns the cause when it is an error, enabling errors.Is/As over
// the causation chain.
func (r *Record) Unwrap() error {
	if r == nil {
		return nil
	}
	if err, ok := r.Cause.(error); ok {
		return err
	}
	return nil
}

// TypeName implements Typed.
func (r *Record) TypeName() string { return TypeRecord }

// Base implements Recorder.
func (r *Record) Base() *Record { return r }

// Description implements Describer. The base record has no description.
func (r *Record) Description() string { return "" }

// Describe returns the static description of v's type, or "" when v does
// not provide one.
func Describe(v any) string {
	if d, ok := v.(Describer); ok {
		return d.Description()
	}
	return ""
}

// CauseAs narrows the cause of r to T. For error types the causation chain
// is searched with errors.As, so a T wrapped by an intermediate error is
// found as well; other values must match exactly.
func CauseAs[T any](r Recorder) (T, bool) {
	var zero T
	if r == nil || r.Base() == nil {
		return zero, false
	}
	c := r.Base().Cause
	if v, ok := c.(T); ok {
		return v, true
	}
	if err, ok := c.(error); ok && asTarget[T]() {
		var target T
		if errors.As(err, &target) {
			return target, true
		}
	}
	return zero, false
}

var errorType = reflect.TypeFor[error]()

// asTarget reports whether T is a valid errors.As target.
func asTarget[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Kind() == reflect.Interface || t.Implements(errorType)
}
