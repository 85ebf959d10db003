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
	"fmt"
	"strings"
	"testing"
	"time"
)

type programError struct{ *Record }

func (*programError) TypeName() string    { return "ProgramError" }
func (*programError) Description() string { return "static description" }

func TestRecord_Defaults(t *testing.T) {
	before := time.Now()
	e := New("")

	if e.Message != "" {
		t.Fatalf("message = %q, want empty", e.Message)
	}
	if e.Data == nil || len(e.Data) != 0 {
		t.Fatalf("data = %v, want empty non-nil map", e.Data)
	}
	if e.Cause != nil {
		t.Fatalf("cause = %v, want nil", e.Cause)
	}
	if e.Timestamp.IsZero() {
		t.Fatal("timestamp must be set")
	}
	if e.Timestamp.After(time.Now()) || e.Timestamp.Before(before.Add(-time.Second)) {
		t.Fatalf("timestamp %v out of range", e.Timestamp)
	}
	if e.Stack == "" {
		t.Fatal("stack must be captured")
	}
	if e.TypeName() != TypeRecord {
		t.Fatalf("type = %q, want %q", e.TypeName(), TypeRecord)
	}
	if Describe(e) != "" {
		t.Fatalf("base description = %q, want empty", Describe(e))
	}
}

func TestRecord_StackStartsAtCaller(t *testing.T) {
	e := New("x")
	first, _, _ := strings.Cut(e.Stack, "\n")
	if !strings.HasSuffix(first, ".TestRecord_StackStartsAtCaller") {
		t.Fatalf("first frame = %q, want the test function", first)
	}

	u := NewUnknown("x")
	first, _, _ = strings.Cut(u.Stack, "\n")
	if !strings.HasSuffix(first, ".TestRecord_StackStartsAtCaller") {
		t.Fatalf("unknown first frame = %q, want the test function", first)
	}
}

func TestRecord_Options(t *testing.T) {
	ts := time.Date(2022, 5, 7, 9, 16, 6, 632000000, time.UTC)
	cause := errors.New("cause")
	e := New("msg",
		WithTimestamp(ts),
		WithData(map[string]any{"foo": "bar"}),
		WithCause(cause),
	)
	if !e.Timestamp.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", e.Timestamp, ts)
	}
	if e.Data["foo"] != "bar" {
		t.Fatalf("data = %v", e.Data)
	}
	if e.Cause != cause {
		t.Fatal("cause must be held by reference")
	}
}

func TestRecord_WithDatum_CopiesBag(t *testing.T) {
	bag := map[string]any{"a": 1}
	e := New("x", WithData(bag), WithDatum("b", 2))
	if _, ok := bag["b"]; ok {
		t.Fatal("caller map mutated")
	}
	if e.Data["a"] != 1 || e.Data["b"] != 2 {
		t.Fatalf("data = %v", e.Data)
	}
}

func TestRecord_CausePreserved(t *testing.T) {
	obj := &struct{ n int }{1}
	for _, c := range []any{obj, "string", 123, nil, errors.New("e")} {
		e := New("x", WithCause(c))
		if e.Cause != c {
			t.Fatalf("cause = %v, want %v", e.Cause, c)
		}
	}
}

func TestRecord_Monotonic(t *testing.T) {
	prev := New("a")
	for i := 0; i < 1000; i++ {
		cur := New("b")
		if cur.Timestamp.Before(prev.Timestamp) {
			t.Fatalf("timestamp went backwards: %v < %v", cur.Timestamp, prev.Timestamp)
		}
		prev = cur
	}
}

func TestRecord_Unwrap(t *testing.T) {
	root := errors.New("root")
	mid := New("mid", WithCause(root))
	top := New("top", WithCause(mid))

	if !errors.Is(top, root) {
		t.Fatal("errors.Is must walk the cause chain")
	}
	var rec *Record
	if !errors.As(top, &rec) || rec != top {
		t.Fatal("errors.As must find the record itself")
	}
	if New("x", WithCause("not an error")).Unwrap() != nil {
		t.Fatal("non-error cause must not unwrap")
	}
}

func TestVariant_Extending(t *testing.T) {
	e := &programError{Record: New("dynamic message")}

	var r Recorder = e
	if r.TypeName() != "ProgramError" {
		t.Fatalf("type = %q", r.TypeName())
	}
	if r.Base().Message != "dynamic message" {
		t.Fatalf("message = %q", r.Base().Message)
	}
	if Describe(e) != "static description" {
		t.Fatalf("description = %q", Describe(e))
	}
	if e.Error() != "dynamic message" {
		t.Fatalf("Error() = %q", e.Error())
	}
}

func TestUnknownError(t *testing.T) {
	u := NewUnknown("Unknown error JSON", WithData(map[string]any{"json": 123.0}))
	if u.TypeName() != TypeUnknown {
		t.Fatalf("type = %q", u.TypeName())
	}
	if u.Data["json"] != 123.0 {
		t.Fatalf("data = %v", u.Data)
	}
	if Describe(u) == "" {
		t.Fatal("unknown error must describe itself")
	}
}

func TestCauseAs(t *testing.T) {
	syntax := &programError{Record: New("inner")}
	wrapped := fmt.Errorf("wrap: %w", syntax)

	e := New("outer", WithCause(wrapped))
	got, ok := CauseAs[*programError](e)
	if !ok || got != syntax {
		t.Fatal("CauseAs must find a wrapped error variant")
	}

	n := New("n", WithCause(123))
	if v, ok := CauseAs[int](n); !ok || v != 123 {
		t.Fatalf("CauseAs[int] = %v, %v", v, ok)
	}
	if _, ok := CauseAs[string](n); ok {
		t.Fatal("CauseAs[string] must not match an int cause")
	}
	if _, ok := CauseAs[string](New("x", WithCause(errors.New("e")))); ok {
		t.Fatal("CauseAs[string] must not match an error cause")
	}
}
