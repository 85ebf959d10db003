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

package foreign

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"dirpx.dev/terrors/internal/stack"
)

// Error is a foreign error of a single, non-aggregate kind.
type Error struct {
	Kind    Kind
	Message string
	// Stack is the opaque trace of the error site. Errors built by Of from
	// plain Go errors have none.
	Stack string
}

// New constructs an Error of kind k, capturing the caller's stack.
// An unknown k is recorded as Generic.
func New(k Kind, msg string) *Error {
	if Validate(k) != nil || k == Aggregate {
		k = Generic
	}
	return &Error{Kind: k, Message: msg, Stack: stack.Capture(1)}
}

// Error implements the built-in error interface using the "<kind>: <message>"
// form; a generic error prints its message alone.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == Generic || e.Kind == "" {
		return e.Message
	}
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// TypeName returns the kind as the document type identifier.
func (e *Error) TypeName() string {
	if e.Kind == "" {
		return string(Generic)
	}
	return string(e.Kind)
}

// AggregateError groups several values under one message. Elements are
// usually errors, but a decoded document may hold arbitrary values there
// (for example nodes that looked tagged but did not validate).
type AggregateError struct {
	Errors  []any
	Message string
	Stack   string
}

// NewAggregate constructs an AggregateError, capturing the caller's stack.
// errs is held by reference.
func NewAggregate(errs []any, msg string) *AggregateError {
	if errs == nil {
		errs = []any{}
	}
	return &AggregateError{Errors: errs, Message: msg, Stack: stack.Capture(1)}
}

// Error implements the built-in error interface.
func (e *AggregateError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(Aggregate)
	}
	return string(Aggregate) + ": " + e.Message
}

// TypeName implements the codec's type-tagging contract.
func (e *AggregateError) TypeName() string { return string(Aggregate) }

// Unwrap returns the elements that are errors, so errors.Is/As can search
// the group.
func (e *AggregateError) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, len(e.Errors))
	for _, v := range e.Errors {
		if err, ok := v.(error); ok {
			out = append(out, err)
		}
	}
	return out
}

// Of converts a plain Go error into its foreign representation.
//
//   - *Error and *AggregateError are returned unchanged;
//   - an error with Unwrap() []error (errors.Join, fmt.Errorf with several
//     %w verbs) becomes an *AggregateError holding the joined errors;
//   - anything else becomes an *Error of the kind reported by Classify.
//
// Of returns nil for a nil err.
func Of(err error) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *Error, *AggregateError:
		return e
	case interface{ Unwrap() []error }:
		joined := e.Unwrap()
		errs := make([]any, 0, len(joined))
		for _, j := range joined {
			errs = append(errs, j)
		}
		return &AggregateError{Errors: errs, Message: err.Error()}
	default:
		return &Error{Kind: Classify(err), Message: err.Error()}
	}
}

// Classify maps a Go error onto the closest foreign kind by inspecting its
// chain:
//
//	*json.SyntaxError, strconv.ErrSyntax       -> SyntaxError
//	*json.UnmarshalTypeError                    -> TypeError
//	strconv.ErrRange                            -> RangeError
//	*url.Error, url.EscapeError, InvalidHostError -> URIError
//	Unwrap() []error                            -> AggregateError
//	anything else                               -> Error
func Classify(err error) Kind {
	if err == nil {
		return Generic
	}
	if fe, ok := err.(*Error); ok {
		return Kind(fe.TypeName())
	}
	if _, ok := err.(interface{ Unwrap() []error }); ok {
		return Aggregate
	}

	var (
		jsonSyntax *json.SyntaxError
		jsonType   *json.UnmarshalTypeError
		urlErr     *url.Error
		escapeErr  url.EscapeError
		hostErr    url.InvalidHostError
	)
	switch {
	case errors.As(err, &jsonSyntax), errors.Is(err, strconv.ErrSyntax):
		return Syntax
	case errors.As(err, &jsonType):
		return Type
	case errors.Is(err, strconv.ErrRange):
		return Range
	case errors.As(err, &urlErr), errors.As(err, &escapeErr), errors.As(err, &hostErr):
		return URI
	}
	return Generic
}

// TypeOf reports the type identifier err would be encoded under: its own
// TypeName when it has one, otherwise the identifier of Of(err).
// TypeOf returns "" for a nil err.
func TypeOf(err error) string {
	if err == nil {
		return ""
	}
	if t, ok := err.(interface{ TypeName() string }); ok {
		return t.TypeName()
	}
	return Of(err).(interface{ TypeName() string }).TypeName()
}
