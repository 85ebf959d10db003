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
	"bytes"
	"encoding"
	"errors"
)

// Kind is the canonical identifier of a foreign error kind.
//
// It is a separate type (not just string) so that callers can tell a
// validated kind from an arbitrary document "type" value.
type Kind string

const (
	// Generic is a plain error with no more specific kind.
	Generic Kind = "Error"
	// Type reports a value of an unexpected type.
	Type Kind = "TypeError"
	// Syntax reports input that could not be parsed.
	Syntax Kind = "SyntaxError"
	// Reference reports an unresolvable reference.
	Reference Kind = "ReferenceError"
	// Eval reports a failed evaluation.
	Eval Kind = "EvalError"
	// Range reports a value outside its allowed range.
	Range Kind = "RangeError"
	// URI reports a malformed URI.
	URI Kind = "URIError"
	// Aggregate groups several errors under one message.
	Aggregate Kind = "AggregateError"
)

// kinds lists every Kind in a stable order.
var kinds = []Kind{Generic, Type, Syntax, Reference, Eval, Range, URI, Aggregate}

var (
	// ErrKindInvalid is returned when a value is not a known foreign kind.
	ErrKindInvalid = errors.New("terrors: invalid foreign kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Kinds returns all foreign kinds in a stable order. The slice is a copy.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Parse validates s as a foreign kind. Unlike most identifiers in dirpx,
// kinds are matched exactly: "typeerror" is not "TypeError".
func Parse(s string) (Kind, error) {
	k := Kind(s)
	if err := Validate(k); err != nil {
		return "", err
	}
	return k, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate checks whether k is one of the known kinds.
func Validate(k Kind) error {
	for _, known := range kinds {
		if k == known {
			return nil
		}
	}
	return ErrKindInvalid
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
