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

package wire

import (
	"errors"
	"fmt"
	"time"
)

// Envelope keys.
const (
	KeyType = "type"
	KeyData = "data"
)

// Payload fields.
const (
	FieldMessage   = "message"
	FieldTimestamp = "timestamp"
	FieldData      = "data"
	FieldCause     = "cause"
	FieldErrors    = "errors"
	FieldStack     = "stack"
)

// TimeLayout is the layout used for encoded timestamps. Parsing also accepts
// inputs without fractional seconds or with fewer digits.
const TimeLayout = time.RFC3339Nano

var (
	// ErrStructural marks a tagged node whose payload does not match the
	// shape its type requires.
	ErrStructural = errors.New("terrors: structural decode failure")
)

// DecodeError describes one structural decode failure.
type DecodeError struct {
	// Type is the identifier the routine decodes to.
	Type string
	// Field is the offending payload field, or "" for envelope problems.
	Field string
	// Reason is a short description, e.g. "must be a string".
	Reason string
}

// Error implements the built-in error interface.
func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("terrors: cannot decode to %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("terrors: cannot decode to %s: data.%s %s", e.Type, e.Field, e.Reason)
}

// Unwrap returns ErrStructural.
func (e *DecodeError) Unwrap() error { return ErrStructural }

// Failf builds a *DecodeError for field of type typ.
func Failf(typ, field, format string, args ...any) error {
	return &DecodeError{Type: typ, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsStructural reports whether err is a structural decode failure.
func IsStructural(err error) bool {
	return errors.Is(err, ErrStructural)
}
