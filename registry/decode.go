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

package registry

import (
	"fmt"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/foreign"
	"dirpx.dev/terrors/wire"
)

// RecordDecoder returns the base decode routine for record variant id.
//
// The node must be tagged id and its payload must carry:
//
//   - message: string;
//   - timestamp: RFC 3339 time string;
//   - data: object;
//   - cause: any value, but the key must be present;
//   - stack: string, when present.
//
// Any violation is a structural failure. On success the record is built
// with (message, {timestamp, data, cause}), the encoded stack is
// reattached when the payload has one, and build wraps it into the variant.
// A nil variant from build is a defect, not malformed input.
func RecordDecoder(id string, build BuildFunc) DecodeFunc {
	return func(n wire.Node) (terrors.Typed, error) {
		if err := n.Expect(id); err != nil {
			return nil, err
		}
		msg, err := n.String(wire.FieldMessage)
		if err != nil {
			return nil, err
		}
		ts, err := n.Time(wire.FieldTimestamp)
		if err != nil {
			return nil, err
		}
		data, err := n.Object(wire.FieldData)
		if err != nil {
			return nil, err
		}
		if !n.Has(wire.FieldCause) {
			return nil, wire.Failf(id, wire.FieldCause, "is required")
		}
		st, err := n.OptionalString(wire.FieldStack)
		if err != nil {
			return nil, err
		}

		rec := terrors.New(msg,
			terrors.WithData(data),
			terrors.WithCause(n.Data[wire.FieldCause]),
		)
		rec.Timestamp = ts
		if n.Has(wire.FieldStack) {
			rec.Stack = st
		}

		v := build(rec)
		if v == nil {
			return nil, fmt.Errorf("registry: constructor for %q returned nil", id)
		}
		return v, nil
	}
}

// foreignDecoder returns the decode routine for foreign kind k.
//
// AggregateError requires an errors array and a string message; every
// other kind requires a string message. stack must be a string when
// present.
func foreignDecoder(k foreign.Kind) DecodeFunc {
	id := string(k)
	return func(n wire.Node) (terrors.Typed, error) {
		if err := n.Expect(id); err != nil {
			return nil, err
		}
		var errs []any
		if k == foreign.Aggregate {
			a, err := n.Array(wire.FieldErrors)
			if err != nil {
				return nil, err
			}
			errs = a
		}
		msg, err := n.String(wire.FieldMessage)
		if err != nil {
			return nil, err
		}
		st, err := n.OptionalString(wire.FieldStack)
		if err != nil {
			return nil, err
		}

		if k == foreign.Aggregate {
			return &foreign.AggregateError{Errors: errs, Message: msg, Stack: st}, nil
		}
		return &foreign.Error{Kind: k, Message: msg, Stack: st}, nil
	}
}
