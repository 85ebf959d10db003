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

package codec

import (
	"encoding/json"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/foreign"
	"dirpx.dev/terrors/wire"
)

// Encoder turns values into tagged documents. The zero value is ready to
// use; an Encoder is safe for concurrent use.
type Encoder struct {
	prefix string
	indent string
}

// NewEncoder returns an Encoder configured by opts. WithRegistry has no
// effect on encoding.
func NewEncoder(opts ...Option) *Encoder {
	c := newConfig(opts)
	return &Encoder{prefix: c.prefix, indent: c.indent}
}

// Document encodes v into a document made of maps, slices and scalars.
// Caller-owned maps and slices are copied, never modified. The only failure
// is ErrDepth.
func (e *Encoder) Document(v any) (any, error) {
	return e.walk(v, 0)
}

// Marshal encodes v and renders it as JSON. Object keys are sorted, so the
// output is deterministic.
func (e *Encoder) Marshal(v any) ([]byte, error) {
	doc, err := e.Document(v)
	if err != nil {
		return nil, err
	}
	if e.indent != "" || e.prefix != "" {
		return json.MarshalIndent(doc, e.prefix, e.indent)
	}
	return json.Marshal(doc)
}

func (e *Encoder) walk(v any, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	switch t := replace(v).(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, c := range t {
			nv, err := e.walk(c, depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, c := range t {
			nv, err := e.walk(c, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case []error:
		out := make([]any, len(t))
		for i, c := range t {
			nv, err := e.walk(c, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return t, nil
	}
}

// replace is the per-node transform. Its result still holds raw children
// (causes, aggregate elements, data bags); walk visits them next.
func replace(v any) any {
	switch t := v.(type) {
	case terrors.Recorder:
		if t.Base() == nil {
			return nil
		}
		return encodeRecord(t)
	case error:
		switch f := foreign.Of(t).(type) {
		case *foreign.AggregateError:
			return encodeAggregate(f)
		case *foreign.Error:
			// Typed errors outside both hierarchies keep their own tag.
			typ := f.TypeName()
			if tt, ok := t.(terrors.Typed); ok {
				typ = tt.TypeName()
			}
			return node(typ, withStack(map[string]any{
				wire.FieldMessage: f.Message,
			}, f.Stack))
		}
	}
	return v
}

func encodeRecord(r terrors.Recorder) map[string]any {
	b := r.Base()
	data := b.Data
	if data == nil {
		data = map[string]any{}
	}
	payload := withStack(map[string]any{
		wire.FieldMessage:   b.Message,
		wire.FieldTimestamp: b.Timestamp.UTC().Format(wire.TimeLayout),
		wire.FieldData:      data,
		wire.FieldCause:     b.Cause,
	}, b.Stack)
	if fe, ok := r.(terrors.FieldEncoder); ok {
		fe.EncodeFields(payload)
	}
	return node(r.TypeName(), payload)
}

func encodeAggregate(a *foreign.AggregateError) map[string]any {
	errs := a.Errors
	if errs == nil {
		errs = []any{}
	}
	return node(a.TypeName(), withStack(map[string]any{
		wire.FieldErrors:  errs,
		wire.FieldMessage: a.Message,
	}, a.Stack))
}

func withStack(payload map[string]any, stack string) map[string]any {
	if stack != "" {
		payload[wire.FieldStack] = stack
	}
	return payload
}

func node(typ string, payload map[string]any) map[string]any {
	return wire.Node{Type: typ, Data: payload}.Doc()
}
