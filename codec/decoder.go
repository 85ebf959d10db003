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
	"fmt"
	"io"
	"sort"
	"strconv"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/registry"
	"dirpx.dev/terrors/wire"
)

// UnknownMessage is the message of the UnknownError wrapping a root that is
// not a tagged error.
const UnknownMessage = "Unknown error JSON"

// Decoder revives documents into errors using a registry. A Decoder is
// safe for concurrent use.
type Decoder struct {
	reg *registry.Registry
}

// NewDecoder returns a Decoder. Without WithRegistry it uses
// registry.Default, which freezes the process-wide registry.
func NewDecoder(opts ...Option) *Decoder {
	c := newConfig(opts)
	if c.reg == nil {
		c.reg = registry.Default()
	}
	return &Decoder{reg: c.reg}
}

// Unmarshal parses JSON and revives the result. Only malformed JSON and
// decode defects are reported as errors.
func (d *Decoder) Unmarshal(b []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return d.Revive(doc)
}

// Read parses one JSON value from r and revives it.
func (d *Decoder) Read(r io.Reader) (any, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return d.Revive(doc)
}

// Revive walks a parsed document bottom-up and reconstructs every node it
// recognises. The result at the root is a typed error, an UnknownError, or,
// for a tagged-looking root that did not validate, the root value itself.
//
// doc is not modified; containers are copied as they are walked.
func (d *Decoder) Revive(doc any) (any, error) {
	v, err := d.walk(doc, 0)
	if err != nil {
		return nil, err
	}
	return d.revive(v, true)
}

// DecodeAs reconstructs doc strictly as type id. Nested nodes are revived
// as usual, but the root must be tagged id and must validate: a mismatch is
// returned as a structural failure rather than passed through.
func (d *Decoder) DecodeAs(id string, doc any) (terrors.Typed, error) {
	e, ok := d.reg.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnregistered, id)
	}
	v, err := d.walk(doc, 0)
	if err != nil {
		return nil, err
	}
	n, ok := wire.AsNode(v)
	if !ok {
		return nil, &wire.DecodeError{Type: id, Reason: "document is not tagged"}
	}
	return e.Decode(n)
}

// walk revives the children of v, deepest first. v itself is left to the
// caller so that the root can be treated differently.
func (d *Decoder) walk(v any, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	switch t := v.(type) {
	case map[string]any:
		// Sorted keys keep defect reporting deterministic.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(t))
		for _, k := range keys {
			nv, err := d.child(t[k], depth)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, c := range t {
			nv, err := d.child(c, depth)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", strconv.Itoa(i), err)
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}

func (d *Decoder) child(v any, depth int) (any, error) {
	w, err := d.walk(v, depth+1)
	if err != nil {
		return nil, err
	}
	return d.revive(w, false)
}

// revive applies the per-node policy to a node whose children are already
// revived.
func (d *Decoder) revive(v any, root bool) (any, error) {
	n, ok := wire.AsNode(v)
	if !ok {
		if root {
			return terrors.NewUnknown(UnknownMessage,
				terrors.WithData(map[string]any{"json": v}),
			), nil
		}
		return v, nil
	}

	e, ok := d.reg.Lookup(n.Type)
	if !ok {
		return v, nil
	}
	out, err := e.Decode(n)
	switch {
	case wire.IsStructural(err):
		return v, nil
	case err != nil:
		return nil, fmt.Errorf("codec: decoding %q: %w", n.Type, err)
	case out == nil:
		return nil, fmt.Errorf("codec: decoder for %q returned nil", n.Type)
	}
	return out, nil
}
