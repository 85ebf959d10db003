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

// Package pbdoc carries encoded error documents inside protobuf
// well-known types for the transport adapters.
package pbdoc

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/terrors/codec"
)

// ErrNotObject is returned when a value does not encode to a JSON object.
var ErrNotObject = errors.New("pbdoc: document is not an object")

// Encode turns v into its encoded document and stores it in a Struct.
// The document goes through JSON first so that arbitrary Go values in the
// data bag end up as the JSON primitives structpb accepts.
func Encode(enc *codec.Encoder, v any) (*structpb.Struct, error) {
	if enc == nil {
		enc = codec.NewEncoder()
	}
	b, err := enc.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, b)
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("pbdoc: %w", err)
	}
	return s, nil
}

// Decode revives the document held by s.
func Decode(dec *codec.Decoder, s *structpb.Struct) (any, error) {
	if dec == nil {
		dec = codec.NewDecoder()
	}
	return dec.Revive(s.AsMap())
}
