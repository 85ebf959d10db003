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

// Package httpx writes errors as encoded documents in HTTP responses and
// revives them on the client side.
package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/apis"
	"dirpx.dev/terrors/codec"
	"dirpx.dev/terrors/foreign"
	"dirpx.dev/terrors/internal/pbdoc"
	"dirpx.dev/terrors/mapper"
)

const (
	// ContentType is set on every error response.
	ContentType = "application/json"
	// TypeHeader carries the type identifier of the root error.
	TypeHeader = "X-Error-Type"
	// MaxBodySize bounds how much of a response Read consumes.
	MaxBodySize = 1 << 20
)

// ErrNoError is returned by Read for a response whose status is below 400.
var ErrNoError = errors.New("httpx: response is not an error")

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := mapper.New()
	if err != nil {
		panic(err)
	}
	return m
})

// Writer turns an error into an HTTP response: the status comes from the
// mapper, the body is the encoded document.
//
// No redaction is performed: everything in the error tree, stacks included,
// is exposed as-is.
type Writer struct {
	// Mapper resolves the status; nil means mapper defaults.
	Mapper apis.Mapper
	// Encoder renders the body; nil means codec defaults.
	Encoder *codec.Encoder
}

// Write sends err to rw. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	m := w.Mapper
	if m == nil {
		m = defaultMapper()
	}
	id := foreign.TypeOf(err)
	st := m.Status(id)

	doc, encErr := pbdoc.Encode(w.Encoder, err)
	if encErr != nil {
		// The tree cannot be encoded (e.g. a cycle); send its message alone.
		id = string(foreign.Generic)
		doc, _ = pbdoc.Encode(w.Encoder, &foreign.Error{Kind: foreign.Generic, Message: err.Error()})
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.Header().Set(TypeHeader, id)
	rw.WriteHeader(st.HTTP)

	b, _ := protojson.Marshal(doc)
	_, _ = rw.Write(b)
}

// Handle adapts fn into an http.Handler that writes any returned error.
func (w Writer) Handle(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}

// Read revives the error carried by an error response. It consumes up to
// MaxBodySize bytes of the body but does not close it. A body that is JSON
// but not a known document comes back as *terrors.UnknownError; a body that
// is not JSON at all is an error. A nil dec uses the default registry.
func Read(resp *http.Response, dec *codec.Decoder) (terrors.Typed, error) {
	if resp.StatusCode < http.StatusBadRequest {
		return nil, ErrNoError
	}
	if dec == nil {
		dec = codec.NewDecoder()
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("httpx: reading body: %w", err)
	}

	var s structpb.Struct
	if err := protojson.Unmarshal(body, &s); err == nil {
		v, err := pbdoc.Decode(dec, &s)
		if err != nil {
			return nil, err
		}
		return codec.AsError(v), nil
	}

	v, err := dec.Read(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("httpx: status %d: %w", resp.StatusCode, err)
	}
	return codec.AsError(v), nil
}
