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

// Package grpcx carries errors across gRPC as status details.
//
// The server interceptor maps a handler error to a status whose code comes
// from an apis.Mapper and whose details hold the encoded document as a
// google.protobuf.Struct. The client interceptor revives that document.
package grpcx

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/apis"
	"dirpx.dev/terrors/codec"
	"dirpx.dev/terrors/foreign"
	"dirpx.dev/terrors/internal/pbdoc"
	"dirpx.dev/terrors/mapper"
)

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := mapper.New()
	if err != nil {
		panic(err)
	}
	return m
})

// RemoteError is an error revived from a gRPC status. It behaves as the
// revived error and still reports the status it arrived with.
type RemoteError struct {
	terrors.Typed
	status *gstatus.Status
}

// GRPCStatus lets status.FromError and status.Code see the received status.
func (e *RemoteError) GRPCStatus() *gstatus.Status { return e.status }

func (e *RemoteError) Unwrap() error { return e.Typed }

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors into statuses carrying the encoded document.
//
// Errors that already carry a gRPC status are returned as-is. A nil m uses
// the mapper defaults and a nil enc the codec defaults. If the document
// cannot be encoded or attached, the bare status is returned.
func UnaryServerInterceptor(m apis.Mapper, enc *codec.Encoder) grpc.UnaryServerInterceptor {
	if m == nil {
		m = defaultMapper()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, Status(m, enc, err).Err()
	}
}

// Status builds the gRPC status for err.
func Status(m apis.Mapper, enc *codec.Encoder, err error) *gstatus.Status {
	if st, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
		return st.GRPCStatus()
	}
	if m == nil {
		m = defaultMapper()
	}
	base := gstatus.New(m.GRPCStatus(foreign.TypeOf(err)), err.Error())

	doc, encErr := pbdoc.Encode(enc, err)
	if encErr != nil {
		return base
	}
	with, detErr := base.WithDetails(doc)
	if detErr != nil {
		return base
	}
	return with
}

// ExtractDocument pulls the encoded document out of a gRPC error, if present.
func ExtractDocument(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Proto().GetDetails() {
		if s, ok := unpack(d); ok {
			return s, true
		}
	}
	return nil, false
}

func unpack(d *anypb.Any) (*structpb.Struct, bool) {
	if !d.MessageIs((*structpb.Struct)(nil)) {
		return nil, false
	}
	s := new(structpb.Struct)
	if err := d.UnmarshalTo(s); err != nil {
		return nil, false
	}
	return s, true
}

// FromError revives the error carried by a gRPC error. Errors without a
// document, or whose document fails to decode, are returned unchanged.
// A nil dec uses the default registry.
func FromError(err error, dec *codec.Decoder) error {
	doc, ok := ExtractDocument(err)
	if !ok {
		return err
	}
	v, derr := pbdoc.Decode(dec, doc)
	if derr != nil {
		return err
	}
	st, _ := gstatus.FromError(err)
	return &RemoteError{Typed: codec.AsError(v), status: st}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that revives
// errors sent by UnaryServerInterceptor.
func UnaryClientInterceptor(dec *codec.Decoder) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return FromError(invoker(ctx, method, req, reply, cc, opts...), dec)
	}
}
