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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated namespace prefix (may contain "*").
	// It is validated when the trie is built.
	prefix string
	// val is the numeric transport status; gRPC values are converted to
	// codes.Code when the snapshot is frozen.
	val int
}

type builder struct {
	// httpDefaults holds per-identifier HTTP defaults, seeded from defaultHTTP.
	httpDefaults map[string]int
	// grpcDefaults holds per-identifier gRPC defaults as ints.
	grpcDefaults map[string]int

	// httpOverride holds exact per-identifier HTTP overrides.
	httpOverride map[string]int
	// grpcOverride holds exact per-identifier gRPC overrides as ints.
	grpcOverride map[string]int

	// httpPrefixes and grpcPrefixes hold namespace rules in insertion order.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// fallbacks used when nothing matches an identifier.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[string]int, len(defaultHTTP)),
		grpcDefaults: make(map[string]int, len(defaultGRPC)),

		httpOverride: make(map[string]int),
		grpcOverride: make(map[string]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
