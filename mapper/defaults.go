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

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/foreign"
)

// defaultHTTP maps the built-in type identifiers to HTTP statuses.
// Application variants have no default and resolve through namespace
// rules or the fallback.
var defaultHTTP = map[string]int{
	terrors.TypeRecord:  http.StatusInternalServerError, // Base record carries no client-facing semantics.
	terrors.TypeUnknown: http.StatusInternalServerError, // Peer sent something we could not decode.

	string(foreign.Generic):   http.StatusInternalServerError,
	string(foreign.Type):      http.StatusBadRequest, // Value of the wrong shape.
	string(foreign.Syntax):    http.StatusBadRequest, // Malformed input.
	string(foreign.URI):       http.StatusBadRequest,
	string(foreign.Range):     http.StatusBadRequest, // Value out of the allowed range.
	string(foreign.Reference): http.StatusInternalServerError,
	string(foreign.Eval):      http.StatusInternalServerError,
	string(foreign.Aggregate): http.StatusInternalServerError,
}

// defaultGRPC maps the built-in type identifiers to canonical gRPC codes.
var defaultGRPC = map[string]codes.Code{
	terrors.TypeRecord:  codes.Internal,
	terrors.TypeUnknown: codes.Unknown,

	string(foreign.Generic):   codes.Internal,
	string(foreign.Type):      codes.InvalidArgument,
	string(foreign.Syntax):    codes.InvalidArgument,
	string(foreign.URI):       codes.InvalidArgument,
	string(foreign.Range):     codes.OutOfRange,
	string(foreign.Reference): codes.Internal,
	string(foreign.Eval):      codes.Internal,
	string(foreign.Aggregate): codes.Internal,
}
