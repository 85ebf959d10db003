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

import "google.golang.org/grpc/codes"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given type identifier.
func WithHTTPDefault(id string, http int) Option {
	return func(b *builder) { b.httpDefaults[id] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given type identifier.
func WithGRPCDefault(id string, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[id] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given type
// identifier. Overrides take precedence over namespace rules and defaults.
func WithHTTPOverride(id string, http int) Option {
	return func(b *builder) { b.httpOverride[id] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given type
// identifier. Overrides take precedence over namespace rules and defaults.
func WithGRPCOverride(id string, grpc int) Option {
	return func(b *builder) { b.grpcOverride[id] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule over dotted type
// identifiers. "billing" matches "billing.QuotaExceeded"; use "*" to match
// a single segment. A more specific prefix wins.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule over dotted type
// identifiers.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, grpc}) }
}

// WithFallback replaces the statuses used when no rule matches an
// identifier (500 / codes.Internal by default).
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
