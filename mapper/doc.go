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

// Package mapper provides deterministic, immutable mappings from error type
// identifiers to transport-level statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses for an identifier in the following order:
//
//  1. exact override for the identifier;
//  2. longest-prefix-match over the dotted identifier namespace;
//  3. per-identifier default (library or user-adjusted);
//  4. fallback (500 / codes.Internal unless changed with WithFallback).
//
// Namespace rules are segment-aware: identifiers are split on ".", and "*"
// matches exactly one segment.
//
//	WithHTTPPrefix("billing", http.StatusPaymentRequired)
//	WithHTTPPrefix("billing.*.Declined", http.StatusConflict)
//
// # Library defaults
//
// The base record and UnknownError map to 500 (Internal and Unknown on
// gRPC). TypeError, SyntaxError and URIError map to 400 / InvalidArgument,
// RangeError to 400 / OutOfRange, and the remaining foreign kinds to
// 500 / Internal.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride("QuotaExceeded", http.StatusTooManyRequests),
//	    mapper.WithGRPCOverride("QuotaExceeded", int(codes.ResourceExhausted)),
//	)
//	if err != nil {
//	    // invalid identifier or prefix
//	}
//	st := m.Status(foreign.TypeOf(err))
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how an identifier was
// resolved, including the matched tier and, for prefixes, the pattern.
//
// All inputs are copied during New; a Mapper is safe to share across
// goroutines.
package mapper
