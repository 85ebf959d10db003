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

// Package registry resolves document type identifiers to decode routines.
//
// # Overview
//
// A Registry is made of two sub-registries:
//
//  1. the application sub-registry: terrors.Record, terrors.UnknownError and
//     every variant the application registers;
//  2. the foreign sub-registry: the fixed set of foreign kinds from package
//     foreign (Error, TypeError, ..., AggregateError).
//
// Lookup consults the application sub-registry first, then the foreign one;
// the first match wins and no match means "unregistered".
//
// # Decode routines
//
// A DecodeFunc turns a tagged node into a typed error. Malformed payloads
// must be reported with a structural failure (see package wire); the codec
// then treats the node as plain data. Any other error is a defect and is
// propagated to the caller.
//
// Most variants only embed *terrors.Record and can use the base routine:
//
//	registry.WithRecord("QuotaExceeded", func(r *terrors.Record) terrors.Recorder {
//	    return &QuotaExceeded{Record: r}
//	})
//
// Variants with extra fields register their own routine with WithType.
//
// # Building a registry
//
// A Registry is an immutable snapshot, safe for concurrent use:
//
//	reg, err := registry.New(
//	    registry.WithRecord("QuotaExceeded", newQuotaExceeded),
//	    registry.WithType("Specific", decodeSpecific),
//	)
//
// # Process-wide default
//
// Packages that own error variants usually register them from init with
// RegisterRecord or MustRegister. Default freezes the collected entries on
// first use; registering afterwards fails with ErrFrozen.
package registry
