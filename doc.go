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

// Package terrors defines the structured error record used across dirpx and
// the contracts its type-tagged codec relies on.
//
// A Record carries a message, an open data bag, a causation reference, a
// weakly monotonic creation timestamp and a captured stack trace. Concrete
// error variants embed *Record and declare their own type identifier:
//
//	type QuotaExceeded struct{ *terrors.Record }
//
//	func (*QuotaExceeded) TypeName() string { return "QuotaExceeded" }
//
// The identifier is what package codec writes into the "type" field of an
// encoded document and what package registry resolves back to a decode
// routine, so a tree of records, foreign errors and arbitrary values can be
// shipped as JSON and revived with type fidelity:
//
//	b, _ := codec.NewEncoder().Marshal(err)
//	v, _ := codec.NewDecoder().Unmarshal(b) // *terrors.Record, ...
//
// Records interoperate with the standard library: Unwrap exposes the cause
// when it is an error, so errors.Is and errors.As walk the chain.
package terrors
