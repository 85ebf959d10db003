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

// Package foreign models errors that are not part of the terrors record
// hierarchy: the fixed set of platform-native error kinds a document may
// carry, and plain Go errors classified into those kinds.
//
// The kinds are:
//
//   - Error: generic error;
//   - TypeError: a value had an unexpected type;
//   - SyntaxError: input could not be parsed;
//   - ReferenceError: an unresolvable reference;
//   - EvalError: evaluation failed;
//   - RangeError: a value was outside its allowed range;
//   - URIError: a URI was malformed;
//   - AggregateError: a group of errors reported together.
//
// Kind names are case-sensitive and are used verbatim as document type
// identifiers.
package foreign
