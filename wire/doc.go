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

// Package wire defines the document shape exchanged by the terrors codec.
//
// Every encoded error is a tagged node:
//
//	{ "type": "<TypeIdentifier>",
//	  "data": {
//	    "message":   "<string>",
//	    "timestamp": "<RFC 3339>",        // records only
//	    "data":      { ... },             // records only
//	    "cause":     <encoded value>,     // records only
//	    "errors":    [ <encoded value> ], // AggregateError only
//	    "stack":     "<string>"           // optional
//	  } }
//
// Documents are plain Go values as produced by encoding/json: map[string]any,
// []any, string, float64, bool and nil.
//
// The package also owns the structural decode failure. Decode routines
// report malformed payloads with a *DecodeError, which matches
// ErrStructural under errors.Is; the decoder treats those as "not an error
// after all" and anything else as a defect.
package wire
