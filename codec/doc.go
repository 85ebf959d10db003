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

// Package codec converts trees of errors to tagged JSON documents and back.
//
// # Encoding
//
// The Encoder visits every node of a value, root first. Each node goes
// through a per-node transform, and the transform's result is then walked
// in turn:
//
//   - terrors.Recorder   -> {type, data:{message, timestamp, data, cause, stack}}
//   - AggregateError     -> {type:"AggregateError", data:{errors, message, stack}}
//   - other errors       -> {type:<kind>, data:{message, stack}}
//   - map[string]any, []any, []error are walked element by element;
//   - anything else is left untouched.
//
// Causes, aggregate elements and values nested in data bags are therefore
// encoded wherever they appear, not only at the root.
//
// # Decoding
//
// The Decoder revives a parsed document bottom-up: children first, then
// their parent, once per node. For each node it chooses between three
// outcomes:
//
//  1. reconstructed: the node looks tagged, its type is registered and the
//     payload validates;
//  2. pass-through: the node is not tagged, its type is unregistered, or the
//     payload fails structural validation (forwards compatibility: a
//     lookalike is kept as data for debugging);
//  3. unknown: the root is not tagged-looking at all and is wrapped as
//     terrors.UnknownError with the value under Data["json"].
//
// A root that looks tagged but is unregistered or invalid is passed through
// like any nested node; only never-tagged roots are wrapped.
//
// Errors other than structural failures raised by a decode routine are
// defects and are returned from Revive instead of being masked.
package codec
