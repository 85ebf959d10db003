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

package registry

import "dirpx.dev/terrors/foreign"

type typeRule struct {
	// id is the raw identifier; it is validated when the snapshot is built.
	id string
	// decode is the routine registered for id.
	decode DecodeFunc
}

type builder struct {
	// types holds application registrations in option order.
	types []typeRule
	// without lists foreign kinds excluded from the snapshot.
	without map[foreign.Kind]bool
}

// newBuilder creates an empty builder.
func newBuilder() *builder {
	return &builder{without: make(map[foreign.Kind]bool)}
}
