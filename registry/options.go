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

// Option configures the Registry at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Registry.
type Option func(*builder)

// WithType registers a custom decode routine for id in the application
// sub-registry. The routine should reject nodes tagged with another
// identifier (wire.Node.Expect) so it can be used for type-specific
// reconstruction.
func WithType(id string, fn DecodeFunc) Option {
	return func(b *builder) { b.types = append(b.types, typeRule{id, fn}) }
}

// WithRecord registers a record variant decoded with the base routine and
// wrapped by build.
func WithRecord(id string, build BuildFunc) Option {
	return func(b *builder) {
		var fn DecodeFunc
		if build != nil {
			fn = RecordDecoder(id, build)
		}
		b.types = append(b.types, typeRule{id, fn})
	}
}

// WithoutForeign removes kind k from the foreign sub-registry; documents
// tagged with it then decode as plain data.
func WithoutForeign(k foreign.Kind) Option {
	return func(b *builder) { b.without[k] = true }
}
