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

package codec

import (
	"errors"

	"dirpx.dev/terrors/registry"
)

// MaxDepth bounds the nesting depth the encoder and decoder walk. It mirrors
// the point at which encoding/json starts reporting cycles.
const MaxDepth = 1000

var (
	// ErrDepth is returned when a value nests deeper than MaxDepth, which in
	// practice means a causation cycle.
	ErrDepth = errors.New("terrors: value nests too deeply (cycle?)")
	// ErrUnregistered is returned by DecodeAs for an unknown identifier.
	ErrUnregistered = errors.New("terrors: unregistered type identifier")
)

// Option configures an Encoder or a Decoder.
type Option func(*config)

type config struct {
	reg    *registry.Registry
	prefix string
	indent string
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithRegistry sets the registry used by a Decoder. Without it the
// process-wide registry.Default is used.
func WithRegistry(r *registry.Registry) Option {
	return func(c *config) { c.reg = r }
}

// WithIndent makes Encoder.Marshal produce indented JSON, as
// json.MarshalIndent does.
func WithIndent(prefix, indent string) Option {
	return func(c *config) {
		c.prefix = prefix
		c.indent = indent
	}
}
