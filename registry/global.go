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

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// global collects process-wide registrations until Default freezes them.
var global struct {
	mu    sync.Mutex
	types []typeRule
	seen  map[string]bool
	snap  atomic.Pointer[Registry]
}

// Register adds a decode routine for id to the process-wide registry.
// It is meant to be called from init functions.
func Register(id string, fn DecodeFunc) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w for %q", ErrNilDecoder, id)
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if global.snap.Load() != nil {
		return fmt.Errorf("%w: cannot register %q", ErrFrozen, id)
	}
	if global.seen[id] {
		return fmt.Errorf("%w: %q", ErrDuplicate, id)
	}
	if _, seeded := defaultApplication[id]; seeded {
		return fmt.Errorf("%w: %q is built in", ErrDuplicate, id)
	}
	if global.seen == nil {
		global.seen = make(map[string]bool)
	}
	global.seen[id] = true
	global.types = append(global.types, typeRule{id, fn})
	return nil
}

// RegisterRecord registers a record variant decoded with the base routine.
func RegisterRecord(id string, build BuildFunc) error {
	if build == nil {
		return fmt.Errorf("%w for %q", ErrNilDecoder, id)
	}
	return Register(id, RecordDecoder(id, build))
}

// MustRegister is the panic-on-error variant of Register.
func MustRegister(id string, fn DecodeFunc) {
	if err := Register(id, fn); err != nil {
		panic(err)
	}
}

// MustRegisterRecord is the panic-on-error variant of RegisterRecord.
func MustRegisterRecord(id string, build BuildFunc) {
	if err := RegisterRecord(id, build); err != nil {
		panic(err)
	}
}

// Default returns the process-wide registry, freezing it on first call.
// Subsequent calls return the same snapshot without locking.
func Default() *Registry {
	if r := global.snap.Load(); r != nil {
		return r
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if r := global.snap.Load(); r != nil {
		return r
	}
	opts := make([]Option, 0, len(global.types))
	for _, t := range global.types {
		opts = append(opts, WithType(t.id, t.decode))
	}
	r, err := New(opts...)
	if err != nil {
		// Register validates every entry, so this is unreachable.
		panic(err)
	}
	global.snap.Store(r)
	return r
}
