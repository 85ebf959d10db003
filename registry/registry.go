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
	"errors"
	"fmt"
	"regexp"
	"sort"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/foreign"
	"dirpx.dev/terrors/wire"
)

// DecodeFunc reconstructs a typed error from a tagged node. Structural
// problems must be reported with an error matching wire.ErrStructural.
type DecodeFunc func(n wire.Node) (terrors.Typed, error)

// BuildFunc wraps a decoded base record into a concrete variant.
type BuildFunc func(r *terrors.Record) terrors.Recorder

// Source tells which sub-registry an entry belongs to.
type Source int

const (
	// SourceNone is reported for unregistered identifiers.
	SourceNone Source = iota
	// SourceApplication marks record variants.
	SourceApplication
	// SourceForeign marks foreign kinds.
	SourceForeign
)

// String returns a lower-case name for s.
func (s Source) String() string {
	switch s {
	case SourceApplication:
		return "application"
	case SourceForeign:
		return "foreign"
	default:
		return "none"
	}
}

// Entry is one registered type.
type Entry struct {
	ID     string
	Source Source
	Decode DecodeFunc
}

// MaxIDLength bounds the length of a type identifier.
const MaxIDLength = 128

const (
	// idFmt accepts Go- and JS-style type names, optionally dot-qualified
	// ("billing.QuotaExceeded").
	//
	// IMPORTANT: the quantifier is tied to MaxIDLength.
	idFmt = `^[A-Za-z_][A-Za-z0-9_.]{0,127}$`
)

var idRe = regexp.MustCompile(idFmt)

var (
	// ErrInvalidID is returned for identifiers that do not match idFmt.
	ErrInvalidID = errors.New("terrors: invalid type identifier")
	// ErrDuplicate is returned when an identifier is registered twice.
	ErrDuplicate = errors.New("terrors: duplicate type identifier")
	// ErrNilDecoder is returned when a nil routine or constructor is registered.
	ErrNilDecoder = errors.New("terrors: nil decoder")
	// ErrFrozen is returned when registering with the process-wide
	// registry after Default was called.
	ErrFrozen = errors.New("terrors: default registry is frozen")
)

// ValidateID checks that id is a usable type identifier.
func ValidateID(id string) error {
	if !idRe.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Registry is an immutable snapshot of both sub-registries. Lookups are
// safe for concurrent use.
type Registry struct {
	app     map[string]Entry
	foreign map[string]Entry
}

// New builds a Registry.
//
// Build process overview:
//
//  1. Seed the application sub-registry with terrors.Record and
//     terrors.UnknownError, and the foreign sub-registry with every kind.
//  2. Apply options in order.
//  3. Validate identifiers and reject duplicates. Seeded application
//     entries may be replaced once.
//  4. Freeze the result into fresh maps.
func New(opts ...Option) (*Registry, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	app := make(map[string]Entry, len(defaultApplication)+len(b.types))
	for id, fn := range defaultApplication {
		app[id] = Entry{ID: id, Source: SourceApplication, Decode: fn}
	}
	replaced := make(map[string]bool)
	for _, t := range b.types {
		if err := ValidateID(t.id); err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		if t.decode == nil {
			return nil, fmt.Errorf("registry: %w for %q", ErrNilDecoder, t.id)
		}
		if _, exists := app[t.id]; exists {
			_, seeded := defaultApplication[t.id]
			if !seeded || replaced[t.id] {
				return nil, fmt.Errorf("registry: %w: %q", ErrDuplicate, t.id)
			}
			replaced[t.id] = true
		}
		app[t.id] = Entry{ID: t.id, Source: SourceApplication, Decode: t.decode}
	}

	fr := make(map[string]Entry, len(defaultForeign))
	for k, fn := range defaultForeign {
		if b.without[k] {
			continue
		}
		fr[string(k)] = Entry{ID: string(k), Source: SourceForeign, Decode: fn}
	}

	return &Registry{app: app, foreign: fr}, nil
}

// Lookup resolves id, consulting the application sub-registry first.
func (r *Registry) Lookup(id string) (Entry, bool) {
	if e, ok := r.app[id]; ok {
		return e, true
	}
	if e, ok := r.foreign[id]; ok {
		return e, true
	}
	return Entry{}, false
}

// Types returns the identifiers registered under src, sorted.
func (r *Registry) Types(src Source) []string {
	var m map[string]Entry
	switch src {
	case SourceApplication:
		m = r.app
	case SourceForeign:
		m = r.foreign
	default:
		return nil
	}
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Explain describes how id resolves, for diagnostics.
//
// Example output:
//
//	type="RangeError" source=foreign shadowed=false
//	type="Nope" source=none
//
// An application entry that hides a foreign kind of the same name is
// reported with shadowed=true.
func (r *Registry) Explain(id string) string {
	e, ok := r.Lookup(id)
	if !ok {
		return fmt.Sprintf("type=%q source=%s", id, SourceNone)
	}
	_, inForeign := r.foreign[id]
	shadowed := e.Source == SourceApplication && inForeign
	return fmt.Sprintf("type=%q source=%s shadowed=%t", id, e.Source, shadowed)
}

func init() {
	// The seeded kinds must cover the whole foreign enumeration.
	for _, k := range foreign.Kinds() {
		if _, ok := defaultForeign[k]; !ok {
			panic("registry: no foreign decoder for " + string(k))
		}
	}
}
