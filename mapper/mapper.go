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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/terrors/apis"
	"dirpx.dev/terrors/mapper/internal/segmenttrie"
	"dirpx.dev/terrors/registry"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, namespace rules).
//  3. Validate every identifier against the registry grammar.
//  4. Compile namespace rules into segment tries.
//  5. Freeze all maps into fresh allocations.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	for _, set := range []map[string]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for id := range set {
			if err := registry.ValidateID(id); err != nil {
				return nil, fmt.Errorf("mapper: %w", err)
			}
		}
	}

	httpTrie, err := compile(b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP %w", err)
	}
	grpcTrie, err := compile(b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC %w", err)
	}

	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// compile builds a trie from rules; it returns nil when there are none.
func compile[T any](rules []prefixRule, conv func(int) T) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		if err := t.Insert(r.prefix, conv(r.val)); err != nil {
			return nil, fmt.Errorf("prefix %q: %w", r.prefix, err)
		}
	}
	return t, nil
}

// mapper combines per-identifier overrides, namespace prefix tries and
// per-identifier defaults. It is safe for concurrent use once constructed.
type mapper struct {
	httpDefault map[string]int
	grpcDefault map[string]codes.Code

	// httpOverride and grpcOverride win over every other rule.
	httpOverride map[string]int
	grpcOverride map[string]codes.Code

	// httpTrie and grpcTrie resolve dotted identifiers by namespace; nil when
	// no rules were given.
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Rule sources reported by Explain.
const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// resolve applies the precedence shared by HTTP and gRPC:
// override, namespace prefix, default, fallback.
func resolve[T any](id string, override, def map[string]T, trie *segmenttrie.Trie[T], fallback T) (v T, source, pattern string) {
	if v, ok := override[id]; ok {
		return v, sourceOverride, ""
	}
	if v, ok, pat := trie.MatchWithPattern(id); ok {
		return v, sourcePrefix, pat
	}
	if v, ok := def[id]; ok {
		return v, sourceDefault, ""
	}
	return fallback, sourceFallback, ""
}

// HTTPStatus resolves an HTTP status for the given type identifier.
func (m *mapper) HTTPStatus(id string) int {
	v, _, _ := resolve(id, m.httpOverride, m.httpDefault, m.httpTrie, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status for the given type identifier.
func (m *mapper) GRPCStatus(id string) codes.Code {
	v, _, _ := resolve(id, m.grpcOverride, m.grpcDefault, m.grpcTrie, m.fallbackGRPC)
	return v
}

// Status resolves both HTTP and gRPC for one identifier.
func (m *mapper) Status(id string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(id),
		GRPC: m.GRPCStatus(id),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for an identifier.
//
//	type="billing.QuotaExceeded"
//	http: source=prefix pattern="billing" -> 402
//	grpc: source=fallback -> INTERNAL(13)
//
// source is one of override, prefix, default, fallback. The output is meant
// for people, not for parsing.
func (m *mapper) Explain(id string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "type=%q\n", id)

	hv, hsrc, hpat := resolve(id, m.httpOverride, m.httpDefault, m.httpTrie, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: source=%s%s -> %d\n", hsrc, patternAttr(hpat), hv)

	gv, gsrc, gpat := resolve(id, m.grpcOverride, m.grpcDefault, m.grpcTrie, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", gsrc, patternAttr(gpat), strings.ToUpper(gv.String()), int(gv))

	return b.String()
}

func patternAttr(p string) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", p)
}
