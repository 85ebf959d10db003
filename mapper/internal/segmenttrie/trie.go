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

// Package segmenttrie indexes dot-separated type identifier namespaces for
// longest-prefix matching.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated identifiers such as
// "billing.invoice.QuotaExceeded". Each node represents one segment; the
// wildcard "*" matches exactly one segment. A deeper match wins.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, set only when hasVal is true.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty,
// has empty segments, contains invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates a dot-separated prefix with val.
//
//	"billing"
//	"billing.invoice"
//	"billing.*.Declined"
//
// A prefix made only of "*" segments is rejected. Inserting the same prefix
// twice keeps the last value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, s := range segs {
		if s == "*" {
			continue
		}
		if !ValidSegment(s) {
			return ErrInvalidPrefix
		}
		allWild = false
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix matching id.
func (t *Trie[T]) Match(id string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(id)
	return v, ok
}

// MatchWithPattern is Match that also reports the matched prefix as inserted.
// An id with an invalid segment matches only up to that segment.
func (t *Trie[T]) MatchWithPattern(id string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := -1
	var bestNode *Trie[T]

	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best = depth
			bestNode = n
		}
		if off >= len(id) {
			return
		}
		end := strings.IndexByte(id[off:], '.')
		if end < 0 {
			end = len(id)
		} else {
			end += off
		}
		seg := id[off:end]
		if !ValidSegment(seg) {
			return
		}
		next := end + 1
		if c, ok := n.children[seg]; ok {
			dfs(c, next, depth+1)
		}
		if c, ok := n.children["*"]; ok {
			dfs(c, next, depth+1)
		}
	}
	dfs(t, 0, 0)

	if bestNode == nil {
		return zero, false, ""
	}
	return bestNode.val, true, bestNode.pattern
}

// ValidSegment reports whether seg matches [A-Za-z_][A-Za-z0-9_]*.
func ValidSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
