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

package segmenttrie

import (
	"fmt"
	"testing"
)

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("billing", 402))
	must(t, tr.Insert("billing.invoice", 409))
	must(t, tr.Insert("auth.token.Expired", 401))

	tests := []struct {
		id      string
		want    int
		pattern string
	}{
		{"billing.QuotaExceeded", 402, "billing"},
		{"billing.invoice.Duplicate", 409, "billing.invoice"},
		{"billing.invoice", 409, "billing.invoice"},
		{"auth.token.Expired", 401, "auth.token.Expired"},
	}
	for _, tt := range tests {
		v, ok, p := tr.MatchWithPattern(tt.id)
		if !ok || v != tt.want || p != tt.pattern {
			t.Fatalf("MatchWithPattern(%q) = %v, %v, %q; want %v, true, %q", tt.id, v, ok, p, tt.want, tt.pattern)
		}
	}

	if _, ok := tr.Match("auth.token"); ok {
		t.Fatalf("a shorter id must not match a deeper rule")
	}
	if _, ok := tr.Match("ErrorRecord"); ok {
		t.Fatalf("unrelated id must not match")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("billing.*.Declined", 498))
	must(t, tr.Insert("billing.card.Declined", 402))

	if v, ok, p := tr.MatchWithPattern("billing.card.Declined"); !ok || v != 402 || p != "billing.card.Declined" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("billing.wire.Declined"); !ok || v != 498 || p != "billing.*.Declined" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("billing.Declined"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeperEvenIfExactBranchExists(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "a..b", "*", "*.*", "9lives", "a-b", "a."} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must fail", p)
		}
	}

	must(t, tr.Insert("a", 1))
	if v, ok := tr.Match("a.b-c"); !ok || v != 1 {
		t.Fatalf("an invalid tail segment must still match the valid prefix")
	}
	if _, ok := tr.Match("-a"); ok {
		t.Fatalf("invalid first segment must not match")
	}
}

func TestValidSegment(t *testing.T) {
	for _, s := range []string{"a", "Z", "_x", "QuotaExceeded", "v2"} {
		if !ValidSegment(s) {
			t.Fatalf("ValidSegment(%q) = false", s)
		}
	}
	for _, s := range []string{"", "2v", "a-b", "a.b", "*"} {
		if ValidSegment(s) {
			t.Fatalf("ValidSegment(%q) = true", s)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	tr := New[int]()
	for i := 0; i < 256; i++ {
		if err := tr.Insert(fmt.Sprintf("svc%d.module%d", i, i%16), i); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Match("svc42.module10.QuotaExceeded")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
