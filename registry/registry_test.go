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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/foreign"
	"dirpx.dev/terrors/wire"
)

type quotaExceeded struct{ *terrors.Record }

func (*quotaExceeded) TypeName() string { return "QuotaExceeded" }

func newQuotaExceeded(r *terrors.Record) terrors.Recorder { return &quotaExceeded{Record: r} }

func recordNode(typ string) wire.Node {
	return wire.Node{Type: typ, Data: map[string]any{
		"message":   "some message",
		"timestamp": "2022-05-07T09:16:06.632Z",
		"data":      map[string]any{"k": "v"},
		"cause":     nil,
		"stack":     "remote stack",
	}}
}

func TestNew_Defaults(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{terrors.TypeRecord, terrors.TypeUnknown}, r.Types(SourceApplication))
	assert.Len(t, r.Types(SourceForeign), len(foreign.Kinds()))
	assert.Nil(t, r.Types(SourceNone))

	for _, k := range foreign.Kinds() {
		e, ok := r.Lookup(string(k))
		require.True(t, ok, k)
		assert.Equal(t, SourceForeign, e.Source)
	}
	_, ok := r.Lookup("QuotaExceeded")
	assert.False(t, ok)
}

func TestNew_ApplicationFirst(t *testing.T) {
	custom := func(n wire.Node) (terrors.Typed, error) { return terrors.New("shadow"), nil }
	r, err := New(WithType("RangeError", custom))
	require.NoError(t, err)

	e, ok := r.Lookup("RangeError")
	require.True(t, ok)
	assert.Equal(t, SourceApplication, e.Source)
	assert.Equal(t, `type="RangeError" source=application shadowed=true`, r.Explain("RangeError"))
	assert.Equal(t, `type="URIError" source=foreign shadowed=false`, r.Explain("URIError"))
	assert.Equal(t, `type="Nope" source=none`, r.Explain("Nope"))
}

func TestNew_WithoutForeign(t *testing.T) {
	r, err := New(WithoutForeign(foreign.Eval))
	require.NoError(t, err)

	_, ok := r.Lookup("EvalError")
	assert.False(t, ok)
	_, ok = r.Lookup("Error")
	assert.True(t, ok)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"invalid id", []Option{WithRecord("not valid", newQuotaExceeded)}, ErrInvalidID},
		{"leading digit", []Option{WithRecord("1Error", newQuotaExceeded)}, ErrInvalidID},
		{"nil decoder", []Option{WithType("Q", nil)}, ErrNilDecoder},
		{"nil build", []Option{WithRecord("Q", nil)}, ErrNilDecoder},
		{"duplicate", []Option{
			WithRecord("QuotaExceeded", newQuotaExceeded),
			WithRecord("QuotaExceeded", newQuotaExceeded),
		}, ErrDuplicate},
		{"seed replaced twice", []Option{
			WithRecord(terrors.TypeRecord, newQuotaExceeded),
			WithRecord(terrors.TypeRecord, newQuotaExceeded),
		}, ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.opts...)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_SeedReplacedOnce(t *testing.T) {
	r, err := New(WithRecord(terrors.TypeRecord, newQuotaExceeded))
	require.NoError(t, err)

	e, _ := r.Lookup(terrors.TypeRecord)
	v, err := e.Decode(recordNode(terrors.TypeRecord))
	require.NoError(t, err)
	assert.IsType(t, &quotaExceeded{}, v)
}

func TestRecordDecoder_Valid(t *testing.T) {
	fn := RecordDecoder("QuotaExceeded", newQuotaExceeded)
	v, err := fn(recordNode("QuotaExceeded"))
	require.NoError(t, err)

	q, ok := v.(*quotaExceeded)
	require.True(t, ok)
	assert.Equal(t, "some message", q.Message)
	assert.Equal(t, time.Date(2022, 5, 7, 9, 16, 6, 632000000, time.UTC), q.Timestamp.UTC())
	assert.Equal(t, map[string]any{"k": "v"}, q.Data)
	assert.Nil(t, q.Cause)
	assert.Equal(t, "remote stack", q.Stack)
}

func TestRecordDecoder_KeepsFreshStackWhenAbsent(t *testing.T) {
	n := recordNode(terrors.TypeRecord)
	delete(n.Data, "stack")

	v, err := RecordDecoder(terrors.TypeRecord, func(r *terrors.Record) terrors.Recorder { return r })(n)
	require.NoError(t, err)
	assert.NotEmpty(t, v.(*terrors.Record).Stack)
}

func TestRecordDecoder_Structural(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *wire.Node)
	}{
		{"other tag", func(n *wire.Node) { n.Type = "Other" }},
		{"empty data", func(n *wire.Node) { n.Data = map[string]any{} }},
		{"message not string", func(n *wire.Node) { n.Data["message"] = 1.0 }},
		{"bad timestamp", func(n *wire.Node) { n.Data["timestamp"] = "yesterday" }},
		{"missing timestamp", func(n *wire.Node) { delete(n.Data, "timestamp") }},
		{"data not object", func(n *wire.Node) { n.Data["data"] = []any{} }},
		{"missing cause", func(n *wire.Node) { delete(n.Data, "cause") }},
		{"stack not string", func(n *wire.Node) { n.Data["stack"] = 1.0 }},
	}
	fn := RecordDecoder("QuotaExceeded", newQuotaExceeded)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := recordNode("QuotaExceeded")
			tt.mutate(&n)
			v, err := fn(n)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, wire.ErrStructural)
		})
	}
}

func TestRecordDecoder_NilBuildIsDefect(t *testing.T) {
	fn := RecordDecoder("QuotaExceeded", func(*terrors.Record) terrors.Recorder { return nil })
	_, err := fn(recordNode("QuotaExceeded"))
	require.Error(t, err)
	assert.False(t, wire.IsStructural(err))
}

func TestForeignDecoder(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	e, _ := r.Lookup("RangeError")
	v, err := e.Decode(wire.Node{Type: "RangeError", Data: map[string]any{"message": "msg3", "stack": "s"}})
	require.NoError(t, err)
	assert.Equal(t, &foreign.Error{Kind: foreign.Range, Message: "msg3", Stack: "s"}, v)

	e, _ = r.Lookup("AggregateError")
	v, err = e.Decode(wire.Node{Type: "AggregateError", Data: map[string]any{
		"message": "group",
		"errors":  []any{"x"},
	}})
	require.NoError(t, err)
	assert.Equal(t, &foreign.AggregateError{Errors: []any{"x"}, Message: "group"}, v)
}

func TestForeignDecoder_Structural(t *testing.T) {
	tests := []struct {
		name string
		node wire.Node
	}{
		{"no message", wire.Node{Type: "Error", Data: map[string]any{}}},
		{"stack not string", wire.Node{Type: "TypeError", Data: map[string]any{"message": "m", "stack": false}}},
		{"aggregate without errors", wire.Node{Type: "AggregateError", Data: map[string]any{"message": "m"}}},
		{"aggregate errors not array", wire.Node{Type: "AggregateError", Data: map[string]any{"message": "m", "errors": map[string]any{}}}},
		{"aggregate without message", wire.Node{Type: "AggregateError", Data: map[string]any{"errors": []any{}}}},
	}
	r, err := New()
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := r.Lookup(tt.node.Type)
			require.True(t, ok)
			_, err := e.Decode(tt.node)
			assert.ErrorIs(t, err, wire.ErrStructural)
		})
	}
}

func TestDefault_RegisterThenFreeze(t *testing.T) {
	require.NoError(t, RegisterRecord("QuotaExceeded", newQuotaExceeded))
	assert.ErrorIs(t, RegisterRecord("QuotaExceeded", newQuotaExceeded), ErrDuplicate)
	assert.ErrorIs(t, RegisterRecord(terrors.TypeRecord, newQuotaExceeded), ErrDuplicate)
	assert.ErrorIs(t, Register("bad id", nil), ErrInvalidID)
	assert.ErrorIs(t, Register("Fine", nil), ErrNilDecoder)
	assert.Panics(t, func() { MustRegister("bad id", nil) })

	r := Default()
	assert.Same(t, r, Default())
	e, ok := r.Lookup("QuotaExceeded")
	require.True(t, ok)
	assert.Equal(t, SourceApplication, e.Source)

	err := RegisterRecord("Late", newQuotaExceeded)
	assert.True(t, errors.Is(err, ErrFrozen), err)
	assert.Panics(t, func() { MustRegisterRecord("Later", newQuotaExceeded) })
}

func TestConcurrency_Lookup(t *testing.T) {
	r, err := New(WithRecord("QuotaExceeded", newQuotaExceeded))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_, _ = r.Lookup("QuotaExceeded")
				_, _ = r.Lookup("RangeError")
				_, _ = r.Lookup("Missing")
				_ = Default()
			}
		}()
	}
	wg.Wait()
}
