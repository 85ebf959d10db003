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

package wire

import (
	"strconv"
	"time"
)

// Node is a tagged-looking document node: an object with a string "type"
// and an object "data". Looking tagged says nothing about validity; that is
// up to the decode routine of Type.
type Node struct {
	Type string
	Data map[string]any
}

// AsNode reports whether v looks tagged and returns its view.
func AsNode(v any) (Node, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Node{}, false
	}
	typ, ok := m[KeyType].(string)
	if !ok {
		return Node{}, false
	}
	data, ok := m[KeyData].(map[string]any)
	if !ok {
		return Node{}, false
	}
	return Node{Type: typ, Data: data}, true
}

// Doc returns the node as a document value.
func (n Node) Doc() map[string]any {
	return map[string]any{KeyType: n.Type, KeyData: n.Data}
}

// Has reports whether the payload carries field, whatever its value.
func (n Node) Has(field string) bool {
	_, ok := n.Data[field]
	return ok
}

// String returns the string payload field; a missing or non-string field is
// a structural failure.
func (n Node) String(field string) (string, error) {
	s, ok := n.Data[field].(string)
	if !ok {
		return "", Failf(n.Type, field, "must be a string")
	}
	return s, nil
}

// OptionalString returns the payload field when present. A present field
// must be a string.
func (n Node) OptionalString(field string) (string, error) {
	v, ok := n.Data[field]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", Failf(n.Type, field, "must be a string when present")
	}
	return s, nil
}

// Object returns the object payload field.
func (n Node) Object(field string) (map[string]any, error) {
	m, ok := n.Data[field].(map[string]any)
	if !ok {
		return nil, Failf(n.Type, field, "must be an object")
	}
	return m, nil
}

// Array returns the array payload field.
func (n Node) Array(field string) ([]any, error) {
	a, ok := n.Data[field].([]any)
	if !ok {
		return nil, Failf(n.Type, field, "must be an array")
	}
	return a, nil
}

// Time returns the timestamp payload field. Strings are parsed with
// TimeLayout; a time.Time value (documents built in-process) is accepted
// as is.
func (n Node) Time(field string) (time.Time, error) {
	switch v := n.Data[field].(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(TimeLayout, v)
		if err != nil {
			return time.Time{}, Failf(n.Type, field, "is not a valid time: %v", err)
		}
		return t, nil
	default:
		return time.Time{}, Failf(n.Type, field, "must be a time string")
	}
}

// Expect checks that the node is tagged with typ.
func (n Node) Expect(typ string) error {
	if n.Type != typ {
		return &DecodeError{Type: typ, Reason: "document is tagged " + strconv.Quote(n.Type)}
	}
	return nil
}
