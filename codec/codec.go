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

import "dirpx.dev/terrors"

// Marshal encodes v with a default Encoder.
func Marshal(v any) ([]byte, error) {
	return NewEncoder().Marshal(v)
}

// Unmarshal revives JSON with a Decoder over registry.Default.
func Unmarshal(b []byte) (any, error) {
	return NewDecoder().Unmarshal(b)
}

// UnmarshalError is Unmarshal for callers that expect an error at the root.
// A root that looked tagged but did not validate is wrapped as an
// UnknownError, so the result is always a typed error.
func UnmarshalError(b []byte) (terrors.Typed, error) {
	v, err := Unmarshal(b)
	if err != nil {
		return nil, err
	}
	return AsError(v), nil
}

// AsError returns v when it is a typed error and wraps it as an
// UnknownError otherwise.
func AsError(v any) terrors.Typed {
	if t, ok := v.(terrors.Typed); ok {
		return t
	}
	return terrors.NewUnknown(UnknownMessage, terrors.WithData(map[string]any{"json": v}))
}
