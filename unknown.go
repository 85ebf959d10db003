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

package terrors

// TypeUnknown is the type identifier of UnknownError.
const TypeUnknown = "UnknownError"

// UnknownError is the sentinel produced when a decoded document root is not
// a tagged error at all. The offending value is kept under Data["json"].
type UnknownError struct {
	*Record
}

// NewUnknown constructs an UnknownError; options behave as for New.
func NewUnknown(msg string, opts ...Option) *UnknownError {
	return &UnknownError{Record: build(1, msg, opts)}
}

// TypeName implements Typed.
func (*UnknownError) TypeName() string { return TypeUnknown }

// Description implements Describer.
func (*UnknownError) Description() string {
	return "value could not be decoded as a known error"
}
