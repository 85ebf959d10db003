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

// Package stack captures call stacks and renders them as opaque trace
// strings for error records.
package stack

import (
	"runtime"
	"strconv"
	"strings"
)

// MaxDepth bounds the number of frames recorded by Capture.
const MaxDepth = 32

// Capture records the stack of its caller and renders it as text.
//
// skip is the number of additional frames to drop: 0 starts at the function
// that called Capture, 1 at that function's caller, and so on.
//
// The rendering mirrors the runtime's traceback layout:
//
//	pkg.Func
//		/abs/path/file.go:42
func Capture(skip int) string {
	pc := make([]uintptr, MaxDepth)
	// +2 drops runtime.Callers and Capture itself.
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pc[:n])

	var b strings.Builder
	for {
		fr, more := frames.Next()
		if fr.Function != "" {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(fr.Function)
			b.WriteString("\n\t")
			b.WriteString(fr.File)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(fr.Line))
		}
		if !more {
			break
		}
	}
	return b.String()
}
