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
	"dirpx.dev/terrors"
	"dirpx.dev/terrors/foreign"
)

// defaultApplication seeds the application sub-registry with the variants
// defined by package terrors itself.
var defaultApplication = map[string]DecodeFunc{
	terrors.TypeRecord: RecordDecoder(terrors.TypeRecord, func(r *terrors.Record) terrors.Recorder {
		return r
	}),
	terrors.TypeUnknown: RecordDecoder(terrors.TypeUnknown, func(r *terrors.Record) terrors.Recorder {
		return &terrors.UnknownError{Record: r}
	}),
}

// defaultForeign seeds the foreign sub-registry with every foreign kind.
var defaultForeign = map[foreign.Kind]DecodeFunc{
	foreign.Generic:   foreignDecoder(foreign.Generic),
	foreign.Type:      foreignDecoder(foreign.Type),
	foreign.Syntax:    foreignDecoder(foreign.Syntax),
	foreign.Reference: foreignDecoder(foreign.Reference),
	foreign.Eval:      foreignDecoder(foreign.Eval),
	foreign.Range:     foreignDecoder(foreign.Range),
	foreign.URI:       foreignDecoder(foreign.URI),
	foreign.Aggregate: foreignDecoder(foreign.Aggregate),
}
