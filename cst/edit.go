// Copyright 2026 The CDD Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cst

import "sort"

// Edit replaces the byte range [Start, End) with Replacement. Start and End
// are byte offsets into the original source, not the post-edit source —
// this is what lets every edit in a batch be computed against the same
// unmodified file.
type Edit struct {
	Start       int
	End         int
	Replacement []byte
}

// Apply splices a batch of edits into src. Edits are applied right-to-left
// by descending Start offset (the same technique
// cmd/godocfmt/processFile uses for comment rewrites) so that an earlier
// edit's offsets are never invalidated by a later one; edits must not
// overlap.
func Apply(src []byte, edits []Edit) []byte {
	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start > ordered[j].Start })

	result := make([]byte, len(src))
	copy(result, src)
	for _, e := range ordered {
		out := make([]byte, 0, len(result)-(e.End-e.Start)+len(e.Replacement))
		out = append(out, result[:e.Start]...)
		out = append(out, e.Replacement...)
		out = append(out, result[e.End:]...)
		result = out
	}
	return result
}

// InsertBefore is a convenience Edit that inserts text at offset without
// removing anything.
func InsertBefore(offset int, text []byte) Edit {
	return Edit{Start: offset, End: offset, Replacement: text}
}
