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

package validate

import (
	"sort"
	"strings"

	"github.com/offscale/cdd/specerrors"
)

// TemplatedPathConflicts reports each group of paths whose segments are
// identical once every `{param}` segment is treated as a wildcard — e.g.
// `/a/{x}` and `/a/{y}` — as one diagnostic listing the group (§3 Route
// invariant, §8 scenario S2). A templated path and a literal one, such as
// `/a/{x}` and `/a/b`, are not flagged.
func TemplatedPathConflicts(paths []string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics

	shapes := make(map[string][]string) // normalized shape -> original paths
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	for _, p := range sorted {
		shape := normalizeShape(p)
		shapes[shape] = append(shapes[shape], p)
	}

	var shapeKeys []string
	for k := range shapes {
		shapeKeys = append(shapeKeys, k)
	}
	sort.Strings(shapeKeys)

	for _, shape := range shapeKeys {
		group := shapes[shape]
		if len(group) < 2 {
			continue
		}
		diags.Add(specerrors.Diagnostic{
			Category: specerrors.CategoryValidation,
			Code:     "TemplatedPathConflict",
			Message:  "paths collapse to the same concrete shape: " + strings.Join(group, ", "),
			Pointer:  "#/paths",
		})
	}
	return diags
}

// normalizeShape replaces every `{param}` segment with a single wildcard
// marker so two paths that differ only in parameter names compare equal.
func normalizeShape(path string) string {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segs[i] = "{}"
		}
	}
	return strings.Join(segs, "/")
}

// ValidLeadingSlash reports whether path begins with "/" (§3 Route
// invariant, §4.2).
func ValidLeadingSlash(path string) bool {
	return strings.HasPrefix(path, "/")
}
