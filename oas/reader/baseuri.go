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

package reader

import (
	"net/url"
	"path/filepath"
)

// BaseURIForFile derives a document's base URI from its on-disk path, used
// when the document carries no `$self` (OAS 3.2 Appendix F).
func BaseURIForFile(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// ResolveRelative resolves ref against base following RFC 3986 dot-segment
// normalization (§4.1 step 2, §4.1 "Relative servers"). Both absolute and
// relative refs/URLs are accepted; a ref that is already absolute is
// returned normalized but otherwise unchanged.
func ResolveRelative(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	resolved := baseURL.ResolveReference(refURL)
	return resolved.String(), nil
}

// SplitPointer splits a $ref into its document part and its JSON-pointer
// fragment, e.g. "other.yaml#/components/schemas/X" -> ("other.yaml",
// "/components/schemas/X"). A local ref ("#/...") yields ("", "/...").
func SplitPointer(ref string) (docPart, pointer string) {
	for i, r := range ref {
		if r == '#' {
			return ref[:i], ref[i+1:]
		}
	}
	return ref, ""
}

// IsLocal reports whether ref is a same-document JSON pointer.
func IsLocal(ref string) bool {
	doc, _ := SplitPointer(ref)
	return doc == ""
}
