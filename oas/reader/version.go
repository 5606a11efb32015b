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
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/offscale/cdd/specerrors"
)

var supportedMajorMinor = []string{"3.0", "3.1", "3.2"}

// ShimVersion validates and normalizes the `openapi` field, accepting
// "3.0.*", "3.1.*", "3.2.*" (§4.1 "Version shim").
func ShimVersion(raw string) (string, *specerrors.Diagnostic) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return "", &specerrors.Diagnostic{
			Category: specerrors.CategoryInput,
			Code:     "UnparseableVersion",
			Message:  fmt.Sprintf("openapi version %q is not a valid semantic version", raw),
		}
	}
	mm := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	for _, ok := range supportedMajorMinor {
		if mm == ok {
			return v.String(), nil
		}
	}
	return "", &specerrors.Diagnostic{
		Category: specerrors.CategoryInput,
		Code:     "UnsupportedVersion",
		Message:  fmt.Sprintf("openapi version %q is not one of 3.0.x, 3.1.x, 3.2.x", raw),
	}
}

// Is32OrLater reports whether version is OAS 3.2 or a later 3.x minor.
// Read applies its shims to every accepted version without consulting it.
func Is32OrLater(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Major() == 3 && v.Minor() >= 2
}

// sequentialMediaTypes is the set of OAS 3.2 streaming content types that
// recognize `itemSchema` instead of `schema` (§4.1).
var sequentialMediaTypes = map[string]bool{
	"application/jsonl":    true,
	"application/x-ndjson": true,
	"text/event-stream":    true,
}

// IsSequentialMediaType reports whether mediaType is a sequential media
// type, including any multipart/* subtype.
func IsSequentialMediaType(mediaType string) bool {
	if sequentialMediaTypes[mediaType] {
		return true
	}
	return len(mediaType) >= len("multipart/") && mediaType[:len("multipart/")] == "multipart/"
}
