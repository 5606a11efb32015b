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

package testgen

import (
	"net/url"
	"strings"

	"github.com/offscale/cdd/oas/model"
)

// SerializeQuery renders name/values as a query-string fragment per the
// §6 table; any other style, including an empty one, is rendered as form.
// Media-typed (Content) query parameters get no separate handling, here or
// in the caller.
func SerializeQuery(name string, values []string, style model.Style, explode bool) string {
	switch style {
	case model.StyleSpaceDelimited:
		return name + "=" + url.QueryEscape(strings.Join(values, " "))
	case model.StylePipeDelimited:
		if explode {
			return explodedPairs(name, values)
		}
		return name + "=" + url.QueryEscape(strings.Join(values, "|"))
	case model.StyleDeepObject:
		var parts []string
		for i := 0; i+1 < len(values); i += 2 {
			parts = append(parts, name+"["+values[i]+"]="+url.QueryEscape(values[i+1]))
		}
		return strings.Join(parts, "&")
	default: // form
		if explode {
			return explodedPairs(name, values)
		}
		return name + "=" + url.QueryEscape(strings.Join(values, ","))
	}
}

func explodedPairs(name string, values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, name+"="+url.QueryEscape(v))
	}
	return strings.Join(parts, "&")
}

// SerializePath renders a single path-parameter value per its style; all
// three styles are defined identically for explode=true and explode=false
// in the §6 table when there's exactly one value (no array path params are
// synthesized by this generator).
func SerializePath(name string, values []string, style model.Style) string {
	switch style {
	case model.StyleLabel:
		return "." + strings.Join(values, ".")
	case model.StyleMatrix:
		if len(values) == 1 {
			return ";" + name + "=" + values[0]
		}
		parts := make([]string, 0, len(values))
		for _, v := range values {
			parts = append(parts, ";"+name+"="+v)
		}
		return strings.Join(parts, "")
	default: // simple
		return strings.Join(values, ",")
	}
}

// SerializeHeader renders a header value; only "simple" is valid for
// headers (§4.2 validation rejects anything else at document-validation
// time, so this has one case).
func SerializeHeader(values []string) string {
	return strings.Join(values, ",")
}

// SerializeCookie renders cookie values: comma-joined for explode=false,
// one cookie entry per value for explode=true (the caller attaches each
// entry as a separate Set-Cookie/Cookie header).
func SerializeCookie(values []string, explode bool) []string {
	if explode {
		return values
	}
	return []string{strings.Join(values, ",")}
}
