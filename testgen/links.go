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
	"strconv"
	"strings"

	"github.com/offscale/cdd/oas/rawdoc"
)

// LinkContext holds the request/response values a runtime expression can
// reference (§4.6 step 6, OAS Runtime Expressions).
type LinkContext struct {
	PathParams   map[string]string
	QueryParams  map[string]string
	RequestBody  any
	ResponseBody any
}

// ResolveRuntimeExpression evaluates a single `$request.*`/`$response.*`
// expression, or a literal constant if expr doesn't start with `$`.
// Embedded expressions inside a larger string (`{$response.body#/id}`) are
// handled by [ResolveTemplate], which calls this for each `{...}` span.
func (c *LinkContext) ResolveRuntimeExpression(expr string) string {
	if !strings.HasPrefix(expr, "$") {
		return expr
	}
	switch {
	case strings.HasPrefix(expr, "$request.path."):
		return c.PathParams[strings.TrimPrefix(expr, "$request.path.")]
	case strings.HasPrefix(expr, "$request.query."):
		return c.QueryParams[strings.TrimPrefix(expr, "$request.query.")]
	case strings.HasPrefix(expr, "$request.body#"):
		v, _ := rawdoc.Lookup(c.RequestBody, strings.TrimPrefix(expr, "$request.body#"))
		return stringify(v)
	case strings.HasPrefix(expr, "$response.body#"):
		v, _ := rawdoc.Lookup(c.ResponseBody, strings.TrimPrefix(expr, "$response.body#"))
		return stringify(v)
	default:
		return ""
	}
}

// ResolveTemplate substitutes every `{$...}` span in a URL or parameter
// template with its resolved value, leaving the rest of the string as-is.
func (c *LinkContext) ResolveTemplate(template string) string {
	var b strings.Builder
	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		b.WriteString(template[i : i+open])
		rest := template[i+open+1:]
		close := strings.IndexByte(rest, '}')
		if close < 0 {
			b.WriteString(template[i+open:])
			break
		}
		b.WriteString(c.ResolveRuntimeExpression(rest[:close]))
		i = i + open + 1 + close + 1
	}
	return b.String()
}

func stringify(v rawdoc.Node) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
