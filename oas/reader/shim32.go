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

import "github.com/offscale/cdd/specerrors"

// reservedHTTPMethods are the method keys a Path Item Object already
// defines; OAS 3.2's `additionalOperations` must not redeclare them.
var reservedHTTPMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true, "options": true,
	"head": true, "patch": true, "trace": true,
}

// applyOAS32Shims normalizes the 3.2-only constructs described in §4.1 so
// the rest of the pipeline can treat every accepted version uniformly:
//
//   - examples' `dataValue`/`serializedValue`/`externalValue` are left
//     in place (the IR builder reads whichever is present); this pass only
//     validates `additionalOperations` doesn't collide with a reserved verb
//     and that link keys are canonicalized.
//   - link keys `operation_id`/`operation_ref`/`request_body` are rewritten
//     to their camelCase canonical form so one reader suffices for both
//     naming conventions seen in the wild.
func applyOAS32Shims(root map[string]any, diags *specerrors.Diagnostics) {
	paths, _ := asMap(root["paths"])
	for path, item := range paths {
		itemMap, ok := asMap(item)
		if !ok {
			continue
		}
		if addl, ok := asMap(itemMap["additionalOperations"]); ok {
			for method := range addl {
				if reservedHTTPMethods[method] {
					diags.Add(specerrors.Diagnostic{
						Category: specerrors.CategoryInput,
						Code:     "ReservedAdditionalOperation",
						Message:  "additionalOperations reuses a reserved HTTP method: " + method,
						Pointer:  "#/paths/" + path + "/additionalOperations/" + method,
					})
				}
			}
		}
		canonicalizeLinks(itemMap)
	}
}

func canonicalizeLinks(pathItem map[string]any) {
	for _, opKey := range []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"} {
		op, ok := asMap(pathItem[opKey])
		if !ok {
			continue
		}
		for _, respVal := range mapValues(op["responses"]) {
			resp, ok := asMap(respVal)
			if !ok {
				continue
			}
			links, ok := asMap(resp["links"])
			if !ok {
				continue
			}
			for _, linkVal := range links {
				link, ok := asMap(linkVal)
				if !ok {
					continue
				}
				renameKey(link, "operation_id", "operationId")
				renameKey(link, "operation_ref", "operationRef")
				renameKey(link, "request_body", "requestBody")
			}
		}
	}
}

func renameKey(m map[string]any, from, to string) {
	if v, ok := m[from]; ok {
		if _, exists := m[to]; !exists {
			m[to] = v
		}
		delete(m, from)
	}
}

func mapValues(n Node) []Node {
	m, ok := asMap(n)
	if !ok {
		return nil
	}
	out := make([]Node, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
