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
	"net/mail"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/offscale/cdd/oas/rawdoc"
	"github.com/offscale/cdd/specerrors"
)

var componentKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
var statusKeyPattern = regexp.MustCompile(`^([0-9][0-9X]{2}|default)$`)

type Node = rawdoc.Node

func asMap(n Node) (map[string]any, bool) { return rawdoc.AsMap(n) }
func asSlice(n Node) ([]any, bool)        { return rawdoc.AsSlice(n) }
func asString(n Node) (string, bool)      { return rawdoc.AsString(n) }

// Document validates the cross-entity rules of §4.2 against the resolved
// raw tree. It never stops at the first violation (§8 property 6).
func Document(root map[string]any) specerrors.Diagnostics {
	var diags specerrors.Diagnostics

	diags = append(diags, validateInfo(root)...)
	diags = append(diags, validatePaths(root)...)
	diags = append(diags, validateComponents(root)...)
	diags = append(diags, validateSecurity(root)...)

	return diags
}

func validateInfo(root map[string]any) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	info, ok := asMap(root["info"])
	if !ok {
		diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "MissingInfo", Message: "info object is required", Pointer: "#/info"})
		return diags
	}
	if contact, ok := asMap(info["contact"]); ok {
		if email, ok := asString(contact["email"]); ok && email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "InvalidContactEmail", Message: "contact.email is not well-formed: " + email, Pointer: "#/info/contact/email"})
			}
		}
		if u, ok := asString(contact["url"]); ok && u != "" && !isValidURI(u) {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "InvalidContactURL", Message: "contact.url does not parse as a URI: " + u, Pointer: "#/info/contact/url"})
		}
	}
	if lic, ok := asMap(info["license"]); ok {
		if u, ok := asString(lic["url"]); ok && u != "" && !isValidURI(u) {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "InvalidLicenseURL", Message: "license.url does not parse as a URI: " + u, Pointer: "#/info/license/url"})
		}
	}
	if tos, ok := asString(info["termsOfService"]); ok && tos != "" && !isValidURI(tos) {
		diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "InvalidTermsOfService", Message: "termsOfService does not parse as a URI: " + tos, Pointer: "#/info/termsOfService"})
	}
	return diags
}

func isValidURI(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

func validatePaths(root map[string]any) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	paths, _ := asMap(root["paths"])

	var pathList []string
	for p := range paths {
		pathList = append(pathList, p)
		if !ValidLeadingSlash(p) {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "PathMissingLeadingSlash", Message: "path does not start with '/': " + p, Pointer: "#/paths/" + p})
		}
	}
	sort.Strings(pathList)
	diags = append(diags, TemplatedPathConflicts(pathList)...)

	seenOpIDs := map[string]string{} // operationId -> first pointer seen at
	for _, p := range pathList {
		item, _ := asMap(paths[p])
		for _, method := range []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"} {
			op, ok := asMap(item[method])
			if !ok {
				continue
			}
			ptr := "#/paths/" + p + "/" + method
			diags = append(diags, validateOperationID(op, ptr, seenOpIDs)...)
			diags = append(diags, validateResponses(op, ptr)...)
			diags = append(diags, validateRequestBody(op, ptr)...)
			diags = append(diags, validateParameters(item["parameters"], ptr+"/parameters")...)
			diags = append(diags, validateParameters(op["parameters"], ptr+"/parameters")...)
			diags = append(diags, validateCallbacks(op, ptr, seenOpIDs)...)
		}
	}
	return diags
}

func validateOperationID(op map[string]any, ptr string, seen map[string]string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	opID, ok := asString(op["operationId"])
	if !ok || opID == "" {
		return diags
	}
	if prior, exists := seen[opID]; exists {
		diags.Add(specerrors.Diagnostic{
			Category: specerrors.CategoryValidation, Code: "DuplicateOperationID",
			Message: "operationId '" + opID + "' used at both " + prior + " and " + ptr,
			Pointer: ptr,
		})
		return diags
	}
	seen[opID] = ptr
	return diags
}

func validateCallbacks(op map[string]any, ptr string, seenOpIDs map[string]string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	callbacks, ok := asMap(op["callbacks"])
	if !ok {
		return diags
	}
	for name, cb := range callbacks {
		cbPaths, ok := asMap(cb)
		if !ok {
			continue
		}
		for expr, item := range cbPaths {
			itemMap, ok := asMap(item)
			if !ok {
				continue
			}
			for _, method := range []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"} {
				cbOp, ok := asMap(itemMap[method])
				if !ok {
					continue
				}
				cbPtr := ptr + "/callbacks/" + name + "/" + expr + "/" + method
				diags = append(diags, validateOperationID(cbOp, cbPtr, seenOpIDs)...)
				diags = append(diags, validateResponses(cbOp, cbPtr)...)
			}
		}
	}
	return diags
}

func validateResponses(op map[string]any, ptr string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	responses, ok := asMap(op["responses"])
	if !ok {
		diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "MissingResponses", Message: "operation has no responses object", Pointer: ptr})
		return diags
	}
	for status, respVal := range responses {
		rPtr := ptr + "/responses/" + status
		if !statusKeyPattern.MatchString(status) {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "InvalidResponseKey", Message: "response key must be 'default' or a 3-digit status (optionally wildcarded, e.g. 2XX): " + status, Pointer: rPtr})
		}
		resp, ok := asMap(respVal)
		if !ok {
			continue
		}
		desc, ok := asString(resp["description"])
		if !ok || strings.TrimSpace(desc) == "" {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "EmptyResponseDescription", Message: "response.description must be non-empty", Pointer: rPtr})
		}
		diags = append(diags, validateContent(resp["content"], rPtr+"/content", false)...)
		diags = append(diags, validateHeaders(resp["headers"], rPtr+"/headers")...)
		diags = append(diags, validateLinks(resp["links"], rPtr+"/links")...)
	}
	return diags
}

func validateRequestBody(op map[string]any, ptr string) specerrors.Diagnostics {
	rb, ok := asMap(op["requestBody"])
	if !ok {
		return nil
	}
	required, _ := rb["required"].(bool)
	return validateContent(rb["content"], ptr+"/requestBody/content", required)
}

func validateContent(n Node, ptr string, bodyRequired bool) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	content, ok := asMap(n)
	if !ok {
		return diags
	}
	if len(content) == 0 {
		diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "EmptyRequestBodyContent", Message: "requestBody.content must be non-empty", Pointer: ptr})
		return diags
	}
	for mediaType, bodyVal := range content {
		body, ok := asMap(bodyVal)
		if !ok {
			continue
		}
		mPtr := ptr + "/" + mediaType
		_, hasExample := body["example"]
		_, hasExamples := body["examples"]
		if hasExample && hasExamples {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "ExampleExamplesConflict", Message: "example and examples are mutually exclusive", Pointer: mPtr})
		}
		if _, hasItemSchema := body["itemSchema"]; hasItemSchema && !isSequentialMediaType(mediaType) {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "ItemSchemaOnNonSequentialMedia", Message: "itemSchema is only valid on sequential media types: " + mediaType, Pointer: mPtr})
		}
		if schemaVal, hasSchema := body["schema"]; hasSchema && bodyRequired {
			if b, ok := schemaVal.(bool); ok && !b {
				diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "FalseRequiredBody", Message: "schema: false cannot be used as a required body", Pointer: mPtr})
			}
		}
	}
	return diags
}

func isSequentialMediaType(mediaType string) bool {
	switch mediaType {
	case "application/jsonl", "application/x-ndjson", "text/event-stream":
		return true
	}
	return strings.HasPrefix(mediaType, "multipart/")
}

func validateHeaders(n Node, ptr string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	headers, ok := asMap(n)
	if !ok {
		return diags
	}
	for name, hVal := range headers {
		if strings.EqualFold(name, "Content-Type") {
			continue // header params named Content-Type are ignored (§3 Param invariant)
		}
		h, ok := asMap(hVal)
		if !ok {
			continue
		}
		hPtr := ptr + "/" + name
		_, hasSchema := h["schema"]
		_, hasContent := h["content"]
		if hasSchema == hasContent {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "HeaderSchemaContentExclusive", Message: "header must have exactly one of schema or content", Pointer: hPtr})
		}
		if style, ok := asString(h["style"]); ok && style != "" && style != "simple" {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "InvalidHeaderStyle", Message: "header style must be 'simple', got: " + style, Pointer: hPtr})
		}
		if allow, ok := h["allowEmptyValue"].(bool); ok && allow {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "HeaderAllowEmptyValue", Message: "allowEmptyValue is not permitted on headers", Pointer: hPtr})
		}
	}
	return diags
}

func validateParameters(n Node, ptr string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	params, ok := asSlice(n)
	if !ok {
		return diags
	}
	for i, pVal := range params {
		p, ok := asMap(pVal)
		if !ok {
			continue
		}
		name, _ := asString(p["name"])
		pPtr := ptr + "/" + name
		if name == "" {
			pPtr = ptr + "/" + strconv.Itoa(i)
		}
		_, hasExample := p["example"]
		_, hasExamples := p["examples"]
		if hasExample && hasExamples {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "ExampleExamplesConflict", Message: "example and examples are mutually exclusive", Pointer: pPtr})
		}
		in, _ := asString(p["in"])
		if in == "path" {
			if req, ok := p["required"].(bool); !ok || !req {
				diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "PathParamNotRequired", Message: "path parameters must have required: true", Pointer: pPtr})
			}
		}
		style, _ := asString(p["style"])
		if style == "deepObject" || style == "spaceDelimited" || style == "pipeDelimited" {
			diags = append(diags, validateCompatibleStyle(p, style, pPtr)...)
		}
	}
	return diags
}

func validateCompatibleStyle(p map[string]any, style, ptr string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	schema, ok := asMap(p["schema"])
	if !ok {
		return diags
	}
	typ, _ := asString(schema["type"])
	switch style {
	case "deepObject":
		if typ != "object" {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "IncompatibleStyle", Message: "deepObject style requires an object schema", Pointer: ptr})
		}
	case "spaceDelimited", "pipeDelimited":
		if typ != "array" {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "IncompatibleStyle", Message: style + " style requires an array schema", Pointer: ptr})
		}
	}
	return diags
}

func validateLinks(n Node, ptr string) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	links, ok := asMap(n)
	if !ok {
		return diags
	}
	for name, lVal := range links {
		l, ok := asMap(lVal)
		if !ok {
			continue
		}
		lPtr := ptr + "/" + name
		_, hasOpID := l["operationId"]
		_, hasOpRef := l["operationRef"]
		if hasOpID == hasOpRef {
			diags.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "LinkOperationExclusive", Message: "link must have exactly one of operationId or operationRef", Pointer: lPtr})
		}
	}
	return diags
}

func validateComponents(root map[string]any) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	components, ok := asMap(root["components"])
	if !ok {
		return diags
	}
	for section, sVal := range components {
		sMap, ok := asMap(sVal)
		if !ok {
			continue
		}
		for key := range sMap {
			if !componentKeyPattern.MatchString(key) {
				diags.Add(specerrors.Diagnostic{
					Category: specerrors.CategoryValidation, Code: "InvalidComponentKey",
					Message: "component key does not match ^[A-Za-z0-9._-]+$: " + key,
					Pointer: "#/components/" + section + "/" + key,
				})
			}
		}
		if section == "schemas" {
			diags = append(diags, validateDiscriminators(sMap)...)
		}
	}
	return diags
}

func validateDiscriminators(schemas map[string]any) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	for name, sVal := range schemas {
		s, ok := asMap(sVal)
		if !ok {
			continue
		}
		disc, ok := asMap(s["discriminator"])
		if !ok {
			continue
		}
		mapping, _ := asMap(disc["mapping"])
		for value, targetVal := range mapping {
			target, _ := asString(targetVal)
			if !strings.HasPrefix(target, "#/components/schemas/") {
				continue
			}
			targetName := strings.TrimPrefix(target, "#/components/schemas/")
			if _, ok := schemas[targetName]; !ok {
				diags.Add(specerrors.Diagnostic{
					Category: specerrors.CategoryValidation, Code: "UnresolvableDiscriminatorMapping",
					Message: "discriminator mapping '" + value + "' targets unresolvable schema: " + target,
					Pointer: "#/components/schemas/" + name + "/discriminator/mapping/" + value,
				})
			}
		}
	}
	return diags
}

func validateSecurity(root map[string]any) specerrors.Diagnostics {
	var diags specerrors.Diagnostics
	schemes, _ := asMap(root["components"])
	schemesMap, _ := asMap(schemes["securitySchemes"])

	check := func(reqs []any, ptr string) {
		for i, reqVal := range reqs {
			req, ok := asMap(reqVal)
			if !ok {
				continue
			}
			for name := range req {
				if _, ok := schemesMap[name]; !ok {
					diags.Add(specerrors.Diagnostic{
						Category: specerrors.CategoryValidation, Code: "UndefinedSecurityScheme",
						Message: "security requirement references undefined scheme: " + name,
						Pointer: ptr + "/" + strconv.Itoa(i),
					})
				}
			}
		}
	}
	if reqs, ok := asSlice(root["security"]); ok {
		check(reqs, "#/security")
	}
	paths, _ := asMap(root["paths"])
	for p, item := range paths {
		itemMap, ok := asMap(item)
		if !ok {
			continue
		}
		for _, method := range []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"} {
			op, ok := asMap(itemMap[method])
			if !ok {
				continue
			}
			if reqs, ok := asSlice(op["security"]); ok {
				check(reqs, "#/paths/"+p+"/"+method+"/security")
			}
		}
	}
	return diags
}

