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
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/offscale/cdd/oas/rawdoc"
	"github.com/offscale/cdd/specerrors"
)

// Result is the OAS Reader's output: a resolved raw tree plus the resolver
// used to reach it and any diagnostics accumulated along the way. A non-empty Diagnostics with any CategoryInput or
// CategoryResolution entry means the document could not be fully resolved.
type Result struct {
	Root      Node
	Version   string
	BaseURI   string
	Resolver  *Resolver
	Diagnostics specerrors.Diagnostics
}

// Read loads path (YAML or JSON; JSON is valid YAML so one decoder handles
// both), shims OAS 3.2 constructs, and resolves every non-schema `$ref`
// reachable from the root without crossing a network boundary; `$ref`s
// into components/schemas are left in place (see schemaComponentPointer).
func Read(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return &Result{Diagnostics: specerrors.Diagnostics{{
			Category: specerrors.CategoryInput,
			Code:     "MalformedDocument",
			Message:  err.Error(),
			File:     path,
		}}}, nil
	}
	root = rawdoc.Normalize(root)

	res := &Result{Root: root}

	m, ok := asMap(root)
	if !ok {
		res.Diagnostics.Add(specerrors.Diagnostic{
			Category: specerrors.CategoryInput, Code: "MalformedDocument",
			Message: "document root is not a mapping", File: path,
		})
		return res, nil
	}

	rawVersion, _ := asString(m["openapi"])
	version, diag := ShimVersion(rawVersion)
	if diag != nil {
		diag.File = path
		res.Diagnostics.Add(*diag)
		return res, nil
	}
	res.Version = version

	baseURI := BaseURIForFile(path)
	if self, ok := asString(m["$self"]); ok && self != "" {
		resolved, err := ResolveRelative(baseURI, self)
		if err == nil {
			baseURI = resolved
		}
	}
	res.BaseURI = baseURI

	applyOAS32Shims(m, &res.Diagnostics)

	res.Resolver = NewResolver(root, baseURI)
	resolveAllRefs(root, res.Resolver, baseURI, &res.Diagnostics, map[string]bool{})

	return res, nil
}

// resolveAllRefs walks the tree depth-first, replacing every `$ref` sibling
// map with a resolved copy of its target merged with any local overrides
// (a Reference Object's own `description` overrides the target's, §4.1
// step 5), detecting cycles via a visitation stack (§4.1 step 4).
func resolveAllRefs(n Node, r *Resolver, baseURI string, diags *specerrors.Diagnostics, stack map[string]bool) {
	switch v := n.(type) {
	case map[string]any:
		if refVal, ok := v["$ref"]; ok {
			ref, _ := refVal.(string)
			resolveRefInPlace(v, ref, r, baseURI, diags, stack)
		}
		for _, val := range v {
			resolveAllRefs(val, r, baseURI, diags, stack)
		}
	case []any:
		for _, val := range v {
			resolveAllRefs(val, r, baseURI, diags, stack)
		}
	}
}

// schemaComponentPointer matches a $ref pointer into components/schemas.
// Schema refs are deliberately left unresolved here: the IR Builder
// resolves them by component name into a [model.KindRef] node instead of
// inlining, which is what lets a self-referential schema (§8 boundary
// case) terminate naturally instead of recursing forever through this
// eager, document-wide inliner (§9 "Cycles in IR").
func schemaComponentPointer(ref string) bool {
	_, pointer := SplitPointer(ref)
	return strings.HasPrefix(pointer, "/components/schemas/")
}

func resolveRefInPlace(holder map[string]any, ref string, r *Resolver, baseURI string, diags *specerrors.Diagnostics, stack map[string]bool) {
	if schemaComponentPointer(ref) {
		return
	}
	target, key, diag := r.Resolve(baseURI, ref)
	if diag != nil {
		diags.Add(*diag)
		return
	}
	if stack[key] {
		diags.Add(specerrors.Diagnostic{
			Category: specerrors.CategoryResolution,
			Code:     "CyclicRef",
			Message:  fmt.Sprintf("cyclic $ref detected resolving %s", ref),
			Pointer:  ref,
		})
		return
	}
	stack[key] = true
	defer delete(stack, key)

	targetMap, ok := asMap(target)
	if !ok {
		// Non-mapping ref target (e.g. a boolean schema): adopt it wholesale
		// by replacing $ref with the scalar under a synthetic key the
		// builder recognizes.
		holder["$resolved"] = target
		return
	}

	merged := make(map[string]any, len(targetMap))
	for k, val := range targetMap {
		merged[k] = val
	}
	// A Reference Object's own description overrides the target's.
	if desc, ok := holder["description"]; ok {
		merged["description"] = desc
	}
	delete(holder, "$ref")
	for k, val := range merged {
		if _, exists := holder[k]; !exists {
			holder[k] = val
		}
	}
	resolveAllRefs(merged, r, docURIFromKey(key), diags, stack)
}

func docURIFromKey(key string) string {
	idx := strings.LastIndex(key, "#")
	if idx < 0 {
		return key
	}
	return key[:idx]
}
