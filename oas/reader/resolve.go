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

// Resolver resolves `$ref` values against a primary document, following
// RFC 3986 base-URI resolution for non-local refs and loading additional
// local files on demand (§4.1: "no network fetching").
type Resolver struct {
	docs      map[string]Node // canonical doc URI -> root node
	visiting  map[string]bool // cycle-detection stack, keyed by "docURI#pointer"
	primary   string
}

// NewResolver creates a Resolver seeded with the primary document.
func NewResolver(primaryRoot Node, primaryURI string) *Resolver {
	return &Resolver{
		docs:     map[string]Node{primaryURI: primaryRoot},
		visiting: map[string]bool{},
		primary:  primaryURI,
	}
}

// Resolve resolves ref relative to baseURI, returning the target node and
// its canonical key (docURI + pointer), or a diagnostic on failure.
//
// A key currently marked via [Resolver.Enter] is reported as CyclicRef
// instead of being resolved. Read does not call Enter; its cycle detection
// (§4.1 step 4) is the stack kept by resolveAllRefs.
func (r *Resolver) Resolve(baseURI, ref string) (Node, string, *specerrors.Diagnostic) {
	docPart, pointer := SplitPointer(ref)

	docURI := baseURI
	if docPart != "" {
		resolved, err := ResolveRelative(baseURI, docPart)
		if err != nil {
			return nil, "", &specerrors.Diagnostic{
				Category: specerrors.CategoryResolution,
				Code:     "UnresolvableRef",
				Message:  fmt.Sprintf("cannot resolve ref document %q: %v", docPart, err),
				Pointer:  ref,
			}
		}
		docURI = resolved
	}

	key := docURI + "#" + pointer
	if r.visiting[key] {
		return nil, "", &specerrors.Diagnostic{
			Category: specerrors.CategoryResolution,
			Code:     "CyclicRef",
			Message:  fmt.Sprintf("cyclic $ref detected at %s", key),
			Pointer:  ref,
		}
	}

	root, ok := r.docs[docURI]
	if !ok {
		loaded, err := loadLocalDoc(docURI)
		if err != nil {
			return nil, "", &specerrors.Diagnostic{
				Category: specerrors.CategoryResolution,
				Code:     "UnresolvedRef",
				Message:  fmt.Sprintf("$ref %q could not be resolved (no network fetching): %v", ref, err),
				Pointer:  ref,
			}
		}
		r.docs[docURI] = loaded
		root = loaded
	}

	target, ok := Lookup(root, pointer)
	if !ok {
		return nil, "", &specerrors.Diagnostic{
			Category: specerrors.CategoryResolution,
			Code:     "UnresolvedRef",
			Message:  fmt.Sprintf("$ref %q did not resolve to a node in %s", ref, docURI),
			Pointer:  ref,
		}
	}
	return target, key, nil
}

// Enter marks key as being visited, for cycle detection around a single
// resolution chain. Callers must call the returned func to leave.
func (r *Resolver) Enter(key string) (enteredOK bool, leave func()) {
	if r.visiting[key] {
		return false, func() {}
	}
	r.visiting[key] = true
	return true, func() { delete(r.visiting, key) }
}

// loadLocalDoc loads a file:// URI from disk (never over the network) and
// decodes it as YAML (a superset of JSON).
func loadLocalDoc(docURI string) (Node, error) {
	path := strings.TrimPrefix(docURI, "file://")
	if path == docURI {
		return nil, fmt.Errorf("non-local document URI %q: network fetching is disabled", docURI)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return rawdoc.Normalize(out), nil
}
