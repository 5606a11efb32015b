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

// Package rawdoc holds the generic tree shape every raw OAS document is
// decoded into (maps, slices, scalars) plus the small set of accessors the
// reader, validator, and IR builder all need to walk it. Keeping these in
// one package means those three stages agree on exactly one tree shape,
// regardless of whether the document was decoded from YAML or JSON.
package rawdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a raw OAS document node.
type Node = any

// AsMap type-asserts n as a string-keyed map.
func AsMap(n Node) (map[string]any, bool) {
	m, ok := n.(map[string]any)
	return m, ok
}

// AsSlice type-asserts n as a slice.
func AsSlice(n Node) ([]any, bool) {
	s, ok := n.([]any)
	return s, ok
}

// AsString type-asserts n as a string.
func AsString(n Node) (string, bool) {
	s, ok := n.(string)
	return s, ok
}

// Lookup resolves a JSON pointer (RFC 6901) against root.
func Lookup(root Node, pointer string) (Node, bool) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return root, true
	}
	segs := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	cur := root
	for _, seg := range segs {
		seg = unescapeToken(seg)
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, false
			}
			cur = v[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

func unescapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

// Normalize walks a decoded tree (from yaml.v3 or encoding/json) to
// guarantee map[string]any / []any shapes throughout.
func Normalize(n any) any {
	switch v := n.(type) {
	case map[string]any:
		for k, val := range v {
			v[k] = Normalize(val)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = Normalize(val)
		}
		return out
	case []any:
		for i, val := range v {
			v[i] = Normalize(val)
		}
		return v
	default:
		return v
	}
}
