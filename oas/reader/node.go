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

import "github.com/offscale/cdd/oas/rawdoc"

// Node is a raw OAS document node: the result of decoding YAML or JSON into
// a generic tree (maps, slices, scalars). It is released once the IR
// builder has consumed it (§3 "Lifecycles").
type Node = rawdoc.Node

func asMap(n Node) (map[string]any, bool) { return rawdoc.AsMap(n) }
func asSlice(n Node) ([]any, bool)        { return rawdoc.AsSlice(n) }
func asString(n Node) (string, bool)      { return rawdoc.AsString(n) }

// Lookup resolves a JSON pointer (RFC 6901, with the leading "#" stripped by
// the caller) against root.
func Lookup(root Node, pointer string) (Node, bool) { return rawdoc.Lookup(root, pointer) }
