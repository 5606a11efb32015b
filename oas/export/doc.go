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

// Package export projects the shared [model.Document] IR back out to an
// OpenAPI document: the direction `schema-gen` uses after reflecting Go
// source into the IR.
//
// Unlike the reader, which works directly on an untyped tree, export builds
// a fully JSON-tagged struct mirror of the wire format (the teacher's
// SpecV31/SpecV30 approach) and lets encoding/json own field ordering and
// omitempty semantics; YAML output is produced by marshaling to JSON first
// and decoding that into a yaml.Node-compatible tree, since json.Marshal's
// struct-tag-driven omitempty has no equivalent in yaml.v3's struct tags for
// the mixed pointer/value fields this package uses.
package export
