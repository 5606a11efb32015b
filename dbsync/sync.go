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

package dbsync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/offscale/cdd/cst"
	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/patch"
	"github.com/offscale/cdd/specerrors"
)

// TableFile is one DB→struct tool output file, matched to the IR schema it
// should carry every property of.
type TableFile struct {
	Path       string
	StructName string
	Schema     *model.Schema
}

// DiscoverTableFiles walks modelDir for .go files and pairs each top-level
// struct it finds with a same-named entry in schemas, by exported struct
// name. Files with no matching schema are left untouched and not reported
// (the DB tool may emit join tables or views the document never describes).
func DiscoverTableFiles(modelDir string, schemas map[string]*model.Schema) ([]TableFile, error) {
	entries, err := os.ReadDir(modelDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", modelDir, err)
	}

	var files []TableFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}
		path := filepath.Join(modelDir, entry.Name())
		parsed, err := cst.Parse(path)
		if err != nil {
			return nil, err
		}
		for _, s := range parsed.Structs() {
			schema, ok := schemas[s.Name]
			if !ok {
				continue
			}
			files = append(files, TableFile{Path: path, StructName: s.Name, Schema: schema})
		}
	}
	return files, nil
}

// Patch merges the DB tool's existing field set for table with whatever
// fields table.Schema requires, and returns the byte-splice edits needed to
// add the ones missing. mergo.Map performs the additive merge: existing
// fields (keyed by name) are never overridden, only supplemented.
func Patch(table TableFile, diags *specerrors.Diagnostics) ([]cst.Edit, error) {
	parsed, err := cst.Parse(table.Path)
	if err != nil {
		return nil, err
	}
	src := parsed.StructByName(table.StructName)
	if src == nil {
		diags.Add(specerrors.Diagnostic{
			Category: specerrors.CategoryResolution, Code: "MissingTableStruct",
			Message: fmt.Sprintf("no struct named %s in %s", table.StructName, table.Path),
			File:    table.Path,
		})
		return nil, nil
	}

	missing := patch.DiffStruct(table.Schema, src)
	merged, err := mergeFieldSets(existingFieldSet(src), missing)
	if err != nil {
		return nil, err
	}

	return patch.StructEdits(merged, src), nil
}

// existingFieldSet builds the set of field names src already declares,
// which mergeFieldSets merges into a zero-value map with mergo.Map the same
// way the teacher's loadSourcesSequential does (accumulate into a zero
// value, merge each layer in with override) before filtering the missing
// fields against it.
func existingFieldSet(src *cst.SourceStruct) map[string]bool {
	existing := map[string]bool{}
	for _, field := range src.Type.Fields.List {
		for _, name := range field.Names {
			existing[name.Name] = true
		}
	}
	return existing
}

func mergeFieldSets(existing map[string]bool, missing []patch.MissingField) ([]patch.MissingField, error) {
	dst := map[string]bool{}
	if err := mergo.Map(&dst, existing, mergo.WithOverride); err != nil {
		return nil, err
	}
	var out []patch.MissingField
	for _, f := range missing {
		if dst[f.Name] {
			continue
		}
		out = append(out, f)
		dst[f.Name] = true
	}
	return out, nil
}
