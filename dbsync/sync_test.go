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

package dbsync_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/cst"
	"github.com/offscale/cdd/dbsync"
	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/specerrors"
)

const widgetTableSrc = `package models

type Widget struct {
	ID   string ` + "`json:\"id\"`" + `
	Name string ` + "`json:\"name\"`" + `
}
`

func TestDiscoverTableFilesMatchesByStructName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.go"), []byte(widgetTableSrc), 0o644))

	schemas := map[string]*model.Schema{
		"Widget": {Kind: model.KindObject, Properties: map[string]*model.Schema{"id": {Kind: model.KindString}}},
	}
	files, err := dbsync.DiscoverTableFiles(dir, schemas)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Widget", files[0].StructName)
}

func TestDiscoverTableFilesSkipsUnmatchedStructs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.go"), []byte(widgetTableSrc), 0o644))

	files, err := dbsync.DiscoverTableFiles(dir, map[string]*model.Schema{})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPatchAddsMissingFieldOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "widget.go")
	require.NoError(t, os.WriteFile(path, []byte(widgetTableSrc), 0o644))

	table := dbsync.TableFile{
		Path:       path,
		StructName: "Widget",
		Schema: &model.Schema{
			Kind: model.KindObject,
			Properties: map[string]*model.Schema{
				"id":    {Kind: model.KindString},
				"name":  {Kind: model.KindString},
				"price": {Kind: model.KindNumber},
			},
		},
	}

	var diags specerrors.Diagnostics
	edits, err := dbsync.Patch(table, &diags)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, edits, 1)

	parsed, err := cst.Parse(path)
	require.NoError(t, err)
	out := cst.Apply(parsed.Src, edits)
	assert.Contains(t, string(out), "Price *float64")
}

func TestPatchReportsMissingStruct(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "widget.go")
	require.NoError(t, os.WriteFile(path, []byte(widgetTableSrc), 0o644))

	table := dbsync.TableFile{Path: path, StructName: "NoSuchStruct", Schema: &model.Schema{Kind: model.KindObject}}

	var diags specerrors.Diagnostics
	edits, err := dbsync.Patch(table, &diags)
	require.NoError(t, err)
	assert.Nil(t, edits)
	require.Len(t, diags, 1)
	assert.Equal(t, "MissingTableStruct", diags[0].Code)
}
