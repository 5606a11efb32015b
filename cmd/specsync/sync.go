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

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/offscale/cdd/cst"
	"github.com/offscale/cdd/dbsync"
	"github.com/offscale/cdd/oas/internal/build"
	"github.com/offscale/cdd/oas/reader"
	"github.com/offscale/cdd/oas/validate"
	"github.com/offscale/cdd/obslog"
	"github.com/offscale/cdd/specerrors"
)

func newSyncCmd() *cobra.Command {
	var schemaPath, modelDir string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Patch a DB->struct tool's output to match an OpenAPI document's schemas",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runSync(cobraCmd, schemaPath, modelDir)
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema-path", "", "path to the OpenAPI document")
	cmd.Flags().StringVar(&modelDir, "model-dir", "", "directory of DB-tool-generated Go model files")
	_ = cmd.MarkFlagRequired("schema-path")
	_ = cmd.MarkFlagRequired("model-dir")

	return cmd
}

func runSync(cobraCmd *cobra.Command, schemaPath, modelDir string) error {
	logger := obslog.New("sync")
	_, end := logger.StartSpan(cobraCmd.Context(), obslog.PhaseAnalyze, "sync")
	defer end()

	result, err := reader.Read(schemaPath)
	if err != nil {
		return specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "ReadFailed", Message: err.Error(), File: schemaPath}}.Err()
	}
	diags := result.Diagnostics
	if diags.HasCategory(specerrors.CategoryInput) || diags.HasCategory(specerrors.CategoryResolution) {
		return diags.Err()
	}

	root, _ := result.Root.(map[string]any)
	diags = append(diags, validate.Document(root)...)
	if len(diags) > 0 {
		return diags.Err()
	}

	doc := build.Build(root, &diags)
	if len(diags) > 0 {
		return diags.Err()
	}

	files, err := dbsync.DiscoverTableFiles(modelDir, doc.Schemas)
	if err != nil {
		return specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "ReadFailed", Message: err.Error(), File: modelDir}}.Err()
	}

	for _, table := range files {
		edits, err := dbsync.Patch(table, &diags)
		if err != nil {
			return specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "PatchFailed", Message: err.Error(), File: table.Path}}.Err()
		}
		if len(edits) == 0 {
			continue
		}
		if err := applyAtomically(table.Path, edits); err != nil {
			return specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "WriteFailed", Message: err.Error(), File: table.Path}}.Err()
		}
		logger.Info("patched table struct", "file", table.Path, "fields_added", len(edits))
	}

	if len(diags) > 0 {
		return diags.Err()
	}
	return nil
}

// applyAtomically applies edits to path, writing the result to a temp file
// in the same directory and renaming it over the original (§5 "Resource
// policy": no half-written files on crash).
func applyAtomically(path string, edits []cst.Edit) error {
	parsed, err := cst.Parse(path)
	if err != nil {
		return err
	}
	result := cst.Apply(parsed.Src, edits)

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(result); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
