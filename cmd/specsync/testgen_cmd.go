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

	"github.com/offscale/cdd/backend"
	"github.com/offscale/cdd/oas/internal/build"
	"github.com/offscale/cdd/oas/reader"
	"github.com/offscale/cdd/oas/validate"
	"github.com/offscale/cdd/specerrors"
	"github.com/offscale/cdd/testgen"
)

func newTestGenCmd() *cobra.Command {
	var openapiPath, outputPath, appFactory string

	cmd := &cobra.Command{
		Use:   "test-gen",
		Short: "Synthesize a contract test file from an OpenAPI document",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTestGen(openapiPath, outputPath, appFactory)
		},
	}
	cmd.Flags().StringVar(&openapiPath, "openapi-path", "", "path to the OpenAPI document")
	cmd.Flags().StringVar(&outputPath, "output-path", "", "path to write the generated test file")
	cmd.Flags().StringVar(&appFactory, "app-factory", "", "expression constructing the app under test")
	_ = cmd.MarkFlagRequired("openapi-path")
	_ = cmd.MarkFlagRequired("output-path")
	_ = cmd.MarkFlagRequired("app-factory")

	return cmd
}

func runTestGen(openapiPath, outputPath, appFactory string) error {
	result, err := reader.Read(openapiPath)
	if err != nil {
		return specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "ReadFailed", Message: err.Error(), File: openapiPath}}.Err()
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

	strategy := customAppFactoryStrategy{backend.RouterStrategy{}, appFactory}
	source, err := testgen.Generate(doc, testgen.Config{PackageName: filepath.Base(filepath.Dir(outputPath)), Strategy: strategy})
	if err != nil {
		return specerrors.Diagnostics{{Category: specerrors.CategoryMapping, Code: "GenerateFailed", Message: err.Error()}}.Err()
	}

	if err := os.WriteFile(outputPath, []byte(source), 0o644); err != nil {
		return specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "WriteFailed", Message: err.Error(), File: outputPath}}.Err()
	}
	return nil
}

// customAppFactoryStrategy overrides AppFactoryInvocation to the exact
// expression the caller asked for via --app-factory, while reusing the
// teacher-idiom router strategy for everything else.
type customAppFactoryStrategy struct {
	backend.RouterStrategy
	expr string
}

func (s customAppFactoryStrategy) AppFactoryInvocation() string { return s.expr }
