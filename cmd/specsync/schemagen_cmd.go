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
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"

	"github.com/offscale/cdd/cst"
	"github.com/offscale/cdd/oas/export"
	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/specerrors"
	"github.com/offscale/cdd/typemap"
)

// infoFlags mirrors the `--info-*` flag family; mapstructure decodes the
// flag set into this struct the same way the teacher's config package
// decodes layered config sources into a typed struct.
type infoFlags struct {
	Title       string `mapstructure:"title"`
	Version     string `mapstructure:"version"`
	Description string `mapstructure:"description"`
}

func newSchemaGenCmd() *cobra.Command {
	var sourcePath, name string
	var asJSON bool
	var infoTitle, infoVersion, infoDescription string

	cmd := &cobra.Command{
		Use:   "schema-gen",
		Short: "Reflect a Go source tree into an OpenAPI document",
		RunE: func(_ *cobra.Command, _ []string) error {
			flags := map[string]any{"title": infoTitle, "version": infoVersion, "description": infoDescription}
			var decoded infoFlags
			if err := mapstructure.Decode(flags, &decoded); err != nil {
				return specerrors.Diagnostics{{Category: specerrors.CategoryInput, Code: "BadInfoFlags", Message: err.Error()}}.Err()
			}
			return runSchemaGen(sourcePath, name, decoded, asJSON)
		},
	}
	cmd.Flags().StringVar(&sourcePath, "source-path", "", "path to the Go source file or directory to reflect")
	cmd.Flags().StringVar(&name, "name", "", "name of the root struct to reflect")
	cmd.Flags().BoolVar(&asJSON, "openapi", false, "emit JSON instead of YAML")
	cmd.Flags().StringVar(&infoTitle, "info-title", "Generated API", "info.title for the emitted document")
	cmd.Flags().StringVar(&infoVersion, "info-version", "0.0.0", "info.version for the emitted document")
	cmd.Flags().StringVar(&infoDescription, "info-description", "", "info.description for the emitted document")
	_ = cmd.MarkFlagRequired("source-path")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runSchemaGen(sourcePath, name string, info infoFlags, asJSON bool) error {
	structs, err := collectStructs(sourcePath)
	if err != nil {
		return specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "ReadFailed", Message: err.Error(), File: sourcePath}}.Err()
	}

	root, ok := structs[name]
	if !ok {
		return specerrors.Diagnostics{{Category: specerrors.CategoryResolution, Code: "UnknownStruct", Message: fmt.Sprintf("no struct named %s under %s", name, sourcePath)}}.Err()
	}

	schemas := map[string]*model.Schema{}
	for structName, st := range structs {
		schemas[structName] = typemap.ReflectStruct(st)
	}

	doc := &model.Document{
		OpenAPIVersion: "3.2.0",
		Info:           model.Info{Title: info.Title, Version: info.Version, Description: info.Description},
		Schemas:        schemas,
		Routes: []*model.Route{{
			Method: "GET", PathTemplate: "/" + strings.ToLower(name), OperationID: "get" + name,
			Responses: map[string]*model.Response{
				"200": {Description: "OK", Content: map[string]*model.Body{
					"application/json": {Schema: &model.Schema{Kind: model.KindRef, Ref: name}},
				}},
			},
		}},
	}
	_ = root

	spec := export.Project(doc)
	var out []byte
	if asJSON {
		out, err = export.MarshalJSON(spec)
	} else {
		out, err = export.MarshalYAML(spec)
	}
	if err != nil {
		return specerrors.Diagnostics{{Category: specerrors.CategoryMapping, Code: "EmitFailed", Message: err.Error()}}.Err()
	}

	_, writeErr := os.Stdout.Write(out)
	return writeErr
}

// collectStructs parses every .go file directly under sourcePath (or
// sourcePath itself if it names a file) and returns every top-level struct
// type found, keyed by name.
func collectStructs(sourcePath string) (map[string]*ast.StructType, error) {
	var paths []string
	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		entries, err := os.ReadDir(sourcePath)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".go") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			paths = append(paths, filepath.Join(sourcePath, n))
		}
	} else {
		paths = []string{sourcePath}
	}

	out := map[string]*ast.StructType{}
	for _, p := range paths {
		parsed, err := cst.Parse(p)
		if err != nil {
			return nil, err
		}
		for _, s := range parsed.Structs() {
			out[s.Name] = s.Type
		}
	}
	return out, nil
}
