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

package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/oas/internal/build"
	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/specerrors"
)

func sampleRoot() map[string]any {
	return map[string]any{
		"openapi": "3.2.0",
		"info":    map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets/{id}": map[string]any{
				"parameters": []any{
					map[string]any{"name": "id", "in": "path", "schema": map[string]any{"type": "string"}},
				},
				"get": map[string]any{
					"operationId": "getWidget",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"$ref": "#/components/schemas/Widget"},
								},
							},
						},
					},
				},
			},
			"/widgets": map[string]any{
				"post": map[string]any{
					"operationId": "createWidget",
					"responses": map[string]any{
						"201": map[string]any{"description": "Created"},
					},
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Widget": map[string]any{
					"type":     "object",
					"required": []any{"id"},
					"properties": map[string]any{
						"id":   map[string]any{"type": "string", "format": "uuid"},
						"name": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func TestBuildOrdersRoutesDeterministically(t *testing.T) {
	t.Parallel()

	var diags specerrors.Diagnostics
	doc := build.Build(sampleRoot(), &diags)
	require.Empty(t, diags)
	require.Len(t, doc.Routes, 2)

	assert.Equal(t, "/widgets", doc.Routes[0].PathTemplate)
	assert.Equal(t, "POST", doc.Routes[0].Method)
	assert.Equal(t, "/widgets/{id}", doc.Routes[1].PathTemplate)
	assert.Equal(t, "GET", doc.Routes[1].Method)
}

func TestBuildInheritsPathLevelParameters(t *testing.T) {
	t.Parallel()

	var diags specerrors.Diagnostics
	doc := build.Build(sampleRoot(), &diags)
	route := doc.Routes[1]
	require.Len(t, route.Parameters, 1)
	assert.Equal(t, "id", route.Parameters[0].Name)
	assert.True(t, route.Parameters[0].Required)
}

func TestBuildResolvesNamedSchemas(t *testing.T) {
	t.Parallel()

	var diags specerrors.Diagnostics
	doc := build.Build(sampleRoot(), &diags)
	widget, ok := doc.Schemas["Widget"]
	require.True(t, ok)
	assert.Equal(t, model.KindObject, widget.Kind)
	assert.Contains(t, widget.Required, "id")
	assert.Equal(t, "uuid", widget.Properties["id"].Format)
}

func TestBuildResolvesNonCyclicRefToFullSchema(t *testing.T) {
	t.Parallel()

	var diags specerrors.Diagnostics
	doc := build.Build(sampleRoot(), &diags)
	route := doc.Routes[1] // GET /widgets/{id}
	schema := route.Responses["200"].Content["application/json"].Schema
	require.NotNil(t, schema)
	assert.Equal(t, model.KindObject, schema.Kind)
	assert.Equal(t, "Widget", schema.Ref)
	assert.Contains(t, schema.Properties, "id")
}

func TestBuildSelfReferentialSchemaTerminatesWithRefNode(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"openapi": "3.2.0",
		"info":    map[string]any{"title": "Tree", "version": "1.0.0"},
		"paths":   map[string]any{},
		"components": map[string]any{
			"schemas": map[string]any{
				"Node": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"children": map[string]any{
							"type":  "array",
							"items": map[string]any{"$ref": "#/components/schemas/Node"},
						},
					},
				},
			},
		},
	}

	var diags specerrors.Diagnostics
	doc := build.Build(root, &diags)
	require.Empty(t, diags)

	node, ok := doc.Schemas["Node"]
	require.True(t, ok)
	childItems := node.Properties["children"].Items
	require.NotNil(t, childItems)
	assert.Equal(t, model.KindRef, childItems.Kind)
	assert.Equal(t, "Node", childItems.Ref)
}
