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

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/offscale/cdd/oas/validate"
)

func baseDoc() map[string]any {
	return map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"get": map[string]any{
					"operationId": "listWidgets",
					"responses": map[string]any{
						"200": map[string]any{"description": "OK"},
					},
				},
			},
		},
	}
}

func findCode(t *testing.T, root map[string]any, code string) bool {
	t.Helper()
	for _, d := range validate.Document(root) {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestDocumentAcceptsMinimalValidDocument(t *testing.T) {
	t.Parallel()

	diags := validate.Document(baseDoc())
	assert.Empty(t, diags)
}

func TestDocumentFlagsDuplicateOperationID(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"get": map[string]any{
					"operationId": "sameId",
					"responses":   map[string]any{"200": map[string]any{"description": "OK"}},
				},
			},
			"/gadgets": map[string]any{
				"get": map[string]any{
					"operationId": "sameId",
					"responses":   map[string]any{"200": map[string]any{"description": "OK"}},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "DuplicateOperationID"))
}

func TestDocumentFlagsTemplatedPathConflict(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets/{id}": map[string]any{
				"get": map[string]any{"operationId": "getById", "responses": map[string]any{"200": map[string]any{"description": "OK"}}},
			},
			"/widgets/{widgetId}": map[string]any{
				"get": map[string]any{"operationId": "getByWidgetId", "responses": map[string]any{"200": map[string]any{"description": "OK"}}},
			},
		},
	}
	assert.True(t, findCode(t, root, "TemplatedPathConflict"))
}

func TestDocumentFlagsMissingResponses(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"get": map[string]any{"operationId": "listWidgets"},
			},
		},
	}
	assert.True(t, findCode(t, root, "MissingResponses"))
}

func TestDocumentFlagsExampleExamplesConflictOnRequestBody(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"post": map[string]any{
					"operationId": "createWidget",
					"requestBody": map[string]any{
						"content": map[string]any{
							"application/json": map[string]any{
								"example":  map[string]any{"id": "1"},
								"examples": map[string]any{"a": map[string]any{"value": map[string]any{"id": "1"}}},
							},
						},
					},
					"responses": map[string]any{"201": map[string]any{"description": "Created"}},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "ExampleExamplesConflict"))
}

func TestDocumentFlagsItemSchemaOnNonSequentialMedia(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"post": map[string]any{
					"operationId": "createWidget",
					"requestBody": map[string]any{
						"content": map[string]any{
							"application/json": map[string]any{
								"itemSchema": map[string]any{"type": "string"},
							},
						},
					},
					"responses": map[string]any{"201": map[string]any{"description": "Created"}},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "ItemSchemaOnNonSequentialMedia"))
}

func TestDocumentFlagsPathParamNotRequired(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets/{id}": map[string]any{
				"get": map[string]any{
					"operationId": "getWidget",
					"parameters": []any{
						map[string]any{"name": "id", "in": "path", "schema": map[string]any{"type": "string"}},
					},
					"responses": map[string]any{"200": map[string]any{"description": "OK"}},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "PathParamNotRequired"))
}

func TestDocumentFlagsIncompatibleDeepObjectStyle(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"get": map[string]any{
					"operationId": "listWidgets",
					"parameters": []any{
						map[string]any{
							"name": "filter", "in": "query", "style": "deepObject",
							"schema": map[string]any{"type": "string"},
						},
					},
					"responses": map[string]any{"200": map[string]any{"description": "OK"}},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "IncompatibleStyle"))
}

func TestDocumentFlagsInvalidHeaderStyle(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"get": map[string]any{
					"operationId": "listWidgets",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"headers": map[string]any{
								"X-Rate-Limit": map[string]any{
									"style":  "matrix",
									"schema": map[string]any{"type": "integer"},
								},
							},
						},
					},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "InvalidHeaderStyle"))
}

func TestDocumentFlagsUnresolvableDiscriminatorMapping(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info":  map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{},
		"components": map[string]any{
			"schemas": map[string]any{
				"Pet": map[string]any{
					"discriminator": map[string]any{
						"propertyName": "kind",
						"mapping":      map[string]any{"cat": "#/components/schemas/Cat"},
					},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "UnresolvableDiscriminatorMapping"))
}

func TestDocumentFlagsUndefinedSecurityScheme(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{
			"/widgets": map[string]any{
				"get": map[string]any{
					"operationId": "listWidgets",
					"security":    []any{map[string]any{"apiKey": []any{}}},
					"responses":   map[string]any{"200": map[string]any{"description": "OK"}},
				},
			},
		},
	}
	assert.True(t, findCode(t, root, "UndefinedSecurityScheme"))
}

func TestDocumentFlagsInvalidComponentKey(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info":  map[string]any{"title": "Widgets", "version": "1.0.0"},
		"paths": map[string]any{},
		"components": map[string]any{
			"schemas": map[string]any{
				"Bad Name!": map[string]any{"type": "object"},
			},
		},
	}
	assert.True(t, findCode(t, root, "InvalidComponentKey"))
}

func TestDocumentFlagsInvalidContactEmail(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"info": map[string]any{
			"title": "Widgets", "version": "1.0.0",
			"contact": map[string]any{"email": "not-an-email"},
		},
		"paths": map[string]any{},
	}
	assert.True(t, findCode(t, root, "InvalidContactEmail"))
}

func TestTemplatedPathConflictsIgnoresNonConflictingPaths(t *testing.T) {
	t.Parallel()

	diags := validate.TemplatedPathConflicts([]string{"/widgets/{id}", "/widgets"})
	assert.Empty(t, diags)
}

func TestValidLeadingSlash(t *testing.T) {
	t.Parallel()

	assert.True(t, validate.ValidLeadingSlash("/widgets"))
	assert.False(t, validate.ValidLeadingSlash("widgets"))
}
