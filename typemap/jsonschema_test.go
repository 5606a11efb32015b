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

package typemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/typemap"
)

func TestToJSONSchemaObject(t *testing.T) {
	t.Parallel()

	minLen := 1
	schema := &model.Schema{
		Kind:     model.KindObject,
		Required: []string{"name"},
		Properties: map[string]*model.Schema{
			"name": {Kind: model.KindString, MinLength: &minLen},
			"age":  {Kind: model.KindInteger},
		},
		DenyUnknown: true,
	}

	out := typemap.ToJSONSchema(schema)
	assert.Equal(t, "object", out["type"])
	assert.Equal(t, []string{"name"}, out["required"])
	assert.Equal(t, false, out["additionalProperties"])

	props, ok := out["properties"].(map[string]any)
	require.True(t, ok)
	nameSchema, ok := props["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", nameSchema["type"])
	assert.Equal(t, 1, nameSchema["minLength"])
}

func TestToJSONSchemaNullableWrapsType(t *testing.T) {
	t.Parallel()

	out := typemap.ToJSONSchema(&model.Schema{Kind: model.KindString, Nullable: true})
	assert.Equal(t, []any{"string", "null"}, out["type"])
}

func TestToJSONSchemaBoolFalse(t *testing.T) {
	t.Parallel()

	out := typemap.ToJSONSchema(&model.Schema{Kind: model.KindBoolFalse})
	assert.Equal(t, map[string]any{"not": map[string]any{}}, out)
}

func TestToJSONSchemaRef(t *testing.T) {
	t.Parallel()

	out := typemap.ToJSONSchema(&model.Schema{Kind: model.KindRef, Ref: "Widget"})
	assert.Equal(t, "#/components/schemas/Widget", out["$ref"])
}
