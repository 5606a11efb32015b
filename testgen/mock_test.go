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

package testgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/testgen"
)

func TestMockObjectIncludesOnlyRequiredFields(t *testing.T) {
	t.Parallel()

	schema := &model.Schema{
		Kind:     model.KindObject,
		Required: []string{"id"},
		Properties: map[string]*model.Schema{
			"id":   {Kind: model.KindString, Format: "uuid"},
			"note": {Kind: model.KindString},
		},
	}

	got := testgen.Mock(schema)
	obj, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "id")
	assert.NotContains(t, obj, "note")
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", obj["id"])
}

func TestMockArrayRespectsMinItems(t *testing.T) {
	t.Parallel()

	minItems := 2
	schema := &model.Schema{Kind: model.KindArray, Items: &model.Schema{Kind: model.KindInteger}, MinItems: &minItems}
	got := testgen.Mock(schema)
	arr, ok := got.([]any)
	require.True(t, ok)
	assert.Len(t, arr, 2)
}

func TestMockOneOfPicksFirstVariant(t *testing.T) {
	t.Parallel()

	schema := &model.Schema{
		Kind: model.KindOneOf,
		Variants: []*model.Schema{
			{Kind: model.KindString},
			{Kind: model.KindInteger},
		},
	}
	assert.Equal(t, "test", testgen.Mock(schema))
}

func TestMockExampleOverridesSynthesis(t *testing.T) {
	t.Parallel()

	schema := &model.Schema{Kind: model.KindString, Example: "literal"}
	assert.Equal(t, "literal", testgen.Mock(schema))
}

func TestMockDateTimeIsFixed(t *testing.T) {
	t.Parallel()

	schema := &model.Schema{Kind: model.KindString, Format: "date-time"}
	assert.Equal(t, "2024-01-01T00:00:00Z", testgen.Mock(schema))
}
