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

package rawdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/oas/rawdoc"
)

func TestLookupTraversesMapsAndSlices(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Widget": map[string]any{
					"required": []any{"id", "name"},
				},
			},
		},
	}

	v, ok := rawdoc.Lookup(root, "#/components/schemas/Widget/required/1")
	require.True(t, ok)
	assert.Equal(t, "name", v)
}

func TestLookupEscapesTildeAndSlash(t *testing.T) {
	t.Parallel()

	root := map[string]any{"a/b": map[string]any{"c~d": "value"}}
	v, ok := rawdoc.Lookup(root, "#/a~1b/c~0d")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestLookupMissingKeyReturnsFalse(t *testing.T) {
	t.Parallel()

	root := map[string]any{"a": 1}
	_, ok := rawdoc.Lookup(root, "#/b")
	assert.False(t, ok)
}

func TestLookupEmptyPointerReturnsRoot(t *testing.T) {
	t.Parallel()

	root := map[string]any{"a": 1}
	v, ok := rawdoc.Lookup(root, "#")
	require.True(t, ok)
	assert.Equal(t, root, v)
}

func TestNormalizeConvertsYAMLMapKeys(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"nested": map[any]any{"k": "v"},
		"list":   []any{map[any]any{"x": 1}},
	}
	out := rawdoc.Normalize(in).(map[string]any)

	nested, ok := out["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v", nested["k"])

	list, ok := out["list"].([]any)
	require.True(t, ok)
	item, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, item["x"])
}
