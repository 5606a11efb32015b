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

	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/testgen"
)

func TestSerializeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   model.Style
		explode bool
		values  []string
		want    string
	}{
		{"form no explode", model.StyleForm, false, []string{"a", "b"}, "color=a,b"},
		{"form explode", model.StyleForm, true, []string{"a", "b"}, "color=a&color=b"},
		{"spaceDelimited", model.StyleSpaceDelimited, false, []string{"a", "b"}, "color=a+b"},
		{"pipeDelimited no explode", model.StylePipeDelimited, false, []string{"a", "b"}, "color=a%7Cb"},
		{"pipeDelimited explode", model.StylePipeDelimited, true, []string{"a", "b"}, "color=a&color=b"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := testgen.SerializeQuery("color", tt.values, tt.style, tt.explode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeQueryDeepObject(t *testing.T) {
	t.Parallel()

	got := testgen.SerializeQuery("filter", []string{"status", "open"}, model.StyleDeepObject, true)
	assert.Equal(t, "filter[status]=open", got)
}

func TestSerializePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5", testgen.SerializePath("id", []string{"5"}, model.StyleSimple))
	assert.Equal(t, ".5", testgen.SerializePath("id", []string{"5"}, model.StyleLabel))
	assert.Equal(t, ";id=5", testgen.SerializePath("id", []string{"5"}, model.StyleMatrix))
}

func TestSerializeHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a,b", testgen.SerializeHeader([]string{"a", "b"}))
}

func TestSerializeCookie(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a,b"}, testgen.SerializeCookie([]string{"a", "b"}, false))
	assert.Equal(t, []string{"a", "b"}, testgen.SerializeCookie([]string{"a", "b"}, true))
}
