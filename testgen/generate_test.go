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

	"github.com/offscale/cdd/backend"
	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/testgen"
)

func sampleDocument() *model.Document {
	return &model.Document{
		Routes: []*model.Route{
			{
				Method:       "GET",
				PathTemplate: "/widgets/{id}",
				OperationID:  "getWidget",
				Parameters: []*model.Param{
					{Name: "id", In: model.InPath, Required: true, Schema: &model.Schema{Kind: model.KindString}},
				},
				Responses: map[string]*model.Response{
					"200": {Description: "OK", Content: map[string]*model.Body{
						"application/json": {Schema: &model.Schema{Kind: model.KindObject, Properties: map[string]*model.Schema{
							"id": {Kind: model.KindString},
						}}},
					}},
				},
			},
			{
				Method:       "POST",
				PathTemplate: "/hooks/created",
				OperationID:  "onCreated",
				Webhook:      true,
				Responses:    map[string]*model.Response{"200": {Description: "OK"}},
			},
		},
	}
}

func TestGenerateSkipsWebhooksAndEmitsOneTestPerOperation(t *testing.T) {
	t.Parallel()

	src, err := testgen.Generate(sampleDocument(), testgen.Config{PackageName: "apitest", Strategy: backend.RouterStrategy{}})
	require.NoError(t, err)

	assert.Contains(t, src, "package apitest")
	assert.Contains(t, src, "func Test_getWidget(t *testing.T)")
	assert.NotContains(t, src, "onCreated")
	assert.Contains(t, src, `url := "/widgets/test"`)
	assert.Contains(t, src, "jsonschema.NewCompiler()")
	assert.Contains(t, src, `statusMatches(rec.Code, []string{"200"})`)
}

func linkDocument() *model.Document {
	return &model.Document{
		Routes: []*model.Route{
			{
				Method:       "POST",
				PathTemplate: "/widgets",
				OperationID:  "createWidget",
				Responses: map[string]*model.Response{
					"201": {
						Description: "Created",
						Links: map[string]*model.Link{
							"GetWidget": {
								OperationID: "getWidget",
								Parameters:  map[string]string{"id": "$response.body#/id"},
							},
						},
					},
				},
			},
			{
				Method:       "GET",
				PathTemplate: "/widgets/{id}",
				OperationID:  "getWidget",
				Parameters: []*model.Param{
					{Name: "id", In: model.InPath, Required: true, Schema: &model.Schema{Kind: model.KindString}},
				},
				Responses: map[string]*model.Response{
					"200": {Description: "OK"},
				},
			},
		},
	}
}

func TestGenerateEmitsLinkFollowupRequest(t *testing.T) {
	t.Parallel()

	src, err := testgen.Generate(linkDocument(), testgen.Config{PackageName: "apitest", Strategy: backend.RouterStrategy{}})
	require.NoError(t, err)

	assert.Contains(t, src, `"github.com/offscale/cdd/testgen"`)
	assert.Contains(t, src, "linkCtx := &testgen.LinkContext{")
	assert.Contains(t, src, `linkCtx.ResolveTemplate("/widgets/{$response.body#/id}")`)
	assert.Contains(t, src, `statusMatches(followRec.Code, []string{"200"})`)
}

func wildcardDocument() *model.Document {
	return &model.Document{
		Routes: []*model.Route{
			{
				Method:       "GET",
				PathTemplate: "/widgets",
				OperationID:  "listWidgets",
				Responses: map[string]*model.Response{
					"2XX":     {Description: "success"},
					"default": {Description: "error"},
				},
			},
		},
	}
}

func TestGenerateEmitsWildcardAndDefaultStatusLiteral(t *testing.T) {
	t.Parallel()

	src, err := testgen.Generate(wildcardDocument(), testgen.Config{PackageName: "apitest", Strategy: backend.RouterStrategy{}})
	require.NoError(t, err)

	assert.Contains(t, src, `statusMatches(rec.Code, []string{"2XX", "default"})`)
	assert.Contains(t, src, "func statusMatches(code int, declared []string) bool {")
}
