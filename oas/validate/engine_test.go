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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/oas/validate"
)

const widgetMetaSchema = `{
	"$id": "oas-test.json",
	"type": "object",
	"required": ["openapi"],
	"properties": {
		"openapi": {"type": "string"}
	}
}`

func TestEngineValidateMetaSchemaAcceptsConformantDocument(t *testing.T) {
	t.Parallel()

	engine := validate.New()
	diag := engine.ValidateMetaSchema(context.Background(), "test", []byte(widgetMetaSchema), []byte(`{"openapi":"3.2.0"}`))
	assert.Nil(t, diag)
}

func TestEngineValidateMetaSchemaRejectsMissingRequiredField(t *testing.T) {
	t.Parallel()

	engine := validate.New()
	diag := engine.ValidateMetaSchema(context.Background(), "test2", []byte(widgetMetaSchema), []byte(`{}`))
	require.NotNil(t, diag)
	assert.Equal(t, "MetaSchemaViolation", diag.Code)
}

func TestEngineValidateMetaSchemaReportsMalformedDocument(t *testing.T) {
	t.Parallel()

	engine := validate.New()
	diag := engine.ValidateMetaSchema(context.Background(), "test3", []byte(widgetMetaSchema), []byte(`not json`))
	require.NotNil(t, diag)
	assert.Equal(t, "MalformedDocument", diag.Code)
}

func TestEngineValidateMetaSchemaReportsLoadFailure(t *testing.T) {
	t.Parallel()

	engine := validate.New()
	diag := engine.ValidateMetaSchema(context.Background(), "test4", []byte(`not a schema`), []byte(`{}`))
	require.NotNil(t, diag)
	assert.Equal(t, "MetaSchemaLoadFailed", diag.Code)
}
