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

package validate

import (
	"bytes"
	"context"
	"errors"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/offscale/cdd/specerrors"
)

// ErrNoValidator indicates no JSON Schema validator is configured.
var ErrNoValidator = errors.New("no JSON Schema validator configured")

// Engine validates a document against the official OAS meta-schema
// (structural conformance). It runs independently of [Document]'s
// cross-entity rules, and the specsync commands do not call it.
//
// The caller supplies the meta-schema bytes for the resolved version (the
// core does not embed them, matching the "delegated, external input"
// posture of §1's Out-of-scope list for anything not named as a core
// responsibility); this mirrors the teacher's [validate.Engine], which
// takes schema bytes as a parameter rather than bundling them.
type Engine struct {
	compiler *jsonschema.Compiler
}

// New creates a validation engine.
func New() *Engine {
	return &Engine{compiler: jsonschema.NewCompiler()}
}

// ValidateMetaSchema validates docJSON against the OAS meta-schema bytes
// for version (e.g. "3.0" or "3.1"). A nil return means the document is
// structurally conformant.
func (e *Engine) ValidateMetaSchema(ctx context.Context, version string, metaSchemaJSON, docJSON []byte) *specerrors.Diagnostic {
	if e.compiler == nil {
		return &specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "NoValidator", Message: ErrNoValidator.Error()}
	}
	name := "oas-" + version + ".json"
	if err := e.compiler.AddResource(name, bytes.NewReader(metaSchemaJSON)); err != nil {
		return &specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "MetaSchemaLoadFailed", Message: err.Error()}
	}
	schema, err := e.compiler.Compile(name)
	if err != nil {
		return &specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "MetaSchemaCompileFailed", Message: err.Error()}
	}
	var doc any
	if err := jsonschema.UnmarshalJSON(bytes.NewReader(docJSON), &doc); err != nil {
		return &specerrors.Diagnostic{Category: specerrors.CategoryInput, Code: "MalformedDocument", Message: err.Error()}
	}
	if err := schema.Validate(doc); err != nil {
		return &specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "MetaSchemaViolation", Message: err.Error()}
	}
	return nil
}
