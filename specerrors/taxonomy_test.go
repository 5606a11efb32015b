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

package specerrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/specerrors"
)

func TestDiagnosticsExitCodePrioritizesIOOverValidation(t *testing.T) {
	t.Parallel()

	var ds specerrors.Diagnostics
	ds.Add(specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "Bad"})
	ds.Add(specerrors.Diagnostic{Category: specerrors.CategoryIO, Code: "ReadFailed"})
	assert.Equal(t, 5, ds.ExitCode())
}

func TestDiagnosticsExitCodeEmptyIsZero(t *testing.T) {
	t.Parallel()

	var ds specerrors.Diagnostics
	assert.Equal(t, 0, ds.ExitCode())
}

func TestDiagnosticsErrAndAsDiagnosticsRoundTrip(t *testing.T) {
	t.Parallel()

	ds := specerrors.Diagnostics{{Category: specerrors.CategoryInput, Code: "Bad", Message: "oops"}}
	err := ds.Err()
	require.Error(t, err)

	recovered, ok := specerrors.AsDiagnostics(err)
	require.True(t, ok)
	assert.Equal(t, ds, recovered)
}

func TestEmptyDiagnosticsErrIsNil(t *testing.T) {
	t.Parallel()

	var ds specerrors.Diagnostics
	assert.NoError(t, ds.Err())
}

func TestAsDiagnosticsRejectsPlainError(t *testing.T) {
	t.Parallel()

	_, ok := specerrors.AsDiagnostics(assertionError{})
	assert.False(t, ok)
}

type assertionError struct{}

func (assertionError) Error() string { return "plain" }

func TestDiagnosticProblemShape(t *testing.T) {
	t.Parallel()

	d := specerrors.Diagnostic{Category: specerrors.CategoryValidation, Code: "BadStyle", Message: "simple only", Pointer: "#/paths/~1x"}
	p := d.Problem("https://example.com/errors")
	assert.Equal(t, "https://example.com/errors/validation/BadStyle", p.Type)
	assert.Equal(t, "#/paths/~1x", p.Instance)
}
