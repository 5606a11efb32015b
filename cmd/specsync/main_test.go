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

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/offscale/cdd/specerrors"
)

func TestExitCodeForDiagnostics(t *testing.T) {
	t.Parallel()

	err := specerrors.Diagnostics{{Category: specerrors.CategoryIO, Code: "ReadFailed"}}.Err()
	assert.Equal(t, exitIOFailure, exitCodeFor(err))
}

func TestExitCodeForPlainErrorIsUsage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, exitUsage, exitCodeFor(errors.New("boom")))
}

func TestExitCodeForPatchConflict(t *testing.T) {
	t.Parallel()

	err := specerrors.Diagnostics{{Category: specerrors.CategoryPatch, Code: "Conflict"}}.Err()
	assert.Equal(t, exitPatchConflict, exitCodeFor(err))
}
