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

//go:build !integration

package obslog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/obslog"
)

func TestNewReturnsUsableLogger(t *testing.T) {
	t.Parallel()

	logger := obslog.New("reader")
	require.NotNil(t, logger)

	assert.NotPanics(t, func() {
		logger.Info("read started", "path", "widgets.yaml")
		logger.Warn("deprecated field", "field", "x-internal")
		logger.Error("read failed", "err", "boom")
		logger.Debug("cache hit", "key", "Widget")
	})
}

func TestWithReturnsChildLoggerCarryingFields(t *testing.T) {
	t.Parallel()

	logger := obslog.New("builder")
	child := logger.With("schema", "Widget")
	require.NotNil(t, child)

	assert.NotPanics(t, func() {
		child.Info("schema resolved")
	})
}

func TestStartSpanReturnsContextAndEndFunc(t *testing.T) {
	t.Parallel()

	logger := obslog.New("generate")
	ctx, end := logger.StartSpan(context.Background(), obslog.PhaseGenerate, "synthesizeTests")
	require.NotNil(t, ctx)
	require.NotNil(t, end)

	assert.NotPanics(t, end)
}

func TestPhaseConstantsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, obslog.PhaseParse, obslog.PhaseAnalyze)
	assert.NotEqual(t, obslog.PhaseAnalyze, obslog.PhaseGenerate)
	assert.Equal(t, obslog.Phase("parse"), obslog.PhaseParse)
}
