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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/offscale/cdd/oas/model"
)

func TestDiscriminatorVariantForUsesMapping(t *testing.T) {
	t.Parallel()

	d := &model.Discriminator{
		Mapping:        map[string]string{"cat": "#/components/schemas/Cat"},
		DefaultMapping: "#/components/schemas/Animal",
	}
	assert.Equal(t, "#/components/schemas/Cat", d.VariantFor("cat"))
}

func TestDiscriminatorVariantForFallsBackToDefaultMapping(t *testing.T) {
	t.Parallel()

	d := &model.Discriminator{
		Mapping:        map[string]string{"cat": "#/components/schemas/Cat"},
		DefaultMapping: "#/components/schemas/Animal",
	}
	assert.Equal(t, "#/components/schemas/Animal", d.VariantFor("dog"))
}

func TestDiscriminatorVariantForNilReceiverReturnsEmpty(t *testing.T) {
	t.Parallel()

	var d *model.Discriminator
	assert.Equal(t, "", d.VariantFor("cat"))
}

func TestDiscriminatorVariantForNoMappingNoDefaultReturnsEmpty(t *testing.T) {
	t.Parallel()

	d := &model.Discriminator{Mapping: map[string]string{}}
	assert.Equal(t, "", d.VariantFor("cat"))
}

func TestBodyEffectiveReturnsSchemaWhenNoItemSchema(t *testing.T) {
	t.Parallel()

	schema := &model.Schema{Kind: model.KindObject}
	b := &model.Body{Schema: schema}
	assert.Same(t, schema, b.Effective())
}

func TestBodyEffectiveWrapsItemSchemaAsSequentialArray(t *testing.T) {
	t.Parallel()

	item := &model.Schema{Kind: model.KindString}
	b := &model.Body{ItemSchema: item}

	eff := b.Effective()
	assert.Equal(t, model.KindArray, eff.Kind)
	assert.Same(t, item, eff.Items)
	assert.True(t, eff.SequentialMedia)
}
