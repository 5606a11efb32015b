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

package build

import (
	"fmt"
	"sort"

	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/oas/rawdoc"
	"github.com/offscale/cdd/specerrors"
)

// schemaBuilder builds [model.Schema] trees from the raw tree.
//
// Named component schemas are built exactly once into built[name] the
// first time they're requested (via [schemaBuilder.named]); any reference
// encountered while building them — including a reference to the name
// currently being built — resolves to a [model.KindRef] node rather than
// recursing, which is what makes a self-referential schema terminate
// (§9 "Cycles in IR": an arena keyed by name, not a pointer graph).
type schemaBuilder struct {
	rawSchemas map[string]any // components.schemas, raw
	built      map[string]*model.Schema
	building   map[string]bool
	diags      *specerrors.Diagnostics
}

func newSchemaBuilder(root map[string]any, diags *specerrors.Diagnostics) *schemaBuilder {
	components, _ := rawdoc.AsMap(root["components"])
	schemas, _ := rawdoc.AsMap(components["schemas"])
	return &schemaBuilder{
		rawSchemas: schemas,
		built:      map[string]*model.Schema{},
		building:   map[string]bool{},
		diags:      diags,
	}
}

// named builds (or returns the memoized build of) components.schemas[name].
func (sb *schemaBuilder) named(name string) *model.Schema {
	if s, ok := sb.built[name]; ok {
		return s
	}
	raw, ok := sb.rawSchemas[name]
	if !ok {
		sb.diags.Add(specerrors.Diagnostic{
			Category: specerrors.CategoryResolution, Code: "UnresolvedRef",
			Message: "schema component not found: " + name,
			Pointer: "#/components/schemas/" + name,
		})
		return &model.Schema{Kind: model.KindRef, Ref: name}
	}
	if sb.building[name] {
		// Re-entered while building: return a reference node instead of
		// recursing (self-referential schema, §8).
		return &model.Schema{Kind: model.KindRef, Ref: name}
	}
	sb.building[name] = true
	s := sb.build(raw)
	s.Ref = name
	sb.built[name] = s
	delete(sb.building, name)
	return s
}

// allNamed builds every component schema, for [model.Document.Schemas].
func (sb *schemaBuilder) allNamed() map[string]*model.Schema {
	names := make([]string, 0, len(sb.rawSchemas))
	for name := range sb.rawSchemas {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make(map[string]*model.Schema, len(names))
	for _, name := range names {
		out[name] = sb.named(name)
	}
	return out
}

func (sb *schemaBuilder) build(raw any) *model.Schema {
	if b, ok := raw.(bool); ok {
		if b {
			return &model.Schema{Kind: model.KindBoolTrue}
		}
		return &model.Schema{Kind: model.KindBoolFalse}
	}

	m, ok := rawdoc.AsMap(raw)
	if !ok {
		return &model.Schema{Kind: model.KindBoolTrue}
	}

	if ref, ok := rawdoc.AsString(m["$ref"]); ok {
		name := componentName(ref)
		return sb.named(name)
	}

	s := &model.Schema{
		Format:      stringField(m, "format"),
		Title:       stringField(m, "title"),
		Description: stringField(m, "description"),
		Deprecated:  boolField(m, "deprecated"),
		ReadOnly:    boolField(m, "readOnly"),
		WriteOnly:   boolField(m, "writeOnly"),
		Example:     m["example"],
		Pattern:     stringField(m, "pattern"),
	}
	if examples, ok := rawdoc.AsMap(m["examples"]); ok {
		s.Examples = examples
	}
	s.Nullable = sb.computeNullable(m)

	switch {
	case hasKey(m, "allOf"):
		sb.flattenAllOf(m, s)
	case hasKey(m, "oneOf"):
		sb.buildVariants(m, s, model.KindOneOf, "oneOf")
	case hasKey(m, "anyOf"):
		sb.buildVariants(m, s, model.KindAnyOf, "anyOf")
	default:
		sb.buildPrimitiveOrContainer(m, s)
	}
	return s
}

func (sb *schemaBuilder) computeNullable(m map[string]any) bool {
	if n, ok := m["nullable"].(bool); ok {
		return n
	}
	if types, ok := rawdoc.AsSlice(m["type"]); ok {
		for _, t := range types {
			if s, _ := rawdoc.AsString(t); s == "null" {
				return true
			}
		}
	}
	return false
}

func (sb *schemaBuilder) buildPrimitiveOrContainer(m map[string]any, s *model.Schema) {
	typ := primaryType(m)
	switch typ {
	case "string":
		s.Kind = model.KindString
		s.MinLength = intPtrField(m, "minLength")
		s.MaxLength = intPtrField(m, "maxLength")
	case "integer":
		s.Kind = model.KindInteger
		s.Minimum = floatPtrField(m, "minimum")
		s.Maximum = floatPtrField(m, "maximum")
		s.MultipleOf = floatPtrField(m, "multipleOf")
	case "number":
		s.Kind = model.KindNumber
		s.Minimum = floatPtrField(m, "minimum")
		s.Maximum = floatPtrField(m, "maximum")
		s.MultipleOf = floatPtrField(m, "multipleOf")
	case "boolean":
		s.Kind = model.KindBoolean
	case "array":
		s.Kind = model.KindArray
		s.MinItems = intPtrField(m, "minItems")
		s.MaxItems = intPtrField(m, "maxItems")
		if items, ok := m["items"]; ok {
			s.Items = sb.build(items)
		}
	case "object":
		sb.buildObject(m, s)
	default:
		if hasKey(m, "properties") || hasKey(m, "additionalProperties") {
			sb.buildObject(m, s)
		} else {
			s.Kind = model.KindBoolTrue
		}
	}
}

func (sb *schemaBuilder) buildObject(m map[string]any, s *model.Schema) {
	s.Kind = model.KindObject
	props, _ := rawdoc.AsMap(m["properties"])
	s.Properties = make(map[string]*model.Schema, len(props))
	order := make([]string, 0, len(props))
	for name := range props {
		order = append(order, name)
	}
	sort.Strings(order)
	for _, name := range order {
		s.Properties[name] = sb.build(props[name])
	}
	s.PropertyOrder = order

	if req, ok := rawdoc.AsSlice(m["required"]); ok {
		for _, r := range req {
			if str, ok := rawdoc.AsString(r); ok {
				s.Required = append(s.Required, str)
			}
		}
	}

	switch addl := m["additionalProperties"].(type) {
	case nil:
		s.AdditionalOK = true
	case bool:
		s.AdditionalOK = addl
		s.DenyUnknown = !addl
	default:
		s.Additional = sb.build(addl)
	}

	if disc, ok := rawdoc.AsMap(m["discriminator"]); ok {
		d := &model.Discriminator{}
		d.PropertyName, _ = rawdoc.AsString(disc["propertyName"])
		if mapping, ok := rawdoc.AsMap(disc["mapping"]); ok {
			d.Mapping = make(map[string]string, len(mapping))
			for k, v := range mapping {
				if s, ok := rawdoc.AsString(v); ok {
					d.Mapping[k] = componentName(s)
				}
			}
		}
		d.DefaultMapping, _ = rawdoc.AsString(disc["defaultMapping"])
		s.Discriminator = d
	}
}

// flattenAllOf flattens every allOf branch into a single Object (§9). A
// field that appears in more than one branch with disagreeing types is a
// [specerrors.CategoryMapping] error naming the conflicting OAS node,
// never a silent merge.
func (sb *schemaBuilder) flattenAllOf(m map[string]any, s *model.Schema) {
	s.Kind = model.KindObject
	s.AdditionalOK = true
	s.Properties = map[string]*model.Schema{}

	branches, _ := rawdoc.AsSlice(m["allOf"])
	for _, branchRaw := range branches {
		branch := sb.build(branchRaw)
		for name, propSchema := range branch.Properties {
			if existing, ok := s.Properties[name]; ok && existing.Kind != propSchema.Kind {
				sb.diags.Add(specerrors.Diagnostic{
					Category: specerrors.CategoryMapping,
					Code:     "ConflictingAllOfField",
					Message:  fmt.Sprintf("allOf branches disagree on the type of field %q", name),
				})
				continue
			}
			s.Properties[name] = propSchema
			s.PropertyOrder = append(s.PropertyOrder, name)
		}
		s.Required = append(s.Required, branch.Required...)
		if branch.DenyUnknown {
			s.DenyUnknown = true
			s.AdditionalOK = false
		}
	}
	// Also fold in any sibling properties/required declared alongside allOf.
	if hasKey(m, "properties") || hasKey(m, "required") {
		sibling := &model.Schema{}
		sb.buildObject(m, sibling)
		for name, propSchema := range sibling.Properties {
			s.Properties[name] = propSchema
		}
		s.Required = append(s.Required, sibling.Required...)
	}
}

func (sb *schemaBuilder) buildVariants(m map[string]any, s *model.Schema, kind model.Kind, key string) {
	s.Kind = kind
	branches, _ := rawdoc.AsSlice(m[key])
	for _, b := range branches {
		s.Variants = append(s.Variants, sb.build(b))
	}
	if disc, ok := rawdoc.AsMap(m["discriminator"]); ok {
		d := &model.Discriminator{}
		d.PropertyName, _ = rawdoc.AsString(disc["propertyName"])
		if mapping, ok := rawdoc.AsMap(disc["mapping"]); ok {
			d.Mapping = make(map[string]string, len(mapping))
			for k, v := range mapping {
				if str, ok := rawdoc.AsString(v); ok {
					d.Mapping[k] = componentName(str)
				}
			}
		}
		d.DefaultMapping, _ = rawdoc.AsString(disc["defaultMapping"])
		s.Discriminator = d
	}
}

func primaryType(m map[string]any) string {
	switch t := m["type"].(type) {
	case string:
		return t
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

func componentName(ref string) string {
	const prefix = "#/components/schemas/"
	if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
		return ref[len(prefix):]
	}
	return ref
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func stringField(m map[string]any, key string) string {
	s, _ := rawdoc.AsString(m[key])
	return s
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func intPtrField(m map[string]any, key string) *int {
	switch v := m[key].(type) {
	case int:
		return &v
	case float64:
		i := int(v)
		return &i
	}
	return nil
}

func floatPtrField(m map[string]any, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}
