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

package typemap

import (
	"sort"

	"github.com/offscale/cdd/oas/model"
)

// ToJSONSchema projects schema to a plain JSON Schema document (map form),
// the inverse of the reader/build direction, used by testgen to validate a
// captured response body against the route's declared response schema with
// santhosh-tekuri/jsonschema/v6, which compiles from exactly this shape.
func ToJSONSchema(schema *model.Schema) map[string]any {
	if schema == nil {
		return map[string]any{}
	}
	if schema.Kind == model.KindRef {
		return map[string]any{"$ref": "#/components/schemas/" + schema.Ref}
	}

	out := map[string]any{}
	if schema.Description != "" {
		out["description"] = schema.Description
	}

	switch schema.Kind {
	case model.KindString:
		out["type"] = "string"
		if schema.Format != "" {
			out["format"] = schema.Format
		}
		if schema.Pattern != "" {
			out["pattern"] = schema.Pattern
		}
		if schema.MinLength != nil {
			out["minLength"] = *schema.MinLength
		}
		if schema.MaxLength != nil {
			out["maxLength"] = *schema.MaxLength
		}
	case model.KindInteger:
		out["type"] = "integer"
		addNumericBounds(out, schema)
	case model.KindNumber:
		out["type"] = "number"
		addNumericBounds(out, schema)
	case model.KindBoolean:
		out["type"] = "boolean"
	case model.KindArray:
		out["type"] = "array"
		out["items"] = ToJSONSchema(schema.Items)
		if schema.MinItems != nil {
			out["minItems"] = *schema.MinItems
		}
		if schema.MaxItems != nil {
			out["maxItems"] = *schema.MaxItems
		}
	case model.KindObject:
		out["type"] = "object"
		if len(schema.Properties) > 0 {
			props := map[string]any{}
			names := make([]string, 0, len(schema.Properties))
			for name := range schema.Properties {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				props[name] = ToJSONSchema(schema.Properties[name])
			}
			out["properties"] = props
		}
		if len(schema.Required) > 0 {
			out["required"] = schema.Required
		}
		if schema.DenyUnknown {
			out["additionalProperties"] = false
		}
	case model.KindOneOf:
		out["oneOf"] = variantList(schema.Variants)
	case model.KindAnyOf:
		out["anyOf"] = variantList(schema.Variants)
	case model.KindBoolTrue:
		return map[string]any{}
	case model.KindBoolFalse:
		return map[string]any{"not": map[string]any{}}
	}

	if schema.Nullable {
		out["type"] = []any{out["type"], "null"}
	}
	return out
}

func addNumericBounds(out map[string]any, schema *model.Schema) {
	if schema.Minimum != nil {
		out["minimum"] = *schema.Minimum
	}
	if schema.Maximum != nil {
		out["maximum"] = *schema.Maximum
	}
	if schema.MultipleOf != nil {
		out["multipleOf"] = *schema.MultipleOf
	}
}

func variantList(variants []*model.Schema) []any {
	out := make([]any, 0, len(variants))
	for _, v := range variants {
		out = append(out, ToJSONSchema(v))
	}
	return out
}
