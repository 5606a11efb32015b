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
	"fmt"

	"github.com/offscale/cdd/oas/model"
)

// GoType names the Go type expression for schema, per the §4.4 table.
// Named object/oneOf/anyOf schemas return their component name (the caller
// is responsible for having generated that type); everything else returns
// a type literal.
func GoType(schema *model.Schema) string {
	if schema == nil {
		return "any"
	}
	if schema.Kind == model.KindRef && schema.Ref != "" {
		return exportedName(schema.Ref)
	}

	switch schema.Kind {
	case model.KindString:
		switch schema.Format {
		case "uuid":
			return "uuid.UUID"
		case "date-time":
			return "time.Time"
		case "date":
			return "time.Time" // day precision; callers truncate to midnight UTC
		case "password":
			return "typemap.Secret"
		default:
			return "string"
		}
	case model.KindInteger:
		switch schema.Format {
		case "int32":
			return "int32"
		default:
			return "int64"
		}
	case model.KindNumber:
		if schema.Format == "decimal" {
			return "typemap.Decimal"
		}
		return "float64"
	case model.KindBoolean:
		return "bool"
	case model.KindArray:
		return "[]" + GoType(schema.Items)
	case model.KindObject:
		if schema.Ref != "" {
			return exportedName(schema.Ref)
		}
		return "map[string]any"
	case model.KindOneOf, model.KindAnyOf:
		if schema.Ref != "" {
			return exportedName(schema.Ref)
		}
		return "any"
	case model.KindBoolTrue:
		return "any"
	case model.KindBoolFalse:
		return "struct{}"
	default:
		return "any"
	}
}

// exportedName turns a schema component name into an exported Go
// identifier; component names are already expected to be PascalCase in a
// well-formed document, so this mostly just passes the name through.
func exportedName(name string) string {
	if name == "" {
		return "any"
	}
	r := []rune(name)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}

// QueryField is one field of a synthesized per-operation query struct.
type QueryField struct {
	GoName   string
	GoType   string
	ParamTag string // struct tag describing wire name + style/explode
}

// SynthesizeQueryStruct builds the field list for an operation's typed
// query-parameter struct (§4.4 "Query parameters aggregate into a
// synthesized typed struct"). One struct tag per Param carries the wire
// name, style, explode and required flag. testgen and the Backend
// Strategies do not call this function: testgen reads Style/Explode off
// each Param, and ExtractorFor emits a fixed expression per parameter
// location.
func SynthesizeQueryStruct(params []*model.Param) []QueryField {
	var fields []QueryField
	for _, p := range params {
		if p.In != model.InQuery {
			continue
		}
		style := p.Style
		if style == "" {
			style = model.StyleForm
		}
		fields = append(fields, QueryField{
			GoName:   exportedName(p.Name),
			GoType:   GoType(p.Schema),
			ParamTag: fmt.Sprintf(`query:"%s" style:"%s" explode:"%t" required:"%t"`, p.Name, style, p.Explode, p.Required),
		})
	}
	return fields
}
