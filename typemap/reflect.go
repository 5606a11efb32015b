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
	"go/ast"

	"github.com/offscale/cdd/oas/model"
)

// ReflectStruct builds the [model.Schema] a Go struct type would produce
// under the §4.4 table, read directly off its *ast.StructType rather than
// via go/types — schema-gen only needs the wire shape (field name, JSON
// tag, and the handful of types the table recognizes), not full type
// identity, so a syntactic reflection is sufficient and avoids pulling in
// a type-checker and its need to load the whole package graph.
func ReflectStruct(st *ast.StructType) *model.Schema {
	schema := &model.Schema{Kind: model.KindObject, AdditionalOK: true, Properties: map[string]*model.Schema{}}
	for _, field := range st.Fields.List {
		wireName, ok := jsonFieldName(field)
		if !ok {
			continue
		}
		if len(fieldNames(field)) == 0 {
			continue
		}
		schema.Properties[wireName] = reflectExpr(field.Type)
		schema.PropertyOrder = append(schema.PropertyOrder, wireName)
		if !isPointerType(field.Type) && !isOmitEmpty(field) {
			schema.Required = append(schema.Required, wireName)
		}
	}
	return schema
}

func fieldNames(field *ast.Field) []string {
	if len(field.Names) == 0 {
		return nil // embedded field: schema-gen doesn't flatten embeddings
	}
	names := make([]string, 0, len(field.Names))
	for _, n := range field.Names {
		names = append(names, n.Name)
	}
	return names
}

func jsonFieldName(field *ast.Field) (string, bool) {
	if len(field.Names) == 0 {
		return "", false
	}
	name := field.Names[0].Name
	if field.Tag == nil {
		return name, true
	}
	tag := parseStructTag(field.Tag.Value, "json")
	if tag == "" {
		return name, true
	}
	if tag == "-" {
		return "", false
	}
	return splitTagName(tag), true
}

func isOmitEmpty(field *ast.Field) bool {
	if field.Tag == nil {
		return false
	}
	return containsTagOption(parseStructTag(field.Tag.Value, "json"), "omitempty")
}

func isPointerType(expr ast.Expr) bool {
	_, ok := expr.(*ast.StarExpr)
	return ok
}

func reflectExpr(expr ast.Expr) *model.Schema {
	switch t := expr.(type) {
	case *ast.StarExpr:
		s := reflectExpr(t.X)
		s.Nullable = true
		return s
	case *ast.ArrayType:
		return &model.Schema{Kind: model.KindArray, Items: reflectExpr(t.Elt)}
	case *ast.Ident:
		return reflectIdent(t.Name)
	case *ast.SelectorExpr:
		return reflectSelector(t)
	case *ast.MapType:
		return &model.Schema{Kind: model.KindObject, AdditionalOK: true}
	default:
		return &model.Schema{Kind: model.KindBoolTrue}
	}
}

func reflectIdent(name string) *model.Schema {
	switch name {
	case "string":
		return &model.Schema{Kind: model.KindString}
	case "int", "int32":
		return &model.Schema{Kind: model.KindInteger, Format: "int32"}
	case "int64":
		return &model.Schema{Kind: model.KindInteger, Format: "int64"}
	case "float32", "float64":
		return &model.Schema{Kind: model.KindNumber}
	case "bool":
		return &model.Schema{Kind: model.KindBoolean}
	case "Secret":
		return &model.Schema{Kind: model.KindString, Format: "password"}
	case "Decimal":
		return &model.Schema{Kind: model.KindNumber, Format: "decimal"}
	default:
		return &model.Schema{Kind: model.KindObject, Ref: name}
	}
}

func reflectSelector(sel *ast.SelectorExpr) *model.Schema {
	pkg, _ := sel.X.(*ast.Ident)
	pkgName := ""
	if pkg != nil {
		pkgName = pkg.Name
	}
	switch pkgName + "." + sel.Sel.Name {
	case "uuid.UUID":
		return &model.Schema{Kind: model.KindString, Format: "uuid"}
	case "time.Time":
		return &model.Schema{Kind: model.KindString, Format: "date-time"}
	case "typemap.Secret":
		return &model.Schema{Kind: model.KindString, Format: "password"}
	case "typemap.Decimal":
		return &model.Schema{Kind: model.KindNumber, Format: "decimal"}
	default:
		return &model.Schema{Kind: model.KindObject, Ref: sel.Sel.Name}
	}
}

// parseStructTag and splitTagName/containsTagOption implement just enough
// of reflect.StructTag's lookup semantics to read a `json:"..."` tag
// without importing "reflect" — the tag text here is an *ast.BasicLit's
// raw source (including surrounding backticks), not a runtime
// reflect.StructTag.
func parseStructTag(raw, key string) string {
	unquoted := raw
	if len(unquoted) >= 2 {
		unquoted = unquoted[1 : len(unquoted)-1]
	}
	i := 0
	for i < len(unquoted) {
		for i < len(unquoted) && unquoted[i] == ' ' {
			i++
		}
		start := i
		for i < len(unquoted) && unquoted[i] != ':' {
			i++
		}
		name := unquoted[start:i]
		if i >= len(unquoted) || unquoted[i] != ':' {
			break
		}
		i++ // skip ':'
		if i >= len(unquoted) || unquoted[i] != '"' {
			break
		}
		i++ // skip opening quote
		valStart := i
		for i < len(unquoted) && unquoted[i] != '"' {
			i++
		}
		value := unquoted[valStart:i]
		i++ // skip closing quote
		if name == key {
			return value
		}
	}
	return ""
}

func splitTagName(tag string) string {
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

func containsTagOption(tag, option string) bool {
	start := 0
	for i := 0; i <= len(tag); i++ {
		if i == len(tag) || tag[i] == ',' {
			if tag[start:i] == option {
				return true
			}
			start = i + 1
		}
	}
	return false
}
