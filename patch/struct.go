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

package patch

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/offscale/cdd/cst"
	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/typemap"
)

// MissingField is a property the IR declares for a struct that the source
// struct doesn't yet have a field for.
type MissingField struct {
	Name string
	Type string
	Tag  string
}

// DiffStruct compares schema's properties against src's existing fields and
// returns the ones src is missing. A property src already has — by one of
// its declared Go names matching the property's exported form, or by a json
// tag name equal to the property name — is left alone even if its type or
// tag disagrees with the IR; no diagnostic is produced for such a
// disagreement.
func DiffStruct(schema *model.Schema, src *cst.SourceStruct) []MissingField {
	existing := map[string]bool{}
	wireNames := map[string]bool{}
	for _, field := range src.Type.Fields.List {
		for _, name := range field.Names {
			existing[name.Name] = true
		}
		if field.Tag != nil {
			if tag, err := strconv.Unquote(field.Tag.Value); err == nil {
				wire, _, _ := strings.Cut(reflect.StructTag(tag).Get("json"), ",")
				wireNames[wire] = true
			}
		}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var missing []MissingField
	for _, name := range names {
		goName := exportedFieldName(name)
		if existing[goName] || wireNames[name] {
			continue
		}
		prop := schema.Properties[name]
		required := contains(schema.Required, name)
		missing = append(missing, MissingField{
			Name: goName,
			Type: fieldType(prop, required),
			Tag:  jsonTag(name, required),
		})
	}
	return missing
}

// StructEdits builds the [cst.Edit] batch that inserts every missing field
// just before src's closing brace, preserving whatever indentation the
// struct's last existing field used (falling back to a single tab, the
// gofmt default, for an empty struct).
func StructEdits(missing []MissingField, src *cst.SourceStruct) []cst.Edit {
	if len(missing) == 0 {
		return nil
	}
	indent := lastFieldIndent(src)
	var b strings.Builder
	for _, f := range missing {
		fmt.Fprintf(&b, "%s%s %s `%s`\n", indent, f.Name, f.Type, f.Tag)
	}
	return []cst.Edit{cst.InsertBefore(src.BodyClose, []byte(b.String()))}
}

func lastFieldIndent(src *cst.SourceStruct) string {
	fields := src.Type.Fields.List
	if len(fields) == 0 {
		return "\t"
	}
	start := src.File.Offset(fields[len(fields)-1].Pos())
	i := start
	for i > 0 && src.File.Src[i-1] != '\n' {
		i--
	}
	return string(src.File.Src[i:start])
}

func fieldType(schema *model.Schema, required bool) string {
	t := typemap.GoType(schema)
	if !required && !strings.HasPrefix(t, "*") && !strings.HasPrefix(t, "[]") && !strings.HasPrefix(t, "map[") {
		return "*" + t
	}
	return t
}

func jsonTag(name string, required bool) string {
	if required {
		return fmt.Sprintf(`json:"%s"`, name)
	}
	return fmt.Sprintf(`json:"%s,omitempty"`, name)
}

func exportedFieldName(name string) string {
	if name == "" {
		return name
	}
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
