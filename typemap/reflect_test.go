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

package typemap_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/typemap"
)

func parseStruct(t *testing.T, name, src string) *ast.StructType {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "widget.go", "package widget\n\n"+src, parser.ParseComments)
	require.NoError(t, err)
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != name {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			require.True(t, ok)
			return st
		}
	}
	t.Fatalf("struct %s not found", name)
	return nil
}

func TestReflectStructBasicFields(t *testing.T) {
	t.Parallel()

	st := parseStruct(t, "Widget", `
type Widget struct {
	ID       string  ` + "`json:\"id\"`" + `
	Quantity int64   ` + "`json:\"quantity,omitempty\"`" + `
	Hidden   string  ` + "`json:\"-\"`" + `
	Owner    *string ` + "`json:\"owner\"`" + `
}
`)

	schema := typemap.ReflectStruct(st)
	assert.Equal(t, model.KindObject, schema.Kind)
	assert.Contains(t, schema.Properties, "id")
	assert.Contains(t, schema.Properties, "quantity")
	assert.Contains(t, schema.Properties, "owner")
	assert.NotContains(t, schema.Properties, "hidden")

	assert.Contains(t, schema.Required, "id")
	assert.NotContains(t, schema.Required, "quantity") // omitempty
	assert.NotContains(t, schema.Required, "owner")    // pointer

	assert.True(t, schema.Properties["owner"].Nullable)
	assert.Equal(t, model.KindString, schema.Properties["owner"].Kind)
}

func TestReflectStructRecognizesWrapperTypes(t *testing.T) {
	t.Parallel()

	st := parseStruct(t, "Payment", `
type Payment struct {
	ID     uuid.UUID      ` + "`json:\"id\"`" + `
	Amount typemap.Decimal ` + "`json:\"amount\"`" + `
	Token  typemap.Secret  ` + "`json:\"token\"`" + `
	When   time.Time       ` + "`json:\"when\"`" + `
}
`)

	schema := typemap.ReflectStruct(st)
	assert.Equal(t, "uuid", schema.Properties["id"].Format)
	assert.Equal(t, "decimal", schema.Properties["amount"].Format)
	assert.Equal(t, model.KindNumber, schema.Properties["amount"].Kind)
	assert.Equal(t, "password", schema.Properties["token"].Format)
	assert.Equal(t, "date-time", schema.Properties["when"].Format)
}
