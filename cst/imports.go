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

package cst

import (
	"bytes"
	"go/format"
	"go/printer"

	"golang.org/x/tools/go/ast/astutil"
)

// AddImport ensures path is imported in f, aliased if alias is non-empty.
// Callers must apply every [Edit] batch computed from f's current offsets
// before calling AddImport: re-printing the AST invalidates f.Fset's byte
// positions for anything computed against the pre-import source.
// Unlike struct and function body edits, import-list changes go through
// astutil + go/printer rather than a byte splice: astutil.AddNamedImport
// merges into an existing import block or synthesizes one, and then the
// whole file is re-printed and gofmt-formatted into f.Src. The original
// bytes outside the import block are not preserved as written, and f.AST
// and f.Fset are not re-parsed from the new f.Src.
func (f *File) AddImport(alias, path string) (changed bool, err error) {
	if astutil.UsesImport(f.AST, path) {
		return false, nil
	}
	changed = astutil.AddNamedImport(f.Fset, f.AST, alias, path)
	if !changed {
		return false, nil
	}
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, f.Fset, f.AST); err != nil {
		return false, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return false, err
	}
	f.Src = formatted
	return true, nil
}
