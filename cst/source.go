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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
)

// File is a parsed Go source file plus the byte offsets needed to splice
// edits into its original bytes.
type File struct {
	Path string
	Src  []byte
	Fset *token.FileSet
	AST  *ast.File
}

// Parse reads and parses path with comments attached, so doc comments and
// struct tags survive the round trip untouched.
func Parse(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &File{Path: path, Src: src, Fset: fset, AST: astFile}, nil
}

// Offset returns the byte offset of pos within the file.
func (f *File) Offset(pos token.Pos) int {
	return f.Fset.Position(pos).Offset
}

// SourceStruct is a weak reference to a struct type declaration: just
// enough to find it again and to splice fields into its body. The IR never
// holds the *ast.StructType itself (see package model's doc comment).
type SourceStruct struct {
	Name       string
	File       *File
	Decl       *ast.GenDecl
	Spec       *ast.TypeSpec
	Type       *ast.StructType
	BodyOpen   int // byte offset of the struct's opening brace, exclusive
	BodyClose  int // byte offset of the struct's closing brace
	FieldLines []SourceField
}

// SourceField is one struct field as written in source.
type SourceField struct {
	Names []string
	Type  string
	Tag   string
	End   int // byte offset immediately after this field's line
}

// SourceFn is a weak reference to a top-level function declaration.
type SourceFn struct {
	Name      string
	File      *File
	Decl      *ast.FuncDecl
	BodyOpen  int
	BodyClose int
}

// Structs returns every top-level struct type declared in f.
func (f *File) Structs() []*SourceStruct {
	var out []*SourceStruct
	for _, decl := range f.AST.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			out = append(out, &SourceStruct{
				Name:      ts.Name.Name,
				File:      f,
				Decl:      gd,
				Spec:      ts,
				Type:      st,
				BodyOpen:  f.Offset(st.Fields.Opening) + 1,
				BodyClose: f.Offset(st.Fields.Closing),
			})
		}
	}
	return out
}

// Funcs returns every top-level function declaration in f, including
// methods (receiver functions).
func (f *File) Funcs() []*SourceFn {
	var out []*SourceFn
	for _, decl := range f.AST.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body == nil {
			continue
		}
		out = append(out, &SourceFn{
			Name:      fd.Name.Name,
			File:      f,
			Decl:      fd,
			BodyOpen:  f.Offset(fd.Body.Lbrace) + 1,
			BodyClose: f.Offset(fd.Body.Rbrace),
		})
	}
	return out
}

// FuncByName finds a top-level function or method by name; methods are
// disambiguated by the dbsync/patch callers, which already know which
// receiver type they're patching.
func (f *File) FuncByName(name string) *SourceFn {
	for _, fn := range f.Funcs() {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// StructByName finds a top-level struct type by name.
func (f *File) StructByName(name string) *SourceStruct {
	for _, s := range f.Structs() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
