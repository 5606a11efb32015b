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

// Package cst is the Go source reader: a lossless, byte-range view onto a
// Go file built with go/parser and token.FileSet, used so the patcher can
// splice new text into a file without reformatting anything it didn't
// touch (no parse-format-reprint round trip, which would lose comments,
// blank lines, and the author's own formatting choices). The one exception
// is [File.AddImport], which re-prints and formats the whole file.
package cst
