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

// Package typemap implements the bidirectional OAS <-> Go type table: given
// a [model.Schema] it names the Go type an operation's handler, query
// struct, or response body should use, and given a Go type name (reflected
// from source by schema-gen) it names the OAS schema shape that represents
// it. Neither direction is a full type system — only the subset handled by
// [GoType] and [ReflectStruct] is recognized. GoType maps any other schema
// to `any`, and ReflectStruct maps an unrecognized named type to an object
// schema whose Ref is the type name; no diagnostic is reported.
package typemap
