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

// Package model defines the intermediate representation (IR) shared between
// the OpenAPI world and the source world.
//
// The IR exclusively owns its nodes and holds no source-tree nodes at all
// (source declarations are located separately by the cst package), so the
// IR can be built, validated, and handed to generators without ever
// pinning a concrete syntax tree in memory.
package model
