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

// Package dbsync adapts the patcher to the external DB→struct tool's
// output: one Go source file per table, already generated on disk —
// dbsync never introspects a database itself (§9, "Non-goals: database
// introspection"). It parses each file with [cst], derives the fields the
// IR's corresponding [model.Schema] declares and the struct lacks, and
// merges that set
// with whatever the DB tool already emitted using dario.cat/mergo (the
// same mergo.Map-with-override pattern the teacher's config package uses
// to combine layered sources), so a field present in both never produces a
// duplicate insert.
package dbsync
