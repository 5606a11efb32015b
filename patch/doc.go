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

// Package patch is the write side of compile-driven sync: it diffs the IR
// against a [cst.File]'s structs and functions and produces [cst.Edit]
// batches that add what's missing without touching anything the diff
// didn't flag. Patches are always additive — a field or route registration
// present in source but absent from the IR is left alone and never deleted,
// since the source tree may simply be ahead of a document that hasn't been
// regenerated yet; no diagnostic is reported for it.
package patch
