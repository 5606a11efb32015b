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

// Package build is the IR Builder (§2, §4 "L2 Analyze"): it normalizes a
// resolved, validated raw document tree into the shared [model.Document]
// IR. allOf flattening, oneOf/anyOf discriminator resolution, and
// self-referential schema handling all happen here (§9 "Polymorphism
// without inheritance", "Cycles in IR").
package build
