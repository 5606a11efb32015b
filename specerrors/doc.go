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

// Package specerrors implements the error taxonomy of §7: a conceptual
// partition (input, validation, resolution, mapping, patch conflict, I/O),
// not a type hierarchy, with a [Diagnostic] list type the CLI accumulates
// and groups by category before printing and choosing an exit code (§6,
// §7 "Propagation policy").
package specerrors
