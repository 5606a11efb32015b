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

// Package obslog is the structured logger shared by every pipeline stage.
//
// It wraps log/slog the way the teacher's logging package does: a small
// Logger carrying a fixed set of structured fields, With for derived child
// loggers, and a StartSpan helper that scopes an OpenTelemetry trace span
// to one pipeline phase. No exporter is configured by default, so running
// the CLI never requires a collector — spans are created against the
// global no-op TracerProvider unless the embedding application configures
// one.
package obslog
