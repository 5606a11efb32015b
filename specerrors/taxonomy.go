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

package specerrors

import "fmt"

// Category is one partition of the §7 error taxonomy.
type Category string

const (
	CategoryInput      Category = "input"
	CategoryValidation Category = "validation"
	CategoryResolution Category = "resolution"
	CategoryMapping    Category = "mapping"
	CategoryPatch      Category = "patch_conflict"
	CategoryIO         Category = "io"
)

// ExitCode returns the process exit code §6 assigns to a category.
func (c Category) ExitCode() int {
	switch c {
	case CategoryValidation, CategoryResolution, CategoryMapping:
		return 3
	case CategoryPatch:
		return 4
	case CategoryIO:
		return 5
	default:
		return 2
	}
}

// Diagnostic is one reported error, with enough structure for the CLI to
// group, sort, and format it, and for a machine reader to consume it as a
// problem-detail triple via [Diagnostic.Problem].
type Diagnostic struct {
	Category Category
	Code     string // short machine-stable identifier, e.g. "TemplatedPathConflict"
	Message  string
	File     string // "" if not file-scoped
	Line     int    // 0 if unknown
	Pointer  string // JSON pointer / OAS location, "" if not applicable
}

func (d Diagnostic) Error() string {
	loc := ""
	switch {
	case d.File != "" && d.Line > 0:
		loc = fmt.Sprintf("%s:%d: ", d.File, d.Line)
	case d.File != "":
		loc = d.File + ": "
	case d.Pointer != "":
		loc = d.Pointer + ": "
	}
	return fmt.Sprintf("%s[%s] %s", loc, d.Code, d.Message)
}

// Problem is an RFC-9457-shaped view of a [Diagnostic], mirroring the
// teacher's HTTP problem-detail formatter but shaped for a machine reader
// of CLI diagnostics instead of an HTTP response body. The specsync
// commands do not emit it.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

// Problem converts a Diagnostic to its problem-detail representation.
func (d Diagnostic) Problem(baseURL string) Problem {
	instance := d.File
	if d.Pointer != "" {
		instance = d.Pointer
	}
	return Problem{
		Type:     baseURL + "/" + string(d.Category) + "/" + d.Code,
		Title:    d.Code,
		Detail:   d.Message,
		Instance: instance,
	}
}

// Diagnostics is an accumulated, categorized list of [Diagnostic]s.
//
// Validation errors never short-circuit (§4.2, §8 property 6): callers
// append to a shared Diagnostics value across every rule and only decide
// whether to abort once the pass completes.
type Diagnostics []Diagnostic

// Add appends a diagnostic.
func (ds *Diagnostics) Add(d Diagnostic) {
	*ds = append(*ds, d)
}

// HasCategory reports whether any diagnostic in the set belongs to cat.
func (ds Diagnostics) HasCategory(cat Category) bool {
	for _, d := range ds {
		if d.Category == cat {
			return true
		}
	}
	return false
}

// ExitCode returns the exit code for the highest-priority category present,
// in the fatal order: I/O, patch conflict, then validation/resolution/
// mapping, matching §6's code list (2 usage, 3 validation, 4 patch, 5 I/O).
func (ds Diagnostics) ExitCode() int {
	if len(ds) == 0 {
		return 0
	}
	priority := []Category{CategoryIO, CategoryPatch, CategoryValidation, CategoryResolution, CategoryMapping, CategoryInput}
	for _, cat := range priority {
		if ds.HasCategory(cat) {
			return cat.ExitCode()
		}
	}
	return 1
}

// ByCategory groups diagnostics by category, preserving per-category order.
func (ds Diagnostics) ByCategory() map[Category][]Diagnostic {
	out := make(map[Category][]Diagnostic)
	for _, d := range ds {
		out[d.Category] = append(out[d.Category], d)
	}
	return out
}

// Err wraps ds as an error, or returns nil if ds is empty. The CLI entry
// point unwraps it back out via [AsDiagnostics] to recover §6's exit code.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return wrappedDiagnostics{ds}
}

type wrappedDiagnostics struct{ diagnostics Diagnostics }

func (w wrappedDiagnostics) Error() string {
	if len(w.diagnostics) == 0 {
		return "no diagnostics"
	}
	groups := w.diagnostics.ByCategory()
	var out string
	for _, cat := range []Category{CategoryIO, CategoryPatch, CategoryValidation, CategoryResolution, CategoryMapping, CategoryInput} {
		for _, d := range groups[cat] {
			if out != "" {
				out += "\n"
			}
			out += d.Error()
		}
	}
	return out
}

func (w wrappedDiagnostics) Diagnostics() Diagnostics { return w.diagnostics }

// AsDiagnostics recovers the [Diagnostics] wrapped by [Diagnostics.Err], if
// err was produced that way.
func AsDiagnostics(err error) (Diagnostics, bool) {
	w, ok := err.(wrappedDiagnostics)
	if !ok {
		return nil, false
	}
	return w.diagnostics, true
}
