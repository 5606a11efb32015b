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

// Command specsync is the compile-driven-sync CLI: sync keeps a DB→struct
// tool's output aligned with an OpenAPI document's schemas, test-gen emits a
// contract test per operation, and schema-gen reflects Go source back out to
// an OpenAPI document (§6 "CLI surface").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/offscale/cdd/specerrors"
)

// Exit codes per §6: 0 success, 2 usage error, 3 validation failure with
// diagnostics, 4 patch conflict, 5 I/O failure.
const (
	exitOK              = 0
	exitUsage           = 2
	exitValidationError = 3
	exitPatchConflict   = 4
	exitIOFailure       = 5
)

func main() {
	root := &cobra.Command{
		Use:           "specsync",
		Short:         "Keep an OpenAPI document, a Go source tree, and a DB schema in sync",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newSyncCmd(), newTestGenCmd(), newSchemaGenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to §6's exit-code taxonomy. An error produced by
// [specerrors.Diagnostics.Err] reports through its own category-driven
// ExitCode; anything else surfacing from flag parsing or file I/O is a
// generic usage failure.
func exitCodeFor(err error) int {
	if diags, ok := specerrors.AsDiagnostics(err); ok {
		return diags.ExitCode()
	}
	return exitUsage
}
