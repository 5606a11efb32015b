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

package patch

import (
	"go/ast"
	"strconv"
	"strings"

	"github.com/offscale/cdd/backend"
	"github.com/offscale/cdd/cst"
	"github.com/offscale/cdd/oas/model"
)

// RegisteredCall is one router/mux registration call found in a config
// function, e.g. `r.GET("/users/{id}", HandleGetUser)`.
type RegisteredCall struct {
	Method string
	Path   string
}

// ScanRegistrations walks fn's body for calls shaped like
// `<router>.<METHOD>(<literal path>, ...)` and returns every one found.
// Anything else in the body — middleware setup, grouping calls, non-literal
// paths — is ignored; those statements are left untouched by the patcher.
func ScanRegistrations(fn *cst.SourceFn) []RegisteredCall {
	httpMethods := map[string]bool{"GET": true, "PUT": true, "POST": true, "DELETE": true, "OPTIONS": true, "HEAD": true, "PATCH": true, "TRACE": true}
	var calls []RegisteredCall
	ast.Inspect(fn.Decl.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if len(call.Args) == 0 || !httpMethods[strings.ToUpper(sel.Sel.Name)] {
			return true
		}
		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok {
			return true
		}
		path, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}
		calls = append(calls, RegisteredCall{Method: strings.ToUpper(sel.Sel.Name), Path: path})
		return true
	})
	return calls
}

// MissingRegistrations returns the routes not yet represented among
// existing (by method + path template), in IR order (§5 ordering
// guarantees — the same sort buildRoutes already applied).
func MissingRegistrations(routes []*model.Route, existing []RegisteredCall) []*model.Route {
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c.Method+" "+c.Path] = true
	}
	var missing []*model.Route
	for _, r := range routes {
		if r.Webhook {
			continue // inbound-only; never registered against the local router
		}
		if !have[r.Method+" "+r.PathTemplate] {
			missing = append(missing, r)
		}
	}
	return missing
}

// RegistrationEdits builds the Edit batch that inserts one registration
// statement per missing route just before fn's closing brace, using
// strategy to render each statement in the target framework's idiom.
func RegistrationEdits(missing []*model.Route, fn *cst.SourceFn, routerVar string, strategy backend.Strategy) []cst.Edit {
	if len(missing) == 0 {
		return nil
	}
	indent := lastStmtIndent(fn)
	var b strings.Builder
	for _, route := range missing {
		b.WriteString(indent)
		b.WriteString(strategy.RouteRegistration(route, routerVar))
		b.WriteString("\n")
	}
	return []cst.Edit{cst.InsertBefore(fn.BodyClose, []byte(b.String()))}
}

func lastStmtIndent(fn *cst.SourceFn) string {
	stmts := fn.Decl.Body.List
	if len(stmts) == 0 {
		return "\t"
	}
	start := fn.File.Offset(stmts[len(stmts)-1].Pos())
	i := start
	for i > 0 && fn.File.Src[i-1] != '\n' {
		i--
	}
	return string(fn.File.Src[i:start])
}
