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

package backend

import (
	"fmt"
	"strings"

	"github.com/offscale/cdd/oas/model"
)

// RouterStrategy targets the teacher's own fluent router: app.GET(path,
// handler), ctx.Param/ctx.BindQuery extractors, and NewRouter() as the app
// factory invocation. This is the default strategy; cmd/specsync's test-gen
// uses it, with AppFactoryInvocation replaced by the --app-factory value.
type RouterStrategy struct {
	// HandlerPackage is the import path handler functions live in. None of
	// RouterStrategy's methods read it: signatures and registrations always
	// use the bare, unqualified handler name.
	HandlerPackage string
}

var _ Strategy = RouterStrategy{}

func (RouterStrategy) HandlerSignature(route *model.Route) string {
	name := handlerFuncName(route)
	var b strings.Builder
	fmt.Fprintf(&b, "func %s(ctx *router.Context) {\n", name)
	b.WriteString("\t// TODO: implement " + route.OperationID + "\n")
	b.WriteString("\tctx.Status(http.StatusNotImplemented)\n")
	b.WriteString("}\n")
	return b.String()
}

func (RouterStrategy) RouteRegistration(route *model.Route, routerVar string) string {
	return fmt.Sprintf("%s.%s(%q, %s)", routerVar, route.Method, route.PathTemplate, handlerFuncName(route))
}

func (RouterStrategy) ExtractorFor(param *model.Param) string {
	switch param.In {
	case model.InPath:
		return fmt.Sprintf("ctx.Param(%q)", param.Name)
	case model.InQuery:
		return "ctx.BindQuery(&q)"
	case model.InHeader:
		return fmt.Sprintf("ctx.Request.Header.Get(%q)", param.Name)
	case model.InCookie:
		return fmt.Sprintf("ctx.Cookie(%q)", param.Name)
	default:
		return "nil"
	}
}

func (RouterStrategy) AppFactoryInvocation() string {
	return "NewRouter()"
}

func handlerFuncName(route *model.Route) string {
	if route.OperationID != "" {
		return "Handle" + exportedName(route.OperationID)
	}
	return "Handle" + exportedName(strings.ToLower(route.Method)) + exportedName(strings.ReplaceAll(route.PathTemplate, "/", "_"))
}

func exportedName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == '{' || r == '}' || r == '/'
	})
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
