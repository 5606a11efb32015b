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

package testgen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/offscale/cdd/backend"
	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/typemap"
)

// Config configures a single test-file generation run (§6
// `test-gen --openapi-path --output-path --app-factory`).
type Config struct {
	PackageName string
	Strategy    backend.Strategy
}

// statusMatchesHelper is emitted once per generated file; it matches a
// response status against the operation's declared response keys,
// including OAS 3.2 wildcard shapes ("2XX") and "default" (which accepts
// any status not otherwise declared, so a default-only operation accepts
// any status, §4.6 step 4).
const statusMatchesHelper = `func statusMatches(code int, declared []string) bool {
	s := strconv.Itoa(code)
	for _, d := range declared {
		if d == "default" {
			return true
		}
		if len(d) != len(s) {
			continue
		}
		match := true
		for i := 0; i < len(d); i++ {
			if d[i] != 'X' && d[i] != s[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
`

// Generate emits the full contents of a Go test file with one test
// function per non-webhook operation in doc, in (PathTemplate, Method)
// order (§5 ordering guarantees — the same order [model.Document.Routes]
// is already sorted in).
func Generate(doc *model.Document, cfg Config) (string, error) {
	routesByID := indexRoutesByOperationID(doc.Routes)

	var bodies []string
	for _, route := range doc.Routes {
		if route.Webhook {
			continue
		}
		fn, err := generateOperationTest(route, cfg.Strategy, routesByID)
		if err != nil {
			return "", err
		}
		bodies = append(bodies, fn)
	}
	all := strings.Join(bodies, "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", cfg.PackageName)
	b.WriteString("import (\n")

	stdlib := []string{"strconv", "testing"}
	if strings.Contains(all, "bytes.") {
		stdlib = append(stdlib, "bytes")
	}
	if strings.Contains(all, "json.") {
		stdlib = append(stdlib, "encoding/json")
	}
	if strings.Contains(all, "httptest.") {
		stdlib = append(stdlib, "net/http/httptest")
	}
	sort.Strings(stdlib)
	for _, imp := range stdlib {
		fmt.Fprintf(&b, "\t%q\n", imp)
	}

	var third []string
	if strings.Contains(all, "jsonschema.") {
		third = append(third, "github.com/santhosh-tekuri/jsonschema/v6")
	}
	if strings.Contains(all, "require.") {
		third = append(third, "github.com/stretchr/testify/require")
	}
	sort.Strings(third)
	if len(third) > 0 {
		b.WriteString("\n")
		for _, imp := range third {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
	}

	if strings.Contains(all, "testgen.") {
		b.WriteString("\n\t\"github.com/offscale/cdd/testgen\"\n")
	}

	b.WriteString(")\n\n")
	b.WriteString(statusMatchesHelper)
	b.WriteString("\n")

	for _, fn := range bodies {
		b.WriteString(fn)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// indexRoutesByOperationID builds a document-wide operationId index,
// including callback routes, which share the same uniqueness namespace as
// top-level operations (§3 invariant) and so may be legitimate link targets.
func indexRoutesByOperationID(routes []*model.Route) map[string]*model.Route {
	out := map[string]*model.Route{}
	var index func([]*model.Route)
	index = func(rs []*model.Route) {
		for _, r := range rs {
			if r.OperationID != "" {
				out[r.OperationID] = r
			}
			for _, cbRoutes := range r.Callbacks {
				index(cbRoutes)
			}
		}
	}
	index(routes)
	return out
}

func generateOperationTest(route *model.Route, strategy backend.Strategy, routesByID map[string]*model.Route) (string, error) {
	var b strings.Builder
	testName := "Test_" + exportedTestName(route)
	fmt.Fprintf(&b, "func %s(t *testing.T) {\n", testName)
	fmt.Fprintf(&b, "\tapp := %s\n", strategy.AppFactoryInvocation())

	url, pathValues, queryValues := buildMockURLWithValues(route)
	fmt.Fprintf(&b, "\turl := %q\n", url)

	hasRequestBody := effectiveRequestSchema(route) != nil
	body := "nil"
	if effective := effectiveRequestSchema(route); effective != nil {
		payload := Mock(effective)
		raw, err := json.Marshal(payload)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\tbodyJSON := []byte(%s)\n", quoteGoString(raw))
		b.WriteString("\tvar reqBody any\n")
		b.WriteString("\trequire.NoError(t, json.Unmarshal(bodyJSON, &reqBody))\n")
		body = "bytes.NewReader(bodyJSON)"
	}

	fmt.Fprintf(&b, "\treq := httptest.NewRequest(%q, url, %s)\n", route.Method, body)
	if hasRequestBody {
		b.WriteString("\treq.Header.Set(\"Content-Type\", \"application/json\")\n")
	}
	for _, header := range route.Parameters {
		if header.In != model.InHeader {
			continue
		}
		value := SerializeHeader([]string{fmt.Sprint(Mock(header.Schema))})
		fmt.Fprintf(&b, "\treq.Header.Set(%q, %q)\n", header.Name, value)
	}

	b.WriteString("\trec := httptest.NewRecorder()\n")
	b.WriteString("\tapp.ServeHTTP(rec, req)\n\n")

	declared := declaredStatusLiteral(route)
	if declared != "" {
		fmt.Fprintf(&b, "\trequire.True(t, statusMatches(rec.Code, %s))\n", declared)
	}

	schema := responseSchemaFor(route)
	followups := resolvableLinks(route, routesByID)
	needsRespBody := schema != nil || len(followups) > 0

	if needsRespBody {
		b.WriteString("\tif rec.Code < 300 {\n")
		b.WriteString("\t\tvar respBody any\n")
		b.WriteString("\t\trequire.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respBody))\n\n")

		if schema != nil {
			schemaJSON, err := json.Marshal(typemap.ToJSONSchema(schema))
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "\t\tschemaJSON := []byte(%s)\n", quoteGoString(schemaJSON))
			b.WriteString("\t\tdecoded, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))\n")
			b.WriteString("\t\trequire.NoError(t, err)\n")
			b.WriteString("\t\tcompiler := jsonschema.NewCompiler()\n")
			b.WriteString("\t\trequire.NoError(t, compiler.AddResource(\"response.json\", decoded))\n")
			b.WriteString("\t\tsch, err := compiler.Compile(\"response.json\")\n")
			b.WriteString("\t\trequire.NoError(t, err)\n")
			b.WriteString("\t\trequire.NoError(t, sch.Validate(respBody))\n\n")
		}

		if len(followups) > 0 {
			fmt.Fprintf(&b, "\t\tlinkCtx := &testgen.LinkContext{\n")
			fmt.Fprintf(&b, "\t\t\tPathParams:   %s,\n", stringMapLiteral(pathValues))
			fmt.Fprintf(&b, "\t\t\tQueryParams:  %s,\n", stringMapLiteral(queryValues))
			if hasRequestBody {
				b.WriteString("\t\t\tRequestBody:  reqBody,\n")
			}
			b.WriteString("\t\t\tResponseBody: respBody,\n")
			b.WriteString("\t\t}\n\n")

			for _, f := range followups {
				fmt.Fprintf(&b, "\t\t// follow link %q to %s\n", f.name, f.target.OperationID)
				fmt.Fprintf(&b, "\t\tfollowURL := linkCtx.ResolveTemplate(%q)\n", f.template)
				followBody := "nil"
				if f.link.RequestBody != "" {
					fmt.Fprintf(&b, "\t\tfollowBodyJSON := []byte(linkCtx.ResolveRuntimeExpression(%q))\n", f.link.RequestBody)
					followBody = "bytes.NewReader(followBodyJSON)"
				}
				fmt.Fprintf(&b, "\t\tfollowReq := httptest.NewRequest(%q, followURL, %s)\n", f.target.Method, followBody)
				b.WriteString("\t\tfollowRec := httptest.NewRecorder()\n")
				b.WriteString("\t\tapp.ServeHTTP(followRec, followReq)\n")
				if followDeclared := declaredStatusLiteral(f.target); followDeclared != "" {
					fmt.Fprintf(&b, "\t\trequire.True(t, statusMatches(followRec.Code, %s))\n\n", followDeclared)
				} else {
					b.WriteString("\n")
				}
			}
		}

		b.WriteString("\t}\n")
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// followup is a resolved response link ready for code generation: its
// target operation plus a path-and-query template with the link's runtime
// expressions substituted in for each target parameter (§4.6 step 6).
type followup struct {
	name     string
	link     *model.Link
	target   *model.Route
	template string
}

// resolvableLinks returns, in deterministic name order, every response link
// of route whose target operation and required path parameters can be
// statically resolved. A link referencing an undefined operationId, a
// webhook, or missing a required path parameter's expression is skipped
// rather than emitting a request that can never succeed.
func resolvableLinks(route *model.Route, routesByID map[string]*model.Route) []followup {
	if len(route.Links) == 0 {
		return nil
	}
	names := make([]string, 0, len(route.Links))
	for name := range route.Links {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []followup
	for _, name := range names {
		link := route.Links[name]
		if link.OperationID == "" {
			continue
		}
		target, ok := routesByID[link.OperationID]
		if !ok || target.Webhook {
			continue
		}
		template, ok := buildFollowupTemplate(target, link)
		if !ok {
			continue
		}
		out = append(out, followup{name: name, link: link, target: target, template: template})
	}
	return out
}

// buildFollowupTemplate substitutes each of target's path parameters with
// the link's runtime expression for that parameter, yielding a string
// [testgen.LinkContext.ResolveTemplate] can resolve at test-run time (e.g.
// "/widgets/{$response.body#/id}"). It reports false if a required path
// parameter has no corresponding link parameter.
func buildFollowupTemplate(target *model.Route, link *model.Link) (string, bool) {
	tmpl := target.PathTemplate
	for _, p := range target.Parameters {
		if p.In != model.InPath {
			continue
		}
		expr, ok := link.Parameters[p.Name]
		if !ok {
			return "", false
		}
		tmpl = strings.ReplaceAll(tmpl, "{"+p.Name+"}", "{"+expr+"}")
	}

	var query []string
	for _, p := range target.Parameters {
		if p.In != model.InQuery {
			continue
		}
		if expr, ok := link.Parameters[p.Name]; ok {
			query = append(query, p.Name+"={"+expr+"}")
		}
	}
	if len(query) > 0 {
		tmpl += "?" + strings.Join(query, "&")
	}
	return tmpl, true
}

func effectiveRequestSchema(route *model.Route) *model.Schema {
	for _, mediaType := range sortedMediaTypes(route.RequestBody) {
		return route.RequestBody[mediaType].Effective()
	}
	return nil
}

func responseSchemaFor(route *model.Route) *model.Schema {
	for _, status := range sortedStatuses(route.Responses) {
		if !strings.HasPrefix(status, "2") {
			continue
		}
		resp := route.Responses[status]
		for _, mediaType := range sortedMediaTypes(resp.Content) {
			if isJSONLike(mediaType) {
				return resp.Content[mediaType].Effective()
			}
		}
	}
	return nil
}

func isJSONLike(mediaType string) bool {
	return strings.Contains(mediaType, "json") || mediaType == "text/event-stream"
}

// declaredStatusLiteral renders route's declared response keys (exact
// codes, OAS 3.2 wildcards like "2XX", and "default") as a Go string-slice
// literal for [statusMatchesHelper]. It returns "" when route declares no
// responses, so callers can skip emitting an assertion that could never
// pass rather than emit a guaranteed failure.
func declaredStatusLiteral(route *model.Route) string {
	statuses := sortedStatuses(route.Responses)
	if len(statuses) == 0 {
		return ""
	}
	quoted := make([]string, len(statuses))
	for i, s := range statuses {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func sortedStatuses(m map[string]*model.Response) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedMediaTypes(m map[string]*model.Body) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// buildMockURLWithValues builds the mock request URL for route,
// additionally returning the mock string value assigned to each
// path/query parameter so a [testgen.LinkContext] can resolve
// "$request.path.*"/"$request.query.*" expressions for response links.
func buildMockURLWithValues(route *model.Route) (url string, pathValues, queryValues map[string]string) {
	pathValues = map[string]string{}
	queryValues = map[string]string{}

	path := route.PathTemplate
	for _, p := range route.Parameters {
		if p.In != model.InPath {
			continue
		}
		value := fmt.Sprint(Mock(p.Schema))
		pathValues[p.Name] = value
		style := p.Style
		if style == "" {
			style = model.StyleSimple
		}
		serialized := SerializePath(p.Name, []string{value}, style)
		path = strings.ReplaceAll(path, "{"+p.Name+"}", serialized)
	}

	var query []string
	for _, p := range route.Parameters {
		if p.In != model.InQuery {
			continue
		}
		value := fmt.Sprint(Mock(p.Schema))
		queryValues[p.Name] = value
		query = append(query, SerializeQuery(p.Name, []string{value}, p.Style, p.Explode))
	}
	if len(query) > 0 {
		url = path + "?" + strings.Join(query, "&")
	} else {
		url = path
	}
	return url, pathValues, queryValues
}

func stringMapLiteral(m map[string]string) string {
	if len(m) == 0 {
		return "map[string]string{}"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("map[string]string{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %q", k, m[k])
	}
	b.WriteString("}")
	return b.String()
}

func exportedTestName(route *model.Route) string {
	if route.OperationID != "" {
		return route.OperationID
	}
	name := strings.ReplaceAll(route.PathTemplate, "/", "_")
	name = strings.NewReplacer("{", "", "}", "").Replace(name)
	return route.Method + name
}

func quoteGoString(raw []byte) string {
	return fmt.Sprintf("%q", string(raw))
}
