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

package build

import (
	"sort"
	"strings"

	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/oas/rawdoc"
)

var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

func (b *builder) buildRoutes(root map[string]any) []*model.Route {
	paths, _ := rawdoc.AsMap(root["paths"])
	var templates []string
	for p := range paths {
		templates = append(templates, p)
	}
	sort.Strings(templates)

	var routes []*model.Route
	for _, tmpl := range templates {
		item, _ := rawdoc.AsMap(paths[tmpl])
		pathParams := b.buildParams(item["parameters"])
		for _, method := range httpMethods {
			op, ok := rawdoc.AsMap(item[method])
			if !ok {
				continue
			}
			routes = append(routes, b.buildOperation(strings.ToUpper(method), tmpl, op, pathParams))
		}
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].PathTemplate != routes[j].PathTemplate {
			return routes[i].PathTemplate < routes[j].PathTemplate
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

func (b *builder) buildOperation(method, pathTemplate string, op map[string]any, inheritedParams []*model.Param) *model.Route {
	r := &model.Route{
		Method:       method,
		PathTemplate: pathTemplate,
		OperationID:  stringField(op, "operationId"),
		Summary:      stringField(op, "summary"),
		Description:  stringField(op, "description"),
		Deprecated:   boolField(op, "deprecated"),
	}
	if tags, ok := rawdoc.AsSlice(op["tags"]); ok {
		for _, t := range tags {
			if s, ok := rawdoc.AsString(t); ok {
				r.Tags = append(r.Tags, s)
			}
		}
	}

	ownParams := b.buildParams(op["parameters"])
	r.Parameters = mergeParams(inheritedParams, ownParams)

	if rb, ok := rawdoc.AsMap(op["requestBody"]); ok {
		r.RequestBody = b.buildContent(rb["content"])
	}

	r.Responses = b.buildResponses(op["responses"])
	r.Security = b.buildSecurity(op["security"])
	r.Links = b.collectResponseLinks(r.Responses)

	if cbs, ok := rawdoc.AsMap(op["callbacks"]); ok {
		r.Callbacks = map[string][]*model.Route{}
		names := sortedKeys(cbs)
		for _, name := range names {
			cbItem, _ := rawdoc.AsMap(cbs[name])
			var cbRoutes []*model.Route
			exprs := sortedKeys(cbItem)
			for _, expr := range exprs {
				item, _ := rawdoc.AsMap(cbItem[expr])
				for _, m := range httpMethods {
					cbOp, ok := rawdoc.AsMap(item[m])
					if !ok {
						continue
					}
					cbRoutes = append(cbRoutes, b.buildOperation(strings.ToUpper(m), expr, cbOp, nil))
				}
			}
			r.Callbacks[name] = cbRoutes
		}
	}

	return r
}

func mergeParams(inherited, own []*model.Param) []*model.Param {
	seen := map[string]bool{}
	out := make([]*model.Param, 0, len(inherited)+len(own))
	for _, p := range own {
		seen[string(p.In)+":"+p.Name] = true
		out = append(out, p)
	}
	for _, p := range inherited {
		if !seen[string(p.In)+":"+p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func (b *builder) buildParams(n rawdoc.Node) []*model.Param {
	raw, ok := rawdoc.AsSlice(n)
	if !ok {
		return nil
	}
	var out []*model.Param
	for _, pv := range raw {
		p, ok := rawdoc.AsMap(pv)
		if !ok {
			continue
		}
		name := stringField(p, "name")
		in := model.ParamLocation(stringField(p, "in"))
		if in == model.InHeader && strings.EqualFold(name, "Content-Type") {
			continue // header params named Content-Type are ignored (§3)
		}
		param := &model.Param{
			Name:     name,
			In:       in,
			Required: boolField(p, "required") || in == model.InPath,
			Style:    model.Style(stringField(p, "style")),
			Explode:  boolField(p, "explode"),
			Example:  p["example"],
		}
		if examples, ok := rawdoc.AsMap(p["examples"]); ok {
			param.Examples = examples
		}
		if schemaRaw, ok := p["schema"]; ok {
			param.Schema = b.schemas.build(schemaRaw)
		}
		if content, ok := rawdoc.AsMap(p["content"]); ok {
			param.Content = b.buildContent(content)
		}
		out = append(out, param)
	}
	return out
}

func (b *builder) buildContent(n rawdoc.Node) map[string]*model.Body {
	content, ok := rawdoc.AsMap(n)
	if !ok {
		return nil
	}
	out := make(map[string]*model.Body, len(content))
	for mediaType, bv := range content {
		bm, ok := rawdoc.AsMap(bv)
		if !ok {
			continue
		}
		body := &model.Body{Example: bm["example"]}
		if examples, ok := rawdoc.AsMap(bm["examples"]); ok {
			body.Examples = examples
		}
		if schemaRaw, ok := bm["schema"]; ok {
			body.Schema = b.schemas.build(schemaRaw)
		}
		if itemRaw, ok := bm["itemSchema"]; ok {
			body.ItemSchema = b.schemas.build(itemRaw)
		}
		if enc, ok := rawdoc.AsMap(bm["encoding"]); ok {
			body.Encoding = map[string]*model.Encoding{}
			for name, ev := range enc {
				body.Encoding[name] = b.buildEncoding(ev)
			}
		}
		if pe, ok := bm["prefixEncoding"]; ok {
			body.PrefixEncoding = b.buildEncoding(pe)
		}
		if ie, ok := bm["itemEncoding"]; ok {
			body.ItemEncoding = b.buildEncoding(ie)
		}
		out[mediaType] = body
	}
	return out
}

func (b *builder) buildEncoding(n rawdoc.Node) *model.Encoding {
	m, ok := rawdoc.AsMap(n)
	if !ok {
		return nil
	}
	return &model.Encoding{
		ContentType: stringField(m, "contentType"),
		Style:       model.Style(stringField(m, "style")),
		Explode:     boolField(m, "explode"),
	}
}

func (b *builder) buildResponses(n rawdoc.Node) map[string]*model.Response {
	raw, ok := rawdoc.AsMap(n)
	if !ok {
		return nil
	}
	out := make(map[string]*model.Response, len(raw))
	for status, rv := range raw {
		rm, ok := rawdoc.AsMap(rv)
		if !ok {
			continue
		}
		resp := &model.Response{Description: stringField(rm, "description")}
		resp.Content = b.buildContent(rm["content"])
		if headers, ok := rawdoc.AsMap(rm["headers"]); ok {
			resp.Headers = map[string]*model.Param{}
			for name, hv := range headers {
				hm, _ := rawdoc.AsMap(hv)
				p := &model.Param{Name: name, In: model.InHeader}
				if schemaRaw, ok := hm["schema"]; ok {
					p.Schema = b.schemas.build(schemaRaw)
				}
				resp.Headers[name] = p
			}
		}
		resp.Links = b.buildLinks(rm["links"])
		out[status] = resp
	}
	return out
}

func (b *builder) buildLinks(n rawdoc.Node) map[string]*model.Link {
	raw, ok := rawdoc.AsMap(n)
	if !ok {
		return nil
	}
	out := make(map[string]*model.Link, len(raw))
	for name, lv := range raw {
		lm, ok := rawdoc.AsMap(lv)
		if !ok {
			continue
		}
		link := &model.Link{
			OperationID:  stringField(lm, "operationId"),
			OperationRef: stringField(lm, "operationRef"),
			Description:  stringField(lm, "description"),
			RequestBody:  stringifyAny(lm["requestBody"]),
		}
		if params, ok := rawdoc.AsMap(lm["parameters"]); ok {
			link.Parameters = map[string]string{}
			for k, v := range params {
				link.Parameters[k] = stringifyAny(v)
			}
		}
		out[name] = link
	}
	return out
}

func (b *builder) collectResponseLinks(responses map[string]*model.Response) map[string]*model.Link {
	out := map[string]*model.Link{}
	statuses := sortedRespKeys(responses)
	for _, status := range statuses {
		for name, l := range responses[status].Links {
			out[name] = l
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func sortedRespKeys(m map[string]*model.Response) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (b *builder) buildSecurity(n rawdoc.Node) []model.Requirement {
	raw, ok := rawdoc.AsSlice(n)
	if !ok {
		return nil
	}
	var out []model.Requirement
	for _, rv := range raw {
		rm, ok := rawdoc.AsMap(rv)
		if !ok {
			continue
		}
		req := model.Requirement{}
		for scheme, scopesRaw := range rm {
			var scopes []string
			if scopesList, ok := rawdoc.AsSlice(scopesRaw); ok {
				for _, s := range scopesList {
					if str, ok := rawdoc.AsString(s); ok {
						scopes = append(scopes, str)
					}
				}
			}
			req[scheme] = scopes
		}
		out = append(out, req)
	}
	return out
}

func stringifyAny(v any) string {
	s, _ := rawdoc.AsString(v)
	return s
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
