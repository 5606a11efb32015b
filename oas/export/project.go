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

package export

import (
	"sort"

	"github.com/offscale/cdd/oas/model"
)

// Project converts the IR into the JSON-tagged wire mirror ready for
// marshaling. It never mutates doc.
func Project(doc *model.Document) *Spec {
	spec := &Spec{
		OpenAPI: doc.OpenAPIVersion,
		Self:    doc.SelfURI,
		Info:    projectInfo(doc.Info),
		Servers: projectServers(doc.Servers),
		Tags:    projectTags(doc.Tags),
	}

	spec.Paths = projectRoutes(doc.Routes)
	if len(doc.Webhooks) > 0 {
		spec.Webhooks = projectRoutes(doc.Webhooks)
	}
	spec.Security = projectSecurity(doc.GlobalSecurity)

	if len(doc.Schemas) > 0 || len(doc.SecuritySchemes) > 0 {
		spec.Components = &Components{
			Schemas:         projectSchemas(doc.Schemas),
			SecuritySchemes: projectSecuritySchemes(doc.SecuritySchemes),
		}
	}

	return spec
}

func projectInfo(info model.Info) *Info {
	out := &Info{
		Title:          info.Title,
		Summary:        info.Summary,
		Description:    info.Description,
		TermsOfService: info.TermsOfService,
		Version:        info.Version,
	}
	if info.Contact != nil {
		out.Contact = &Contact{Name: info.Contact.Name, URL: info.Contact.URL, Email: info.Contact.Email}
	}
	if info.License != nil {
		out.License = &License{Name: info.License.Name, Identifier: info.License.Identifier, URL: info.License.URL}
	}
	return out
}

func projectServers(servers []model.Server) []Server {
	if len(servers) == 0 {
		return nil
	}
	out := make([]Server, 0, len(servers))
	for _, s := range servers {
		server := Server{URL: s.URL, Description: s.Description}
		if len(s.Variables) > 0 {
			server.Variables = make(map[string]*ServerVariable, len(s.Variables))
			for name, v := range s.Variables {
				server.Variables[name] = &ServerVariable{Enum: v.Enum, Default: v.Default}
			}
		}
		out = append(out, server)
	}
	return out
}

func projectTags(tags []model.Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, Tag{Name: t.Name, Description: t.Description})
	}
	return out
}

func projectRoutes(routes []*model.Route) map[string]*PathItem {
	if len(routes) == 0 {
		return nil
	}
	out := map[string]*PathItem{}
	for _, r := range routes {
		item, ok := out[r.PathTemplate]
		if !ok {
			item = &PathItem{}
			out[r.PathTemplate] = item
		}
		op := projectOperation(r)
		switch r.Method {
		case "GET":
			item.Get = op
		case "PUT":
			item.Put = op
		case "POST":
			item.Post = op
		case "DELETE":
			item.Delete = op
		case "OPTIONS":
			item.Options = op
		case "HEAD":
			item.Head = op
		case "PATCH":
			item.Patch = op
		case "TRACE":
			item.Trace = op
		}
	}
	return out
}

func projectOperation(r *model.Route) *Operation {
	op := &Operation{
		Tags:        r.Tags,
		Summary:     r.Summary,
		Description: r.Description,
		OperationID: r.OperationID,
		Deprecated:  r.Deprecated,
		Parameters:  projectParameters(r.Parameters),
		Responses:   projectResponses(r.Responses),
		Security:    projectSecurity(r.Security),
	}
	if r.RequestBody != nil {
		op.RequestBody = &RequestBody{Content: projectContent(r.RequestBody)}
	}
	if len(r.Callbacks) > 0 {
		op.Callbacks = map[string]map[string]*PathItem{}
		for name, routes := range r.Callbacks {
			op.Callbacks[name] = projectRoutes(routes)
		}
	}
	return op
}

func projectParameters(params []*model.Param) []*Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]*Parameter, 0, len(params))
	for _, p := range params {
		param := &Parameter{
			Name:     p.Name,
			In:       string(p.In),
			Required: p.Required,
			Style:    string(p.Style),
			Explode:  p.Explode,
			Example:  p.Example,
			Examples: p.Examples,
		}
		if p.Schema != nil {
			param.Schema = projectSchema(p.Schema)
		}
		if p.Content != nil {
			param.Content = projectContent(p.Content)
		}
		out = append(out, param)
	}
	return out
}

func projectContent(content map[string]*model.Body) map[string]*MediaType {
	if len(content) == 0 {
		return nil
	}
	out := make(map[string]*MediaType, len(content))
	for mediaType, body := range content {
		mt := &MediaType{Example: body.Example, Examples: body.Examples}
		if body.Schema != nil {
			mt.Schema = projectSchema(body.Schema)
		}
		if body.ItemSchema != nil {
			mt.ItemSchema = projectSchema(body.ItemSchema)
		}
		if len(body.Encoding) > 0 {
			mt.Encoding = map[string]*Encoding{}
			for name, e := range body.Encoding {
				mt.Encoding[name] = &Encoding{ContentType: e.ContentType, Style: string(e.Style), Explode: e.Explode}
			}
		}
		out[mediaType] = mt
	}
	return out
}

func projectResponses(responses map[string]*model.Response) map[string]*Response {
	out := make(map[string]*Response, len(responses))
	for status, r := range responses {
		resp := &Response{Description: r.Description, Content: projectContent(r.Content)}
		if len(r.Headers) > 0 {
			resp.Headers = map[string]*Parameter{}
			for name, h := range r.Headers {
				hp := &Parameter{Name: name, In: "header"}
				if h.Schema != nil {
					hp.Schema = projectSchema(h.Schema)
				}
				resp.Headers[name] = hp
			}
		}
		if len(r.Links) > 0 {
			resp.Links = map[string]*Link{}
			for name, l := range r.Links {
				resp.Links[name] = &Link{
					OperationID: l.OperationID, OperationRef: l.OperationRef,
					Description: l.Description, Parameters: l.Parameters, RequestBody: l.RequestBody,
				}
			}
		}
		out[status] = resp
	}
	return out
}

func projectSecurity(reqs []model.Requirement) []SecurityRequirement {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]SecurityRequirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, SecurityRequirement(r))
	}
	return out
}

func projectSecuritySchemes(schemes map[string]*model.SecurityScheme) map[string]*SecurityScheme {
	if len(schemes) == 0 {
		return nil
	}
	out := make(map[string]*SecurityScheme, len(schemes))
	for name, s := range schemes {
		scheme := &SecurityScheme{
			Type: string(s.Kind), Description: s.Description,
			Name: s.Name, In: string(s.In),
			Scheme: s.Scheme, BearerFormat: s.BearerFormat,
			OpenIDConnectURL: s.OpenIDConnectURL,
		}
		if s.Flows != nil {
			scheme.Flows = &OAuthFlows{
				Implicit:          projectFlow(s.Flows.Implicit),
				Password:          projectFlow(s.Flows.Password),
				ClientCredentials: projectFlow(s.Flows.ClientCredentials),
				AuthorizationCode: projectFlow(s.Flows.AuthorizationCode),
			}
		}
		out[name] = scheme
	}
	return out
}

func projectFlow(f *model.OAuthFlow) *OAuthFlow {
	if f == nil {
		return nil
	}
	return &OAuthFlow{
		AuthorizationURL: f.AuthorizationURL, TokenURL: f.TokenURL,
		RefreshURL: f.RefreshURL, Scopes: f.Scopes,
	}
}

func projectSchemas(schemas map[string]*model.Schema) map[string]*Schema {
	if len(schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make(map[string]*Schema, len(names))
	for _, name := range names {
		out[name] = projectSchema(schemas[name])
	}
	return out
}

// projectSchema converts a model.Schema to its wire form. Only a KindRef
// node (a named reference the builder did not expand) emits a bare $ref via
// [refTo]; a fully built schema emits its full body wherever it appears,
// so a named component used inside a route is inlined there as well as
// listed under components.schemas.
func projectSchema(s *model.Schema) *Schema {
	if s == nil {
		return nil
	}
	if s.Kind == model.KindRef {
		return &Schema{Ref: refTo(s.Ref)}
	}

	out := &Schema{
		Format: s.Format, Title: s.Title, Description: s.Description,
		Deprecated: s.Deprecated, ReadOnly: s.ReadOnly, WriteOnly: s.WriteOnly,
		Example: s.Example, Examples: s.Examples,
		Pattern: s.Pattern, MinLength: s.MinLength, MaxLength: s.MaxLength,
		Minimum: s.Minimum, Maximum: s.Maximum, MultipleOf: s.MultipleOf,
		MinItems: s.MinItems, MaxItems: s.MaxItems,
		Required: s.Required,
	}

	switch s.Kind {
	case model.KindString:
		out.Type = "string"
	case model.KindInteger:
		out.Type = "integer"
	case model.KindNumber:
		out.Type = "number"
	case model.KindBoolean:
		out.Type = "boolean"
	case model.KindArray:
		out.Type = "array"
		out.Items = projectSchema(s.Items)
	case model.KindObject:
		out.Type = "object"
		if len(s.Properties) > 0 {
			out.Properties = make(map[string]*Schema, len(s.Properties))
			for name, p := range s.Properties {
				out.Properties[name] = projectSchema(p)
			}
		}
		switch {
		case s.DenyUnknown:
			out.AdditionalProperties = false
		case s.Additional != nil:
			out.AdditionalProperties = projectSchema(s.Additional)
		}
	case model.KindOneOf:
		out.OneOf = projectSchemaList(s.Variants)
	case model.KindAnyOf:
		out.AnyOf = projectSchemaList(s.Variants)
	case model.KindBoolFalse:
		// JSON Schema's literal `false` has no struct representation; the
		// closest approximation expressible through this mirror is an
		// object with no allowed properties (it still accepts `{}`).
		out.Type = "object"
		out.AdditionalProperties = false
		out.MaxItems = nil
	}

	if s.Nullable {
		if typ, ok := out.Type.(string); ok {
			out.Type = []string{typ, "null"}
		}
	}
	if s.Discriminator != nil {
		out.Discriminator = &Discriminator{
			PropertyName: s.Discriminator.PropertyName,
			Mapping:      refMapping(s.Discriminator.Mapping),
			DefaultMapping: s.Discriminator.DefaultMapping,
		}
	}

	return out
}

func projectSchemaList(variants []*model.Schema) []*Schema {
	out := make([]*Schema, 0, len(variants))
	for _, v := range variants {
		out = append(out, projectSchema(v))
	}
	return out
}

func refTo(name string) string {
	return "#/components/schemas/" + name
}

func refMapping(mapping map[string]string) map[string]string {
	if len(mapping) == 0 {
		return nil
	}
	out := make(map[string]string, len(mapping))
	for k, name := range mapping {
		out[k] = refTo(name)
	}
	return out
}
