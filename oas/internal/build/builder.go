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

	"github.com/offscale/cdd/oas/model"
	"github.com/offscale/cdd/oas/rawdoc"
	"github.com/offscale/cdd/specerrors"
)

// builder threads a single [schemaBuilder] arena through every route and
// webhook it builds, so a schema shared by two operations is only built
// once.
type builder struct {
	schemas *schemaBuilder
	diags   *specerrors.Diagnostics
}

// Build turns a resolved, validated raw tree into the shared [model.Document]
// IR. Every collection that is observably ordered in generated output is
// sorted deterministically here (§5 "Ordering guarantees"); map iteration
// order is never relied upon downstream.
func Build(root map[string]any, diags *specerrors.Diagnostics) *model.Document {
	b := &builder{
		schemas: newSchemaBuilder(root, diags),
		diags:   diags,
	}

	doc := &model.Document{
		OpenAPIVersion: stringField(root, "openapi"),
		Info:           b.buildInfo(root["info"]),
		Servers:        b.buildServers(root["servers"]),
		Tags:           b.buildTags(root["tags"]),
		Schemas:        b.schemas.allNamed(),
	}
	if self, ok := rawdoc.AsString(root["$self"]); ok {
		doc.SelfURI = self
	}

	doc.Routes = b.buildRoutes(root)
	doc.Webhooks = b.buildWebhooks(root)
	doc.SecuritySchemes = b.buildSecuritySchemes(root)
	doc.GlobalSecurity = b.buildSecurity(root["security"])

	return doc
}

func (b *builder) buildInfo(n rawdoc.Node) model.Info {
	m, ok := rawdoc.AsMap(n)
	if !ok {
		return model.Info{}
	}
	info := model.Info{
		Title:          stringField(m, "title"),
		Summary:        stringField(m, "summary"),
		Description:    stringField(m, "description"),
		TermsOfService: stringField(m, "termsOfService"),
		Version:        stringField(m, "version"),
	}
	if c, ok := rawdoc.AsMap(m["contact"]); ok {
		info.Contact = &model.Contact{
			Name:  stringField(c, "name"),
			URL:   stringField(c, "url"),
			Email: stringField(c, "email"),
		}
	}
	if l, ok := rawdoc.AsMap(m["license"]); ok {
		info.License = &model.License{
			Name:       stringField(l, "name"),
			Identifier: stringField(l, "identifier"),
			URL:        stringField(l, "url"),
		}
	}
	return info
}

func (b *builder) buildServers(n rawdoc.Node) []model.Server {
	raw, ok := rawdoc.AsSlice(n)
	if !ok {
		return nil
	}
	out := make([]model.Server, 0, len(raw))
	for _, sv := range raw {
		sm, ok := rawdoc.AsMap(sv)
		if !ok {
			continue
		}
		server := model.Server{
			URL:         stringField(sm, "url"),
			Description: stringField(sm, "description"),
		}
		if vars, ok := rawdoc.AsMap(sm["variables"]); ok {
			server.Variables = make(map[string]model.ServerVariable, len(vars))
			for name, vv := range vars {
				vm, _ := rawdoc.AsMap(vv)
				variable := model.ServerVariable{Default: stringField(vm, "default")}
				if enum, ok := rawdoc.AsSlice(vm["enum"]); ok {
					for _, e := range enum {
						if s, ok := rawdoc.AsString(e); ok {
							variable.Enum = append(variable.Enum, s)
						}
					}
				}
				server.Variables[name] = variable
			}
		}
		out = append(out, server)
	}
	return out
}

func (b *builder) buildTags(n rawdoc.Node) []model.Tag {
	raw, ok := rawdoc.AsSlice(n)
	if !ok {
		return nil
	}
	out := make([]model.Tag, 0, len(raw))
	for _, tv := range raw {
		tm, ok := rawdoc.AsMap(tv)
		if !ok {
			continue
		}
		out = append(out, model.Tag{
			Name:        stringField(tm, "name"),
			Description: stringField(tm, "description"),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (b *builder) buildWebhooks(root map[string]any) []*model.Route {
	hooks, ok := rawdoc.AsMap(root["webhooks"])
	if !ok {
		return nil
	}
	names := sortedKeys(hooks)
	var out []*model.Route
	for _, name := range names {
		item, _ := rawdoc.AsMap(hooks[name])
		for _, method := range httpMethods {
			op, ok := rawdoc.AsMap(item[method])
			if !ok {
				continue
			}
			route := b.buildOperation(upper(method), name, op, nil)
			route.Webhook = true
			out = append(out, route)
		}
	}
	return out
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func (b *builder) buildSecuritySchemes(root map[string]any) map[string]*model.SecurityScheme {
	components, ok := rawdoc.AsMap(root["components"])
	if !ok {
		return nil
	}
	schemes, ok := rawdoc.AsMap(components["securitySchemes"])
	if !ok {
		return nil
	}
	out := make(map[string]*model.SecurityScheme, len(schemes))
	for name, sv := range schemes {
		sm, ok := rawdoc.AsMap(sv)
		if !ok {
			continue
		}
		scheme := &model.SecurityScheme{
			Kind:        model.SecuritySchemeKind(stringField(sm, "type")),
			Name:        stringField(sm, "name"),
			In:          model.ParamLocation(stringField(sm, "in")),
			Scheme:      stringField(sm, "scheme"),
			BearerFormat: stringField(sm, "bearerFormat"),
			Description: stringField(sm, "description"),
		}
		if oidc, ok := rawdoc.AsString(sm["openIdConnectUrl"]); ok {
			scheme.OpenIDConnectURL = oidc
		}
		if flows, ok := rawdoc.AsMap(sm["flows"]); ok {
			scheme.Flows = &model.OAuthFlows{
				Implicit:          buildFlow(flows["implicit"]),
				Password:          buildFlow(flows["password"]),
				ClientCredentials: buildFlow(flows["clientCredentials"]),
				AuthorizationCode: buildFlow(flows["authorizationCode"]),
			}
		}
		out[name] = scheme
	}
	return out
}

func buildFlow(n rawdoc.Node) *model.OAuthFlow {
	m, ok := rawdoc.AsMap(n)
	if !ok {
		return nil
	}
	flow := &model.OAuthFlow{
		AuthorizationURL: stringField(m, "authorizationUrl"),
		TokenURL:         stringField(m, "tokenUrl"),
		RefreshURL:       stringField(m, "refreshUrl"),
	}
	if scopes, ok := rawdoc.AsMap(m["scopes"]); ok {
		flow.Scopes = make(map[string]string, len(scopes))
		for k, v := range scopes {
			if s, ok := rawdoc.AsString(v); ok {
				flow.Scopes[k] = s
			}
		}
	}
	return flow
}
