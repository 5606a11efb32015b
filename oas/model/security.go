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

package model

// SecuritySchemeKind is the kind of a security scheme.
type SecuritySchemeKind string

const (
	SecurityAPIKey        SecuritySchemeKind = "apiKey"
	SecurityHTTP          SecuritySchemeKind = "http"
	SecurityOAuth2        SecuritySchemeKind = "oauth2"
	SecurityOpenIDConnect SecuritySchemeKind = "openIdConnect"
	SecurityMutualTLS     SecuritySchemeKind = "mutualTLS"
)

// SecurityScheme is a normalized OAS Security Scheme Object.
type SecurityScheme struct {
	Kind SecuritySchemeKind

	// apiKey.
	Name string
	In   ParamLocation // InQuery, InHeader, or InCookie

	// http.
	Scheme       string // "bearer", "basic", ...
	BearerFormat string

	// oauth2.
	Flows *OAuthFlows

	// openIdConnect.
	OpenIDConnectURL string

	Description string
}

// OAuthFlows holds the flow variants an oauth2 scheme supports.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
}

// OAuthFlow is a single OAuth2 flow configuration.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string
}
