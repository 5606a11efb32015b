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

// Info is the document-level metadata block (OAS Info Object).
type Info struct {
	Title          string
	Summary        string
	Description    string
	TermsOfService string
	Version        string
	Contact        *Contact
	License        *License
}

// Contact is the OAS Contact Object.
type Contact struct {
	Name  string
	URL   string
	Email string
}

// License is the OAS License Object.
type License struct {
	Name       string
	Identifier string
	URL        string
}

// Document is the root of the built IR: everything the generators need to
// scaffold, patch, reflect, or synthesize tests from one OpenAPI document.
type Document struct {
	// OpenAPIVersion is the resolved, shimmed version string (e.g. "3.1.2").
	OpenAPIVersion string

	// SelfURI is the OAS 3.2 `$self` base URI, or "" if `$self` is absent.
	SelfURI string

	Info    Info
	Servers []Server
	Tags    []Tag

	// Routes is every top-level operation, sorted by (PathTemplate, Method)
	// for deterministic output (§5 "Ordering guarantees").
	Routes []*Route

	// Webhooks holds OAS 3.1+ webhook operations (inbound-only).
	Webhooks []*Route

	// Schemas is components.schemas, keyed by component name.
	Schemas map[string]*Schema

	SecuritySchemes map[string]*SecurityScheme
	GlobalSecurity  []Requirement
}

// Tag is the OAS Tag Object.
type Tag struct {
	Name        string
	Description string
}
