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

import "github.com/offscale/cdd/oas/model"

// Strategy is the capability surface the patcher and test synthesizer need
// from a target framework (§4.5); a concrete implementation knows nothing
// about OAS, only how to render its idiom as source text.
type Strategy interface {
	// HandlerSignature returns the Go source for an empty handler function
	// for route whose body is a TODO comment and a not-implemented status;
	// no extractor calls are emitted for the route's parameters or body.
	// The patcher only ever creates the signature; a human fills in the body.
	HandlerSignature(route *model.Route) string

	// RouteRegistration returns the single statement that registers route
	// against a config function's router/mux variable.
	RouteRegistration(route *model.Route, routerVar string) string

	// ExtractorFor returns the Go expression that reads param's value out
	// of the request in a handler body.
	ExtractorFor(param *model.Param) string

	// AppFactoryInvocation returns the expression test synthesizer uses to
	// obtain an http.Handler to drive requests against.
	AppFactoryInvocation() string
}
