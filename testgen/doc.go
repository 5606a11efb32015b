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

// Package testgen synthesizes one Go test per OAS operation (§4.6): a
// request built from mocked parameter and body values, sent through the
// app factory, with the response asserted against the route's declared
// status codes and schema. Parameter serialization follows the style/explode
// table of §6 exactly; response bodies are validated with
// santhosh-tekuri/jsonschema/v6 against a schema translated from the IR by
// typemap's inverse projection.
package testgen
