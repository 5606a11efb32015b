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

// Package reader is the OAS Reader (§4.1): it turns YAML or JSON input into
// a raw document tree in which every non-schema `$ref` is resolved in
// place; `$ref`s into `components/schemas` are left for the IR builder.
// The base URI comes from `$self` or the file path, reserved
// `additionalOperations` entries are rejected and snake_case link keys are
// canonicalized; `itemSchema`, `dataValue`/`serializedValue`/`externalValue`
// examples and `discriminator.defaultMapping` pass through unchanged.
//
// The reader never fetches over the network (§4.1 "No network fetching");
// an unresolved remote $ref is reported as a [specerrors.CategoryResolution]
// diagnostic, not retried.
package reader
