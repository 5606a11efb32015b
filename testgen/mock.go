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
	"sort"

	"github.com/google/uuid"

	"github.com/offscale/cdd/oas/model"
)

// Mock builds a minimal, valid JSON-compatible value for schema: required
// fields only, the first oneOf/anyOf variant, empty arrays unless
// minItems forces at least one element, and format-specific literals
// (zeroed UUID v4, a fixed example date) so generated tests are
// deterministic across runs (§4.6 step 1, §5 "byte-identical outputs").
func Mock(schema *model.Schema) any {
	if schema == nil {
		return nil
	}
	if schema.Example != nil {
		return schema.Example
	}

	switch schema.Kind {
	case model.KindString:
		return mockString(schema)
	case model.KindInteger:
		return 0
	case model.KindNumber:
		return 0.0
	case model.KindBoolean:
		return false
	case model.KindArray:
		n := 0
		if schema.MinItems != nil && *schema.MinItems > 0 {
			n = *schema.MinItems
		}
		out := make([]any, n)
		for i := range out {
			out[i] = Mock(schema.Items)
		}
		return out
	case model.KindObject:
		out := map[string]any{}
		required := make([]string, len(schema.Required))
		copy(required, schema.Required)
		sort.Strings(required)
		for _, name := range required {
			if prop, ok := schema.Properties[name]; ok {
				out[name] = Mock(prop)
			}
		}
		return out
	case model.KindOneOf, model.KindAnyOf:
		if len(schema.Variants) == 0 {
			return nil
		}
		return Mock(schema.Variants[0])
	case model.KindBoolTrue:
		return map[string]any{}
	default:
		return nil
	}
}

// mockZeroUUID is the fixed zero UUID used for any `uuid`-formatted
// string field, so two runs of the same generator agree byte-for-byte.
var mockZeroUUID = uuid.UUID{}

func mockString(schema *model.Schema) string {
	switch schema.Format {
	case "uuid":
		return mockZeroUUID.String()
	case "date-time":
		return "2024-01-01T00:00:00Z"
	case "date":
		return "2024-01-01"
	case "password":
		return "correct-horse-battery-staple"
	default:
		if len(schema.Examples) > 0 {
			keys := make([]string, 0, len(schema.Examples))
			for k := range schema.Examples {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			if s, ok := schema.Examples[keys[0]].(string); ok {
				return s
			}
		}
		return "test"
	}
}
