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
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalYAML re-encodes spec as YAML. It round-trips through JSON first so
// that the struct's `json` tags (omitempty, field names) govern the output
// shape; yaml.v3 has no equivalent of encoding/json's omitempty for the mix
// of pointer and value fields [Schema] and its neighbors use.
func MarshalYAML(spec *Spec) ([]byte, error) {
	asJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(asJSON, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

// MarshalJSON re-encodes spec as indented JSON, matching the teacher's
// export.Project output shape.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}
