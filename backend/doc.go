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

// Package backend abstracts over target HTTP framework idioms (§4.5): the
// patcher and test synthesizer never hardcode a routing style, they call a
// [Strategy]. [RouterStrategy] targets the teacher's own fluent router
// (`app.GET(path, handler)`); [NetHTTPStrategy] is a second, minimal
// implementation over net/http.ServeMux's Go 1.22 method-path patterns,
// included only to prove the interface doesn't secretly assume the
// teacher's router (§9).
package backend
