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

package typemap

import "log/slog"

// Secret wraps a string that must never reach a log line or error message
// in cleartext. String, GoString, and LogValue all print the fixed redaction
// mask, mirroring the field-name-based redaction the teacher's logging
// package applies to "password"/"token"/"secret"/"api_key"/"authorization"
// attributes — here the redaction is structural (the wire type), not
// name-sniffed, so it survives a field rename.
type Secret string

const redactedMask = "******"

func (Secret) String() string   { return redactedMask }
func (Secret) GoString() string { return redactedMask }

// LogValue implements slog.LogValuer so a Secret field passed directly to a
// slog call is redacted without the caller remembering to do it.
func (Secret) LogValue() slog.Value { return slog.StringValue(redactedMask) }

// Decimal is an arbitrary-precision decimal value, represented as its exact
// base-10 string rather than float64 to avoid the precision loss a binary
// float would introduce for `number` + `format: decimal` schemas.
type Decimal string

func (d Decimal) String() string { return string(d) }
