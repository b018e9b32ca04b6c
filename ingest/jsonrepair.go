// Copyright 2026 Civic Archive Project
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

package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/civicarchive/govdoc/ai"
)

// parseModelJSON turns a raw generation answer into a metadata object.
// Markdown code fences are stripped and common model formatting slips are
// repaired before parsing. A response that still does not parse is a
// malformed response, which the caller must not retry.
func parseModelJSON(raw string) (map[string]any, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	s = repairJSON(s)

	var fields map[string]any
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}
	return fields, nil
}

// repairJSON fixes the one malformation the generation models produce often
// enough to matter: a missing opening quote before an object key, as in
// `, title":` for `, "title":`.
func repairJSON(s string) string {
	src := []rune(s)
	fixed := make([]rune, 0, len(src)+16)

	i := 0
	for i < len(src) {
		ch := src[i]

		if ch != '{' && ch != ',' {
			fixed = append(fixed, ch)
			i++
			continue
		}

		fixed = append(fixed, ch)
		i++

		for i < len(src) && (src[i] == ' ' || src[i] == '\n' || src[i] == '\t') {
			fixed = append(fixed, src[i])
			i++
		}

		// A key starting with a letter instead of a quote is suspect.
		if i >= len(src) || src[i] == '"' || !isKeyRune(src[i]) {
			continue
		}

		keyStart := i
		for i < len(src) && (isKeyRune(src[i]) || src[i] == ' ') {
			i++
		}

		// Only a `"` followed by `:` confirms the opening quote was the
		// missing piece; anything else is copied through untouched.
		if i+1 < len(src) && src[i] == '"' && src[i+1] == ':' {
			fixed = append(fixed, '"')
			fixed = append(fixed, src[keyStart:i]...)
			continue
		}
		fixed = append(fixed, src[keyStart:i]...)
	}

	return string(fixed)
}

func isKeyRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
