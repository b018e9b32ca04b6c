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
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/civicarchive/govdoc/core"
)

// listFields are the metadata keys whose values must be lists. The
// generation model returns scalars for them often enough that coercion is
// cheaper than rejection.
var listFields = []string{"authors", "editors", "languages", "keywords"}

// NormalizeMetadata coerces a freshly parsed metadata object into a uniform
// shape: null-like values become empty strings, numbers become their string
// representation, and list-typed fields are wrapped or emptied as needed.
// The generation model is not contractually bound to the schema and returns
// heterogeneous shapes in practice, so every response goes through this
// before it touches a Document.
func NormalizeMetadata(raw map[string]any) map[string]any {
	if raw == nil {
		return map[string]any{}
	}

	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			raw[key] = ""
		case string:
			if v == "" || v == "null" || v == "unknown" {
				raw[key] = ""
			}
		case float64:
			// encoding/json parses every number as float64.
			raw[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	for _, key := range listFields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if _, isList := value.([]any); isList {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			raw[key] = []any{}
			continue
		}
		raw[key] = []any{value}
	}

	return raw
}

// applyMetadata copies normalized metadata fields onto doc, clamping enum
// fields to their known values. Keys absent from fields leave the
// corresponding document field untouched, so a partial response never erases
// earlier state. The result still goes through core.ValidateDocument before
// it is persisted.
func applyMetadata(doc *core.Document, fields map[string]any) {
	setString(fields, "title", &doc.Title)
	setString(fields, "summary", &doc.Summary)
	setString(fields, "responsible_province", &doc.ResponsibleProvince)
	setString(fields, "responsible_city", &doc.ResponsibleCity)
	setString(fields, "publisher", &doc.Publisher)
	setString(fields, "publisher_location", &doc.PublisherLocation)
	setString(fields, "copyright_year", &doc.CopyrightYear)
	setString(fields, "ISSN", &doc.ISSN)

	if v, ok := fields["level_of_government"]; ok {
		doc.LevelOfGovernment = clampLevel(asString(v))
	}
	if v, ok := fields["publish_date"]; ok {
		doc.PublishDate = clampDate(asString(v))
	}
	if v, ok := fields["ISBN"]; ok {
		doc.ISBN = formatISBN(asString(v))
	}
	if v, ok := fields["category"]; ok {
		doc.Category = clampCategory(asString(v))
	}

	if v, ok := fields["authors"]; ok {
		doc.Authors = asStringList(v)
	}
	if v, ok := fields["editors"]; ok {
		doc.Editors = asStringList(v)
	}
	if v, ok := fields["languages"]; ok {
		doc.Languages = clampLanguages(asStringList(v))
	}
	if v, ok := fields["keywords"]; ok {
		keywords := asStringList(v)
		if len(keywords) > core.MaxKeywords {
			keywords = keywords[:core.MaxKeywords]
		}
		doc.Keywords = keywords
	}
}

func setString(fields map[string]any, key string, dst *string) {
	if v, ok := fields[key]; ok {
		*dst = asString(v)
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func asStringList(value any) []string {
	out := []string{}
	items, ok := value.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// clampLevel maps a model answer onto the level-of-government enum. An
// unrecognized non-empty answer becomes "unknown" rather than leaking junk
// into the store.
func clampLevel(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return ""
	}
	if slices.Contains(core.LevelsOfGovernment, s) {
		return s
	}
	return core.LevelUnknown
}

func clampLanguages(langs []string) []string {
	out := []string{}
	for _, lang := range langs {
		lang = strings.ToLower(lang)
		if slices.Contains(core.KnownLanguages, lang) && !slices.Contains(out, lang) {
			out = append(out, lang)
		}
	}
	return out
}

// clampCategory matches against the fixed taxonomy, case-insensitively. No
// match means no category, not an error.
func clampCategory(s string) string {
	for _, category := range core.Categories {
		if strings.EqualFold(s, category) {
			return category
		}
	}
	return ""
}

// clampDate keeps only dates the model actually converted to yyyy-mm-dd.
func clampDate(s string) string {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

// formatISBN reformats a ten-character ISBN as X-XXXX-XXXX-X. Anything that
// is not ten alphanumerics after stripping separators is kept as given; the
// prompt already asks the model for the target format.
func formatISBN(s string) string {
	var bare []rune
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			bare = append(bare, r)
		}
	}
	if len(bare) != 10 {
		return s
	}
	b := string(bare)
	return b[0:1] + "-" + b[1:5] + "-" + b[5:9] + "-" + b[9:10]
}
