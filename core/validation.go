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

package core

import (
	"fmt"
	"slices"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - DocID and Filename must not be empty
//   - list-typed fields must be non-nil (empty is fine)
//   - LevelOfGovernment must be a known level or empty
//   - Languages must be drawn from KnownLanguages
//   - Category must be in the fixed taxonomy or empty
//   - Keywords must not exceed MaxKeywords
//
// NOT validated (populated by extraction when it runs):
//   - Title, Summary and the remaining free-text fields (empty is valid)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.DocID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocID)
	}
	if doc.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyFilename)
	}

	for name, list := range map[string][]string{
		"authors":   doc.Authors,
		"editors":   doc.Editors,
		"languages": doc.Languages,
		"keywords":  doc.Keywords,
	} {
		if list == nil {
			return fmt.Errorf("%w: %w: %s", ErrInvalidDocument, ErrNilListField, name)
		}
	}

	if doc.LevelOfGovernment != "" && !slices.Contains(LevelsOfGovernment, doc.LevelOfGovernment) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidDocument, ErrInvalidLevel, doc.LevelOfGovernment)
	}

	for _, lang := range doc.Languages {
		if !slices.Contains(KnownLanguages, lang) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidDocument, ErrInvalidLanguage, lang)
		}
	}

	if doc.Category != "" && !slices.Contains(Categories, doc.Category) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidDocument, ErrInvalidCategory, doc.Category)
	}

	if len(doc.Keywords) > MaxKeywords {
		return fmt.Errorf("%w: %w: %d", ErrInvalidDocument, ErrTooManyKeywords, len(doc.Keywords))
	}

	return nil
}

// ValidatePassage validates a Passage according to domain rules.
//
// Validation rules:
//   - DocID must not be empty
//   - ChunkID must not be negative
//   - Content must not be empty
//
// The vector is not validated here: width consistency is enforced by the
// passage store, which knows the width of already persisted rows.
func ValidatePassage(passage *Passage) error {
	if passage == nil {
		return fmt.Errorf("%w: passage is nil", ErrInvalidPassage)
	}

	if passage.DocID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPassage, ErrEmptyDocID)
	}
	if passage.ChunkID < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPassage, ErrNegativeChunkID)
	}
	if passage.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPassage, ErrEmptyContent)
	}

	return nil
}
