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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidPassage indicates a Passage failed validation.
	ErrInvalidPassage = errors.New("invalid passage")

	// ErrEmptyDocID indicates the DocID field is empty.
	ErrEmptyDocID = errors.New("doc id cannot be empty")

	// ErrEmptyFilename indicates the Filename field is empty.
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrNilListField indicates a list-typed field is nil instead of empty.
	ErrNilListField = errors.New("list field cannot be nil")

	// ErrInvalidLevel indicates an unknown level of government value.
	ErrInvalidLevel = errors.New("invalid level of government")

	// ErrInvalidLanguage indicates a language code outside the known set.
	ErrInvalidLanguage = errors.New("invalid language code")

	// ErrInvalidCategory indicates a category outside the fixed taxonomy.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrTooManyKeywords indicates more keywords than MaxKeywords.
	ErrTooManyKeywords = errors.New("too many keywords")

	// ErrEmptyContent indicates the passage Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrNegativeChunkID indicates a passage with a chunk id below zero.
	ErrNegativeChunkID = errors.New("chunk id cannot be negative")
)
