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

import "errors"

var (
	// ErrProviderRequired is returned when a pipeline is constructed
	// without an AI provider.
	ErrProviderRequired = errors.New("ai provider is required")

	// ErrDocumentRepositoryRequired is returned when a pipeline is
	// constructed without a document repository.
	ErrDocumentRepositoryRequired = errors.New("document repository is required")

	// ErrPassageRepositoryRequired is returned when a pipeline is
	// constructed without a passage repository.
	ErrPassageRepositoryRequired = errors.New("passage repository is required")

	// ErrInvalidPoolSize is returned for a non-positive worker pool size.
	ErrInvalidPoolSize = errors.New("pool size must be positive")

	// ErrInvalidChunkBounds is returned when the configured chunk bounds
	// are not 1 <= min <= max.
	ErrInvalidChunkBounds = errors.New("chunk bounds must satisfy 1 <= min <= max")

	// ErrInvalidMaxAttempts is returned for a retry policy with a
	// non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrEmptySource is returned for a source with an empty filename.
	ErrEmptySource = errors.New("source filename is empty")
)
