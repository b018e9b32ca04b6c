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

package storage

import "errors"

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable indicates a persistence-layer failure. Fatal for
	// the document being processed; never retried automatically.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrIncompatibleSchema indicates an attempt to insert vectors whose
	// width differs from the width already persisted. This usually means
	// the embedding model changed; fatal for the whole run, requires
	// operator intervention, never auto-migrated.
	ErrIncompatibleSchema = errors.New("incompatible embedding schema")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
