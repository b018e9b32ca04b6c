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

// Package ingest turns OCR'd government document text into stored passages
// and extracted metadata.
//
// The per-document sequence is: normalize the text, chunk it on paragraph
// boundaries, embed the chunks, atomically replace the document's passage
// rows, then run two generation calls to extract bibliographic metadata and
// upsert the document record. A bounded worker pool runs documents in
// parallel; failures are scoped to the document that caused them.
//
// Repeated runs are cheap: unchanged documents are recognized by content
// fingerprint and completed metadata by a status field, and both stages are
// skipped unless a rebuild is forced.
package ingest
