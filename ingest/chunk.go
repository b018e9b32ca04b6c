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

import "strings"

// Default chunk bounds, in words.
const (
	DefaultMinChunkSize = 100
	DefaultMaxChunkSize = 500
)

// Chunk splits text into passages between minSize and maxSize words,
// preserving paragraph boundaries. The text is normalized first, split into
// paragraphs, and paragraphs are greedily accumulated into the current
// chunk.
//
// When adding the next paragraph would exceed maxSize:
//   - if the current chunk already meets minSize, it is closed and the
//     pending paragraph starts a new chunk;
//   - otherwise the oversized paragraph is force-added anyway, so a single
//     chunk may exceed maxSize to guarantee the minimum is met.
//
// A trailing chunk below minSize is merged into the previous chunk rather
// than emitted undersized. A document whose whole content is smaller than
// minSize yields exactly one chunk containing everything. Empty input after
// normalization yields zero chunks; callers treat that as nothing to embed,
// not an error.
//
// Identical input always yields an identical chunk sequence, and a chunk
// boundary never falls inside a paragraph.
func Chunk(text string, minSize, maxSize int) []string {
	if minSize < 1 {
		minSize = 1
	}
	if maxSize < minSize {
		maxSize = minSize
	}

	var paragraphs []string
	for _, p := range strings.Split(Normalize(text), paragraphSeparator) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	var chunks []string
	var current []string
	currentSize := 0

	closeCurrent := func() {
		chunks = append(chunks, strings.Join(current, " "))
		current = nil
		currentSize = 0
	}

	for _, paragraph := range paragraphs {
		size := len(strings.Fields(paragraph))

		if currentSize+size > maxSize {
			if currentSize >= minSize {
				closeCurrent()
				current = []string{paragraph}
				currentSize = size
			} else {
				// Minimum-size override: the chunk may exceed maxSize.
				current = append(current, paragraph)
				closeCurrent()
			}
			continue
		}

		current = append(current, paragraph)
		currentSize += size
	}

	if len(current) > 0 {
		if currentSize >= minSize || len(chunks) == 0 {
			closeCurrent()
		} else {
			// Merge an undersized trailing chunk backward.
			last := chunks[len(chunks)-1]
			chunks[len(chunks)-1] = last + " " + strings.Join(current, " ")
		}
	}

	return chunks
}
