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
	"context"
	"errors"
	"fmt"

	"github.com/civicarchive/govdoc/ai"
	"github.com/civicarchive/govdoc/core"
	"github.com/civicarchive/govdoc/storage"
)

// embedDocument chunks, embeds and stores the passages for one source, then
// upserts the document row so the metadata stage always has a record to
// mutate.
//
// A document is skipped when it already has passages, its row exists, and
// the stored fingerprint matches the source text, unless a rebuild is
// forced. A row whose passages went missing is re-embedded rather than
// trusted, so the store self-heals.
func (p *Pipeline) embedDocument(ctx context.Context, id core.ID, source Source, result *docResult) error {
	fingerprint := core.FingerprintText(source.Text)

	doc, err := p.documents.GetDocument(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("reading document: %w", err)
	}

	hasPassages, err := p.passages.HasPassages(ctx, id)
	if err != nil {
		return fmt.Errorf("checking passages: %w", err)
	}

	if !p.force && hasPassages && doc != nil && doc.Fingerprint == fingerprint {
		p.logger.Debug("skipping embedding, passages are current", "doc_id", id)
		result.embedSkipped = true
		return nil
	}

	chunks := Chunk(source.Text, p.minChunkSize, p.maxChunkSize)
	if len(chunks) == 0 {
		p.logger.Warn("document has no content after normalization", "doc_id", id)
	}

	var vectors [][]float32
	if len(chunks) > 0 {
		err = retryUpstream(ctx, p.retry, func() error {
			var embedErr error
			vectors, embedErr = p.embedder.EmbedTexts(ctx, chunks)
			return embedErr
		})
		if err != nil {
			return fmt.Errorf("embedding %d chunks: %w", len(chunks), err)
		}
		if len(vectors) != len(chunks) {
			return fmt.Errorf("%w: expected %d embeddings, received %d",
				ai.ErrMalformedResponse, len(chunks), len(vectors))
		}
	}

	// ChunkID comes from chunk position, never from completion order.
	passages := make([]*core.Passage, len(chunks))
	for i, chunk := range chunks {
		passages[i] = &core.Passage{
			DocID:   id,
			ChunkID: i,
			Content: chunk,
			Vector:  vectors[i],
		}
	}

	if err := p.passages.ReplacePassages(ctx, id, passages); err != nil {
		return fmt.Errorf("replacing passages: %w", err)
	}

	if doc == nil {
		doc = core.NewDocument(source.Filename)
	}
	doc.Fingerprint = fingerprint
	if err := p.documents.UpsertDocument(ctx, doc); err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	p.logger.Info("embedded document", "doc_id", id, "passages", len(passages))
	result.embedded = true
	return nil
}
