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

	"github.com/civicarchive/govdoc/core"
	"github.com/civicarchive/govdoc/storage"
)

// extractMetadata runs the two generation calls for one document and merges
// the answers into the stored record. Documents whose status is already
// MetadataComplete are skipped unless a rebuild is forced; MetadataFailed
// documents are retried on every run.
//
// All mutation happens on a copy of the stored row. A failed extraction
// writes back only a MetadataFailed status, never a half-updated record.
func (p *Pipeline) extractMetadata(ctx context.Context, id core.ID, source Source, result *docResult) {
	if ctx.Err() != nil {
		result.metaSkipped = true
		return
	}

	doc, err := p.documents.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The embed stage creates the row, so this is a stage bug,
			// not an upstream failure.
			p.logger.Error("document row missing before metadata extraction",
				"doc_id", id, "stage", "metadata")
		} else {
			p.logger.Error("reading document failed",
				"doc_id", id, "stage", "metadata", "err", err)
		}
		result.metaFailed = true
		return
	}

	if doc.Status == core.MetadataComplete && !p.force {
		p.logger.Debug("skipping metadata extraction, already complete", "doc_id", id)
		result.metaSkipped = true
		return
	}

	next := cloneDocument(doc)
	if err := p.generateInto(ctx, next, source.Text); err != nil {
		p.logger.Error("metadata extraction failed",
			"doc_id", id, "stage", "metadata", "err", err)
		p.markFailed(ctx, doc)
		result.metaFailed = true
		return
	}

	next.Status = core.MetadataComplete
	if err := p.documents.UpsertDocument(ctx, next); err != nil {
		p.logger.Error("upserting extracted metadata failed",
			"doc_id", id, "stage", "metadata", "err", err)
		result.metaFailed = true
		return
	}

	p.logger.Info("extracted metadata", "doc_id", id, "title", next.Title)
	result.extracted = true
}

// generateInto runs both prompts and applies the normalized answers to doc.
// The bibliographic call and the category call each retry independently.
func (p *Pipeline) generateInto(ctx context.Context, doc *core.Document, text string) error {
	fields, err := p.generateFields(ctx, metadataPrompt(text))
	if err != nil {
		return fmt.Errorf("bibliographic fields: %w", err)
	}
	applyMetadata(doc, fields)

	fields, err = p.generateFields(ctx, categoryPrompt(text))
	if err != nil {
		return fmt.Errorf("category and keywords: %w", err)
	}
	applyMetadata(doc, fields)

	if err := core.ValidateDocument(doc); err != nil {
		return fmt.Errorf("merged record does not map onto the schema: %w", err)
	}
	return nil
}

func (p *Pipeline) generateFields(ctx context.Context, prompt string) (map[string]any, error) {
	var response string
	err := retryUpstream(ctx, p.retry, func() error {
		var genErr error
		response, genErr = p.generator.Generate(ctx, prompt)
		return genErr
	})
	if err != nil {
		return nil, err
	}

	fields, err := parseModelJSON(response)
	if err != nil {
		return nil, err
	}
	return NormalizeMetadata(fields), nil
}

// markFailed records the failed attempt without touching any other field.
func (p *Pipeline) markFailed(ctx context.Context, doc *core.Document) {
	failed := cloneDocument(doc)
	failed.Status = core.MetadataFailed
	if err := p.documents.UpsertDocument(ctx, failed); err != nil {
		p.logger.Error("recording metadata failure",
			"doc_id", doc.DocID, "stage", "metadata", "err", err)
	}
}

// cloneDocument deep-copies a document so extraction never mutates the
// caller's row in place.
func cloneDocument(doc *core.Document) *core.Document {
	clone := *doc
	clone.Authors = append([]string{}, doc.Authors...)
	clone.Editors = append([]string{}, doc.Editors...)
	clone.Languages = append([]string{}, doc.Languages...)
	clone.Keywords = append([]string{}, doc.Keywords...)
	return &clone
}
