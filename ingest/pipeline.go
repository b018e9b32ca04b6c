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
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/civicarchive/govdoc/ai"
	"github.com/civicarchive/govdoc/core"
	"github.com/civicarchive/govdoc/storage"
)

// Source is one OCR'd text file to ingest. The filename (minus extension)
// is the canonical document ID.
type Source struct {
	Filename string
	Text     string
}

// Summary reports what a pipeline run did, per stage. Failed counts cover
// documents whose errors were logged and scoped to that document; the run
// itself only fails on cancellation or an incompatible vector schema.
type Summary struct {
	Documents int

	Embedded     int
	EmbedSkipped int
	EmbedFailed  int

	MetadataExtracted int
	MetadataSkipped   int
	MetadataFailed    int
}

// Pipeline runs the per-document ingestion sequence across documents in
// parallel: normalize, chunk, embed, replace passages, then extract
// metadata and upsert the document record. Each document's pipeline is
// independent; one document's failure never aborts the others.
type Pipeline struct {
	documents storage.DocumentRepository
	passages  storage.PassageRepository
	embedder  ai.Embedder
	generator ai.Generator

	pool         *ants.Pool
	minChunkSize int
	maxChunkSize int
	force        bool
	retry        RetryPolicy
	locks        *keyLock
	progress     *ProgressTracker
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent document
// processing. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return ErrInvalidPoolSize
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithChunkBounds sets the chunk size bounds in words.
// Defaults are DefaultMinChunkSize and DefaultMaxChunkSize.
func WithChunkBounds(minSize, maxSize int) Option {
	return func(p *Pipeline) error {
		if minSize < 1 || maxSize < minSize {
			return ErrInvalidChunkBounds
		}
		p.minChunkSize = minSize
		p.maxChunkSize = maxSize
		return nil
	}
}

// WithForceRebuild makes the run re-embed and re-extract every document,
// ignoring fingerprints and completed metadata.
func WithForceRebuild(force bool) Option {
	return func(p *Pipeline) error {
		p.force = force
		return nil
	}
}

// WithRetryPolicy sets the retry policy for upstream model calls.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(p *Pipeline) error {
		if policy.MaxAttempts < 1 {
			return ErrInvalidMaxAttempts
		}
		p.retry = policy
		return nil
	}
}

// WithProgress attaches a progress tracker, started and finished by Run.
func WithProgress(progress *ProgressTracker) Option {
	return func(p *Pipeline) error {
		p.progress = progress
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "ingest")
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given stores and model
// provider.
func NewPipeline(
	documents storage.DocumentRepository,
	passages storage.PassageRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if passages == nil {
		return nil, ErrPassageRepositoryRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents:    documents,
		passages:     passages,
		embedder:     provider.Embedder(),
		generator:    provider.Generator(),
		pool:         pool,
		minChunkSize: DefaultMinChunkSize,
		maxChunkSize: DefaultMaxChunkSize,
		retry:        DefaultRetryPolicy,
		locks:        newKeyLock(),
		logger:       slog.Default().With("component", "ingest"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Run processes every source through the per-document pipeline and blocks
// until all scheduled documents have finished. Cancelling ctx stops
// scheduling new documents; documents already in flight finish or fail
// cleanly. An incompatible vector schema in the passage store is fatal for
// the whole run and also stops scheduling.
//
// Per-document failures are logged with doc id, stage and cause, counted in
// the Summary, and do not abort the run.
func (p *Pipeline) Run(ctx context.Context, sources []Source) (*Summary, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		summary  Summary
		fatalErr error
	)

	fatal := func(err error) {
		mu.Lock()
		if fatalErr == nil {
			fatalErr = err
		}
		mu.Unlock()
		cancel()
	}

	if p.progress != nil {
		p.progress.Start()
	}

	for _, source := range sources {
		if runCtx.Err() != nil {
			break
		}
		if source.Filename == "" {
			p.logger.Error("skipping source", "err", ErrEmptySource)
			continue
		}

		src := source
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			result := p.processDocument(runCtx, src, fatal)
			mu.Lock()
			summary.add(result)
			mu.Unlock()
			if p.progress != nil {
				p.progress.Increment(1)
			}
		}); err != nil {
			wg.Done()
			p.logger.Error("submitting document", "filename", src.Filename, "err", err)
		}
	}

	wg.Wait()

	if p.progress != nil {
		p.progress.Finish()
	}

	mu.Lock()
	defer mu.Unlock()
	if fatalErr != nil {
		return &summary, fatalErr
	}
	if err := ctx.Err(); err != nil {
		return &summary, err
	}
	return &summary, nil
}

// docResult is the outcome of one document's pipeline.
type docResult struct {
	embedded, embedSkipped, embedFailed bool
	extracted, metaSkipped, metaFailed  bool
}

func (s *Summary) add(r docResult) {
	s.Documents++
	switch {
	case r.embedded:
		s.Embedded++
	case r.embedSkipped:
		s.EmbedSkipped++
	case r.embedFailed:
		s.EmbedFailed++
	}
	switch {
	case r.extracted:
		s.MetadataExtracted++
	case r.metaSkipped:
		s.MetadataSkipped++
	case r.metaFailed:
		s.MetadataFailed++
	}
}

// processDocument runs both stages for one source under the document's key
// lock, so two sources mapping to the same id never interleave their
// read-check-write sequences.
func (p *Pipeline) processDocument(ctx context.Context, source Source, fatal func(error)) docResult {
	var result docResult

	if ctx.Err() != nil {
		result.embedSkipped = true
		result.metaSkipped = true
		return result
	}

	id := core.IDFromFilename(source.Filename)
	unlock := p.locks.acquire(id)
	defer unlock()

	if err := p.embedDocument(ctx, id, source, &result); err != nil {
		if errors.Is(err, storage.ErrIncompatibleSchema) {
			fatal(err)
		}
		p.logger.Error("embedding document failed",
			"doc_id", id, "stage", "embed", "err", err)
		result.embedFailed = true
		result.metaSkipped = true
		return result
	}

	// Metadata extraction only runs once the document row exists; the
	// embed stage guarantees that even when it skips re-embedding.
	p.extractMetadata(ctx, id, source, &result)
	return result
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
