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

package govdoc

import (
	"log/slog"

	"github.com/civicarchive/govdoc/ai"
	"github.com/civicarchive/govdoc/ai/openai"
	"github.com/civicarchive/govdoc/export"
	"github.com/civicarchive/govdoc/ingest"
	"github.com/civicarchive/govdoc/storage"
	"github.com/civicarchive/govdoc/storage/badger"
)

// Database bundles the document and passage stores with the model provider
// behind one open/close lifecycle. It is the embedding-API entry point for
// programs that drive ingestion or export directly.
type Database struct {
	backend   *badger.Backend
	documents storage.DocumentRepository
	passages  storage.PassageRepository
	provider  ai.Provider
	logger    *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the model configuration.
func WithAIConfig(cfg *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithInMemory opens the store without touching disk. Used by tests and
// dry runs.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens the store at filePath and connects the model provider.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	documents := badger.NewDocumentRepository(backend)
	passages := badger.NewPassageRepository(backend)

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:   backend,
		documents: documents,
		passages:  passages,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

// Close releases the provider, repositories and backing store.
func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.documents.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := db.passages.Close(); err != nil {
		db.logger.Error("error closing passage repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// DocumentRepository returns the document table.
func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.documents
}

// PassageRepository returns the passage table.
func (db *Database) PassageRepository() storage.PassageRepository {
	return db.passages
}

// NewIngestionPipeline creates an ingestion pipeline over this database's
// stores and provider.
func (db *Database) NewIngestionPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(db.documents, db.passages, db.provider, opts...)
}

// NewExporter creates an exporter over this database's document table.
func (db *Database) NewExporter(opts ...export.Option) (*export.Exporter, error) {
	return export.NewExporter(db.documents, opts...)
}
