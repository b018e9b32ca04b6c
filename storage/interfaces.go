package storage

import (
	"context"

	"github.com/civicarchive/govdoc/core"
)

// DocumentRepository provides operations for the document table.
// Implementations must be thread-safe and support concurrent access; the
// pipeline serializes its own read-check-write sequences per doc id.
type DocumentRepository interface {
	// GetDocument retrieves a document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// HasDocument reports whether a document exists, via a direct keyed
	// lookup rather than a table scan.
	HasDocument(ctx context.Context, id core.ID) (bool, error)

	// UpsertDocument merges a document by DocID: a full-row replace when a
	// row with the same key exists, an insert otherwise. Callers therefore
	// always supply the complete record, not a sparse patch.
	// InsertedAt is preserved on update; UpdatedAt is set automatically.
	UpsertDocument(ctx context.Context, doc *core.Document) error

	// ListDocuments returns every document sorted by DocID.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// Close closes the repository and releases resources.
	Close() error
}

// PassageRepository provides operations for the passage table.
// Implementations must be thread-safe and support concurrent access.
type PassageRepository interface {
	// HasPassages reports whether any passage rows exist for a document,
	// via a keyed prefix lookup rather than a table scan.
	HasPassages(ctx context.Context, docID core.ID) (bool, error)

	// GetPassages returns a document's passages ordered by ChunkID.
	// Returns an empty slice if the document has no passages.
	GetPassages(ctx context.Context, docID core.ID) ([]*core.Passage, error)

	// CountPassages returns the number of passage rows for a document.
	CountPassages(ctx context.Context, docID core.ID) (int, error)

	// ReplacePassages deletes every existing passage row for docID (no-op
	// if none) and inserts the given sequence with ChunkID equal to its
	// position, all within a single transaction: a reader never observes a
	// partial passage set.
	//
	// Returns ErrIncompatibleSchema when the vector width differs from the
	// width already persisted in the table.
	ReplacePassages(ctx context.Context, docID core.ID, passages []*core.Passage) error

	// VectorDim returns the vector width the table is committed to, or 0
	// when no passages have ever been stored.
	VectorDim(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
