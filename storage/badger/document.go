package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/civicarchive/govdoc/core"
	"github.com/civicarchive/govdoc/storage"
	"github.com/dgraph-io/badger/v4"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(backend *Backend) *DocumentRepository {
	return &DocumentRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *DocumentRepository) Close() error {
	return nil
}

// GetDocument retrieves a document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.Document, error) {
	var result *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readDocument(tx, id)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// HasDocument reports document existence via a direct keyed lookup.
func (r *DocumentRepository) HasDocument(ctx context.Context, id core.ID) (bool, error) {
	exists := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeDocumentKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return storeErr(err)
		}
		exists = true
		return nil
	}, false)
	return exists, err
}

// UpsertDocument merges a document by DocID: a full-row replace when the row
// exists, an insert otherwise. InsertedAt from the stored row wins on update.
func (r *DocumentRepository) UpsertDocument(ctx context.Context, doc *core.Document) error {
	if err := core.ValidateDocument(doc); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		old, err := readDocument(tx, doc.DocID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if old != nil {
			doc.InsertedAt = old.InsertedAt
		} else {
			doc.InsertedAt = now
		}
		doc.UpdatedAt = now

		if err := tx.Set(makeDocumentKey(doc.DocID), storage.MarshalDocument(doc)); err != nil {
			return storeErr(err)
		}
		return storeErr(tx.Commit())
	}, true)
}

// ListDocuments returns every document sorted by DocID. Document keys embed
// the DocID, so prefix iteration already yields rows in sorted order.
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]*core.Document, error) {
	var results []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				doc, err := storage.UnmarshalDocument(val)
				if err != nil {
					return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
				}
				results = append(results, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	return results, err
}

// readDocument reads a document within a transaction.
// Returns nil, nil when the document does not exist.
func readDocument(tx *badger.Txn, id core.ID) (*core.Document, error) {
	item, err := tx.Get(makeDocumentKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}

	var doc *core.Document
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		doc, unmarshalErr = storage.UnmarshalDocument(val)
		if unmarshalErr != nil {
			return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, unmarshalErr)
		}
		return nil
	})
	return doc, err
}

// storeErr wraps backend failures in the storage taxonomy. Domain sentinel
// errors pass through untouched.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
}
