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

package badger

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/civicarchive/govdoc/core"
	"github.com/civicarchive/govdoc/storage"
	"github.com/dgraph-io/badger/v4"
)

// PassageRepository implements storage.PassageRepository for BadgerDB.
type PassageRepository struct {
	backend *Backend
}

var _ storage.PassageRepository = (*PassageRepository)(nil)

// NewPassageRepository creates a new PassageRepository.
func NewPassageRepository(backend *Backend) *PassageRepository {
	return &PassageRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *PassageRepository) Close() error {
	return nil
}

// HasPassages reports whether any passage rows exist for a document.
func (r *PassageRepository) HasPassages(ctx context.Context, docID core.ID) (bool, error) {
	exists := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePassageDocPrefix(docID)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		iter.Rewind()
		exists = iter.Valid()
		return nil
	}, false)
	return exists, err
}

// GetPassages returns a document's passages ordered by ChunkID. The chunk id
// is encoded BigEndian in the key, so iteration order is chunk order.
func (r *PassageRepository) GetPassages(ctx context.Context, docID core.ID) ([]*core.Passage, error) {
	results := []*core.Passage{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePassageDocPrefix(docID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				passage, err := storage.UnmarshalPassage(val)
				if err != nil {
					return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
				}
				results = append(results, passage)
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

// CountPassages returns the number of passage rows for a document.
func (r *PassageRepository) CountPassages(ctx context.Context, docID core.ID) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePassageDocPrefix(docID)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// ReplacePassages swaps a document's entire passage set in one transaction.
// Chunk IDs are assigned from sequence position, not taken from the input,
// so the stored set is always contiguous from 0.
func (r *PassageRepository) ReplacePassages(ctx context.Context, docID core.ID, passages []*core.Passage) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Enforce one vector width per table before touching any row.
		if len(passages) > 0 {
			width := len(passages[0].Vector)
			for _, p := range passages {
				if len(p.Vector) != width {
					return fmt.Errorf("%w: ragged vector widths %d and %d",
						storage.ErrIncompatibleSchema, width, len(p.Vector))
				}
			}
			stored, err := readVectorDim(tx)
			if err != nil {
				return err
			}
			if stored != 0 && stored != width {
				return fmt.Errorf("%w: table stores width %d, got %d",
					storage.ErrIncompatibleSchema, stored, width)
			}
			if stored == 0 {
				if err := writeVectorDim(tx, width); err != nil {
					return err
				}
			}
		}

		// Delete every existing row for this document.
		prefix := makePassageDocPrefix(docID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		var stale [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			stale = append(stale, iter.Item().KeyCopy(nil))
		}
		iter.Close()
		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return storeErr(err)
			}
		}

		// Insert the new sequence with chunk id = position.
		for i, p := range passages {
			row := &core.Passage{
				DocID:   docID,
				ChunkID: i,
				Content: p.Content,
				Vector:  p.Vector,
			}
			if err := core.ValidatePassage(row); err != nil {
				return err
			}
			if err := tx.Set(makePassageKey(docID, i), storage.MarshalPassage(row)); err != nil {
				return storeErr(err)
			}
		}

		return storeErr(tx.Commit())
	}, true)
}

// VectorDim returns the committed vector width, or 0 when unset.
func (r *PassageRepository) VectorDim(ctx context.Context) (int, error) {
	dim := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		dim, err = readVectorDim(tx)
		return err
	}, false)
	return dim, err
}

func readVectorDim(tx *badger.Txn) (int, error) {
	item, err := tx.Get([]byte(vectorDimKey))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, storeErr(err)
	}

	dim := 0
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("%w: bad vector dim record", storage.ErrSerializationFailed)
		}
		dim = int(binary.BigEndian.Uint64(val))
		return nil
	})
	return dim, err
}

func writeVectorDim(tx *badger.Txn, dim int) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(dim))
	return storeErr(tx.Set([]byte(vectorDimKey), buf))
}
