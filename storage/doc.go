// Package storage defines the document and passage store contracts used by
// the ingestion pipeline, plus binary serialization helpers.
//
// The two tables are independent, both keyed by doc id; the underlying
// store enforces no foreign keys, so referential consistency between them
// is the pipeline's job. Existence checks are direct keyed lookups, never
// full-table scans.
//
// Concrete backends live in sub-packages (storage/badger).
package storage
