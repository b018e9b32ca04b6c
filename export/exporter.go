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

package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/civicarchive/govdoc/core"
	"github.com/civicarchive/govdoc/storage"
)

// ErrDocumentRepositoryRequired is returned when an exporter is constructed
// without a document repository.
var ErrDocumentRepositoryRequired = errors.New("document repository is required")

// csvHeader fixes the column order for CSV output. It mirrors the JSON
// field names so the two export formats line up column for column.
var csvHeader = []string{
	"doc_id", "filename", "title", "summary", "level_of_government",
	"responsible_province", "responsible_city", "authors", "editors",
	"publisher", "publish_date", "publisher_location", "copyright_year",
	"ISSN", "ISBN", "languages", "category", "keywords",
}

// Exporter writes read-only dumps of the document table, sorted by doc id.
// JSON export is best-effort: a record that fails to serialize is logged
// and skipped. CSV export stops at the first write error, since a broken
// output stream cannot carry the remaining rows anyway.
type Exporter struct {
	documents storage.DocumentRepository
	logger    *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger.With("component", "export")
	}
}

// NewExporter creates an exporter over the document repository.
func NewExporter(documents storage.DocumentRepository, opts ...Option) (*Exporter, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	e := &Exporter{
		documents: documents,
		logger:    slog.Default().With("component", "export"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// WriteCSV dumps every document as CSV with list-typed fields comma-joined.
func (e *Exporter) WriteCSV(ctx context.Context, w io.Writer) error {
	docs, err := e.documents.ListDocuments(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, doc := range docs {
		// csv.Writer errors are sticky; once a write fails every later
		// row is lost, so a write failure aborts the dump.
		if err := writer.Write(csvRecord(doc)); err != nil {
			e.logger.Error("writing record", "doc_id", doc.DocID, "err", err)
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON dumps every document as a JSON array with list-typed fields as
// native arrays. Every key is always present; empty fields export as empty
// strings or empty lists, never null.
func (e *Exporter) WriteJSON(ctx context.Context, w io.Writer) error {
	docs, err := e.documents.ListDocuments(ctx)
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		record, err := json.Marshal(doc)
		if err != nil {
			e.logger.Error("serializing record", "doc_id", doc.DocID, "err", err)
			continue
		}
		records = append(records, record)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func csvRecord(doc *core.Document) []string {
	return []string{
		string(doc.DocID),
		doc.Filename,
		doc.Title,
		doc.Summary,
		doc.LevelOfGovernment,
		doc.ResponsibleProvince,
		doc.ResponsibleCity,
		strings.Join(doc.Authors, ","),
		strings.Join(doc.Editors, ","),
		doc.Publisher,
		doc.PublishDate,
		doc.PublisherLocation,
		doc.CopyrightYear,
		doc.ISSN,
		doc.ISBN,
		strings.Join(doc.Languages, ","),
		doc.Category,
		strings.Join(doc.Keywords, ","),
	}
}
