package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *Document {
	doc := NewDocument("budget-report.txt")
	doc.Title = "Budget Report 2020"
	doc.LevelOfGovernment = LevelProvincial
	doc.Languages = []string{"en", "fr"}
	doc.Category = "Financial and Operational Reports"
	doc.Keywords = []string{"budget", "spending"}
	return doc
}

func TestValidateDocument_Valid(t *testing.T) {
	require.NoError(t, ValidateDocument(validDocument()))

	// A freshly created document with all empty fields is valid too.
	require.NoError(t, ValidateDocument(NewDocument("empty.txt")))
}

func TestValidateDocument_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr error
	}{
		{"nil doc id", func(d *Document) { d.DocID = "" }, ErrEmptyDocID},
		{"empty filename", func(d *Document) { d.Filename = "" }, ErrEmptyFilename},
		{"nil authors", func(d *Document) { d.Authors = nil }, ErrNilListField},
		{"nil keywords", func(d *Document) { d.Keywords = nil }, ErrNilListField},
		{"bad level", func(d *Document) { d.LevelOfGovernment = "galactic" }, ErrInvalidLevel},
		{"bad language", func(d *Document) { d.Languages = []string{"de"} }, ErrInvalidLanguage},
		{"bad category", func(d *Document) { d.Category = "Fiction" }, ErrInvalidCategory},
		{"too many keywords", func(d *Document) {
			d.Keywords = []string{"a", "b", "c", "d", "e", "f"}
		}, ErrTooManyKeywords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			err := ValidateDocument(doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, ValidateDocument(nil), ErrInvalidDocument)
}

func TestValidatePassage(t *testing.T) {
	valid := &Passage{
		DocID:   "budget-report",
		ChunkID: 0,
		Content: "some passage text",
		Vector:  []float32{0.1, 0.2, 0.3},
	}
	require.NoError(t, ValidatePassage(valid))

	tests := []struct {
		name    string
		passage *Passage
		wantErr error
	}{
		{"empty doc id", &Passage{ChunkID: 0, Content: "x"}, ErrEmptyDocID},
		{"negative chunk id", &Passage{DocID: "d", ChunkID: -1, Content: "x"}, ErrNegativeChunkID},
		{"empty content", &Passage{DocID: "d", ChunkID: 0}, ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassage(tt.passage)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPassage)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, ValidatePassage(nil), ErrInvalidPassage)
}
