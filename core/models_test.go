package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     ID
	}{
		{"plain file", "budget-report.txt", ID("budget-report")},
		{"nested path", "archive/2019/budget-report.txt", ID("budget-report")},
		{"no extension", "annual-review", ID("annual-review")},
		{"multiple dots", "ontario.health.2020.txt", ID("ontario.health.2020")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IDFromFilename(tt.filename))
		})
	}
}

func TestFingerprintText_Deterministic(t *testing.T) {
	a := FingerprintText("some normalized document text")
	b := FingerprintText("some normalized document text")
	c := FingerprintText("different text")

	assert.Equal(t, a, b, "identical text must produce identical fingerprints")
	assert.NotEqual(t, a, c, "different text should produce different fingerprints")
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("archive/budget-report.txt")
	require.NotNil(t, doc)

	assert.Equal(t, ID("budget-report"), doc.DocID)
	assert.Equal(t, "budget-report.txt", doc.Filename, "directory components are stripped")
	assert.Equal(t, MetadataNone, doc.Status)

	// List fields must be empty but never nil.
	require.NotNil(t, doc.Authors)
	require.NotNil(t, doc.Editors)
	require.NotNil(t, doc.Languages)
	require.NotNil(t, doc.Keywords)
	assert.Empty(t, doc.Authors)
	assert.Empty(t, doc.Editors)
	assert.Empty(t, doc.Languages)
	assert.Empty(t, doc.Keywords)

	assert.Empty(t, doc.Title)
	assert.Empty(t, doc.LevelOfGovernment)
	assert.Empty(t, doc.Category)
}
