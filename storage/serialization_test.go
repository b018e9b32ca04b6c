package storage

import (
	"testing"
	"time"

	"github.com/civicarchive/govdoc/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"empty ID", core.ID("")},
		{"plain ID", core.ID("budget-report")},
		{"dotted ID", core.IDFromFilename("ontario.health.2020.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	doc := core.NewDocument("archive/budget-report.txt")
	doc.Title = "Budget Report 2020"
	doc.Summary = "Annual provincial budget."
	doc.LevelOfGovernment = core.LevelProvincial
	doc.ResponsibleProvince = "Ontario"
	doc.ResponsibleCity = "Toronto"
	doc.Authors = []string{"Jane Doe", "John Roe"}
	doc.PublishDate = "2020-03-25"
	doc.CopyrightYear = "2020"
	doc.ISBN = "0-1234-5678-9"
	doc.Languages = []string{"en", "fr"}
	doc.Category = "Financial and Operational Reports"
	doc.Keywords = []string{"budget", "spending"}
	doc.Fingerprint = core.FingerprintText("body text")
	doc.Status = core.MetadataComplete
	doc.InsertedAt = time.UnixMicro(1718000000000000).UTC()
	doc.UpdatedAt = doc.InsertedAt

	data := MarshalDocument(doc)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc.DocID, decoded.DocID)
	assert.Equal(t, doc.Filename, decoded.Filename)
	assert.Equal(t, doc.Fingerprint, decoded.Fingerprint)
	assert.Equal(t, doc.Status, decoded.Status)
	assert.Equal(t, doc.Title, decoded.Title)
	assert.Equal(t, doc.Languages, decoded.Languages)
	assert.Equal(t, doc.Keywords, decoded.Keywords)
	assert.True(t, doc.InsertedAt.Equal(decoded.InsertedAt))

	// Empty-list vs populated-list distinctions must survive the round trip.
	assert.NotNil(t, decoded.Editors)
	assert.Empty(t, decoded.Editors)
	assert.Equal(t, []string{"Jane Doe", "John Roe"}, decoded.Authors)
}

func TestMarshalUnmarshalPassage(t *testing.T) {
	passage := &core.Passage{
		DocID:   "budget-report",
		ChunkID: 3,
		Content: "passage body text",
		Vector:  []float32{0.25, -0.5, 0.75},
	}

	data := MarshalPassage(passage)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalPassage(data)
	require.NoError(t, err)
	assert.Equal(t, passage, decoded)
}

func TestUnmarshalDocument_Truncated(t *testing.T) {
	doc := core.NewDocument("budget-report.txt")
	data := MarshalDocument(doc)

	_, err := UnmarshalDocument(data[:1])
	assert.Error(t, err)
}
