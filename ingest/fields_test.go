package ingest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicarchive/govdoc/core"
)

func parseMetadata(t *testing.T, raw string) map[string]any {
	t.Helper()
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))
	return fields
}

func TestNormalizeMetadata_HeterogeneousShapes(t *testing.T) {
	fields := NormalizeMetadata(parseMetadata(t,
		`{"authors": "Jane Doe", "copyright_year": 2020, "languages": null}`))

	assert.Equal(t, []any{"Jane Doe"}, fields["authors"])
	assert.Equal(t, "2020", fields["copyright_year"])
	assert.Equal(t, []any{}, fields["languages"])
}

func TestNormalizeMetadata_NullLikeValues(t *testing.T) {
	fields := NormalizeMetadata(parseMetadata(t,
		`{"title": null, "summary": "", "publisher": "null", "ISSN": "unknown", "ISBN": "0-7794-1234-5"}`))

	assert.Equal(t, "", fields["title"])
	assert.Equal(t, "", fields["summary"])
	assert.Equal(t, "", fields["publisher"])
	assert.Equal(t, "", fields["ISSN"])
	assert.Equal(t, "0-7794-1234-5", fields["ISBN"])
}

func TestNormalizeMetadata_ListCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []any
	}{
		{"already a list", `{"editors": ["A", "B"]}`, []any{"A", "B"}},
		{"scalar wrapped", `{"editors": "A"}`, []any{"A"}},
		{"null emptied", `{"editors": null}`, []any{}},
		{"empty string emptied", `{"editors": ""}`, []any{}},
		{"number wrapped as string", `{"editors": 7}`, []any{"7"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := NormalizeMetadata(parseMetadata(t, tc.raw))
			assert.Equal(t, tc.want, fields["editors"])
		})
	}
}

func TestNormalizeMetadata_NilInput(t *testing.T) {
	assert.NotNil(t, NormalizeMetadata(nil))
}

func TestApplyMetadata_FullRecord(t *testing.T) {
	doc := core.NewDocument("ontario-budget-2020.txt")
	fields := NormalizeMetadata(parseMetadata(t, `{
		"title": "Ontario Budget 2020",
		"summary": "Annual provincial budget.",
		"level_of_government": "Provincial",
		"responsible_province": "Ontario",
		"responsible_city": "Toronto",
		"authors": ["Ministry of Finance"],
		"editors": [],
		"publisher": "Queen's Printer",
		"publish_date": "2020-03-25",
		"publisher_location": "Toronto",
		"copyright_year": 2020,
		"ISSN": "1483-5967",
		"ISBN": "0779412345",
		"languages": ["en", "FR", "de"],
		"category": "financial and operational reports",
		"keywords": ["budget", "fiscal plan", "revenue", "spending", "deficit", "debt"]
	}`))

	applyMetadata(doc, fields)

	assert.Equal(t, "Ontario Budget 2020", doc.Title)
	assert.Equal(t, "provincial", doc.LevelOfGovernment)
	assert.Equal(t, "2020-03-25", doc.PublishDate)
	assert.Equal(t, "2020", doc.CopyrightYear)
	assert.Equal(t, "0-7794-1234-5", doc.ISBN)
	assert.Equal(t, []string{"en", "fr"}, doc.Languages, "unknown languages are dropped")
	assert.Equal(t, "Financial and Operational Reports", doc.Category, "taxonomy match is case-insensitive")
	assert.Len(t, doc.Keywords, core.MaxKeywords, "keyword list is truncated")

	assert.NoError(t, core.ValidateDocument(doc), "an applied record always validates")
}

func TestApplyMetadata_Clamping(t *testing.T) {
	doc := core.NewDocument("report.txt")
	fields := NormalizeMetadata(parseMetadata(t, `{
		"level_of_government": "regional",
		"publish_date": "March 2020",
		"category": "Miscellaneous",
		"ISBN": "978-0-7794-1234-9"
	}`))

	applyMetadata(doc, fields)

	assert.Equal(t, core.LevelUnknown, doc.LevelOfGovernment, "unrecognized level clamps to unknown")
	assert.Equal(t, "", doc.PublishDate, "unparseable date clamps to empty")
	assert.Equal(t, "", doc.Category, "out-of-taxonomy category clamps to empty")
	assert.Equal(t, "978-0-7794-1234-9", doc.ISBN, "thirteen-digit ISBN is kept as given")
}

func TestApplyMetadata_AbsentKeysPreserveState(t *testing.T) {
	doc := core.NewDocument("report.txt")
	doc.Title = "Existing Title"
	doc.Authors = []string{"A. Author"}

	applyMetadata(doc, NormalizeMetadata(parseMetadata(t, `{"summary": "New summary."}`)))

	assert.Equal(t, "Existing Title", doc.Title)
	assert.Equal(t, []string{"A. Author"}, doc.Authors)
	assert.Equal(t, "New summary.", doc.Summary)
}
