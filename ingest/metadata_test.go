package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicarchive/govdoc/ai"
	"github.com/civicarchive/govdoc/core"
)

const bibliographicResponse = `{
	"title": "Public Accounts 2019-20",
	"summary": "Audited financial statements of the province.",
	"level_of_government": "provincial",
	"responsible_province": "Ontario",
	"responsible_city": "Toronto",
	"authors": ["Treasury Board Secretariat"],
	"editors": [],
	"publisher": "Queen's Printer for Ontario",
	"publish_date": "2020-09-28",
	"publisher_location": "Toronto",
	"copyright_year": 2020,
	"ISSN": "1488-9282",
	"ISBN": "",
	"languages": ["en"]
}`

const categoryResponse = `{
	"category": "Financial and Operational Reports",
	"keywords": ["public accounts", "finances", "audit"]
}`

// routeResponses answers the bibliographic prompt and the category prompt
// with fixed payloads, keyed on prompt content.
func routeResponses(f *pipelineFixture) {
	f.generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "keywords") {
			return categoryResponse, nil
		}
		return bibliographicResponse, nil
	}
}

func TestExtractMetadata_MergesBothCalls(t *testing.T) {
	f := newPipelineFixture(t)
	routeResponses(f)

	_, err := f.pipeline.Run(context.Background(), []Source{
		{Filename: "public-accounts.txt", Text: words(40, "w")},
	})
	require.NoError(t, err)

	doc, err := f.documents.GetDocument(context.Background(), core.IDFromFilename("public-accounts.txt"))
	require.NoError(t, err)

	assert.Equal(t, core.MetadataComplete, doc.Status)
	assert.Equal(t, "Public Accounts 2019-20", doc.Title)
	assert.Equal(t, "provincial", doc.LevelOfGovernment)
	assert.Equal(t, []string{"Treasury Board Secretariat"}, doc.Authors)
	assert.Equal(t, []string{"en"}, doc.Languages)
	assert.Equal(t, "Financial and Operational Reports", doc.Category)
	assert.Equal(t, []string{"public accounts", "finances", "audit"}, doc.Keywords)
	assert.Equal(t, "2020", doc.CopyrightYear)
}

func TestExtractMetadata_FailurePreservesPriorState(t *testing.T) {
	sources := []Source{{Filename: "stable.txt", Text: words(40, "w")}}

	// Populate the record, then make the next forced extraction fail.
	forced := newPipelineFixture(t, WithForceRebuild(true))
	routeResponses(forced)
	_, err := forced.pipeline.Run(context.Background(), sources)
	require.NoError(t, err)

	forced.generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", ai.ErrUpstreamUnavailable
	}
	summary, err := forced.pipeline.Run(context.Background(), sources)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MetadataFailed)

	doc, err := forced.documents.GetDocument(context.Background(), core.IDFromFilename("stable.txt"))
	require.NoError(t, err)
	assert.Equal(t, core.MetadataFailed, doc.Status)
	assert.Equal(t, "Public Accounts 2019-20", doc.Title,
		"a failed extraction never leaves a half-updated record")
	assert.Equal(t, []string{"public accounts", "finances", "audit"}, doc.Keywords)
}

func TestExtractMetadata_FailedDocumentRetriedNextRun(t *testing.T) {
	f := newPipelineFixture(t)
	f.generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "not json at all", nil
	}

	sources := []Source{{Filename: "flaky.txt", Text: words(40, "w")}}
	summary, err := f.pipeline.Run(context.Background(), sources)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MetadataFailed)

	doc, err := f.documents.GetDocument(context.Background(), core.IDFromFilename("flaky.txt"))
	require.NoError(t, err)
	assert.Equal(t, core.MetadataFailed, doc.Status)

	// The service recovers; the failed document is retried without force.
	routeResponses(f)
	summary, err = f.pipeline.Run(context.Background(), sources)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MetadataExtracted)
}

func TestExtractMetadata_MalformedResponseNotRetried(t *testing.T) {
	f := newPipelineFixture(t)
	f.generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "{broken", nil
	}

	_, err := f.pipeline.Run(context.Background(), []Source{
		{Filename: "broken.txt", Text: words(40, "w")},
	})
	require.NoError(t, err)

	// One call for the bibliographic prompt, none for the category prompt,
	// and no retries of either.
	assert.Equal(t, 1, f.generator.CallCount())
}

func TestExtractMetadata_PromptsCarryDocumentText(t *testing.T) {
	f := newPipelineFixture(t)
	routeResponses(f)

	_, err := f.pipeline.Run(context.Background(), []Source{
		{Filename: "marker.txt", Text: "sentinel-phrase " + words(40, "w")},
	})
	require.NoError(t, err)

	prompts := f.generator.Prompts()
	require.Len(t, prompts, 2)
	for _, prompt := range prompts {
		assert.Contains(t, prompt, "sentinel-phrase")
	}
}

func TestCloneDocument_Isolated(t *testing.T) {
	doc := core.NewDocument("a.txt")
	doc.Authors = []string{"one"}

	clone := cloneDocument(doc)
	clone.Authors[0] = "changed"
	clone.Title = "changed"

	assert.Equal(t, "one", doc.Authors[0])
	assert.Equal(t, "", doc.Title)
}
