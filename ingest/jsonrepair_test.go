package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicarchive/govdoc/ai"
)

func TestParseModelJSON_Clean(t *testing.T) {
	fields, err := parseModelJSON(`{"title": "Annual Report", "copyright_year": 2019}`)
	require.NoError(t, err)
	assert.Equal(t, "Annual Report", fields["title"])
	assert.Equal(t, float64(2019), fields["copyright_year"])
}

func TestParseModelJSON_StripsCodeFences(t *testing.T) {
	for _, raw := range []string{
		"```json\n{\"title\": \"x\"}\n```",
		"```\n{\"title\": \"x\"}\n```",
		"  {\"title\": \"x\"}  ",
	} {
		fields, err := parseModelJSON(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, "x", fields["title"])
	}
}

func TestParseModelJSON_RepairsMissingKeyQuote(t *testing.T) {
	fields, err := parseModelJSON(`{"title": "x", summary": "y"}`)
	require.NoError(t, err)
	assert.Equal(t, "y", fields["summary"])
}

func TestParseModelJSON_MalformedIsNotRetryable(t *testing.T) {
	_, err := parseModelJSON("the document is about budgets")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrMalformedResponse))
	assert.False(t, ai.IsRetryable(err))
}

func TestRepairJSON_LeavesValidInputAlone(t *testing.T) {
	in := `{"a": "b", "c": ["d", "e"], "f": {"g": 1}}`
	assert.Equal(t, in, repairJSON(in))
}
