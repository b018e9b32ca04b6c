package openai

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorTruncate_RetriesTokenizerResolution(t *testing.T) {
	attempts := 0
	g := &Generator{
		model:        "test-model",
		promptBudget: 4,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		resolveCodec: func(model string) (tokenCodec, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("vocabulary fetch failed")
			}
			return runeCodec{}, nil
		},
	}

	got := g.truncate("abcdefgh")
	assert.Equal(t, "abcdefgh", got, "prompt goes out untruncated while the tokenizer is unavailable")
	assert.Equal(t, 1, attempts)

	got = g.truncate("abcdefgh")
	assert.Equal(t, "abcd", got, "resolution is retried on the next call")
	assert.Equal(t, 2, attempts)

	g.truncate("abcdefgh")
	assert.Equal(t, 2, attempts, "a resolved tokenizer is cached")
}
