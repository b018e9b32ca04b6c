package openai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runeCodec is a trivial tokenCodec where every rune is one token.
// It keeps truncation tests independent of tiktoken vocabulary files.
type runeCodec struct{}

func (runeCodec) Encode(text string) []int {
	runes := []rune(text)
	tokens := make([]int, len(runes))
	for i, r := range runes {
		tokens[i] = int(r)
	}
	return tokens
}

func (runeCodec) Decode(tokens []int) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteRune(rune(tok))
	}
	return sb.String()
}

func TestTruncateToBudget(t *testing.T) {
	codec := runeCodec{}

	t.Run("within budget unchanged", func(t *testing.T) {
		got := truncateToBudget(codec, "short prompt", 100)
		assert.Equal(t, "short prompt", got)
	})

	t.Run("exact budget unchanged", func(t *testing.T) {
		got := truncateToBudget(codec, "12345", 5)
		assert.Equal(t, "12345", got)
	})

	t.Run("over budget drops only the tail", func(t *testing.T) {
		got := truncateToBudget(codec, "abcdefghij", 4)
		assert.Equal(t, "abcd", got)
	})

	t.Run("zero budget yields empty prompt", func(t *testing.T) {
		got := truncateToBudget(codec, "anything", 0)
		assert.Empty(t, got)
	})
}

func TestTruncateToBudget_LosslessHead(t *testing.T) {
	codec := runeCodec{}
	prompt := "Extract the following information from a document: title, summary"

	for budget := 1; budget < len(prompt); budget += 7 {
		got := truncateToBudget(codec, prompt, budget)
		assert.True(t, strings.HasPrefix(prompt, got),
			"truncation must preserve the head intact at budget %d", budget)
	}
}
