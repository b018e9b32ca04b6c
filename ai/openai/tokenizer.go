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

package openai

import (
	"github.com/pkoukk/tiktoken-go"
)

// fallbackEncoding is used when the configured model has no registered
// tokenizer. cl100k_base is a reasonable stand-in for the local models
// served through OpenAI-compatible APIs.
const fallbackEncoding = "cl100k_base"

// tokenCodec tokenizes and detokenizes prompt text. It exists so prompt
// truncation can be tested without the tiktoken vocabulary files.
type tokenCodec interface {
	Encode(text string) []int
	Decode(tokens []int) string
}

// tiktokenCodec implements tokenCodec with a model-matched BPE tokenizer.
type tiktokenCodec struct {
	enc *tiktoken.Tiktoken
}

var _ tokenCodec = (*tiktokenCodec)(nil)

// newTokenCodec resolves a tokenizer for the given model name, falling back
// to cl100k_base when the model is unknown to tiktoken.
func newTokenCodec(model string) (*tiktokenCodec, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, err
		}
	}
	return &tiktokenCodec{enc: enc}, nil
}

func (c *tiktokenCodec) Encode(text string) []int {
	return c.enc.Encode(text, nil, nil)
}

func (c *tiktokenCodec) Decode(tokens []int) string {
	return c.enc.Decode(tokens)
}

// truncateToBudget drops the tail of a prompt so it fits within maxTokens.
// Prompts already within budget are returned unchanged, without a decode
// round trip.
func truncateToBudget(codec tokenCodec, prompt string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	tokens := codec.Encode(prompt)
	if len(tokens) <= maxTokens {
		return prompt
	}
	return codec.Decode(tokens[:maxTokens])
}
