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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/civicarchive/govdoc/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
//
// Prompts are truncated with a model-matched tokenizer so the prompt plus
// the reserved response budget always fits the configured context window.
// The response text is returned as-is: parsing and per-field validation are
// the caller's responsibility, since the remote service is not contractually
// bound to the requested schema.
type Generator struct {
	client       llms.Model
	model        string
	temperature  float64
	promptBudget int
	maxResponse  int
	logger       *slog.Logger

	// The tokenizer may need to fetch vocabulary files on first use, so it
	// is resolved lazily rather than at construction. Only success is
	// cached; a transient fetch failure is retried on the next call.
	codecMu      sync.Mutex
	codec        tokenCodec
	resolveCodec func(model string) (tokenCodec, error)
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:       client,
		model:        config.GeneratorModel,
		temperature:  config.Temperature,
		promptBudget: config.ContextWindow - config.ReservedResponseTokens,
		maxResponse:  config.ReservedResponseTokens,
		logger:       slog.Default().With("component", "openai-generator"),
		resolveCodec: func(model string) (tokenCodec, error) {
			return newTokenCodec(model)
		},
	}, nil
}

// NewGenerator creates a new generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// Generate runs the prompt in JSON mode and returns the raw response text.
// No retries happen here; retry policy belongs to the pipeline.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	truncated := g.truncate(prompt)
	if len(truncated) < len(prompt) {
		g.logger.Debug("prompt truncated to context window",
			"originalChars", len(prompt), "truncatedChars", len(truncated))
	}

	start := time.Now()
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(truncated)},
		},
	}

	opts := []llms.CallOption{
		llms.WithTemperature(g.temperature),
		llms.WithJSONMode(),
	}
	if g.maxResponse > 0 {
		opts = append(opts, llms.WithMaxTokens(g.maxResponse))
	}

	response, err := g.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		g.logger.Error("generation call failed", "err", err)
		return "", classifyErr(err)
	}

	if len(response.Choices) < 1 {
		return "", fmt.Errorf("%w: no choices in generation response", ai.ErrMalformedResponse)
	}

	g.logger.Debug("generation call finished", "elapsed", time.Since(start))
	return strings.TrimSpace(response.Choices[0].Content), nil
}

// truncate enforces the prompt budget. When the tokenizer cannot be
// resolved (no cached vocabulary and no way to fetch one), the prompt is
// sent untruncated and the remote service's own limit applies.
func (g *Generator) truncate(prompt string) string {
	codec := g.tokenizer()
	if codec == nil {
		return prompt
	}
	return truncateToBudget(codec, prompt, g.promptBudget)
}

func (g *Generator) tokenizer() tokenCodec {
	g.codecMu.Lock()
	defer g.codecMu.Unlock()

	if g.codec == nil {
		codec, err := g.resolveCodec(g.model)
		if err != nil {
			g.logger.Warn("tokenizer unavailable, sending prompt untruncated", "err", err)
			return nil
		}
		g.codec = codec
	}
	return g.codec
}
