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

package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for the model service endpoints.
// It is immutable once passed into a provider; there is no process-wide
// mutable state.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	EmbeddingHost string

	// GeneratorHost is the base URL for the text-generation service API.
	GeneratorHost string

	// APIKey is the bearer token sent to the services.
	// "none" is used for local services that don't require authentication.
	APIKey string

	// EmbeddingModel is the model identifier used for passage embeddings.
	// Example: "snowflake-arctic-embed2", "text-embedding-3-small"
	EmbeddingModel string

	// GeneratorModel is the model identifier used for metadata extraction.
	// Example: "dolphin3:8b-llama3.1-q8_0", "gpt-4o-mini"
	GeneratorModel string

	// Temperature is the sampling temperature for generation calls.
	Temperature float64

	// ContextWindow is the token budget a generation call accepts, shared
	// between the prompt and the reserved response space.
	ContextWindow int

	// ReservedResponseTokens is the slice of the context window kept free
	// for the model's response; prompts are truncated to
	// ContextWindow - ReservedResponseTokens tokens.
	ReservedResponseTokens int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithGeneratorHost sets the generation service host URL.
func WithGeneratorHost(host string) ConfigOption {
	return func(c *Config) {
		c.GeneratorHost = host
	}
}

// WithHost sets both embedding and generator hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.GeneratorHost = host
	}
}

// WithAPIKey sets the bearer token for both services.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithGeneratorModel sets the generation model identifier.
func WithGeneratorModel(model string) ConfigOption {
	return func(c *Config) {
		c.GeneratorModel = model
	}
}

// WithTemperature sets the generation sampling temperature.
func WithTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

// WithContextWindow sets the generation context window in tokens.
func WithContextWindow(tokens int) ConfigOption {
	return func(c *Config) {
		c.ContextWindow = tokens
	}
}

// WithReservedResponseTokens sets the response token reservation.
func WithReservedResponseTokens(tokens int) ConfigOption {
	return func(c *Config) {
		c.ReservedResponseTokens = tokens
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. Both services point at the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:          defaultHost,
		GeneratorHost:          defaultHost,
		APIKey:                 "none",
		EmbeddingModel:         "snowflake-arctic-embed2",
		GeneratorModel:         "dolphin3:8b-llama3.1-q8_0",
		Temperature:            0.5,
		ContextWindow:          4096,
		ReservedResponseTokens: 200,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithEmbeddingModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/") + "/v1"
	}
	if c.GeneratorHost != "" && !strings.HasSuffix(c.GeneratorHost, "/v1") {
		c.GeneratorHost = strings.TrimSuffix(c.GeneratorHost, "/") + "/v1"
	}
	if c.APIKey == "" {
		c.APIKey = "none"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.GeneratorHost == "" {
		return errors.New("ai config: GeneratorHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.GeneratorModel == "" {
		return errors.New("ai config: GeneratorModel is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("ai config: Temperature must be between 0 and 2")
	}
	if c.ContextWindow <= 0 {
		return errors.New("ai config: ContextWindow must be positive")
	}
	if c.ReservedResponseTokens < 0 || c.ReservedResponseTokens >= c.ContextWindow {
		return errors.New("ai config: ReservedResponseTokens must be non-negative and smaller than ContextWindow")
	}
	return nil
}
