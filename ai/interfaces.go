package ai

import "context"

// Embedder generates vector embeddings from passage text.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a flat, fixed-width vector embedding for a single
	// text string. The width is determined by the configured model.
	// Fails with ErrUpstreamUnavailable, ErrUpstreamError or
	// ErrMalformedResponse; adapters never retry internally.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates embeddings for multiple texts in a batch.
	// The returned slice contains embeddings in the same order as the input
	// texts, so chunk ordering can be reconstructed from position.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator runs a text-generation model that is asked to answer with JSON.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate runs the prompt and returns the raw response text.
	//
	// The prompt is truncated to fit the model's context window minus the
	// reserved response budget; truncation only ever drops the tail.
	//
	// The response is NOT parsed or validated here. The remote service is
	// permitted to return malformed or partially conforming JSON, and the
	// caller decides per field whether to coerce or reject.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates the model services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// Generator instances, ensuring they share configuration.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the text generation service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
