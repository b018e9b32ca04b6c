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

// Package ai provides abstractions over the remote model services the
// ingestion pipeline depends on.
//
// Two services are wrapped: an embedding service that turns passage text
// into fixed-width vectors, and a text-generation service that is asked to
// answer with structured JSON for metadata extraction. Both are reached
// through OpenAI-compatible APIs and are specified only at their boundary;
// the pipeline never depends on a concrete provider.
//
// # Interfaces
//
//   - Embedder: flat fixed-width vectors from text
//   - Generator: raw JSON text from a prompt, context-window aware
//   - Provider: aggregates both for initialization and lifecycle
//
// # Failure classification
//
// Every adapter failure maps onto exactly one of ErrUpstreamUnavailable
// (transport/timeout), ErrUpstreamError (remote failure status) or
// ErrMalformedResponse (unusable payload). Adapters never retry; the
// ingestion pipeline owns the retry policy and consults IsRetryable.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Production constructors return interface types to enforce abstraction;
// mock constructors return concrete types so tests can inject behavior and
// assert call counts.
package ai
