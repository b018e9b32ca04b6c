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

// Package openai implements the ai interfaces against OpenAI-compatible
// APIs (Ollama, LocalAI, vLLM, OpenAI itself).
//
// The embedder and generator adapters classify every failure into the ai
// taxonomy and never retry internally. The generator additionally truncates
// prompts with a model-matched tiktoken tokenizer so the prompt plus the
// reserved response budget fits the configured context window.
package openai
