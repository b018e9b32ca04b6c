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

import "errors"

// Failure taxonomy for remote model services. Adapters classify every
// failure into exactly one of these; retry policy belongs to the caller.
var (
	// ErrUpstreamUnavailable indicates a transport-level failure or timeout
	// reaching the model service. Retryable.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamError indicates the model service responded with a failure
	// status. Retryable with backoff.
	ErrUpstreamError = errors.New("upstream error")

	// ErrMalformedResponse indicates the model service responded successfully
	// but the payload could not be used. Not retried: the same request would
	// produce the same unusable payload.
	ErrMalformedResponse = errors.New("malformed response")
)

// IsRetryable reports whether an adapter failure is worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) || errors.Is(err, ErrUpstreamError)
}
