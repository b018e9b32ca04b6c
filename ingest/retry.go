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

package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/civicarchive/govdoc/ai"
)

// RetryPolicy controls how upstream calls are retried by the pipeline.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of attempts (must be > 0).
	MaxAttempts int
	// BaseDelay is the delay after the first failure; it doubles on each
	// subsequent retry.
	BaseDelay time.Duration
}

// DefaultRetryPolicy is used when the caller does not supply one.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}

// retryUpstream retries operation with exponential backoff. Only errors the
// ai package classifies as retryable are attempted again; malformed
// responses and domain errors return immediately, since repeating the call
// would repeat the answer. Returns the error from the last attempt if all
// attempts fail.
func retryUpstream(ctx context.Context, policy RetryPolicy, operation func() error) error {
	if policy.MaxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("upstream call succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		if !ai.IsRetryable(lastErr) {
			return lastErr
		}

		slog.Debug("upstream call failed, will retry",
			"attempt", attempt, "maxAttempts", policy.MaxAttempts, "error", lastErr)

		if attempt == policy.MaxAttempts {
			break
		}

		// Exponential backoff: BaseDelay * 2^(attempt-1).
		delay := policy.BaseDelay
		for i := 1; i < attempt; i++ {
			delay *= 2
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
