package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicarchive/govdoc/ai"
)

func TestRetryUpstream_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := retryUpstream(context.Background(), DefaultRetryPolicy, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryUpstream_RetriesRetryableErrors(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	calls := 0
	err := retryUpstream(context.Background(), policy, func() error {
		calls++
		if calls < 3 {
			return fmt.Errorf("%w: status 503", ai.ErrUpstreamError)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryUpstream_ExhaustsAttempts(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond}
	calls := 0
	err := retryUpstream(context.Background(), policy, func() error {
		calls++
		return ai.ErrUpstreamUnavailable
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrUpstreamUnavailable))
	assert.Equal(t, 2, calls)
}

func TestRetryUpstream_MalformedResponseNotRetried(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond}
	calls := 0
	err := retryUpstream(context.Background(), policy, func() error {
		calls++
		return fmt.Errorf("%w: not json", ai.ErrMalformedResponse)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrMalformedResponse))
	assert.Equal(t, 1, calls, "a deterministic failure is never retried")
}

func TestRetryUpstream_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := retryUpstream(ctx, DefaultRetryPolicy, func() error {
		calls++
		return ai.ErrUpstreamUnavailable
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, calls)
}

func TestRetryUpstream_InvalidPolicy(t *testing.T) {
	err := retryUpstream(context.Background(), RetryPolicy{MaxAttempts: 0}, func() error {
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}
