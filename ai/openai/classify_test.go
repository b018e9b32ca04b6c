package openai

import (
	"context"
	"errors"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/civicarchive/govdoc/ai"
	"github.com/stretchr/testify/assert"
)

type fakeTimeoutErr struct{}

func (fakeTimeoutErr) Error() string   { return "i/o timeout" }
func (fakeTimeoutErr) Timeout() bool   { return true }
func (fakeTimeoutErr) Temporary() bool { return true }

var _ net.Error = fakeTimeoutErr{}

func TestClassifyErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"context deadline", context.DeadlineExceeded, ai.ErrUpstreamUnavailable},
		{"context canceled", context.Canceled, ai.ErrUpstreamUnavailable},
		{"net timeout", fakeTimeoutErr{}, ai.ErrUpstreamUnavailable},
		{"url error", &url.Error{Op: "Post", URL: "http://host/v1", Err: errors.New("connection refused")}, ai.ErrUpstreamUnavailable},
		{"remote failure status", errors.New("API returned unexpected status code: 500"), ai.ErrUpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyErr(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassifyErr_WrappedDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	got := classifyErr(ctx.Err())
	assert.ErrorIs(t, got, ai.ErrUpstreamUnavailable)
}
