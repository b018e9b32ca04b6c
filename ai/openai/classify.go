package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/civicarchive/govdoc/ai"
)

// classifyErr maps a client error onto the ai failure taxonomy.
// Transport failures and timeouts become ErrUpstreamUnavailable; anything
// the remote answered with a failure status becomes ErrUpstreamError.
func classifyErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ai.ErrUpstreamUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ai.ErrUpstreamUnavailable, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %w", ai.ErrUpstreamUnavailable, err)
	}

	// The request reached the service and came back as a failure response.
	return fmt.Errorf("%w: %w", ai.ErrUpstreamError, err)
}
