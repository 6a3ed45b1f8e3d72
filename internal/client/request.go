package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

// getJSON performs one GET against the directory and hands the UTF-8 body to decode.
// endpoint is the metrics label ("search" or "episodes"). There is no retry: any
// transport error or non-2xx status is returned to the caller as is.
func (c *client) getJSON(ctx context.Context, endpoint, rawURL string, decode func(io.Reader) error) error {
	logger := config.GetLogger()
	start := time.Now()
	defer func() {
		metrics.DirectoryRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpen) {
			metrics.DirectoryRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeCircuitOpen).Inc()
			return &apperrors.ErrUpstreamUnavailable{Cause: err}
		}
		metrics.DirectoryRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeNetworkError).Inc()
		return fmt.Errorf("failed to reach directory service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.DirectoryRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeStatusError).Inc()
		logger.Warn().
			Str("endpoint", endpoint).
			Str("url", rawURL).
			Int("status", resp.StatusCode).
			Msg("Directory service returned an error status")
		return &apperrors.ErrUpstreamStatus{StatusCode: resp.StatusCode, URL: rawURL}
	}

	body, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		metrics.DirectoryRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeDecodeError).Inc()
		return fmt.Errorf("failed to decode response charset: %w", err)
	}

	if err := decode(body); err != nil {
		metrics.DirectoryRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeDecodeError).Inc()
		return err
	}

	metrics.DirectoryRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeSuccess).Inc()
	return nil
}
