package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/failsafe-go/failsafe-go/failsafehttp"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
)

// newBreakerTransport wraps next with a circuit breaker that opens after threshold
// consecutive failures (transport errors or 5xx) and stays open for delay.
// An open breaker rejects requests with circuitbreaker.ErrOpen; it never re-sends them.
// A threshold of 0 disables the breaker.
func newBreakerTransport(next http.RoundTripper, threshold uint, delay time.Duration) http.RoundTripper {
	if threshold == 0 {
		return next
	}

	logger := config.GetLogger()
	breaker := circuitbreaker.NewBuilder[*http.Response]().
		HandleIf(isDirectoryFailure).
		WithFailureThreshold(threshold).
		WithDelay(delay).
		OnOpen(func(circuitbreaker.StateChangedEvent) {
			metrics.CircuitBreakerOpenTotal.Inc()
			logger.Warn().Dur("delay", delay).Msg("Directory circuit breaker opened")
		}).
		OnClose(func(circuitbreaker.StateChangedEvent) {
			logger.Info().Msg("Directory circuit breaker closed")
		}).
		Build()

	return failsafehttp.NewRoundTripper(next, breaker)
}

// isDirectoryFailure reports whether a round trip counts against the breaker.
// Cancellations come from our own callers going away and are not the directory's fault.
func isDirectoryFailure(resp *http.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	return resp != nil && resp.StatusCode >= http.StatusInternalServerError
}
