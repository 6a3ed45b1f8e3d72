// Package web exposes the show search page, its HTML fragments and a small JSON API over HTTP.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/render"
)

// Options toggles optional middleware.
type Options struct {
	// Sentry attaches a per-request Sentry hub; 5xx errors are then reported through it.
	Sentry bool
}

// NewRouter builds the echo instance serving every route.
func NewRouter(c client.Client, r *render.Renderer, opts Options) *echo.Echo {
	h := NewHandler(c, r)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(r)

	e.Use(middleware.RequestID())
	e.Use(accessLog())
	e.Use(recordMetrics)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogErrorFunc: logPanic}))
	if opts.Sentry {
		e.Use(sentryHub)
	}

	e.GET("/", h.Page)
	e.GET("/fragments/shows", h.ShowsFragment)
	e.GET("/fragments/shows/:id/episodes", h.EpisodesFragment)
	e.GET("/api/shows", h.SearchShowsAPI)
	e.GET("/api/shows/:id/episodes", h.EpisodesAPI)
	e.GET("/healthz", h.Health)

	return e
}

// NewHTTPServer wraps handler in an http.Server listening on address:port.
func NewHTTPServer(address string, port int, handler http.Handler) *http.Server {
	if port == 0 {
		port = 8080
	}
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// accessLog logs one line per request through the application logger.
func accessLog() echo.MiddlewareFunc {
	logger := config.GetLogger()
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Status >= http.StatusInternalServerError {
				event = logger.Warn()
			}
			if err := handledError(c, v.Error); err != nil {
				event = event.Err(err)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("HTTP request")
			return nil
		},
	})
}

// handledErrorKey holds the error recordMetrics already handed to the error handler.
const handledErrorKey = "handled_error"

// handledError returns the error the request failed with, including one the error handler already answered.
func handledError(c echo.Context, err error) error {
	if err != nil {
		return err
	}
	if handled, ok := c.Get(handledErrorKey).(error); ok {
		return handled
	}
	return nil
}

// recordMetrics counts requests by route pattern and final status code.
// Errors are handed to the error handler here so the recorded code is the one actually sent;
// the error is kept on the context for the access log.
func recordMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Set(handledErrorKey, err)
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Response().Status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return nil
	}
}

// logPanic records a recovered panic and turns it into a 500 for the error handler.
func logPanic(c echo.Context, err error, stack []byte) error {
	logger := config.GetLogger()
	logger.Error().
		Err(err).
		Str("path", c.Request().URL.Path).
		Bytes("stack", stack).
		Msg("Recovered from panic")
	return echo.NewHTTPError(http.StatusInternalServerError, messageForStatus(http.StatusInternalServerError)).SetInternal(err)
}

// sentryHub gives every request its own hub carrying the request details.
func sentryHub(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request())
		hub.Scope().SetTag("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
		c.SetRequest(c.Request().WithContext(sentry.SetHubOnContext(c.Request().Context(), hub)))
		return next(c)
	}
}

// reportError logs a failed request and sends server-side failures to Sentry when it is enabled.
func reportError(c echo.Context, err error, status int) {
	logger := config.GetLogger()
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("path", c.Request().URL.Path).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("Request failed")

	if status < http.StatusInternalServerError {
		return
	}
	if hub := sentry.GetHubFromContext(c.Request().Context()); hub != nil {
		hub.CaptureException(err)
	}
}

// errorHandler answers failed fragment and API requests: JSON under /api/, the error banner otherwise.
func errorHandler(r *render.Renderer) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := statusForError(err)
		message := messageForStatus(status)
		cause := err

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = messageForStatus(status)
			}
			if he.Internal != nil {
				cause = he.Internal
			}
		}

		reportError(c, cause, status)

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(status)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			writeErr = c.JSON(status, errorResponse{Error: message, Status: status})
		default:
			var buf bytes.Buffer
			if err := r.RenderError(&buf, message, status); err != nil {
				writeErr = c.String(status, message)
			} else {
				writeErr = c.HTMLBlob(status, buf.Bytes())
			}
		}
		if writeErr != nil {
			logger := config.GetLogger()
			logger.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}
