package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

// Client defines the interface for querying the show directory service (TVmaze)
type Client interface {
	// SearchShows returns the shows whose title matches term, in directory order.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// FetchEpisodes returns every episode of the show with the given directory id.
	FetchEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	userAgent     string
	showParser    parser.Parser[models.Show]
	episodeParser parser.Parser[models.Episode]
}

// NewClient creates a new client instance with proxy and circuit breaker configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	timeout := 10 * time.Second
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 10s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to keep its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	breakerDelay := 30 * time.Second
	if cfg.CircuitBreaker.Delay != "" {
		if parsedDelay, err := time.ParseDuration(cfg.CircuitBreaker.Delay); err != nil {
			logger.Warn().Err(err).Str("delay", cfg.CircuitBreaker.Delay).Msg("Invalid circuit breaker delay, using default 30s")
		} else {
			breakerDelay = parsedDelay
		}
	}

	transport := newBreakerTransport(
		newCompressionTransport(baseTransport),
		cfg.CircuitBreaker.FailureThreshold,
		breakerDelay,
	)

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL:       strings.TrimRight(cfg.TVMazeBaseURL, "/"),
		userAgent:     userAgent,
		showParser:    parser.NewShowParser(cfg.DefaultImageURL),
		episodeParser: parser.NewEpisodeParser(),
	}
}

// Close releases idle connections held by the underlying transport.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
