package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// SearchShows sends one search request for term and maps every result into a models.Show.
// A blank term matches nothing and is answered without contacting the directory.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()

	term = normalizeTerm(term)
	if term == "" {
		logger.Debug().Msg("Empty search term, skipping directory request")
		return []models.Show{}, nil
	}

	endpoint := fmt.Sprintf("%s/search/shows?q=%s", c.baseURL, url.QueryEscape(term))
	logger.Info().Str("term", term).Msg("Searching shows")

	var shows []models.Show
	err := c.getJSON(ctx, "search", endpoint, func(body io.Reader) error {
		var err error
		shows, err = c.showParser.ParseJSON(body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search shows %q: %w", term, err)
	}

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("Search completed")
	return shows, nil
}

// normalizeTerm trims the term and puts it in NFC so that visually equal
// input (precomposed vs combining accents) produces the same query.
func normalizeTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}
