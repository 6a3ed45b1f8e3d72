package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// searchResult is one entry of the /search/shows response
type searchResult struct {
	Score float64  `json:"score"`
	Show  *apiShow `json:"show"`
}

type apiShow struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Image   *struct {
		Medium   string `json:"medium"`
		Original string `json:"original"`
	} `json:"image"`
}

// ShowParser implements the Parser interface for show search results
type ShowParser struct {
	defaultImageURL string
}

// NewShowParser creates a new show parser substituting defaultImageURL for missing artwork
func NewShowParser(defaultImageURL string) *ShowParser {
	if defaultImageURL == "" {
		defaultImageURL = config.DefaultImageURL
	}
	return &ShowParser{
		defaultImageURL: defaultImageURL,
	}
}

// ParseJSON decodes a search response and maps each nested show into models.Show
func (p *ShowParser) ParseJSON(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var results []searchResult
	if err := json.NewDecoder(body).Decode(&results); err != nil {
		logger.Error().Err(err).Msg("Failed to decode search results")
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	shows := make([]models.Show, 0, len(results))
	for i, result := range results {
		if result.Show == nil {
			logger.Debug().Int("index", i).Msg("Search result without show, skipping")
			continue
		}
		shows = append(shows, p.toShow(result.Show))
	}

	logger.Debug().Int("total_shows", len(shows)).Msg("Completed parsing search results")
	return shows, nil
}

func (p *ShowParser) toShow(s *apiShow) models.Show {
	image := p.defaultImageURL
	if s.Image != nil && s.Image.Original != "" {
		image = s.Image.Original
	}

	return models.Show{
		ID:      s.ID,
		Name:    s.Name,
		Summary: s.Summary,
		Image:   image,
	}
}
