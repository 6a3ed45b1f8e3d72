package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// EpisodeParser implements the Parser interface for a show's episode list
type EpisodeParser struct{}

func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// ParseJSON decodes an episodes response; fields are passed through as sent
func (p *EpisodeParser) ParseJSON(body io.Reader) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := json.NewDecoder(body).Decode(&episodes); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to decode episodes")
		return nil, fmt.Errorf("failed to decode episodes: %w", err)
	}
	if episodes == nil {
		episodes = []models.Episode{}
	}
	return episodes, nil
}
