package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// FetchEpisodes sends one request for the episode list of showID.
// An unknown show is reported as *apperrors.ErrNotFound.
func (c *client) FetchEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()

	if showID <= 0 {
		return nil, &apperrors.ErrInvalidShowID{Value: showID}
	}

	endpoint := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)
	logger.Info().Int("showID", showID).Msg("Fetching episodes")

	var episodes []models.Episode
	err := c.getJSON(ctx, "episodes", endpoint, func(body io.Reader) error {
		var err error
		episodes, err = c.episodeParser.ParseJSON(body)
		return err
	})
	if err != nil {
		var statusErr *apperrors.ErrUpstreamStatus
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewShowNotFoundError(showID)
		}
		return nil, fmt.Errorf("fetch episodes for show %d: %w", showID, err)
	}

	logger.Info().Int("showID", showID).Int("count", len(episodes)).Msg("Episodes fetched")
	return episodes, nil
}
