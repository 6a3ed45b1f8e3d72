package web

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/render"
)

// Handler serves the search page, its fragments and the JSON API.
type Handler struct {
	client   client.Client
	renderer *render.Renderer
	logger   zerolog.Logger
}

// NewHandler creates a Handler backed by the given directory client and renderer.
func NewHandler(c client.Client, r *render.Renderer) *Handler {
	return &Handler{
		client:   c,
		renderer: r,
		logger:   config.GetLogger(),
	}
}

// Page renders the full document. ?term= runs a search, ?show= additionally lists that show's
// episodes and reveals the episodes region. Failures are shown in the banner, not as a bare status page.
func (h *Handler) Page(c echo.Context) error {
	ctx := c.Request().Context()
	data := render.PageData{Term: strings.TrimSpace(c.QueryParam("term"))}
	h.logger.Debug().Str("term", data.Term).Str("show", c.QueryParam("show")).Msg("Rendering page")

	if data.Term != "" {
		shows, err := h.client.SearchShows(ctx, data.Term)
		if err != nil {
			return h.pageError(c, data, err)
		}
		data.Shows = shows
	}

	if raw := c.QueryParam("show"); raw != "" {
		showID, err := parseShowID(raw)
		if err != nil {
			return h.pageError(c, data, err)
		}
		episodes, err := h.client.FetchEpisodes(ctx, showID)
		if err != nil {
			return h.pageError(c, data, err)
		}
		data.Episodes = episodes
		data.ShowEpisodes = true
	}

	return h.html(c, http.StatusOK, func(w io.Writer) error {
		return h.renderer.RenderPage(w, data)
	})
}

// ShowsFragment renders only the shows region for ?term=.
func (h *Handler) ShowsFragment(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("term"))
	shows, err := h.client.SearchShows(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return h.html(c, http.StatusOK, func(w io.Writer) error {
		return h.renderer.RenderShows(w, shows, term)
	})
}

// EpisodesFragment renders only the (visible) episodes region for the :id show.
func (h *Handler) EpisodesFragment(c echo.Context) error {
	episodes, err := h.fetchEpisodes(c)
	if err != nil {
		return err
	}
	return h.html(c, http.StatusOK, func(w io.Writer) error {
		return h.renderer.RenderEpisodes(w, episodes)
	})
}

// SearchShowsAPI returns the search results as a JSON array.
func (h *Handler) SearchShowsAPI(c echo.Context) error {
	shows, err := h.client.SearchShows(c.Request().Context(), c.QueryParam("term"))
	if err != nil {
		return err
	}
	if shows == nil {
		shows = []models.Show{}
	}
	return c.JSON(http.StatusOK, shows)
}

// EpisodesAPI returns the episodes of the :id show as a JSON array.
func (h *Handler) EpisodesAPI(c echo.Context) error {
	episodes, err := h.fetchEpisodes(c)
	if err != nil {
		return err
	}
	if episodes == nil {
		episodes = []models.Episode{}
	}
	return c.JSON(http.StatusOK, episodes)
}

// Health is used by load balancers and container probes.
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (h *Handler) fetchEpisodes(c echo.Context) ([]models.Episode, error) {
	showID, err := parseShowID(c.Param("id"))
	if err != nil {
		return nil, err
	}
	return h.client.FetchEpisodes(c.Request().Context(), showID)
}

// pageError renders the page with whatever was fetched so far plus the error banner.
func (h *Handler) pageError(c echo.Context, data render.PageData, err error) error {
	status := statusForError(err)
	reportError(c, err, status)

	data.Error = messageForStatus(status)
	data.Status = status
	return h.html(c, status, func(w io.Writer) error {
		return h.renderer.RenderPage(w, data)
	})
}

// html renders into a buffer so the status line is only sent once rendering succeeded.
func (h *Handler) html(c echo.Context, status int, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, messageForStatus(http.StatusInternalServerError)).SetInternal(err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}
