// Package render turns shows and episodes into the HTML regions of the search page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

//go:embed templates/*.html
var templateFS embed.FS

// ShowsRegion is the data behind the #showsList container.
// Term is carried so each "Episodes" link can keep the current search.
type ShowsRegion struct {
	Term  string
	Shows []models.Show
}

// EpisodesRegion is the data behind the #episodesArea container.
type EpisodesRegion struct {
	Episodes []models.Episode
	Visible  bool
}

// PageData is everything needed to render a full page.
type PageData struct {
	Term         string
	Shows        []models.Show
	Episodes     []models.Episode
	ShowEpisodes bool
	Error        string
	Status       int
}

// ShowsRegion returns the shows region of the page.
func (p PageData) ShowsRegion() ShowsRegion {
	return ShowsRegion{Term: p.Term, Shows: p.Shows}
}

// EpisodesRegion returns the episodes region of the page; it is hidden unless episodes were asked for.
func (p PageData) EpisodesRegion() EpisodesRegion {
	return EpisodesRegion{Episodes: p.Episodes, Visible: p.ShowEpisodes}
}

// Renderer executes the embedded page templates.
// It is safe for concurrent use once built.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("showsearch").Funcs(GetFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// GetFuncMap returns the helpers available to the templates.
func GetFuncMap() template.FuncMap {
	return template.FuncMap{
		"summary":      parser.SanitizeSummary,
		"episodeLabel": EpisodeLabel,
	}
}

// EpisodeLabel formats an episode as "name (season S, number N)".
// Specials without a season or number show "?" in that slot.
func EpisodeLabel(e models.Episode) string {
	return fmt.Sprintf("%s (season %s, number %s)", e.Name, orUnknown(e.Season.String()), orUnknown(e.Number.String()))
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// RenderShows writes a fresh shows region with one card per show, in order.
func (r *Renderer) RenderShows(w io.Writer, shows []models.Show, term string) error {
	return r.execute(w, "shows", ShowsRegion{Term: term, Shows: shows})
}

// RenderEpisodes writes a fresh, visible episodes region with one list item per episode.
func (r *Renderer) RenderEpisodes(w io.Writer, episodes []models.Episode) error {
	return r.execute(w, "episodes", EpisodesRegion{Episodes: episodes, Visible: true})
}

// RenderPage writes the whole document.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	return r.execute(w, "page", data)
}

// RenderError writes the error banner on its own, for fragment requests.
func (r *Renderer) RenderError(w io.Writer, message string, status int) error {
	return r.execute(w, "error", PageData{Error: message, Status: status})
}

// execute renders name into a buffer and copies it to w only on success.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Str("template", name).Msg("Failed to render template")
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
