package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
)

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// ShowFixture contains options for generating one /search/shows entry
type ShowFixture struct {
	ID       int
	Name     string
	Summary  string
	ImageURL string // empty renders "image": null
	Score    float64
}

// EpisodeFixture contains options for generating one /shows/{id}/episodes entry.
// Season and Number are written as given: IntPtr for a number, a string for text,
// nil (or a nil *int) for null.
type EpisodeFixture struct {
	ID     int
	Name   string
	Season any
	Number any
}

// GenerateSearchJSON generates a search response shaped like the real TVmaze API,
// including fields that the parser is expected to drop.
func GenerateSearchJSON(shows []ShowFixture) string {
	results := make([]map[string]any, 0, len(shows))
	for _, s := range shows {
		var image any
		if s.ImageURL != "" {
			image = map[string]string{
				"medium":   strings.Replace(s.ImageURL, "original_untouched", "medium_portrait", 1),
				"original": s.ImageURL,
			}
		}
		score := s.Score
		if score == 0 {
			score = 0.9
		}
		results = append(results, map[string]any{
			"score": score,
			"show": map[string]any{
				"id":       s.ID,
				"url":      fmt.Sprintf("https://www.tvmaze.com/shows/%d", s.ID),
				"name":     s.Name,
				"type":     "Scripted",
				"language": "English",
				"genres":   []string{"Drama"},
				"status":   "Ended",
				"summary":  s.Summary,
				"image":    image,
			},
		})
	}
	return mustMarshal(results)
}

// GenerateEpisodesJSON generates an episodes response shaped like the real TVmaze API
func GenerateEpisodesJSON(episodes []EpisodeFixture) string {
	results := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		results = append(results, map[string]any{
			"id":      e.ID,
			"url":     fmt.Sprintf("https://www.tvmaze.com/episodes/%d", e.ID),
			"name":    e.Name,
			"season":  e.Season,
			"number":  e.Number,
			"type":    "regular",
			"airdate": "2012-04-15",
			"runtime": 30,
			"summary": "<p>An episode.</p>",
		})
	}
	return mustMarshal(results)
}

// DirectoryServer is an httptest server that mimics the two TVmaze endpoints
type DirectoryServer struct {
	*httptest.Server
	Hits     atomic.Int64
	LastTerm atomic.Value // string
}

// NewDirectoryServer serves searchBody for /search/shows and episodesByID[id] for /shows/{id}/episodes.
// Unknown show ids answer 404 like the real API.
func NewDirectoryServer(searchBody string, episodesByID map[int]string) *DirectoryServer {
	ds := &DirectoryServer{}
	ds.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ds.Hits.Add(1)
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")

		if r.URL.Path == "/search/shows" {
			ds.LastTerm.Store(r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(searchBody))
			return
		}

		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/shows/%d/episodes", &id); err == nil {
			if body, ok := episodesByID[id]; ok {
				_, _ = w.Write([]byte(body))
				return
			}
		}

		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"name":"Not Found","message":"","code":0,"status":404}`))
	}))
	return ds
}

func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
