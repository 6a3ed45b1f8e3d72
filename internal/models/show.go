package models

// Show is a TV series as returned by a directory search.
// Image is never empty: shows without artwork carry the configured placeholder.
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // may embed markup
	Image   string `json:"image"`
}
