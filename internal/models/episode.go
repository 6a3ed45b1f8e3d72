package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Episode is a single episode of a show.
// Season and Number keep whatever the directory sent; specials come back empty.
type Episode struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"`
	Season EpisodeField `json:"season"`
	Number EpisodeField `json:"number"`
}

// EpisodeField is a season or episode number as the directory sent it.
// It accepts a JSON number, a JSON string or null; null is stored as "".
type EpisodeField string

// String returns the field as text, "" when the directory sent null.
func (f EpisodeField) String() string {
	return string(f)
}

// UnmarshalJSON keeps number literals and string contents verbatim.
func (f *EpisodeField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = EpisodeField(s)
		return nil
	case isJSONNumber(data):
		*f = EpisodeField(data)
		return nil
	default:
		return fmt.Errorf("episode field: unsupported value %s", data)
	}
}

// MarshalJSON writes null for an empty field, a number when the text is one
// and a string otherwise.
func (f EpisodeField) MarshalJSON() ([]byte, error) {
	if f == "" {
		return []byte("null"), nil
	}
	if isJSONNumber([]byte(f)) {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

func isJSONNumber(data []byte) bool {
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return false
	}
	var n json.Number
	return json.Unmarshal(data, &n) == nil
}
