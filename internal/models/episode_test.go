package models

import (
	"encoding/json"
	"testing"
)

func TestEpisode_DecodeKeepsDirectoryValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		body   string
		season EpisodeField
		number EpisodeField
	}{
		{name: "numbers", body: `{"season":1,"number":2}`, season: "1", number: "2"},
		{name: "numeric strings", body: `{"season":"3","number":"4"}`, season: "3", number: "4"},
		{name: "textual season", body: `{"season":"S1","number":5}`, season: "S1", number: "5"},
		{name: "null number", body: `{"season":2,"number":null}`, season: "2", number: ""},
		{name: "missing fields", body: `{}`, season: "", number: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var e Episode
			if err := json.Unmarshal([]byte(tt.body), &e); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if e.Season != tt.season || e.Number != tt.number {
				t.Errorf("got season %q number %q, want %q %q", e.Season, e.Number, tt.season, tt.number)
			}
		})
	}
}

func TestEpisode_EncodeWritesNullForMissingValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		episode  Episode
		expected string
	}{
		{name: "regular", episode: Episode{ID: 10, Name: "Pilot", Season: "1", Number: "1"}, expected: `{"id":10,"name":"Pilot","season":1,"number":1}`},
		{name: "special", episode: Episode{ID: 99, Name: "Special", Season: "2"}, expected: `{"id":99,"name":"Special","season":2,"number":null}`},
		{name: "textual season", episode: Episode{ID: 7, Name: "Prequel", Season: "S1", Number: "01"}, expected: `{"id":7,"name":"Prequel","season":"S1","number":"01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := json.Marshal(tt.episode)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestEpisodeField_RejectsStructuredValues(t *testing.T) {
	t.Parallel()
	var e Episode
	if err := json.Unmarshal([]byte(`{"season":{"n":1}}`), &e); err == nil {
		t.Error("Expected an error for an object season")
	}
	if err := json.Unmarshal([]byte(`{"number":true}`), &e); err == nil {
		t.Error("Expected an error for a boolean number")
	}
}
