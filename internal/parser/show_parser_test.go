package parser

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Belphemur/ShowSearch/internal/testutil"
)

const testDefaultImage = "https://tinyurl.com/tv-missing"

func TestShowParser_ParseJSON_DefaultImage(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateSearchJSON([]testutil.ShowFixture{
		{ID: 1, Name: "Girls", Summary: "<p>desc</p>"},
	})

	shows, err := NewShowParser(testDefaultImage).ParseJSON(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if len(shows) != 1 {
		t.Fatalf("Expected 1 show, got %d", len(shows))
	}
	got := shows[0]
	if got.ID != 1 || got.Name != "Girls" || got.Summary != "<p>desc</p>" {
		t.Errorf("Unexpected show: %+v", got)
	}
	if got.Image != testDefaultImage {
		t.Errorf("Expected default image %q, got %q", testDefaultImage, got.Image)
	}
}

func TestShowParser_ParseJSON_OriginalImage(t *testing.T) {
	t.Parallel()
	original := "https://static.tvmaze.com/uploads/images/original_untouched/31/78286.jpg"
	body := testutil.GenerateSearchJSON([]testutil.ShowFixture{
		{ID: 139, Name: "Girls", ImageURL: original},
		{ID: 41734, Name: "Girls5eva"},
	})

	shows, err := NewShowParser(testDefaultImage).ParseJSON(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if len(shows) != 2 {
		t.Fatalf("Expected 2 shows, got %d", len(shows))
	}
	if shows[0].Image != original {
		t.Errorf("Expected original image, got %q", shows[0].Image)
	}
	if shows[1].Image != testDefaultImage {
		t.Errorf("Expected default image, got %q", shows[1].Image)
	}
}

func TestShowParser_ParseJSON_EmptyOriginalUsesDefault(t *testing.T) {
	t.Parallel()
	body := `[{"score":1,"show":{"id":5,"name":"X","summary":null,"image":{"medium":"m.jpg","original":""}}}]`

	shows, err := NewShowParser(testDefaultImage).ParseJSON(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if shows[0].Image != testDefaultImage {
		t.Errorf("Expected default image for empty original, got %q", shows[0].Image)
	}
	if shows[0].Summary != "" {
		t.Errorf("Expected null summary to decode as empty, got %q", shows[0].Summary)
	}
}

func TestShowParser_ParseJSON_ExactFields(t *testing.T) {
	t.Parallel()
	body := testutil.GenerateSearchJSON([]testutil.ShowFixture{
		{ID: 1, Name: "Girls", Summary: "<p>desc</p>"},
		{ID: 2, Name: "Boys", ImageURL: "https://img/2.jpg"},
	})

	shows, err := NewShowParser(testDefaultImage).ParseJSON(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	encoded, err := json.Marshal(shows)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var generic []map[string]any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := []string{"id", "image", "name", "summary"}
	for i, entry := range generic {
		if len(entry) != len(want) {
			t.Errorf("Show %d: expected %d keys, got %v", i, len(want), entry)
		}
		for _, key := range want {
			if _, ok := entry[key]; !ok {
				t.Errorf("Show %d: missing key %q", i, key)
			}
		}
		if entry["image"] == "" {
			t.Errorf("Show %d: image must never be empty", i)
		}
	}
}

func TestShowParser_ParseJSON_SkipsEntriesWithoutShow(t *testing.T) {
	t.Parallel()
	body := `[{"score":1,"show":null},{"score":0.5,"show":{"id":7,"name":"Seven","summary":"","image":null}}]`

	shows, err := NewShowParser(testDefaultImage).ParseJSON(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(shows) != 1 || shows[0].ID != 7 {
		t.Errorf("Expected only show 7, got %+v", shows)
	}
}

func TestShowParser_ParseJSON_EmptyResults(t *testing.T) {
	t.Parallel()
	shows, err := NewShowParser(testDefaultImage).ParseJSON(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if shows == nil || len(shows) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", shows)
	}
}

func TestShowParser_ParseJSON_InvalidJSON(t *testing.T) {
	t.Parallel()
	_, err := NewShowParser(testDefaultImage).ParseJSON(strings.NewReader(`{"not":"an array"}`))
	if err == nil {
		t.Fatal("Expected error for non-array body")
	}
	if !strings.Contains(err.Error(), "failed to decode search results") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNewShowParser_EmptyDefaultFallsBack(t *testing.T) {
	t.Parallel()
	p := NewShowParser("")
	if p.defaultImageURL != testDefaultImage {
		t.Errorf("Expected built-in placeholder, got %q", p.defaultImageURL)
	}
}
