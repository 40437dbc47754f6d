package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIdentity(t *testing.T) {
	t.Run("id wins when present", func(t *testing.T) {
		p := CatalogProduct{ID: "6108", Name: "Happy Birthday Box"}
		if got := p.Identity(); got != "6108" {
			t.Errorf("Identity() = %q, want 6108", got)
		}
	})

	t.Run("falls back to normalized name", func(t *testing.T) {
		p := CatalogProduct{Name: "  Happy Birthday Box  "}
		if got := p.Identity(); got != "happy birthday box" {
			t.Errorf("Identity() = %q, want happy birthday box", got)
		}
	})

	t.Run("empty product has empty identity", func(t *testing.T) {
		var p CatalogProduct
		if got := p.Identity(); got != "" {
			t.Errorf("Identity() = %q, want empty", got)
		}
	})
}

func TestStripScores(t *testing.T) {
	products := []CatalogProduct{
		{ID: "1", SearchScore: 8.2},
		{ID: "2", SearchScore: 7.1},
	}

	stripped := StripScores(products)

	for _, p := range stripped {
		if p.SearchScore != 0 {
			t.Errorf("product %s score = %v, want 0", p.ID, p.SearchScore)
		}
	}
}

func TestSearchScoreNeverSerialized(t *testing.T) {
	p := CatalogProduct{ID: "1", Name: "Happy Birthday Box", SearchScore: 8.2}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "8.2") || strings.Contains(string(data), "score") {
		t.Errorf("search score leaked into JSON: %s", data)
	}
}
