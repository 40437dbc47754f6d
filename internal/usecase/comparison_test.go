package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/giftgenie/backend/internal/domain"
	"github.com/giftgenie/backend/internal/prompts"
)

func newTestComparator(catalog *fakeCatalog, llm *fakeLLM) *Comparator {
	return NewComparator(NewResolver(catalog), llm)
}

func TestCompare_NoReferences(t *testing.T) {
	c := newTestComparator(newFakeCatalog(), &fakeLLM{})

	result := c.Compare(context.Background(), nil, nil)
	if result.Message != prompts.CompareAskWhich {
		t.Errorf("Message = %q, want ask-which prompt", result.Message)
	}
	if len(result.Products) != 0 || result.Table != nil {
		t.Errorf("Products/Table = %v/%v, want empty", result.Products, result.Table)
	}
}

func TestCompare_HappyPath(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "Happy Birthday Box", 0),
		product("2", "Berry Birthday Box", 0),
	}
	llm := &fakeLLM{
		jsonDefault: `{
			"intro_message": "Here's how these two stack up:",
			"comparison_rows": [
				{"attribute": "Price", "values": ["$49.99", "$59.99"]},
				{"attribute": "Occasion", "values": ["Birthday", "Birthday"]}
			],
			"best_for": [
				{"product_name": "Happy Birthday Box", "verdict": "Classic choice"},
				{"product_name": "Berry Birthday Box", "verdict": "Berry lovers"}
			]
		}`,
	}
	c := newTestComparator(newFakeCatalog(), llm)

	result := c.Compare(context.Background(), []string{"first", "second"}, recent)

	if result.Message != "Here's how these two stack up:" {
		t.Errorf("Message = %q", result.Message)
	}
	if len(result.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(result.Products))
	}
	if len(result.Table) != 3 {
		t.Fatalf("len(Table) = %d, want 2 rows + Best For", len(result.Table))
	}
	for _, row := range result.Table {
		if len(row.Values) != 2 {
			t.Errorf("row %q has %d values, want 2", row.Attribute, len(row.Values))
		}
	}
	last := result.Table[len(result.Table)-1]
	if last.Attribute != "Best For" {
		t.Errorf("last row = %q, want Best For", last.Attribute)
	}
	if last.Values[0] != "Classic choice" || last.Values[1] != "Berry lovers" {
		t.Errorf("Best For values = %v", last.Values)
	}
}

func TestCompare_OrdinalPhraseExpansion(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "Happy Birthday Box", 0),
		product("2", "Berry Birthday Box", 0),
		product("3", "Delicious Birthday Wishes", 0),
	}
	llm := &fakeLLM{
		jsonDefault: `{"intro_message": "Compared!", "comparison_rows": [{"attribute": "Price", "values": ["$1", "$2"]}], "best_for": []}`,
	}
	c := newTestComparator(newFakeCatalog(), llm)

	result := c.Compare(context.Background(), []string{"the first two"}, recent)

	if len(result.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(result.Products))
	}
	if result.Products[0].ID != "1" || result.Products[1].ID != "2" {
		t.Errorf("Products = %v, want the first two recent products", result.Products)
	}
}

func TestCompare_DuplicateReferencesCollapse(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "Happy Birthday Box", 0),
		product("2", "Berry Birthday Box", 0),
	}
	llm := &fakeLLM{
		jsonDefault: `{"intro_message": "Compared!", "comparison_rows": [], "best_for": []}`,
	}
	c := newTestComparator(newFakeCatalog(), llm)

	result := c.Compare(context.Background(), []string{"first", "1", "second"}, recent)

	if len(result.Products) != 2 {
		t.Fatalf("len(Products) = %d, want duplicates collapsed to 2", len(result.Products))
	}
}

func TestCompare_CardinalityCap(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "A Box", 0),
		product("2", "B Box", 0),
		product("3", "C Box", 0),
	}
	llm := &fakeLLM{
		jsonDefault: `{"intro_message": "Compared!", "comparison_rows": [], "best_for": []}`,
	}
	c := newTestComparator(newFakeCatalog(), llm)

	result := c.Compare(context.Background(), []string{"A Box", "B Box", "C Box", "A Box"}, recent)

	if len(result.Products) != 3 {
		t.Fatalf("len(Products) = %d, want cap of 3", len(result.Products))
	}
}

func TestCompare_NotEnoughResolved(t *testing.T) {
	t.Run("one resolved asks for one more", func(t *testing.T) {
		recent := []domain.CatalogProduct{product("1", "Happy Birthday Box", 0)}
		c := newTestComparator(newFakeCatalog(), &fakeLLM{})

		result := c.Compare(context.Background(), []string{"first", "Mystery Box"}, recent)

		if result.Message != prompts.CompareNeedOneMore {
			t.Errorf("Message = %q, want need-one-more prompt", result.Message)
		}
		if len(result.Products) != 0 {
			t.Errorf("Products = %v, want empty below the comparison minimum", result.Products)
		}
	})

	t.Run("none resolved names the failed reference", func(t *testing.T) {
		c := newTestComparator(newFakeCatalog(), &fakeLLM{})

		result := c.Compare(context.Background(), []string{"Mystery Box"}, nil)

		if !strings.Contains(result.Message, "Mystery Box") {
			t.Errorf("Message = %q, want the unresolved reference named", result.Message)
		}
		if len(result.Products) != 0 {
			t.Errorf("Products = %v, want empty", result.Products)
		}
	})
}

func TestCompare_GenerationFailureDegrades(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "Happy Birthday Box", 0),
		product("2", "Berry Birthday Box", 0),
	}
	llm := &fakeLLM{jsonErr: domain.ErrLLMFailure}
	c := newTestComparator(newFakeCatalog(), llm)

	result := c.Compare(context.Background(), []string{"first", "second"}, recent)

	if result.Message != prompts.CompareGenerationFailed {
		t.Errorf("Message = %q, want generation-failed apology", result.Message)
	}
	if len(result.Products) != 2 {
		t.Errorf("len(Products) = %d, want the resolved products kept", len(result.Products))
	}
	if result.Table != nil {
		t.Errorf("Table = %v, want nil on generation failure", result.Table)
	}
}

func TestCompare_TableNormalization(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "Happy Birthday Box", 0),
		product("2", "Berry Birthday Box", 0),
	}
	llm := &fakeLLM{
		jsonDefault: `{
			"intro_message": "Compared!",
			"comparison_rows": [
				{"attribute": "Price", "values": ["$49.99"]},
				{"attribute": "Size", "values": ["Small", "Large", "Extra"]},
				{"attribute": "", "values": ["junk", "junk"]}
			],
			"best_for": [
				{"product_name": "BERRY BIRTHDAY BOX", "verdict": "Berry lovers"}
			]
		}`,
	}
	c := newTestComparator(newFakeCatalog(), llm)

	result := c.Compare(context.Background(), []string{"first", "second"}, recent)

	if len(result.Table) != 3 {
		t.Fatalf("len(Table) = %d, want short/long rows fitted plus Best For, blank attribute dropped", len(result.Table))
	}
	if got := result.Table[0].Values; len(got) != 2 || got[1] != "" {
		t.Errorf("short row padded = %v, want [\"$49.99\", \"\"]", got)
	}
	if got := result.Table[1].Values; len(got) != 2 || got[1] != "Large" {
		t.Errorf("long row truncated = %v, want [\"Small\", \"Large\"]", got)
	}
	bestFor := result.Table[2]
	if bestFor.Values[0] != "" || bestFor.Values[1] != "Berry lovers" {
		t.Errorf("Best For values = %v, want case-insensitive match into second cell only", bestFor.Values)
	}
}

func TestCompare_DefaultMessageNamesProducts(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "Happy Birthday Box", 0),
		product("2", "Berry Birthday Box", 0),
	}
	llm := &fakeLLM{
		jsonDefault: `{"intro_message": "  ", "comparison_rows": [], "best_for": []}`,
	}
	c := newTestComparator(newFakeCatalog(), llm)

	result := c.Compare(context.Background(), []string{"first", "second"}, recent)

	want := "Here's how these compare: Happy Birthday Box, Berry Birthday Box"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestExpandOrdinalPhrases(t *testing.T) {
	recent := []domain.CatalogProduct{
		product("1", "Alpha", 0),
		product("2", "Beta", 0),
		product("3", "Gamma", 0),
	}

	t.Run("first three expands to names", func(t *testing.T) {
		got := expandOrdinalPhrases([]string{"first 3"}, recent)
		if len(got) != 3 || got[2] != "Gamma" {
			t.Errorf("expandOrdinalPhrases() = %v", got)
		}
	})

	t.Run("phrase capped by recent length", func(t *testing.T) {
		got := expandOrdinalPhrases([]string{"first three"}, recent[:2])
		if len(got) != 2 {
			t.Errorf("expandOrdinalPhrases() = %v, want 2 names", got)
		}
	})

	t.Run("plain references pass through", func(t *testing.T) {
		got := expandOrdinalPhrases([]string{"Alpha", "Beta"}, recent)
		if len(got) != 2 || got[0] != "Alpha" {
			t.Errorf("expandOrdinalPhrases() = %v", got)
		}
	})
}
