package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/giftgenie/backend/internal/domain"
	"github.com/giftgenie/backend/internal/prompts"
)

const (
	// maxCompareProducts is the comparison cardinality ceiling
	maxCompareProducts = 3

	// maxCompareReferences caps how many raw references are considered
	maxCompareReferences = 5
)

// Comparator resolves product references and assembles a side-by-side
// comparison table.
type Comparator struct {
	resolver *Resolver
	llm      domain.LLMClient
}

// NewComparator creates a comparator backed by the given resolver and
// generation client.
func NewComparator(resolver *Resolver, llm domain.LLMClient) *Comparator {
	return &Comparator{resolver: resolver, llm: llm}
}

// ComparisonResult is the outcome of a comparison flow. Table is nil unless
// a comparison was actually generated.
type ComparisonResult struct {
	Message  string
	Products []domain.CatalogProduct
	Table    []domain.ComparisonRow
}

// comparisonPayload is the generation step's expected JSON shape
type comparisonPayload struct {
	IntroMessage   string `json:"intro_message"`
	ComparisonRows []struct {
		Attribute string   `json:"attribute"`
		Values    []string `json:"values"`
	} `json:"comparison_rows"`
	BestFor []struct {
		ProductName string `json:"product_name"`
		Verdict     string `json:"verdict"`
	} `json:"best_for"`
}

// Compare resolves the references against the catalog and recent context,
// enforces the 2-3 product cardinality, and merges the generated comparison
// with a synthesized "Best For" row. Generation failures degrade to the
// resolved products with an apology; they never propagate.
func (c *Comparator) Compare(ctx context.Context, references []string, recent []domain.CatalogProduct) ComparisonResult {
	if len(references) == 0 {
		return ComparisonResult{Message: prompts.CompareAskWhich}
	}

	items := expandOrdinalPhrases(references, recent)
	if len(items) == 0 {
		items = references
	}
	if len(items) > maxCompareReferences {
		items = items[:maxCompareReferences]
	}

	var resolved []domain.CatalogProduct
	seen := make(map[string]bool)
	for _, item := range items {
		if len(resolved) >= maxCompareProducts {
			break
		}
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		p := c.resolver.Resolve(ctx, item, recent)
		if p == nil {
			continue
		}
		id := p.Identity()
		if seen[id] {
			continue
		}
		seen[id] = true
		resolved = append(resolved, *p)
	}

	if len(resolved) < 2 {
		if len(resolved) == 1 {
			return ComparisonResult{Message: prompts.CompareNeedOneMore}
		}
		return ComparisonResult{
			Message: fmt.Sprintf("I couldn't find '%s' in our catalog. Try searching for it first, then compare.", items[0]),
		}
	}

	userContent := prompts.ComparisonUser(prompts.FormatComparisonContext(resolved))

	var payload comparisonPayload
	if err := c.llm.CompleteJSON(ctx, prompts.ComparisonSystem, userContent, &payload); err != nil {
		log.Printf("[COMPARE] generation failed, degrading: %v", err)
		return ComparisonResult{
			Message:  prompts.CompareGenerationFailed,
			Products: domain.StripScores(resolved),
		}
	}

	table := buildTable(payload, resolved)

	message := strings.TrimSpace(payload.IntroMessage)
	if message == "" {
		names := make([]string, len(resolved))
		for i, p := range resolved {
			if p.Name != "" {
				names[i] = p.Name
			} else {
				names[i] = "?"
			}
		}
		message = "Here's how these compare: " + strings.Join(names, ", ")
	}

	return ComparisonResult{
		Message:  message,
		Products: domain.StripScores(resolved),
		Table:    table,
	}
}

// buildTable converts the generated rows into the envelope table shape and
// appends the synthesized "Best For" row. Every row is normalized to exactly
// one value per compared product.
func buildTable(payload comparisonPayload, products []domain.CatalogProduct) []domain.ComparisonRow {
	var table []domain.ComparisonRow
	for _, row := range payload.ComparisonRows {
		if row.Attribute == "" {
			continue
		}
		table = append(table, domain.ComparisonRow{
			Attribute: row.Attribute,
			Values:    fitValues(row.Values, len(products)),
		})
	}

	if len(payload.BestFor) > 0 {
		verdicts := make([]string, len(products))
		for i, p := range products {
			name := strings.ToLower(strings.TrimSpace(p.Name))
			for _, b := range payload.BestFor {
				if strings.ToLower(strings.TrimSpace(b.ProductName)) == name {
					verdicts[i] = b.Verdict
					break
				}
			}
		}
		table = append(table, domain.ComparisonRow{Attribute: "Best For", Values: verdicts})
	}

	return table
}

// fitValues pads or truncates a value list to exactly n cells. An unmatched
// cell is an empty string, never omitted.
func fitValues(values []string, n int) []string {
	fitted := make([]string, n)
	copy(fitted, values)
	return fitted
}

// expandOrdinalPhrases rewrites references like "first two" into the names
// of the corresponding recently shown products. References that are not
// ordinal phrases pass through unchanged.
func expandOrdinalPhrases(references []string, recent []domain.CatalogProduct) []string {
	var expanded []string
	for _, ref := range references {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		lower := strings.ToLower(ref)

		n := 0
		switch {
		case strings.Contains(lower, "first two") || strings.Contains(lower, "first 2"):
			n = 2
		case strings.Contains(lower, "first three") || strings.Contains(lower, "first 3"):
			n = 3
		}

		if n == 0 {
			expanded = append(expanded, ref)
			continue
		}
		for i := 0; i < n && i < len(recent); i++ {
			if recent[i].Name != "" {
				expanded = append(expanded, recent[i].Name)
			}
		}
	}
	return expanded
}
