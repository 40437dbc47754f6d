package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/giftgenie/backend/internal/domain"
)

// FormatProductContext renders products as compact context blocks for the
// recommendation prompt. Description is included so the model can judge
// relevance.
func FormatProductContext(products []domain.CatalogProduct) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		name := p.Name
		if name == "" {
			name = "Unknown"
		}
		lines := []string{fmt.Sprintf("- %s | %s", name, formatPrice(p.Price))}
		if occasion := strings.TrimSpace(p.Occasion); occasion != "" {
			lines = append(lines, "  Occasion: "+occasion)
		}
		if desc := strings.TrimSpace(p.Description); desc != "" {
			lines = append(lines, "  "+desc)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatComparisonContext renders the full metadata blocks the comparison
// prompt works from.
func FormatComparisonContext(products []domain.CatalogProduct) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		name := p.Name
		if name == "" {
			name = "Unknown"
		}
		ingredients := p.Ingredients
		if ingredients == "" {
			ingredients = "N/A"
		}
		occasion := p.Occasion
		if occasion == "" {
			occasion = "N/A"
		}
		sizeCount := "N/A"
		if p.SizeCount > 0 {
			sizeCount = strconv.Itoa(p.SizeCount)
		}
		parts := []string{
			fmt.Sprintf("**%s**", name),
			"Price: " + formatPrice(p.Price),
			"Occasion: " + occasion,
			"Description: " + clip(p.Description, 300),
			"Ingredients: " + clip(ingredients, 200),
			"Size options: " + sizeCount,
		}
		if p.AllergyInfo != "" {
			parts = append(parts, "Allergies: "+clip(p.AllergyInfo, 150))
		}
		blocks = append(blocks, strings.Join(parts, "\n"))
	}
	return strings.Join(blocks, "\n\n---\n\n")
}

func formatPrice(price float64) string {
	if price == 0 {
		return "N/A"
	}
	return "$" + strconv.FormatFloat(price, 'f', 2, 64)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
