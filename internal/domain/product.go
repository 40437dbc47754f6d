package domain

import "strings"

// CatalogProduct represents a normalized product from the storefront search API
type CatalogProduct struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price,omitempty"`
	URL         string  `json:"url"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
	Occasion    string  `json:"occasion,omitempty"`
	Category    string  `json:"category,omitempty"`
	Ingredients string  `json:"ingredients,omitempty"`
	SizeCount   int     `json:"size_count,omitempty"`
	AllergyInfo string  `json:"allergy_info,omitempty"`

	// Recommendation holds the per-product rationale text attached by the
	// recommendation flow. Empty outside that flow.
	Recommendation string `json:"recommendation,omitempty"`

	// SearchScore is the search API's relevance score. Internal ranking
	// only; stripped before products leave the usecase layer.
	SearchScore float64 `json:"-"`
}

// Identity returns the de-duplication key for a product: the catalog ID when
// present, otherwise the normalized display name.
func (p *CatalogProduct) Identity() string {
	if p.ID != "" {
		return p.ID
	}
	return strings.ToLower(strings.TrimSpace(p.Name))
}

// StripScores zeroes the internal search score on every product in the slice.
func StripScores(products []CatalogProduct) []CatalogProduct {
	for i := range products {
		products[i].SearchScore = 0
	}
	return products
}
