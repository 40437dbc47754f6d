package catalog

import (
	"encoding/json"
	"strings"

	"github.com/giftgenie/backend/internal/domain"
)

// Display field limits. Storefront descriptions can run to several KB of
// markup; truncating keeps envelopes and prompt contexts bounded.
const (
	maxDescriptionLen = 500
	maxCategoryLen    = 200
	maxIngredientsLen = 300
	maxAllergyLen     = 200
)

// flexID accepts product identifiers sent as either JSON strings or numbers
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// rawProduct mirrors the storefront search API record shape
type rawProduct struct {
	ID          flexID  `json:"id"`
	Number      flexID  `json:"number"`
	Name        string  `json:"name"`
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	Price       float64 `json:"price"`
	URL         string  `json:"url"`
	Image       string  `json:"image"`
	Thumbnail   string  `json:"thumbnail"`
	Description string  `json:"description"`
	Occasion    string  `json:"occasion"`
	Category    string  `json:"category"`
	Ingredients string  `json:"ingrediantNames"`
	SizeCount   int     `json:"sizeCount"`
	AllergyInfo string  `json:"allergyinformation"`
	SearchScore float64 `json:"@search.score"`
}

// normalizeProduct converts a raw API record into the domain model.
// The API's url field is a relative slug; the canonical URL is built from
// the site base.
func normalizeProduct(raw rawProduct, siteBaseURL string) domain.CatalogProduct {
	id := string(raw.ID)
	if id == "" {
		id = string(raw.Number)
	}

	price := raw.MinPrice
	if price == 0 {
		price = raw.MaxPrice
	}
	if price == 0 {
		price = raw.Price
	}

	productURL := ""
	if slug := strings.TrimSpace(raw.URL); slug != "" {
		productURL = siteBaseURL + "/fruit-gifts/" + slug
	}

	image := raw.Image
	if image == "" {
		image = raw.Thumbnail
	}

	return domain.CatalogProduct{
		ID:          id,
		Name:        raw.Name,
		Price:       price,
		URL:         productURL,
		ImageURL:    image,
		Description: truncate(raw.Description, maxDescriptionLen),
		Occasion:    raw.Occasion,
		Category:    truncate(raw.Category, maxCategoryLen),
		Ingredients: truncate(raw.Ingredients, maxIngredientsLen),
		SizeCount:   raw.SizeCount,
		AllergyInfo: truncate(raw.AllergyInfo, maxAllergyLen),
		SearchScore: raw.SearchScore,
	}
}

// truncate cuts a string to at most n bytes
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
