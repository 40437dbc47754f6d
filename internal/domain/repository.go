package domain

import (
	"context"
	"time"
)

// CatalogClient defines the interface for the storefront product search API
type CatalogClient interface {
	// Search runs a single keyword search and returns normalized products.
	Search(ctx context.Context, keyword string) ([]CatalogProduct, error)

	// SearchAll runs every keyword and merges the results, de-duplicated by
	// product identity. Individual keyword failures are absorbed so partial
	// results from the other keywords survive.
	SearchAll(ctx context.Context, keywords []string) []CatalogProduct

	// LookupByName searches for a product name and returns the highest
	// scoring candidate, or ErrProductNotFound.
	LookupByName(ctx context.Context, name string) (*CatalogProduct, error)

	// LookupByURL extracts the product slug from a storefront URL and
	// resolves it via name search, or ErrProductNotFound.
	LookupByURL(ctx context.Context, url string) (*CatalogProduct, error)

	// IsProductURL reports whether a reference string looks like a link to
	// the storefront rather than a product name.
	IsProductURL(s string) bool
}

// LLMClient defines the interface for the text generation service
type LLMClient interface {
	// Complete sends a plain completion request and returns the text.
	Complete(ctx context.Context, system, user string) (string, error)

	// CompleteJSON sends a JSON-mode completion request and unmarshals the
	// response into out. A parse failure is returned as an error for the
	// caller to absorb; it must never panic.
	CompleteJSON(ctx context.Context, system, user string, out any) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
