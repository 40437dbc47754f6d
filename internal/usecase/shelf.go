package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/giftgenie/backend/internal/domain"
)

const (
	popularCacheKey  = "shelf:popular"
	popularShelfSize = 6

	defaultShelfTTL = time.Hour
)

// popularKeywords seed the featured-products shelf
var popularKeywords = []string{"birthday", "chocolate strawberries", "gift"}

// Shelf serves the featured-products strip shown before any conversation
// starts. Results are cached so the storefront API is not hit on every page
// load.
type Shelf struct {
	catalog domain.CatalogClient
	cache   domain.CacheRepository
	ttl     time.Duration
}

// NewShelf creates a shelf service with the given cache TTL
func NewShelf(catalog domain.CatalogClient, cache domain.CacheRepository, ttl time.Duration) *Shelf {
	if ttl <= 0 {
		ttl = defaultShelfTTL
	}
	return &Shelf{catalog: catalog, cache: cache, ttl: ttl}
}

// Popular returns the cached featured products, refreshing from the catalog
// on a cache miss.
func (s *Shelf) Popular(ctx context.Context) ([]domain.CatalogProduct, error) {
	if cached, err := s.cache.Get(ctx, popularCacheKey); err == nil {
		if products := decodeCachedProducts(cached); len(products) > 0 {
			return products, nil
		}
	}

	products := s.catalog.SearchAll(ctx, popularKeywords)
	if len(products) > popularShelfSize {
		products = products[:popularShelfSize]
	}
	products = domain.StripScores(products)

	if len(products) > 0 {
		if err := s.cache.Set(ctx, popularCacheKey, products, s.ttl); err != nil {
			log.Printf("[SHELF] cache write failed: %v", err)
		}
	}
	return products, nil
}

// decodeCachedProducts converts the cache's generic JSON representation back
// into typed products.
func decodeCachedProducts(value interface{}) []domain.CatalogProduct {
	data, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	var products []domain.CatalogProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil
	}
	return products
}
