package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/giftgenie/backend/internal/domain"
)

// fakeCatalog is an in-memory CatalogClient for usecase tests
type fakeCatalog struct {
	results    map[string][]domain.CatalogProduct
	failures   map[string]bool
	searchLog  []string
	lookupLog  []string
	siteDomain string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		results:    make(map[string][]domain.CatalogProduct),
		failures:   make(map[string]bool),
		siteDomain: "ediblearrangements.com",
	}
}

func (f *fakeCatalog) Search(ctx context.Context, keyword string) ([]domain.CatalogProduct, error) {
	f.searchLog = append(f.searchLog, keyword)
	if f.failures[keyword] {
		return nil, domain.ErrCatalogAPIFailure
	}
	return f.results[keyword], nil
}

func (f *fakeCatalog) SearchAll(ctx context.Context, keywords []string) []domain.CatalogProduct {
	seen := make(map[string]bool)
	var merged []domain.CatalogProduct
	for _, kw := range keywords {
		products, err := f.Search(ctx, kw)
		if err != nil {
			continue
		}
		for _, p := range products {
			id := p.Identity()
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, p)
		}
	}
	return merged
}

func (f *fakeCatalog) LookupByName(ctx context.Context, name string) (*domain.CatalogProduct, error) {
	f.lookupLog = append(f.lookupLog, name)
	products := f.results[name]
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	best := products[0]
	for _, p := range products[1:] {
		if p.SearchScore > best.SearchScore {
			best = p
		}
	}
	return &best, nil
}

func (f *fakeCatalog) LookupByURL(ctx context.Context, rawURL string) (*domain.CatalogProduct, error) {
	// Mimic the real client: last path segment is the lookup slug.
	parts := strings.Split(strings.TrimRight(rawURL, "/"), "/")
	return f.LookupByName(ctx, parts[len(parts)-1])
}

func (f *fakeCatalog) IsProductURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.Contains(s, f.siteDomain)
}

// fakeLLM scripts generation responses by system prompt
type fakeLLM struct {
	// completeText is returned from Complete
	completeText string
	completeErr  error

	// jsonBySystem maps a system prompt to the raw JSON CompleteJSON
	// should decode into out. Missing entry falls back to jsonDefault.
	jsonBySystem map[string]string
	jsonDefault  string
	jsonErr      error

	completeCalls  int
	jsonCalls      int
	lastSystem     string
	lastUser       string
	lastJSONSystem string
	lastJSONUser   string
}

func (f *fakeLLM) Complete(ctx context.Context, system, user string) (string, error) {
	f.completeCalls++
	f.lastSystem = system
	f.lastUser = user
	if f.completeErr != nil {
		return "", f.completeErr
	}
	return f.completeText, nil
}

func (f *fakeLLM) CompleteJSON(ctx context.Context, system, user string, out any) error {
	f.jsonCalls++
	f.lastJSONSystem = system
	f.lastJSONUser = user
	if f.jsonErr != nil {
		return f.jsonErr
	}
	raw, ok := f.jsonBySystem[system]
	if !ok {
		raw = f.jsonDefault
	}
	if raw == "" {
		return errors.New("fakeLLM: no scripted response for system prompt")
	}
	return json.Unmarshal([]byte(raw), out)
}

// fakeCache is a minimal CacheRepository that stores values as-is
type fakeCache struct {
	mu   sync.Mutex
	data map[string]interface{}
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]interface{})}
}

func (f *fakeCache) Get(ctx context.Context, key string) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, nil
}

// product is shorthand for building test catalog entries
func product(id, name string, score float64) domain.CatalogProduct {
	return domain.CatalogProduct{ID: id, Name: name, SearchScore: score}
}
