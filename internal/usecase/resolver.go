package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/giftgenie/backend/internal/domain"
)

// ordinalIndex maps the ordinal reference vocabulary to 0-based positions in
// the recently shown product list.
var ordinalIndex = map[string]int{
	"first": 0, "1st": 0, "1": 0,
	"second": 1, "2nd": 1, "2": 1,
	"third": 2, "3rd": 2, "3": 2,
}

// Resolver turns a free-form product reference (name fragment, URL, ordinal)
// into a concrete catalog entry.
type Resolver struct {
	catalog domain.CatalogClient
}

// NewResolver creates a resolver backed by the given catalog client
func NewResolver(catalog domain.CatalogClient) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve applies the resolution precedence, first match wins:
//  1. ordinal against the recently shown list (no wraparound)
//  2. bidirectional case-insensitive substring match against the recent list
//  3. URL lookup via slug extraction
//  4. catalog name search, highest score wins
//
// A nil result means "not found"; callers must never fabricate a placeholder.
func (r *Resolver) Resolve(ctx context.Context, reference string, recent []domain.CatalogProduct) *domain.CatalogProduct {
	ref := strings.ToLower(strings.TrimSpace(reference))
	if ref == "" {
		return nil
	}

	// An ordinal reference resolves by position or not at all; it never
	// falls through to a catalog search.
	if idx, ok := ordinalIndex[ref]; ok {
		if idx < len(recent) {
			return &recent[idx]
		}
		return nil
	}

	// Fuzzy match against the recent list. Deliberately permissive:
	// the substring test runs in both directions.
	for i := range recent {
		name := strings.ToLower(strings.TrimSpace(recent[i].Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, ref) || strings.Contains(ref, name) {
			return &recent[i]
		}
	}

	if r.catalog.IsProductURL(reference) {
		p, err := r.catalog.LookupByURL(ctx, reference)
		if err != nil {
			log.Printf("[RESOLVE] URL lookup failed for %q: %v", reference, err)
			return nil
		}
		return p
	}

	p, err := r.catalog.LookupByName(ctx, strings.TrimSpace(reference))
	if err != nil {
		log.Printf("[RESOLVE] name lookup failed for %q: %v", reference, err)
		return nil
	}
	return p
}
