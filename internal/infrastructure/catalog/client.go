package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/giftgenie/backend/internal/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// lookupCandidates is how many search results a name lookup considers
	// before taking the highest scoring one.
	lookupCandidates = 5

	maxAttempts = 3
)

// productPathRegex extracts the product slug from a storefront product URL path
var productPathRegex = regexp.MustCompile(`/fruit-gifts/([^/?]+)`)

// Client handles communication with the storefront product search API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	siteBaseURL string
	siteDomain  string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog search client. requestsPerHour bounds the
// outbound call rate to the storefront API.
func NewClient(baseURL, siteBaseURL string, timeout time.Duration, requestsPerHour int) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if requestsPerHour <= 0 {
		requestsPerHour = 3600
	}

	// rate.Limit is requests per second
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), 10)

	siteDomain := siteBaseURL
	if u, err := url.Parse(siteBaseURL); err == nil && u.Host != "" {
		siteDomain = u.Host
	}
	siteDomain = strings.TrimPrefix(siteDomain, "www.")

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/") + "/",
		siteBaseURL: strings.TrimRight(siteBaseURL, "/"),
		siteDomain:  siteDomain,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the sleep duration before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}

// searchResponse covers both response shapes the storefront API returns:
// a bare array of products, or an object wrapping one.
type searchResponse struct {
	Products []rawProduct
}

func (r *searchResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Products)
	}
	var wrapped struct {
		Products []rawProduct `json:"products"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	r.Products = wrapped.Products
	return nil
}

// Search runs a single keyword search against the storefront API and returns
// normalized products in API order.
func (c *Client) Search(ctx context.Context, keyword string) ([]domain.CatalogProduct, error) {
	if c.debug {
		log.Printf("[CATALOG] Search called with keyword: %q", keyword)
	}

	payload, err := json.Marshal(map[string]string{"keyword": keyword})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := c.doSearchRequest(ctx, payload)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if attempt < maxAttempts {
				time.Sleep(exponentialBackoff(attempt))
			}
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		products := make([]domain.CatalogProduct, 0, len(searchResp.Products))
		for _, raw := range searchResp.Products {
			products = append(products, normalizeProduct(raw, c.siteBaseURL))
		}

		if c.debug {
			log.Printf("[CATALOG] Found %d products for keyword: %q", len(products), keyword)
		}
		return products, nil
	}

	return nil, lastErr
}

// doSearchRequest executes one POST to the search endpoint and returns the body
func (c *Client) doSearchRequest(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "GiftGenie/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
	}
	return body, nil
}

// SearchAll searches every keyword concurrently and merges the results,
// de-duplicated by product identity in keyword order. A failed keyword
// contributes nothing; partial results from the other keywords survive.
func (c *Client) SearchAll(ctx context.Context, keywords []string) []domain.CatalogProduct {
	perKeyword := make([][]domain.CatalogProduct, len(keywords))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, kw := range keywords {
		g.Go(func() error {
			products, err := c.Search(gctx, kw)
			if err != nil {
				log.Printf("[CATALOG] keyword %q failed, skipping: %v", kw, err)
				return nil
			}
			mu.Lock()
			perKeyword[i] = products
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; failures absorb to empty partials.
	_ = g.Wait()

	seen := make(map[string]bool)
	var merged []domain.CatalogProduct
	for _, products := range perKeyword {
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

// LookupByName searches for a product name and returns the highest scoring
// candidate among the top results.
func (c *Client) LookupByName(ctx context.Context, name string) (*domain.CatalogProduct, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrProductNotFound
	}

	products, err := c.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(products) > lookupCandidates {
		products = products[:lookupCandidates]
	}
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

// LookupByURL extracts the product slug from a storefront URL and resolves it
// via name search.
func (c *Client) LookupByURL(ctx context.Context, rawURL string) (*domain.CatalogProduct, error) {
	slug := ParseProductURL(rawURL)
	if slug == "" {
		return nil, domain.ErrProductNotFound
	}
	return c.LookupByName(ctx, slug)
}

// IsProductURL reports whether a reference string looks like a link to the
// storefront rather than a product name.
func (c *Client) IsProductURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.Contains(s, c.siteDomain)
}

// ParseProductURL extracts the product slug from a storefront product URL.
// Returns "" when the URL does not point at a product page.
func ParseProductURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.TrimRight(parsed.Path, "/")
	if m := productPathRegex.FindStringSubmatch(path); m != nil {
		return m[1]
	}
	return ""
}
