package domain

import "errors"

var (
	// ErrProductNotFound is returned when a reference resolves to nothing in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCatalogAPIFailure is returned when a catalog search request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")

	// ErrLLMFailure is returned when the generation service fails or returns unparseable output
	ErrLLMFailure = errors.New("generation request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
