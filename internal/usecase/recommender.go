package usecase

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/giftgenie/backend/internal/domain"
	"github.com/giftgenie/backend/internal/prompts"
)

const (
	defaultMaxRecommendations = 4

	// defaultMaxCandidates bounds how many search results feed the
	// generation prompt, to keep its size in check.
	defaultMaxCandidates = 15

	maxPreviousNamesInPrompt = 8
)

var (
	// trademark and registered marks that the catalog appends to names but
	// the generation step often drops
	markRegex = regexp.MustCompile("[®™]")

	// " | $49.99" suffix the generation step sometimes echoes back from the
	// product context format
	priceSuffixRegex = regexp.MustCompile(`\s*\|\s*\$[\d.]+$`)
)

// RecommenderConfig holds tuning knobs for the recommendation flow
type RecommenderConfig struct {
	MaxRecommendations int
	MaxCandidates      int
}

// Recommender searches the catalog and reconciles generated recommendations
// against real candidates.
type Recommender struct {
	catalog       domain.CatalogClient
	llm           domain.LLMClient
	maxRecs       int
	maxCandidates int
}

// NewRecommender creates a recommender with the given dependencies
func NewRecommender(catalog domain.CatalogClient, llm domain.LLMClient, config RecommenderConfig) *Recommender {
	maxRecs := config.MaxRecommendations
	if maxRecs <= 0 {
		maxRecs = defaultMaxRecommendations
	}
	maxCandidates := config.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = defaultMaxCandidates
	}
	return &Recommender{
		catalog:       catalog,
		llm:           llm,
		maxRecs:       maxRecs,
		maxCandidates: maxCandidates,
	}
}

// RecommendOptions carries the optional refinement context. Refinement mode
// is active only when both PreviousProducts and FeedbackText are set.
type RecommendOptions struct {
	PreviousProducts []domain.CatalogProduct
	FeedbackText     string
	OriginalQuery    string
}

// RecommendationResult is the outcome of a recommendation flow
type RecommendationResult struct {
	Message  string
	Products []domain.CatalogProduct
}

// recommendationPayload is the generation step's expected JSON shape
type recommendationPayload struct {
	IntroMessage    string `json:"intro_message"`
	Recommendations []struct {
		ProductName    string `json:"product_name"`
		Recommendation string `json:"recommendation"`
	} `json:"recommendations"`
	FallbackMessage string `json:"fallback_message"`
}

// Recommend searches the catalog for the keywords and returns generated,
// grounded recommendations. Generation failures degrade to canned copy and
// never propagate.
func (r *Recommender) Recommend(ctx context.Context, keywords []string, message string, opts RecommendOptions) RecommendationResult {
	if len(keywords) == 0 {
		// Cost-avoidance short circuit: no keywords means no external calls.
		return RecommendationResult{Message: prompts.FallbackNoKeywords}
	}

	isRefinement := len(opts.PreviousProducts) > 0 && strings.TrimSpace(opts.FeedbackText) != ""

	searchKeywords := keywords
	if isRefinement {
		searchKeywords = expandFeedbackKeywords(keywords, opts.FeedbackText)
	}

	products := r.catalog.SearchAll(ctx, searchKeywords)
	if len(products) == 0 {
		return RecommendationResult{Message: prompts.FallbackNoProducts}
	}

	if isRefinement {
		products = excludeProducts(products, opts.PreviousProducts)
		if len(products) == 0 {
			return RecommendationResult{Message: prompts.FallbackAllExcluded}
		}
	}

	// Highest relevance first; missing score counts as zero. Ranking only
	// decides which candidates make the prompt cut.
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].SearchScore > products[j].SearchScore
	})
	candidates := products
	if len(candidates) > r.maxCandidates {
		candidates = candidates[:r.maxCandidates]
	}

	productContext := prompts.FormatProductContext(candidates)
	var userContent string
	if isRefinement {
		originalRequest := opts.OriginalQuery
		if originalRequest == "" {
			originalRequest = message
		}
		userContent = prompts.RecommenderRefinement(originalRequest, opts.FeedbackText, previousNames(opts.PreviousProducts), productContext)
	} else {
		userContent = prompts.RecommenderUser(message, productContext)
	}

	var payload recommendationPayload
	if err := r.llm.CompleteJSON(ctx, prompts.RecommenderSystem, userContent, &payload); err != nil {
		log.Printf("[RECOMMEND] generation failed, degrading: %v", err)
		payload = recommendationPayload{}
	}

	selected := r.reconcile(payload, candidates)

	intro := strings.TrimSpace(payload.IntroMessage)
	var result RecommendationResult
	switch {
	case len(selected) > 0:
		result.Message = intro
		if result.Message == "" {
			if isRefinement {
				result.Message = prompts.OpenerRefinement
			} else {
				result.Message = prompts.OpenerFirstTime
			}
		}
		result.Products = domain.StripScores(selected)
	case payload.FallbackMessage != "":
		result.Message = intro
		if result.Message == "" {
			result.Message = payload.FallbackMessage
		}
	default:
		result.Message = intro
		if result.Message == "" {
			result.Message = prompts.FallbackNoMatch
		}
	}
	return result
}

// reconcile maps generated recommendation names back onto real candidates.
// Unmatched or duplicate names are dropped silently; a recommendation that
// does not correspond to an in-context candidate must never surface.
func (r *Recommender) reconcile(payload recommendationPayload, candidates []domain.CatalogProduct) []domain.CatalogProduct {
	byName := make(map[string]domain.CatalogProduct, len(candidates))
	for _, p := range candidates {
		if key := normalizeName(p.Name); key != "" {
			if _, exists := byName[key]; !exists {
				byName[key] = p
			}
		}
	}

	var selected []domain.CatalogProduct
	seen := make(map[string]bool)
	for _, rec := range payload.Recommendations {
		if len(selected) >= r.maxRecs {
			break
		}
		key := normalizeName(rec.ProductName)
		p, ok := byName[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		p.Recommendation = rec.Recommendation
		selected = append(selected, p)
	}
	return selected
}

// normalizeName produces the reconciliation key for a product name:
// trademark glyphs stripped, lower-cased, trimmed, trailing price artifact
// removed.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(markRegex.ReplaceAllString(s, "")))
	s = strings.TrimSpace(priceSuffixRegex.ReplaceAllString(s, ""))
	return s
}

// excludeProducts removes every product whose identity matches one of the
// previously shown products.
func excludeProducts(products, previous []domain.CatalogProduct) []domain.CatalogProduct {
	excluded := make(map[string]bool, len(previous))
	for i := range previous {
		if id := previous[i].Identity(); id != "" {
			excluded[id] = true
		}
	}

	kept := products[:0]
	for _, p := range products {
		if !excluded[p.Identity()] {
			kept = append(kept, p)
		}
	}
	return kept
}

func previousNames(previous []domain.CatalogProduct) []string {
	names := make([]string, 0, maxPreviousNamesInPrompt)
	for _, p := range previous {
		if len(names) == maxPreviousNamesInPrompt {
			break
		}
		name := p.Name
		if name == "" {
			name = "?"
		}
		names = append(names, name)
	}
	return names
}
