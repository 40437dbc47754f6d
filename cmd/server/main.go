package main

import (
	"fmt"
	"log"
	"os"

	"github.com/giftgenie/backend/config"
	httpDelivery "github.com/giftgenie/backend/internal/delivery/http"
	"github.com/giftgenie/backend/internal/infrastructure/cache"
	"github.com/giftgenie/backend/internal/infrastructure/catalog"
	"github.com/giftgenie/backend/internal/infrastructure/llm"
	"github.com/giftgenie/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GiftGenie Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	catalogClient := catalog.NewClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.SiteBaseURL,
		cfg.Catalog.Timeout,
		cfg.RateLimit.Catalog,
	)
	llmClient := llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		llmClient.SetDebug(true)
		log.Printf("Catalog and LLM client debug mode enabled")
	}

	log.Printf("Catalog API: %s", cfg.Catalog.BaseURL)
	log.Printf("Generation model: %s", cfg.OpenAI.Model)

	// Initialize usecase layer
	classifier := usecase.NewClassifier(llmClient)
	recommender := usecase.NewRecommender(catalogClient, llmClient, usecase.RecommenderConfig{
		MaxRecommendations: cfg.Chat.MaxRecommendations,
		MaxCandidates:      cfg.Chat.MaxCandidates,
	})
	resolver := usecase.NewResolver(catalogClient)
	comparator := usecase.NewComparator(resolver, llmClient)
	orchestrator := usecase.NewOrchestrator(classifier, recommender, comparator, llmClient)
	shelf := usecase.NewShelf(catalogClient, memoryCache, cfg.Chat.PopularCacheTTL)

	log.Printf("Chat: max_recommendations=%d, max_candidates=%d",
		cfg.Chat.MaxRecommendations, cfg.Chat.MaxCandidates)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(orchestrator, shelf)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
