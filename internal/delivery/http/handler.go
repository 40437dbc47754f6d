package http

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/giftgenie/backend/internal/domain"
)

// genericFailureMessage is what the user sees when an internal failure
// escapes the orchestrator. Raw error text never reaches the client.
const genericFailureMessage = "Sorry, something went wrong on our end. Please try again in a moment."

// ChatService processes one conversation turn
type ChatService interface {
	Respond(ctx context.Context, turn domain.TurnContext) (*domain.ResponseEnvelope, error)
}

// ShelfService serves the featured-products strip
type ShelfService interface {
	Popular(ctx context.Context) ([]domain.CatalogProduct, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	chat  ChatService
	shelf ShelfService
}

// NewHandler creates a new HTTP handler
func NewHandler(chat ChatService, shelf ShelfService) *Handler {
	return &Handler{chat: chat, shelf: shelf}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "giftgenie-backend",
		"version": "1.0.0",
	})
}

// chatRequest is the chat endpoint's payload. Everything except message is
// conversation state the client echoes back from previous responses.
type chatRequest struct {
	Message         string                  `json:"message"`
	History         []domain.TurnMessage    `json:"history"`
	LastProducts    []domain.CatalogProduct `json:"last_products"`
	LastSearchQuery string                  `json:"last_search_query"`
}

// Chat processes a user message and returns the assistant response with
// optional products and comparison table
func (h *Handler) Chat(c *gin.Context) {
	if h.chat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat service unavailable"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	turn := domain.TurnContext{
		Message:        req.Message,
		History:        req.History,
		RecentProducts: req.LastProducts,
		RecentQuery:    strings.TrimSpace(req.LastSearchQuery),
	}

	envelope, err := h.chat.Respond(c.Request.Context(), turn)
	if err != nil {
		log.Printf("[CHAT] turn failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericFailureMessage})
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// Popular returns featured products for the shelf
func (h *Handler) Popular(c *gin.Context) {
	if h.shelf == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Shelf service unavailable"})
		return
	}

	products, err := h.shelf.Popular(c.Request.Context())
	if err != nil {
		log.Printf("[SHELF] popular lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"products": []domain.CatalogProduct{}, "error": genericFailureMessage})
		return
	}
	if products == nil {
		products = []domain.CatalogProduct{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
