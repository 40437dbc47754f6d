package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/giftgenie/backend/internal/domain"
)

// DefaultModel is used when no model is configured
const DefaultModel = openai.GPT4oMini

// Client is a thin wrapper around the OpenAI chat completion API exposing
// the two call shapes the assistant needs: plain text and JSON mode.
type Client struct {
	api   *openai.Client
	model string
	debug bool
}

// NewClient creates a generation client. baseURL overrides the API endpoint
// (used for tests and OpenAI-compatible gateways); empty means the default.
func NewClient(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete sends a completion request and returns the assistant's text
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, false)
}

// CompleteJSON sends a JSON-mode completion request and unmarshals the
// response into out.
func (c *Client) CompleteJSON(ctx context.Context, system, user string, out any) error {
	text, err := c.complete(ctx, system, user, true)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), out); err != nil {
		if c.debug {
			log.Printf("[LLM] JSON parse error: %v (raw: %.200s)", err, text)
		}
		return fmt.Errorf("%w: parse response: %v", domain.ErrLLMFailure, err)
	}
	return nil
}

func (c *Client) complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if jsonMode {
		// The API rejects json_object mode unless "json" appears in the input.
		req.Messages[1].Content = user + "\n\nRespond with JSON."
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrLLMFailure, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrLLMFailure)
	}
	return resp.Choices[0].Message.Content, nil
}
