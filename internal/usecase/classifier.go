package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/giftgenie/backend/internal/domain"
	"github.com/giftgenie/backend/internal/prompts"
)

// historyWindow is how many trailing conversation turns feed the classifier
const historyWindow = 6

// Classifier wraps the intent classification call and its lenient response
// mapping.
type Classifier struct {
	llm domain.LLMClient
}

// NewClassifier creates an intent classifier backed by the generation client
func NewClassifier(llm domain.LLMClient) *Classifier {
	return &Classifier{llm: llm}
}

// intentPayload mirrors the classifier's JSON output. Every field is
// optional; the mapping below fills conservative defaults.
type intentPayload struct {
	IntentType          string   `json:"intent_type"`
	Keywords            []string `json:"keywords"`
	NeedsFollowup       bool     `json:"needs_followup"`
	FollowupReason      string   `json:"followup_reason"`
	ComparisonRequested bool     `json:"comparison_requested"`
	ProductsToCompare   []string `json:"products_to_compare"`
	Confidence          string   `json:"confidence"`
}

// Classify runs the user's turn through the intent classification prompt.
// A transport or parse failure propagates; the caller boundary renders it
// as a generic failure.
func (c *Classifier) Classify(ctx context.Context, turn domain.TurnContext) (domain.ClassifiedIntent, error) {
	userContent := buildClassifierInput(turn)

	var payload intentPayload
	if err := c.llm.CompleteJSON(ctx, prompts.IntentClassifier, userContent, &payload); err != nil {
		return domain.ClassifiedIntent{}, fmt.Errorf("classify intent: %w", err)
	}

	intent := domain.ClassifiedIntent{
		Type:                domain.IntentType(payload.IntentType),
		Keywords:            payload.Keywords,
		NeedsFollowup:       payload.NeedsFollowup,
		FollowupReason:      payload.FollowupReason,
		ComparisonRequested: payload.ComparisonRequested,
		ProductsToCompare:   payload.ProductsToCompare,
		Confidence:          payload.Confidence,
	}
	if intent.Type == "" {
		intent.Type = domain.IntentVague
	}
	if intent.Keywords == nil {
		intent.Keywords = []string{}
	}
	if intent.ProductsToCompare == nil {
		intent.ProductsToCompare = []string{}
	}
	if intent.Confidence == "" {
		intent.Confidence = "medium"
	}
	return intent, nil
}

// buildClassifierInput assembles the classification input: the trailing
// history window, the latest message, and context notes about recently
// shown products.
func buildClassifierInput(turn domain.TurnContext) string {
	var b strings.Builder

	if len(turn.History) > 0 {
		history := turn.History
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}
		b.WriteString("Previous conversation:\n")
		for _, m := range history {
			b.WriteString(m.Role)
			b.WriteString(": ")
			b.WriteString(m.Content)
			b.WriteString("\n")
		}
		b.WriteString("\nLatest user message: ")
		b.WriteString(turn.Message)
	} else {
		b.WriteString(turn.Message)
	}

	if len(turn.RecentProducts) > 0 && turn.RecentQuery != "" {
		b.WriteString("\n\n[Context: The assistant just showed product recommendations. The user may be giving feedback on those (e.g. cheaper, more fun, something different).]")
	}

	if len(turn.RecentProducts) > 0 {
		names := make([]string, 0, len(turn.RecentProducts))
		for _, p := range turn.RecentProducts {
			if p.Name != "" {
				names = append(names, p.Name)
			}
		}
		if len(names) > 0 {
			b.WriteString("\n\n[Recently shown products (use these names for 'compare these' or 'first two'): ")
			b.WriteString(strings.Join(names, ", "))
			b.WriteString("]")
		}
	}

	return b.String()
}
