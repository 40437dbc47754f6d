package usecase

import (
	"context"
	"strings"

	"github.com/giftgenie/backend/internal/domain"
	"github.com/giftgenie/backend/internal/prompts"
)

// defaultFollowupReason is used when the classifier flags a followup but
// gives no reason.
const defaultFollowupReason = "occasion and budget unclear"

// Orchestrator is the per-turn state machine: it classifies the user's
// message and dispatches to the recommendation, comparison, or
// clarification path. It owns no cross-call state; conversation continuity
// lives entirely in the TurnContext the caller supplies.
type Orchestrator struct {
	classifier  *Classifier
	recommender *Recommender
	comparator  *Comparator
	llm         domain.LLMClient
}

// NewOrchestrator wires the orchestrator's collaborators
func NewOrchestrator(classifier *Classifier, recommender *Recommender, comparator *Comparator, llm domain.LLMClient) *Orchestrator {
	return &Orchestrator{
		classifier:  classifier,
		recommender: recommender,
		comparator:  comparator,
		llm:         llm,
	}
}

// Respond processes one user turn and returns the unified response envelope.
// Only a hard failure of the classification or generation service on the
// greeting/followup path returns an error; everything else degrades to a
// friendly message inside the branch that failed.
func (o *Orchestrator) Respond(ctx context.Context, turn domain.TurnContext) (*domain.ResponseEnvelope, error) {
	recentRecs := len(turn.RecentProducts) > 0 && strings.TrimSpace(turn.RecentQuery) != ""

	intent, err := o.classifier.Classify(ctx, turn)
	if err != nil {
		return nil, err
	}

	if intent.Type == domain.IntentGreeting {
		message, err := o.llm.Complete(ctx, prompts.Greeting, turn.Message)
		if err != nil {
			return nil, err
		}
		return envelope(strings.TrimSpace(message), nil, intent, nil), nil
	}

	// A refinement with recommendation context skips the followup question:
	// the feedback itself is the answer.
	if intent.NeedsFollowup && !(intent.Type == domain.IntentRefinement && recentRecs) {
		reason := intent.FollowupReason
		if reason == "" {
			reason = defaultFollowupReason
		}
		message, err := o.llm.Complete(ctx, prompts.FollowupGenerator, prompts.FollowupUser(turn.Message, reason))
		if err != nil {
			return nil, err
		}
		return envelope(strings.TrimSpace(message), nil, intent, nil), nil
	}

	if intent.ComparisonRequested {
		if len(intent.ProductsToCompare) > 0 {
			result := o.comparator.Compare(ctx, intent.ProductsToCompare, turn.RecentProducts)
			return envelope(result.Message, result.Products, intent, result.Table), nil
		}
		if len(turn.RecentProducts) > 0 {
			return envelope(prompts.CompareAskWhichRecent, nil, intent, nil), nil
		}
		return envelope(prompts.CompareAskForNames, nil, intent, nil), nil
	}

	if intent.Type == domain.IntentRefinement && recentRecs {
		keywords := intent.Keywords
		if len(keywords) == 0 {
			keywords = DeriveRefinementKeywords(turn.Message)
		}
		message := turn.RecentQuery
		if message == "" {
			message = turn.Message
		}
		result := o.recommender.Recommend(ctx, keywords, message, RecommendOptions{
			PreviousProducts: turn.RecentProducts,
			FeedbackText:     turn.Message,
			OriginalQuery:    turn.RecentQuery,
		})
		return envelope(result.Message, result.Products, intent, nil), nil
	}

	if (intent.Type == domain.IntentSearch || intent.Type == domain.IntentClarify) && len(intent.Keywords) > 0 {
		result := o.recommender.Recommend(ctx, intent.Keywords, turn.Message, RecommendOptions{})
		return envelope(result.Message, result.Products, intent, nil), nil
	}

	return envelope(prompts.GenericFallback, nil, intent, nil), nil
}

// envelope normalizes the response shape: products never nil in the payload,
// comparison table nil unless the compare branch produced one.
func envelope(message string, products []domain.CatalogProduct, intent domain.ClassifiedIntent, table []domain.ComparisonRow) *domain.ResponseEnvelope {
	if products == nil {
		products = []domain.CatalogProduct{}
	}
	return &domain.ResponseEnvelope{
		Message:         message,
		Products:        products,
		Intent:          intent,
		ComparisonTable: table,
	}
}
