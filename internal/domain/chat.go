package domain

// IntentType is the classified purpose of a user turn
type IntentType string

const (
	IntentGreeting   IntentType = "greeting"
	IntentSearch     IntentType = "search"
	IntentCompare    IntentType = "compare"
	IntentVague      IntentType = "vague"
	IntentClarify    IntentType = "clarify"
	IntentRefinement IntentType = "refinement"
)

// ClassifiedIntent is the structured output of the intent classification step.
// Fields missing from the classifier response default to safe values
// (IntentVague, false, empty lists) rather than failing the turn.
type ClassifiedIntent struct {
	Type                IntentType `json:"intent_type"`
	Keywords            []string   `json:"keywords"`
	NeedsFollowup       bool       `json:"needs_followup"`
	FollowupReason      string     `json:"followup_reason,omitempty"`
	ComparisonRequested bool       `json:"comparison_requested"`
	ProductsToCompare   []string   `json:"products_to_compare"`
	Confidence          string     `json:"confidence"`
}

// TurnMessage is a single prior conversation turn
type TurnMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// TurnContext carries everything the caller knows about the conversation.
// The core keeps no state between calls; whatever continuity exists is what
// the caller echoes back here each turn.
type TurnContext struct {
	Message string `json:"message"`

	// History is the trailing conversation window. Only the most recent
	// turns (up to 6) are forwarded to the classifier.
	History []TurnMessage `json:"history,omitempty"`

	// RecentProducts are the products shown in the immediately preceding
	// assistant turn, used for refinement and "compare the first two".
	RecentProducts []CatalogProduct `json:"last_products,omitempty"`

	// RecentQuery is the user message that produced RecentProducts.
	RecentQuery string `json:"last_search_query,omitempty"`
}

// ComparisonRow is one attribute row of a side-by-side comparison table.
// Values are ordered to match the compared products.
type ComparisonRow struct {
	Attribute string   `json:"attribute"`
	Values    []string `json:"values"`
}

// ResponseEnvelope is the orchestrator's unified response shape. The
// comparison table is present only for the compare branch; every other
// branch leaves it nil so it is omitted from the payload entirely.
type ResponseEnvelope struct {
	Message         string           `json:"message"`
	Products        []CatalogProduct `json:"products"`
	Intent          ClassifiedIntent `json:"intent"`
	ComparisonTable []ComparisonRow  `json:"comparison_table,omitempty"`
}
