package prompts

import "fmt"

// ComparisonSystem instructs the model to build a grounded side-by-side
// comparison of 2-3 products.
const ComparisonSystem = role + ` You are comparing 2-3 products for a customer. Use ONLY the product data provided below. Do not invent attributes or make claims not in the data.

Create a structured comparison with:
1. intro_message: A short conversational opener (1-2 sentences) that introduces the comparison—warm and natural, e.g. "Here's how these stack up for you."
2. comparison_rows: List of {"attribute": "Attribute Name", "values": ["Product A value", "Product B value", ...]} for each product. Include: Price, Occasion, Size options, Key ingredients/fruit types, Chocolate type (if any), Key differentiators.
3. best_for: List of {"product_name": "exact name from data", "verdict": "Best for [specific use case]"} - e.g. "Best for a large office party", "Best for an intimate anniversary". Base verdicts on the actual product data.

Respond with ONLY valid JSON:
{"intro_message": "Short conversational opener", "comparison_rows": [{"attribute": "...", "values": ["...", "..."]}], "best_for": [{"product_name": "...", "verdict": "..."}]}

Use exact product names from the input. No hallucination.`

// ComparisonUser builds the user-content block for a comparison request
func ComparisonUser(productContext string) string {
	return fmt.Sprintf(`Compare these products and create a side-by-side comparison:

%s

Return JSON with intro_message, comparison_rows, and best_for.`, productContext)
}

// Canned copy for the comparison flow
const (
	CompareAskWhich = "Which products would you like to compare? " +
		"Share 2-3 product names or paste their links."

	CompareAskWhichRecent = "Which of these would you like to compare? " +
		"You can say 'the first two' or name specific products."

	CompareAskForNames = "I'd be happy to compare products! " +
		"Share 2-3 product names or paste their links from our site."

	CompareNeedOneMore = "I found one product. Please specify at least one more to compare."

	CompareGenerationFailed = "I had trouble generating the comparison. Please try again."
)
