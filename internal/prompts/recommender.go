package prompts

import (
	"fmt"
	"strings"
)

// RecommenderSystem instructs the model to pick grounded recommendations
// from a supplied product list.
const RecommenderSystem = role + ` The user is looking for gift recommendations. Below are real products from our catalog. Pick 4 that best match their request.
` + groundingRules + `
- For each product you recommend, write a 1-2 sentence description of why it fits (warm, personal, gift-focused).
- Use the EXACT product name from the list for matching.
- If no products match well, return empty recommendations and set fallback_message.
- Write a personalized intro_message: 1-2 conversational sentences that reference the user's request (occasion, budget, who it's for). Warm and natural, not robotic.

Respond with ONLY valid JSON in this exact format:
{"intro_message": "Personalized 1-2 sentence opener referencing their request", "recommendations": [{"product_name": "exact name from product list", "recommendation": "1-2 sentence description"}], "fallback_message": null}

If no products match: {"intro_message": null, "recommendations": [], "fallback_message": "I couldn't find a great match. Try 'birthday', 'chocolate strawberries', or 'gifts under $50'."}`

// Fixed fallback copy for the recommendation flow
const (
	FallbackNoKeywords = "I'd be happy to help you find a gift! Could you tell me more about what you're looking for? " +
		"For example, the occasion, who it's for, or any preferences like chocolate or fruit."

	FallbackNoProducts = "I couldn't find any products matching that search. Try different keywords like " +
		"'birthday', 'chocolate covered strawberries', or 'gifts under $50'."

	FallbackAllExcluded = "I've shown you the best matches for that search. Try different keywords like " +
		"'chocolate strawberries' or 'fruit bouquet' for more options."

	FallbackNoMatch = "I couldn't find a great match. Try different keywords?"

	OpenerFirstTime  = "Here are my top picks for you:"
	OpenerRefinement = "Here are some different options based on your feedback:"
)

// RecommenderUser builds the user-content block for a first-time
// recommendation request.
func RecommenderUser(userMessage, productContext string) string {
	return fmt.Sprintf(`User message: %q

Products from our catalog (evaluate each for relevance to the user's request):
%s

Return JSON with the 4 BEST matching products. Use exact product_name from the list above.`, userMessage, productContext)
}

// RecommenderRefinement builds the user-content block for a refinement
// request, instructing the model away from previously shown products.
func RecommenderRefinement(originalRequest, userFeedback string, previousNames []string, productContext string) string {
	return fmt.Sprintf(`User originally wanted: %q
They just saw some recommendations and gave feedback: %q
Show them DIFFERENT products that better match their feedback. Do NOT recommend any of the products they already saw.

Products they previously saw (exclude these): %s

New products to choose from (pick 4 that best match original request + feedback):
%s

Return JSON with 4 NEW recommendations. Use exact product_name from the "New products" list above.`,
		originalRequest, userFeedback, strings.Join(previousNames, ", "), productContext)
}
