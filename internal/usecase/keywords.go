package usecase

import "strings"

// feedbackRule maps a feedback phrase to extra search keywords. Order
// matters: only the first matching rule applies.
type feedbackRule struct {
	phrase    string
	additions []string
}

// refinementSearchAdditions expands common refinement feedback into search
// terms. Phrases signaling "show me something else" add nothing; the
// previous-product exclusion already handles them.
var refinementSearchAdditions = []feedbackRule{
	{"cheaper", []string{"affordable", "gifts under $50"}},
	{"cheaper options", []string{"affordable", "gifts under $50"}},
	{"less expensive", []string{"affordable", "gifts under $50"}},
	{"more affordable", []string{"affordable", "gifts under $50"}},
	{"budget", []string{"affordable", "gifts under $50"}},
	{"more fun", []string{"birthday", "fun"}},
	{"something different", nil},
	{"different options", nil},
	{"other options", nil},
	{"more luxurious", []string{"luxury", "premium"}},
	{"fancier", []string{"luxury", "premium"}},
	{"for a kid", []string{"for kids", "kids"}},
	{"for kids", []string{"for kids", "kids"}},
}

// matchFeedbackRule returns the first rule whose phrase appears in the
// feedback text, or nil.
func matchFeedbackRule(feedback string) *feedbackRule {
	fb := strings.ToLower(strings.TrimSpace(feedback))
	if fb == "" {
		return nil
	}
	for i := range refinementSearchAdditions {
		if strings.Contains(fb, refinementSearchAdditions[i].phrase) {
			return &refinementSearchAdditions[i]
		}
	}
	return nil
}

// expandFeedbackKeywords unions the first matching feedback rule's additions
// onto the caller-supplied keywords.
func expandFeedbackKeywords(keywords []string, feedback string) []string {
	expanded := make([]string, len(keywords))
	copy(expanded, keywords)
	if rule := matchFeedbackRule(feedback); rule != nil {
		expanded = append(expanded, rule.additions...)
	}
	return expanded
}

// DeriveRefinementKeywords recovers search keywords from raw feedback text
// when the classifier supplied none: the feedback-phrase table first, then
// up to three words longer than two characters, then the literal "gift".
func DeriveRefinementKeywords(message string) []string {
	fb := strings.ToLower(strings.TrimSpace(message))

	if rule := matchFeedbackRule(fb); rule != nil {
		return append([]string{rule.phrase}, rule.additions...)
	}

	var words []string
	for _, w := range strings.Fields(fb) {
		if len(w) > 2 {
			words = append(words, w)
			if len(words) == 3 {
				break
			}
		}
	}
	if len(words) > 0 {
		return words
	}

	return []string{"gift"}
}
