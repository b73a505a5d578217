package romlocate

import "strings"

// Score rates how well a normalized candidate stem matches a normalized
// title. Exact match scores 1.0, prefix and containment score below that,
// and otherwise the token-overlap ratio decides. Both inputs must already be
// normalized.
func Score(title, candidate string) float64 {
	if title == "" || candidate == "" {
		return 0
	}
	switch {
	case title == candidate:
		return 1.0
	case strings.HasPrefix(candidate, title+" "):
		return 0.9
	case strings.Contains(candidate, title):
		return 0.8
	case strings.Contains(title, candidate):
		return 0.7
	}

	titleTokens := tokenSet(title)
	candidateTokens := tokenSet(candidate)
	if len(titleTokens) == 0 || len(candidateTokens) == 0 {
		return 0
	}
	common := 0
	for token := range titleTokens {
		if _, ok := candidateTokens[token]; ok {
			common++
		}
	}
	if common == 0 {
		return 0
	}
	larger := len(titleTokens)
	if len(candidateTokens) > larger {
		larger = len(candidateTokens)
	}
	return float64(common) / float64(larger)
}

func tokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		tokens[token] = struct{}{}
	}
	return tokens
}
