package categorization

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggestion is a rule that loosely matches a description, ranked by edit
// distance (lower is closer).
type Suggestion struct {
	Rule     CategoryRule
	Distance int
}

// Suggest returns up to limit rules whose keywords fuzzily match the given
// description, best matches first. It is meant for surfacing candidate
// rules for transactions the engine left uncategorized, such as keyword variations
// like "Starbucks #001" vs a "starbucks" rule.
func (e *Engine) Suggest(description string, limit int) []Suggestion {
	e.mu.RLock()
	defer e.mu.RUnlock()

	normalized := strings.ToLower(description)

	var suggestions []Suggestion
	for _, rule := range e.rules {
		keyword := strings.ToLower(rule.Keyword)
		if keyword == "" {
			continue
		}
		rank := fuzzy.RankMatchNormalizedFold(keyword, normalized)
		if rank < 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{Rule: rule, Distance: rank})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Distance < suggestions[j].Distance
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
