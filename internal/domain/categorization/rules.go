package categorization

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk YAML shape of a rule list.
type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Keyword     string `yaml:"keyword"`
	Category    string `yaml:"category"`
	Subcategory string `yaml:"subcategory"`
	MatchType   string `yaml:"match"`
}

// LoadRules parses a YAML rule list. Missing match types default to
// contains; rules without a keyword or category are rejected.
func LoadRules(data []byte) ([]CategoryRule, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	rules := make([]CategoryRule, 0, len(file.Rules))
	for i, entry := range file.Rules {
		if entry.Keyword == "" || entry.Category == "" {
			return nil, fmt.Errorf("rule %d: keyword and category are required", i+1)
		}

		matchType := MatchType(entry.MatchType)
		switch matchType {
		case "":
			matchType = MatchContains
		case MatchContains, MatchStartsWith, MatchRegex:
		default:
			return nil, fmt.Errorf("rule %d: unknown match type %q", i+1, entry.MatchType)
		}

		var subcategory *string
		if entry.Subcategory != "" {
			sub := entry.Subcategory
			subcategory = &sub
		}

		rules = append(rules, CategoryRule{
			ID:          uuid.NewString(),
			Keyword:     entry.Keyword,
			Category:    entry.Category,
			Subcategory: subcategory,
			MatchType:   matchType,
			CreatedAt:   time.Now(),
		})
	}

	return rules, nil
}
