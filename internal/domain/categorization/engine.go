// Package categorization assigns categories to parsed transactions using
// user-defined keyword rules. It consumes the ingestion pipeline's output
// and always works on copies: transactions are never mutated in place and
// never fed back into the parser.
package categorization

import (
	"strings"
	"sync"
	"time"

	"github.com/cloudflare/ahocorasick"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// MatchType selects how a rule keyword is compared against a description.
type MatchType string

const (
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "startsWith"
	MatchRegex      MatchType = "regex"
)

// CategoryRule maps a description keyword to a category assignment.
type CategoryRule struct {
	ID          string
	Keyword     string
	Category    string
	Subcategory *string
	MatchType   MatchType
	CreatedAt   time.Time
}

// ruleConfidence is the classification confidence assigned to rule matches.
const ruleConfidence = 0.95

// Application is the outcome of applying rules to one transaction.
type Application struct {
	Transaction statement.Transaction
	MatchedRule *CategoryRule
}

// Engine matches transaction descriptions against an ordered rule list.
// Rule order is priority order: the first matching rule wins. An
// Aho-Corasick matcher accelerates the contains-rule common case by finding
// all keyword hits in a single pass; startsWith and regex rules are
// evaluated directly. The engine owns its compiled-regex cache, so parallel
// engines (and parallel tests) never share state.
type Engine struct {
	mu      sync.RWMutex
	rules   []CategoryRule
	regexes *regexCache
	matcher *ahocorasick.Matcher
	// containsRule[i] is the rules index of the matcher's i-th pattern.
	containsRule []int
}

// NewEngine builds an engine from an ordered rule list.
func NewEngine(rules []CategoryRule) *Engine {
	e := &Engine{regexes: newRegexCache()}
	e.Build(rules)
	return e
}

// Build replaces the engine's rule set. Callable again when rules change.
func (e *Engine) Build(rules []CategoryRule) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rules = rules

	var patterns [][]byte
	e.containsRule = e.containsRule[:0]
	for i, rule := range rules {
		if rule.MatchType == MatchContains {
			patterns = append(patterns, []byte(strings.ToLower(rule.Keyword)))
			e.containsRule = append(e.containsRule, i)
		}
	}

	if len(patterns) > 0 {
		e.matcher = ahocorasick.NewMatcher(patterns)
	} else {
		e.matcher = nil
	}
}

// Apply returns a categorized copy of the transaction, or an unchanged copy
// when no rule matches. Manual classifications are never overwritten.
func (e *Engine) Apply(tx statement.Transaction) Application {
	if tx.ClassificationSource == statement.SourceManual {
		return Application{Transaction: tx}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	description := strings.ToLower(tx.Description)

	// One matcher pass yields every contains-rule hit; the winner is still
	// the first matching rule in priority order.
	containsHits := make(map[int]bool)
	if e.matcher != nil {
		for _, patternIdx := range e.matcher.Match([]byte(description)) {
			containsHits[e.containsRule[patternIdx]] = true
		}
	}

	for i, rule := range e.rules {
		if e.ruleMatches(i, rule, description, containsHits) {
			matched := rule
			tx.Category = &matched.Category
			tx.Subcategory = matched.Subcategory
			tx.ClassificationSource = statement.SourceRule
			tx.ClassificationConfidence = ruleConfidence
			return Application{Transaction: tx, MatchedRule: &matched}
		}
	}

	return Application{Transaction: tx}
}

// ApplyAll categorizes a batch, preserving input order.
func (e *Engine) ApplyAll(transactions []statement.Transaction) []Application {
	applications := make([]Application, len(transactions))
	for i, tx := range transactions {
		applications[i] = e.Apply(tx)
	}
	return applications
}

func (e *Engine) ruleMatches(idx int, rule CategoryRule, description string, containsHits map[int]bool) bool {
	keyword := strings.ToLower(rule.Keyword)
	switch rule.MatchType {
	case MatchContains:
		return containsHits[idx]
	case MatchStartsWith:
		return strings.HasPrefix(description, keyword)
	case MatchRegex:
		return e.regexes.get(rule.Keyword).MatchString(description)
	default:
		return false
	}
}
