// Package insights detects spending patterns in parsed transactions:
// recurring expenses and first-time merchants. It consumes the ingestion
// pipeline's output and never feeds anything back into it.
package insights

import (
	"regexp"
	"strings"
	"time"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

var (
	digitRuns      = regexp.MustCompile(`\d+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// normalizeMerchant collapses a description into a merchant grouping key:
// lowercase, digits stripped (store and reference numbers vary per visit),
// whitespace collapsed. "STARBUCKS #4417" and "Starbucks #9120" share a key.
func normalizeMerchant(description string) string {
	key := strings.ToLower(description)
	key = digitRuns.ReplaceAllString(key, "")
	key = whitespaceRuns.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// groupByMerchant buckets transactions by normalized merchant key,
// preserving input order within each bucket.
func groupByMerchant(transactions []statement.Transaction) map[string][]statement.Transaction {
	groups := make(map[string][]statement.Transaction)
	for _, tx := range transactions {
		key := normalizeMerchant(tx.Description)
		groups[key] = append(groups[key], tx)
	}
	return groups
}

// transactionDate parses the canonical date of a transaction. Degraded
// transactions whose date never canonicalized are excluded from
// date-sensitive detection.
func transactionDate(tx statement.Transaction) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", tx.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
