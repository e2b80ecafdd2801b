package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// Tolerances and frequency bands were tuned empirically in production use;
// they are not derivable from first principles.
const (
	dayTolerance    = 3
	amountTolerance = 0.1
)

// Frequency classifies the cadence of a recurring expense.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyCustom  Frequency = "custom"
)

// RecurringExpense describes one detected repeat-pattern merchant.
type RecurringExpense struct {
	ID             string
	Merchant       string
	Frequency      Frequency
	TransactionIDs []string
	AverageAmount  float64
	AmountPattern  []float64
}

// RecurringDetectionResult pairs the detected expenses with the set of
// transaction IDs they cover.
type RecurringDetectionResult struct {
	RecurringExpenses       []RecurringExpense
	RecurringTransactionIDs map[string]bool
}

// DetectRecurringExpenses finds merchants whose transactions repeat at a
// near-constant interval (within ±3 days) and near-constant amount (within
// ±10%). Intervals of 27–33 days classify as monthly, 6–8 as weekly and
// 13–16 as custom; anything else is not considered recurring.
func DetectRecurringExpenses(transactions []statement.Transaction) RecurringDetectionResult {
	result := RecurringDetectionResult{
		RecurringTransactionIDs: make(map[string]bool),
	}

	groups := groupByMerchant(transactions)

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, merchantKey := range keys {
		group := groups[merchantKey]
		if len(group) < 2 {
			continue
		}

		type dated struct {
			tx   statement.Transaction
			date int64 // unix days
		}
		entries := make([]dated, 0, len(group))
		for _, tx := range group {
			if t, ok := transactionDate(tx); ok {
				entries = append(entries, dated{tx: tx, date: t.Unix() / 86400})
			}
		}
		if len(entries) < 2 {
			continue
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].date < entries[j].date })

		var intervals []float64
		for i := 1; i < len(entries); i++ {
			if days := float64(entries[i].date - entries[i-1].date); days > 0 {
				intervals = append(intervals, days)
			}
		}
		if len(intervals) == 0 {
			continue
		}

		average := mean(intervals)
		frequency, ok := classifyFrequency(average)
		if !ok {
			continue
		}
		if !intervalsWithinTolerance(intervals, average) {
			continue
		}

		amounts := make([]float64, len(entries))
		for i, entry := range entries {
			amounts[i] = entry.tx.Amount
		}
		averageAmount := mean(amounts)
		if !amountsWithinTolerance(amounts, averageAmount) {
			continue
		}

		expense := RecurringExpense{
			ID:            fmt.Sprintf("%s-%s", merchantKey, frequency),
			Merchant:      entries[0].tx.Description,
			Frequency:     frequency,
			AverageAmount: round2(averageAmount),
		}
		for _, entry := range entries {
			expense.TransactionIDs = append(expense.TransactionIDs, entry.tx.ID)
			expense.AmountPattern = append(expense.AmountPattern, round2(entry.tx.Amount))
			result.RecurringTransactionIDs[entry.tx.ID] = true
		}
		result.RecurringExpenses = append(result.RecurringExpenses, expense)
	}

	return result
}

func classifyFrequency(interval float64) (Frequency, bool) {
	switch {
	case interval >= 27 && interval <= 33:
		return FrequencyMonthly, true
	case interval >= 6 && interval <= 8:
		return FrequencyWeekly, true
	case interval >= 13 && interval <= 16:
		return FrequencyCustom, true
	default:
		return "", false
	}
}

func intervalsWithinTolerance(intervals []float64, average float64) bool {
	for _, interval := range intervals {
		if math.Abs(interval-average) > dayTolerance {
			return false
		}
	}
	return true
}

func amountsWithinTolerance(amounts []float64, average float64) bool {
	if average == 0 {
		return false
	}
	for _, amount := range amounts {
		if math.Abs(math.Abs(amount)-average) > average*amountTolerance {
			return false
		}
	}
	return true
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += math.Abs(v)
	}
	return sum / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
