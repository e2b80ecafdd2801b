package insights

import "github.com/FACorreiaa/statement-parser/internal/domain/statement"

// DetectNewSpend flags transactions from merchants that appear exactly once
// in the statement and are not part of any recurring pattern.
func DetectNewSpend(transactions []statement.Transaction, recurringIDs map[string]bool) map[string]bool {
	newSpendIDs := make(map[string]bool)
	for _, group := range groupByMerchant(transactions) {
		if len(group) != 1 {
			continue
		}
		tx := group[0]
		if recurringIDs[tx.ID] {
			continue
		}
		newSpendIDs[tx.ID] = true
	}
	return newSpendIDs
}

// Annotate applies the recurring and new-spend detectors and marks each
// transaction in place.
func Annotate(transactions []statement.Transaction) ([]statement.Transaction, RecurringDetectionResult) {
	result := DetectRecurringExpenses(transactions)
	newSpend := DetectNewSpend(transactions, result.RecurringTransactionIDs)

	annotated := make([]statement.Transaction, len(transactions))
	for i, tx := range transactions {
		tx.IsRecurring = result.RecurringTransactionIDs[tx.ID]
		tx.IsNewSpend = newSpend[tx.ID]
		annotated[i] = tx
	}
	return annotated, result
}
