package insights

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

func expense(description, date string, amount float64) statement.Transaction {
	return statement.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        statement.TypeDebit,
	}
}

func TestDetectRecurringExpenses(t *testing.T) {
	t.Run("monthly subscription", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("NETFLIX.COM 001", "2024-01-05", 15.99),
			expense("NETFLIX.COM 002", "2024-02-05", 15.99),
			expense("NETFLIX.COM 003", "2024-03-05", 15.99),
		}

		result := DetectRecurringExpenses(txs)
		require.Len(t, result.RecurringExpenses, 1)

		exp := result.RecurringExpenses[0]
		assert.Equal(t, FrequencyMonthly, exp.Frequency)
		assert.Len(t, exp.TransactionIDs, 3)
		assert.InDelta(t, 15.99, exp.AverageAmount, 1e-9)
		for _, tx := range txs {
			assert.True(t, result.RecurringTransactionIDs[tx.ID])
		}
	})

	t.Run("weekly pattern", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("GYM CLASS", "2024-01-01", 20),
			expense("GYM CLASS", "2024-01-08", 20),
			expense("GYM CLASS", "2024-01-15", 21),
		}

		result := DetectRecurringExpenses(txs)
		require.Len(t, result.RecurringExpenses, 1)
		assert.Equal(t, FrequencyWeekly, result.RecurringExpenses[0].Frequency)
	})

	t.Run("fortnightly pattern is custom", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("CLEANER", "2024-01-01", 50),
			expense("CLEANER", "2024-01-15", 50),
			expense("CLEANER", "2024-01-29", 50),
		}

		result := DetectRecurringExpenses(txs)
		require.Len(t, result.RecurringExpenses, 1)
		assert.Equal(t, FrequencyCustom, result.RecurringExpenses[0].Frequency)
	})

	t.Run("interval outside every band is not recurring", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("QUARTERLY FEE", "2024-01-01", 90),
			expense("QUARTERLY FEE", "2024-04-01", 90),
		}

		result := DetectRecurringExpenses(txs)
		assert.Empty(t, result.RecurringExpenses)
	})

	t.Run("day jitter within tolerance still matches", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("SPOTIFY", "2024-01-05", 9.99),
			expense("SPOTIFY", "2024-02-07", 9.99),
			expense("SPOTIFY", "2024-03-05", 9.99),
		}

		result := DetectRecurringExpenses(txs)
		require.Len(t, result.RecurringExpenses, 1)
	})

	t.Run("amount drift beyond ten percent breaks the pattern", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("ELECTRIC CO", "2024-01-05", 100),
			expense("ELECTRIC CO", "2024-02-05", 150),
			expense("ELECTRIC CO", "2024-03-05", 100),
		}

		result := DetectRecurringExpenses(txs)
		assert.Empty(t, result.RecurringExpenses)
	})

	t.Run("amount drift within ten percent matches", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("WATER CO", "2024-01-05", 100),
			expense("WATER CO", "2024-02-05", 105),
			expense("WATER CO", "2024-03-05", 95),
		}

		result := DetectRecurringExpenses(txs)
		require.Len(t, result.RecurringExpenses, 1)
		assert.InDelta(t, 100.0, result.RecurringExpenses[0].AverageAmount, 1e-9)
	})

	t.Run("store numbers do not split the merchant", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("STARBUCKS #4417", "2024-01-01", 5),
			expense("STARBUCKS #9120", "2024-01-08", 5),
			expense("Starbucks #0033", "2024-01-15", 5),
		}

		result := DetectRecurringExpenses(txs)
		require.Len(t, result.RecurringExpenses, 1)
		assert.Equal(t, FrequencyWeekly, result.RecurringExpenses[0].Frequency)
	})

	t.Run("single occurrence is never recurring", func(t *testing.T) {
		result := DetectRecurringExpenses([]statement.Transaction{
			expense("ONE OFF PURCHASE", "2024-01-01", 10),
		})
		assert.Empty(t, result.RecurringExpenses)
	})

	t.Run("degraded dates are excluded", func(t *testing.T) {
		txs := []statement.Transaction{
			expense("VAGUE MERCHANT", "not-a-date", 10),
			expense("VAGUE MERCHANT", "2024-02-01", 10),
		}

		result := DetectRecurringExpenses(txs)
		assert.Empty(t, result.RecurringExpenses)
	})
}

func TestDetectRecurringExpenses_ManyMerchants(t *testing.T) {
	var txs []statement.Transaction
	for m := 0; m < 5; m++ {
		name := fmt.Sprintf("MERCHANT %c", 'A'+m)
		for month := 1; month <= 3; month++ {
			txs = append(txs, expense(name, fmt.Sprintf("2024-%02d-10", month), 10))
		}
	}

	result := DetectRecurringExpenses(txs)
	assert.Len(t, result.RecurringExpenses, 5)
	assert.Len(t, result.RecurringTransactionIDs, 15)
}
