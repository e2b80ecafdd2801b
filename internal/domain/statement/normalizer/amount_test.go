package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

func resolved(pairs ...any) *resolvedFields {
	r := &resolvedFields{values: make(map[slot]string), present: make(map[slot]bool)}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.set(pairs[i].(slot), pairs[i+1].(string))
	}
	return r
}

func TestResolveAmount(t *testing.T) {
	t.Run("negative single amount is a debit", func(t *testing.T) {
		amount, txType, warnings, ok := resolveAmount(resolved(slotAmount, "-42.50"))
		require.True(t, ok)
		assert.Empty(t, warnings)
		assert.Equal(t, 42.5, amount)
		assert.Equal(t, statement.TypeDebit, txType)
	})

	t.Run("positive single amount is a credit", func(t *testing.T) {
		amount, txType, _, ok := resolveAmount(resolved(slotAmount, "100"))
		require.True(t, ok)
		assert.Equal(t, 100.0, amount)
		assert.Equal(t, statement.TypeCredit, txType)
	})

	t.Run("thousands separators and symbols stripped", func(t *testing.T) {
		amount, _, _, ok := resolveAmount(resolved(slotAmount, "$1,234.56"))
		require.True(t, ok)
		assert.InDelta(t, 1234.56, amount, 1e-9)
	})

	t.Run("numeric prefix recovered from malformed value", func(t *testing.T) {
		amount, _, _, ok := resolveAmount(resolved(slotAmount, "1234.56.78"))
		require.True(t, ok)
		assert.InDelta(t, 1234.56, amount, 1e-9)
	})

	t.Run("unparseable amount column warns then falls through", func(t *testing.T) {
		amount, txType, warnings, ok := resolveAmount(resolved(
			slotAmount, "N/A",
			slotCredit, "250.00",
		))
		require.True(t, ok)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0].Message, "Unable to parse amount column")
		assert.Equal(t, 250.0, amount)
		assert.Equal(t, statement.TypeCredit, txType)
	})

	t.Run("credit column checked before debit", func(t *testing.T) {
		amount, txType, _, ok := resolveAmount(resolved(
			slotCredit, "30.00",
			slotDebit, "99.00",
		))
		require.True(t, ok)
		assert.Equal(t, 30.0, amount)
		assert.Equal(t, statement.TypeCredit, txType)
	})

	t.Run("zero credit falls through to debit", func(t *testing.T) {
		amount, txType, _, ok := resolveAmount(resolved(
			slotCredit, "0.00",
			slotDebit, "77.00",
		))
		require.True(t, ok)
		assert.Equal(t, 77.0, amount)
		assert.Equal(t, statement.TypeDebit, txType)
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		_, _, _, ok := resolveAmount(resolved(slotCredit, "", slotDebit, ""))
		assert.False(t, ok)
	})
}

func TestResolveTypeFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  statement.TransactionType
		ok    bool
	}{
		{"DR", statement.TypeDebit, true},
		{"Debit", statement.TypeDebit, true},
		{"debit card", statement.TypeDebit, true},
		{"CR", statement.TypeCredit, true},
		{"Credit", statement.TypeCredit, true},
		{"transfer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := resolveTypeFromLabel(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
