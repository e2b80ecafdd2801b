package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderRowIndex(t *testing.T) {
	t.Run("finds first qualifying row", func(t *testing.T) {
		rows := [][]string{
			{"Acme Bank"},
			{"Statement period", "Jan 2024"},
			{"Date", "Narration", "Withdrawal", "Deposit", "Balance"},
			{"01/01/2024", "POS", "10.00", "", "990.00"},
		}
		assert.Equal(t, 2, headerRowIndex(rows))
	})

	t.Run("amount column alone qualifies", func(t *testing.T) {
		rows := [][]string{{"Date", "Description", "Amount"}}
		assert.Equal(t, 0, headerRowIndex(rows))
	})

	t.Run("date without narration does not qualify", func(t *testing.T) {
		rows := [][]string{{"Date", "Amount"}}
		assert.Equal(t, -1, headerRowIndex(rows))
	})

	t.Run("no rows", func(t *testing.T) {
		assert.Equal(t, -1, headerRowIndex(nil))
	})
}

func TestColumnNames(t *testing.T) {
	t.Run("blank cells become positional names", func(t *testing.T) {
		names := columnNames([]string{"Date", "", "Amount", ""})
		assert.Equal(t, []string{"Date", "column_2", "Amount", "column_4"}, names)
	})

	t.Run("duplicates get numeric suffixes", func(t *testing.T) {
		names := columnNames([]string{"Amount", "Amount", "Amount"})
		assert.Equal(t, []string{"Amount", "Amount_2", "Amount_3"}, names)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		names := columnNames([]string{" Date ", "Description"})
		assert.Equal(t, []string{"Date", "Description"}, names)
	})
}

func TestIsNoiseRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"all blank", []string{"", "  ", ""}, true},
		{"separator dashes", []string{"----", "----"}, true},
		{"separator stars", []string{"****"}, true},
		{"mixed separators and blanks", []string{"---", "", "***"}, true},
		{"page banner", []string{"Page No 3", "", ""}, true},
		{"statement banner", []string{"STATEMENT OF ACCOUNT"}, true},
		{"summary banner", []string{"Statement Summary for Jan"}, true},
		{"real data", []string{"01/01/2024", "POS PURCHASE", "10.00"}, false},
		{"negative amount is not a separator", []string{"01/01/2024", "x", "-10.00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNoiseRow(tt.row))
		})
	}
}

func TestIsRepeatedHeaderRow(t *testing.T) {
	assert.True(t, isRepeatedHeaderRow([]string{"Date", "Narration", "Amount"}))
	assert.True(t, isRepeatedHeaderRow([]string{"01/01/2024", "narration", "10"}))
	assert.False(t, isRepeatedHeaderRow([]string{"01/01/2024", "POS PURCHASE", "10"}))
}

func TestMakeRecord(t *testing.T) {
	names := []string{"Date", "Description", "Amount"}

	t.Run("positional mapping", func(t *testing.T) {
		record := makeRecord(names, []string{"2024-01-01", "Coffee", "-5.50"})
		assert.Equal(t, []string{"Date", "Description", "Amount"}, record.Keys())
		assert.Equal(t, "Coffee", record[1].Value)
	})

	t.Run("short row pads with empty values", func(t *testing.T) {
		record := makeRecord(names, []string{"2024-01-01"})
		assert.Equal(t, "", record[2].Value)
	})

	t.Run("extra cells dropped", func(t *testing.T) {
		record := makeRecord(names, []string{"a", "b", "c", "d", "e"})
		assert.Len(t, record, 3)
	})
}
