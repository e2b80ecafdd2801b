// Package export renders normalized transactions into portable formats for
// spreadsheets and downstream tooling.
package export

import (
	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// Row is the flat, serialization-friendly projection of a Transaction shared
// by the CSV and Excel writers.
type Row struct {
	ID             string  `csv:"id" json:"id"`
	Date           string  `csv:"date" json:"date"`
	Description    string  `csv:"description" json:"description"`
	Amount         float64 `csv:"amount" json:"amount"`
	Type           string  `csv:"type" json:"type"`
	AccountType    string  `csv:"account_type" json:"accountType"`
	Category       string  `csv:"category" json:"category,omitempty"`
	Subcategory    string  `csv:"subcategory" json:"subcategory,omitempty"`
	BankName       string  `csv:"bank_name" json:"bankName,omitempty"`
	AccountNumber  string  `csv:"account_number" json:"accountNumber,omitempty"`
	SourceFileName string  `csv:"source_file" json:"sourceFile"`
	Recurring      bool    `csv:"recurring" json:"recurring"`
	NewSpend       bool    `csv:"new_spend" json:"newSpend"`
}

// Rows projects transactions into export rows, preserving order.
func Rows(transactions []statement.Transaction) []Row {
	rows := make([]Row, len(transactions))
	for i, tx := range transactions {
		rows[i] = Row{
			ID:             tx.ID,
			Date:           tx.Date,
			Description:    tx.Description,
			Amount:         tx.Amount,
			Type:           string(tx.Type),
			AccountType:    string(tx.AccountType),
			Category:       deref(tx.Category),
			Subcategory:    deref(tx.Subcategory),
			BankName:       deref(tx.BankName),
			AccountNumber:  deref(tx.AccountNumber),
			SourceFileName: tx.SourceFileName,
			Recurring:      tx.IsRecurring,
			NewSpend:       tx.IsNewSpend,
		}
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
