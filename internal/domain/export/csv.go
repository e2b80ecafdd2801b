package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// WriteCSV writes transactions as a CSV document with a header row.
func WriteCSV(w io.Writer, transactions []statement.Transaction) error {
	if err := gocsv.Marshal(Rows(transactions), w); err != nil {
		return fmt.Errorf("marshal transactions to csv: %w", err)
	}
	return nil
}
