package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// WriteJSON writes transactions as an indented JSON array.
func WriteJSON(w io.Writer, transactions []statement.Transaction) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Rows(transactions)); err != nil {
		return fmt.Errorf("marshal transactions to json: %w", err)
	}
	return nil
}
