package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/normalizer"
)

// ParseCSV recovers a header-plus-data table from raw delimited text that
// may carry bank letterhead, disclaimers, or repeated headers around the
// data region, and normalizes the surviving rows.
func ParseCSV(file statement.File, opts normalizer.Options) ([]statement.Transaction, []statement.ParseWarning, error) {
	text := string(normalizeTextBytes(file.Data))
	if strings.TrimSpace(text) == "" {
		return nil, []statement.ParseWarning{{Message: "File appears to be empty."}}, nil
	}

	var warnings []statement.ParseWarning

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	line := 0
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, statement.ParseWarning{
				Message: fmt.Sprintf("Row %d: %v", line, err),
			})
			continue
		}
		rows = append(rows, record)
	}

	if len(rows) == 0 {
		warnings = append(warnings, statement.ParseWarning{Message: "File appears to be empty."})
		return nil, warnings, nil
	}

	headerIndex := headerRowIndex(rows)
	if headerIndex == -1 {
		warnings = append(warnings, headerNotFoundWarning())
		return nil, warnings, nil
	}

	names := columnNames(rows[headerIndex])
	transactions, rowWarnings := normalizeRows(names, rows[headerIndex+1:], opts)
	warnings = append(warnings, rowWarnings...)

	return transactions, warnings, nil
}
