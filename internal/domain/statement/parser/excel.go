package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/normalizer"
)

// ParseExcel reads the first worksheet of an xlsx/xls file and applies the
// same header heuristic and noise filtering as the CSV reconstructor.
// Subsequent worksheets are ignored. A container excelize cannot open is an
// unexpected failure and propagates as an error.
func ParseExcel(file statement.File, opts normalizer.Options) ([]statement.Transaction, []statement.ParseWarning, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		return nil, nil, fmt.Errorf("open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, []statement.ParseWarning{{Message: "No worksheets found in Excel file."}}, nil
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read worksheet %q: %w", sheetName, err)
	}

	var warnings []statement.ParseWarning
	if len(rows) == 0 {
		warnings = append(warnings, statement.ParseWarning{
			Message: fmt.Sprintf("Worksheet %q is empty.", sheetName),
		})
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
