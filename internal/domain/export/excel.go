package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

const exportSheetName = "Transactions"

var excelHeader = []any{
	"ID", "Date", "Description", "Amount", "Type", "Account Type",
	"Category", "Subcategory", "Bank Name", "Account Number",
	"Source File", "Recurring", "New Spend",
}

// WriteExcel writes transactions as a single-sheet xlsx workbook.
func WriteExcel(w io.Writer, transactions []statement.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return fmt.Errorf("create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default worksheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheetName, "A1", &excelHeader); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range Rows(transactions) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("compute cell name: %w", err)
		}
		values := []any{
			row.ID, row.Date, row.Description, row.Amount, row.Type,
			row.AccountType, row.Category, row.Subcategory, row.BankName,
			row.AccountNumber, row.SourceFileName, row.Recurring, row.NewSpend,
		}
		if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
