// Package parser reconstructs tabular records from statement files. Each
// format-specific reconstructor (CSV, Excel, PDF) emits raw key/value
// records and feeds them through the field normalizer, accumulating
// non-fatal diagnostics as warnings. Structural problems (no header, empty
// input) yield zero transactions plus a file-level warning; only unreadable
// containers surface as errors.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/normalizer"
)

// headerRowIndex scans rows top-down for the first row that looks like a
// transaction table header: a date column, a narration/description/details
// column, and at least one amount-bearing column (withdrawal/debit,
// deposit/credit, or a generic amount). Returns -1 when no row qualifies.
func headerRowIndex(rows [][]string) int {
	for i, row := range rows {
		if isHeaderRow(row) {
			return i
		}
	}
	return -1
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}

	var hasDate, hasNarration, hasAmountColumn bool
	for _, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if normalized == "" {
			continue
		}
		if strings.Contains(normalized, "date") {
			hasDate = true
		}
		if strings.Contains(normalized, "narration") ||
			strings.Contains(normalized, "description") ||
			strings.Contains(normalized, "details") ||
			strings.Contains(normalized, "particulars") {
			hasNarration = true
		}
		if strings.Contains(normalized, "withdrawal") || strings.Contains(normalized, "debit") ||
			strings.Contains(normalized, "deposit") || strings.Contains(normalized, "credit") ||
			strings.Contains(normalized, "amount") {
			hasAmountColumn = true
		}
	}

	return hasDate && hasNarration && hasAmountColumn
}

// columnNames derives unique map keys from a header row: blank cells become
// column_N, duplicates get numeric suffixes (Name_2, Name_3, ...).
func columnNames(headerRow []string) []string {
	names := make([]string, len(headerRow))
	seen := make(map[string]int, len(headerRow))

	for i, cell := range headerRow {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		seen[name]++
		if count := seen[name]; count > 1 {
			name = fmt.Sprintf("%s_%d", name, count)
		}
		names[i] = name
	}

	return names
}

var separatorOnly = regexp.MustCompile(`^[-*]+$`)

// noiseBannerPrefixes mark rows carrying pagination or statement banners
// rather than data.
var noiseBannerPrefixes = []string{"page no", "statement of account", "statement summary"}

// isNoiseRow filters rows that are entirely blank, consist only of separator
// characters, or begin with pagination/banner text.
func isNoiseRow(cells []string) bool {
	allBlank := true
	separatorish := true
	for _, cell := range cells {
		trimmed := strings.TrimSpace(cell)
		if trimmed != "" {
			allBlank = false
		}
		if trimmed != "" && !separatorOnly.MatchString(trimmed) {
			separatorish = false
		}
	}
	if allBlank || separatorish {
		return true
	}

	first := strings.ToLower(strings.TrimSpace(cells[0]))
	for _, prefix := range noiseBannerPrefixes {
		if strings.HasPrefix(first, prefix) {
			return true
		}
	}
	return false
}

// isRepeatedHeaderRow detects a second copy of the header within the data
// region: any cell literally equal to "date" or "narration".
func isRepeatedHeaderRow(cells []string) bool {
	for _, cell := range cells {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if normalized == "date" || normalized == "narration" {
			return true
		}
	}
	return false
}

// makeRecord maps a data row onto the header-derived names positionally.
// Cells beyond the header width are dropped; missing trailing cells map to
// empty values.
func makeRecord(names []string, cells []string) statement.Record {
	record := make(statement.Record, len(names))
	for i, name := range names {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		record[i] = statement.Field{Key: name, Value: value}
	}
	return record
}

// normalizeRows feeds surviving data rows through the field normalizer.
func normalizeRows(names []string, rows [][]string, opts normalizer.Options) ([]statement.Transaction, []statement.ParseWarning) {
	var transactions []statement.Transaction
	var warnings []statement.ParseWarning

	for _, cells := range rows {
		if isNoiseRow(cells) || isRepeatedHeaderRow(cells) {
			continue
		}
		outcome := normalizer.NormalizeRecord(makeRecord(names, cells), opts)
		warnings = append(warnings, outcome.Warnings...)
		if outcome.Transaction != nil {
			transactions = append(transactions, *outcome.Transaction)
		}
	}

	return transactions, warnings
}

// headerNotFoundWarning names the column types the header heuristic expects,
// so the caller can see what the source statement actually provided.
func headerNotFoundWarning() statement.ParseWarning {
	return statement.ParseWarning{
		Message: "Unable to locate the transaction header row. " +
			"Expected columns such as Date, Narration/Description, and Withdrawal/Deposit or Amount.",
	}
}
