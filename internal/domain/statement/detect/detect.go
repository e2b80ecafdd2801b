// Package detect classifies statement files by format and infers the
// account type they most likely represent. Classification is driven by the
// declared MIME type and the file extension only; a mislabeled file is
// classified by its label, never rejected or content-sniffed.
package detect

import (
	"strings"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

var excelMIMETypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
}

var pdfMIMETypes = map[string]bool{
	"application/pdf": true,
}

// text/plain is accepted as CSV: many bank export tools label CSV that way.
var csvMIMETypes = map[string]bool{
	"text/csv":        true,
	"application/csv": true,
	"text/plain":      true,
}

// Format classifies a file as csv, excel, pdf, or unknown. PDF wins over
// Excel wins over CSV; suffix matching is case-insensitive.
func Format(file statement.File) statement.Format {
	name := strings.ToLower(file.Name)
	mime := file.ContentType

	if pdfMIMETypes[mime] || strings.HasSuffix(name, ".pdf") {
		return statement.FormatPDF
	}

	if excelMIMETypes[mime] || strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls") {
		return statement.FormatExcel
	}

	if csvMIMETypes[mime] || strings.HasSuffix(name, ".csv") {
		return statement.FormatCSV
	}

	return statement.FormatUnknown
}

// Credit-card keywords are checked before bank keywords so that a name like
// "credit card statement.pdf" does not match on "statement" first.
var creditKeywords = []string{"credit", "card", "cc", "visa", "mastercard"}
var bankKeywords = []string{"bank", "savings", "checking", "account", "statement"}

// InferAccountType guesses bank vs credit-card from a file name. The default
// is bank when no keyword matches.
func InferAccountType(fileName string) statement.AccountType {
	normalized := strings.ToLower(fileName)

	for _, keyword := range creditKeywords {
		if strings.Contains(normalized, keyword) {
			return statement.AccountTypeCreditCard
		}
	}

	for _, keyword := range bankKeywords {
		if strings.Contains(normalized, keyword) {
			return statement.AccountTypeBank
		}
	}

	return statement.AccountTypeBank
}
