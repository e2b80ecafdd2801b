// Package statement defines the data model shared by the statement ingestion
// pipeline: the canonical Transaction produced by the normalizer, the raw
// records emitted by the format reconstructors, and the per-file parse result
// consumed by downstream collaborators (categorization, insights, export).
package statement

import "strings"

// AccountType distinguishes bank accounts from credit-card accounts.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCreditCard AccountType = "credit-card"
)

// TransactionType is the directionality of an amount.
type TransactionType string

const (
	TypeDebit  TransactionType = "debit"
	TypeCredit TransactionType = "credit"
)

// ClassificationSource records which collaborator classified a transaction.
type ClassificationSource string

const (
	SourceNone   ClassificationSource = "none"
	SourceRule   ClassificationSource = "rule"
	SourceLLM    ClassificationSource = "llm"
	SourceManual ClassificationSource = "manual"
)

// Format identifies the detected statement file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatExcel   Format = "excel"
	FormatPDF     Format = "pdf"
	FormatUnknown Format = "unknown"
)

// Transaction is the canonical, normalized transaction. It is constructed
// once by the normalizer and is immutable from the pipeline's perspective;
// downstream collaborators work on copies.
//
// Date holds the canonical yyyy-MM-dd form. When date canonicalization fails
// the pipeline keeps the transaction and substitutes the raw source string,
// so callers must tolerate non-ISO values as a degraded case. RawDate always
// holds the original string for audit.
type Transaction struct {
	ID             string
	Date           string
	RawDate        string
	Description    string
	Amount         float64
	Type           TransactionType
	AccountType    AccountType
	SourceFileName string
	BankName       *string
	AccountNumber  *string

	// Fields below are owned by downstream collaborators. The ingestion core
	// initializes them to neutral defaults and never populates them further.
	Category                 *string
	Subcategory              *string
	ClassificationConfidence float64
	ClassificationSource     ClassificationSource
	IsRecurring              bool
	IsNewSpend               bool
}

// ParseWarning is a non-fatal diagnostic. A batch of warnings never by
// itself prevents transactions from being returned.
type ParseWarning struct {
	Message string
	Context map[string]any
}

// StatementMetadata summarizes file-level facts recovered opportunistically
// from the parsed transactions.
type StatementMetadata struct {
	AccountType   AccountType
	BankName      *string
	AccountNumber *string
}

// ParseResult is the unit of output for one parsed file.
type ParseResult struct {
	Transactions []Transaction
	Warnings     []ParseWarning
	Metadata     StatementMetadata
}

// FileResult augments a ParseResult with provenance.
type FileResult struct {
	ParseResult
	Format   Format
	FileName string
}

// File is the sole interface between the pipeline and the hosting
// environment: a name, a declared content type, and byte content. No
// filesystem paths or network handles are part of the pipeline's contract.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Field is one raw key/value cell of a reconstructed row.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered mapping from header text to raw cell value, as
// reconstructed by a format-specific parser. Order is preserved because the
// field resolver assigns slots with first-seen priority.
type Record []Field

// Keys returns the record's column names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// IsBlank reports whether every value in the record is empty after trimming.
func (r Record) IsBlank() bool {
	for _, f := range r {
		if trimmed := strings.TrimSpace(f.Value); trimmed != "" {
			return false
		}
	}
	return true
}

// DeriveMetadata builds StatementMetadata from the first transaction that
// carries a non-nil value for each field.
func DeriveMetadata(transactions []Transaction, accountType AccountType) StatementMetadata {
	meta := StatementMetadata{AccountType: accountType}
	for _, tx := range transactions {
		if meta.BankName == nil && tx.BankName != nil {
			meta.BankName = tx.BankName
		}
		if meta.AccountNumber == nil && tx.AccountNumber != nil {
			meta.AccountNumber = tx.AccountNumber
		}
		if meta.BankName != nil && meta.AccountNumber != nil {
			break
		}
	}
	return meta
}
