// Package normalizer resolves raw key/value records with unknown header
// vocabularies into canonical Transactions. Resolution is a two-phase,
// data-driven table scan: exact header candidates first, then a looser
// substring fallback, with first-match-wins semantics per slot.
//
// NormalizeRecord is a pure function of (record, file name, account type);
// it keeps no state between calls.
package normalizer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// slot is a canonical field identity the resolver attempts to fill.
type slot string

const (
	slotDate          slot = "date"
	slotDescription   slot = "description"
	slotAmount        slot = "amount"
	slotCredit        slot = "credit"
	slotDebit         slot = "debit"
	slotType          slot = "type"
	slotAccountNumber slot = "accountNumber"
	slotBankName      slot = "bankName"
)

// exactRule assigns a slot when the normalized key equals one of the
// candidates. Debit and withdrawal vocabularies merge into the debit slot;
// deposit merges into credit.
type exactRule struct {
	slot       slot
	candidates []string
}

var exactRules = []exactRule{
	{slotDate, []string{
		"date", "transaction date", "posting date", "value date",
		"statement date", "txn date", "trans date", "tran date",
		"value dt", "txn dt",
	}},
	{slotDescription, []string{
		"description", "details", "narration", "merchant", "particulars",
		"memo", "transaction details", "trans details",
		"transaction description", "remarks", "purpose", "payee",
	}},
	{slotAmount, []string{
		"amount", "transaction amount", "amt", "value", "trans amount",
	}},
	{slotCredit, []string{
		"credit", "cr", "cr amount", "credits", "credit amt",
	}},
	{slotDebit, []string{
		"debit", "dr", "dr amount", "debits", "debit amt",
		"withdrawal amt.", "withdrawal amount", "withdrawal", "withdrawals", "withdrawal amt",
	}},
	{slotCredit, []string{
		"deposit amt.", "deposit amount", "deposit", "deposits", "deposit amt",
	}},
	{slotType, []string{
		"type", "transaction type", "debit/credit", "dr/cr",
	}},
	{slotAccountNumber, []string{
		"account number", "account no", "account no.", "acct no", "acct no.",
		"acct #", "account #", "account id",
	}},
	{slotBankName, []string{
		"bank name", "issuing bank", "financial institution", "institution",
		"bank", "bank branch",
	}},
}

// substringRule assigns a slot when the normalized key contains one of the
// markers (or equals one of the equals entries), unless it contains an
// excluded marker. Evaluated only after every exact rule missed.
type substringRule struct {
	slot     slot
	markers  []string
	equals   []string
	excludes []string
}

var substringRules = []substringRule{
	{slot: slotDate, markers: []string{"date"}},
	{slot: slotDescription, markers: []string{"description", "narration", "detail", "particulars", "remark"}},
	{slot: slotAccountNumber, markers: []string{"account number", "acct no", "account #"}},
	{slot: slotBankName, markers: []string{"bank name", "bank"}, excludes: []string{"bank statement"}},
	{slot: slotCredit, markers: []string{"credit", "deposit"}, equals: []string{"cr"}},
	{slot: slotDebit, markers: []string{"debit", "withdrawal"}, equals: []string{"dr"}},
	{slot: slotAmount, markers: []string{"amount", "amt"}},
}

// resolvedFields holds slot assignments. Presence is tracked separately from
// the value so an assigned-but-empty column is distinguishable from an
// absent one (an empty single-amount column warns; an absent one does not).
type resolvedFields struct {
	values  map[slot]string
	present map[slot]bool
}

func (r *resolvedFields) set(s slot, value string) {
	r.values[s] = value
	r.present[s] = true
}

func (r *resolvedFields) has(s slot) bool { return r.present[s] }

func (r *resolvedFields) value(s slot) string { return r.values[s] }

// resolveSlots runs the two-phase resolver over the record in order.
// First successful assignment per slot wins; later duplicate columns for the
// same slot are ignored.
func resolveSlots(record statement.Record) *resolvedFields {
	resolved := &resolvedFields{
		values:  make(map[slot]string, len(record)),
		present: make(map[slot]bool, len(record)),
	}

fields:
	for _, field := range record {
		key := strings.ToLower(strings.TrimSpace(field.Key))

		for _, rule := range exactRules {
			if resolved.has(rule.slot) {
				continue
			}
			for _, candidate := range rule.candidates {
				if key == candidate {
					resolved.set(rule.slot, field.Value)
					continue fields
				}
			}
		}

		for _, rule := range substringRules {
			if resolved.has(rule.slot) {
				continue
			}
			if matchesSubstringRule(key, rule) {
				resolved.set(rule.slot, field.Value)
				continue fields
			}
		}
	}

	return resolved
}

func matchesSubstringRule(key string, rule substringRule) bool {
	for _, excluded := range rule.excludes {
		if strings.Contains(key, excluded) {
			return false
		}
	}
	for _, eq := range rule.equals {
		if key == eq {
			return true
		}
	}
	for _, marker := range rule.markers {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

// Options carries the per-file context the normalizer needs.
type Options struct {
	FileName    string
	AccountType statement.AccountType
}

// Outcome is the result of normalizing one record: a transaction, or nil
// with diagnostic warnings explaining the rejection.
type Outcome struct {
	Transaction *statement.Transaction
	Warnings    []statement.ParseWarning
}

// NormalizeRecord maps a raw record to a canonical Transaction or rejects it
// with a diagnostic warning. Entirely blank records are skipped silently.
func NormalizeRecord(record statement.Record, opts Options) Outcome {
	var warnings []statement.ParseWarning

	if record.IsBlank() {
		return Outcome{Warnings: warnings}
	}

	resolved := resolveSlots(record)

	rawDate := strings.TrimSpace(resolved.value(slotDate))
	rawDescription := strings.TrimSpace(resolved.value(slotDescription))

	if rawDate == "" || rawDescription == "" {
		availableColumns := strings.Join(record.Keys(), ", ")
		var missing []string
		if rawDate == "" {
			missing = append(missing, "date")
		}
		if rawDescription == "" {
			missing = append(missing, "description")
		}
		warnings = append(warnings, statement.ParseWarning{
			Message: fmt.Sprintf("Missing required fields: %s. Available columns: %s",
				strings.Join(missing, ", "), availableColumns),
			Context: map[string]any{
				"availableColumns": availableColumns,
				"missingFields":    missing,
			},
		})
		return Outcome{Warnings: warnings}
	}

	// Guard against an unfiltered duplicate header row: a "data" row whose
	// cells are the header strings themselves.
	lowerDate := strings.ToLower(rawDate)
	lowerDescription := strings.ToLower(rawDescription)
	if lowerDate == "date" || lowerDate == "value dt" || lowerDescription == "narration" {
		warnings = append(warnings, statement.ParseWarning{
			Message: "Skipping row that appears to be a repeated header.",
			Context: map[string]any{"date": rawDate, "description": rawDescription},
		})
		return Outcome{Warnings: warnings}
	}

	parsedDate, dateOK := ParseDate(rawDate)
	if !dateOK {
		warnings = append(warnings, statement.ParseWarning{
			Message: "Unable to parse transaction date.",
			Context: map[string]any{"rawDate": rawDate},
		})
	}

	amount, txType, amountWarnings, amountOK := resolveAmount(resolved)
	warnings = append(warnings, amountWarnings...)
	if !amountOK {
		warnings = append(warnings, statement.ParseWarning{
			Message: "Unable to resolve transaction amount.",
			Context: map[string]any{"availableColumns": strings.Join(record.Keys(), ", ")},
		})
		return Outcome{Warnings: warnings}
	}

	// Unparseable dates degrade to the raw string rather than dropping the
	// row: partial data beats data loss here.
	date := parsedDate
	if !dateOK {
		date = rawDate
	}

	tx := &statement.Transaction{
		ID:                       uuid.NewString(),
		Date:                     date,
		RawDate:                  rawDate,
		Description:              rawDescription,
		Amount:                   amount,
		Type:                     txType,
		AccountType:              opts.AccountType,
		SourceFileName:           opts.FileName,
		BankName:                 optionalString(resolved, slotBankName),
		AccountNumber:            optionalString(resolved, slotAccountNumber),
		ClassificationConfidence: 0,
		ClassificationSource:     statement.SourceNone,
	}

	return Outcome{Transaction: tx, Warnings: warnings}
}

func optionalString(resolved *resolvedFields, s slot) *string {
	if !resolved.has(s) {
		return nil
	}
	value := strings.TrimSpace(resolved.value(s))
	if value == "" {
		return nil
	}
	return &value
}
