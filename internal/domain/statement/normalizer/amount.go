package normalizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
)

// amountJunk strips everything except digits, the decimal dot, and the sign.
// Currency symbols and thousands separators fall away here.
var amountJunk = regexp.MustCompile(`[^0-9.\-]+`)

// numericPrefix recovers a leading number from otherwise malformed input,
// e.g. "1234.56.78" still yields 1234.56.
var numericPrefix = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)

func cleanAmount(value string) string {
	return amountJunk.ReplaceAllString(value, "")
}

// parseSignedAmount parses a cleaned amount string into an exact decimal.
func parseSignedAmount(cleaned string) (decimal.Decimal, bool) {
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	if d, err := decimal.NewFromString(cleaned); err == nil {
		return d, true
	}
	if prefix := numericPrefix.FindString(cleaned); prefix != "" {
		if d, err := decimal.NewFromString(prefix); err == nil {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// resolveAmount determines magnitude and direction from the resolved slots.
// Strategies are attempted in order, first success wins:
//
//  1. single amount column, sign carries direction;
//  2. separate credit/debit columns, first non-zero wins (credit checked first);
//  3. single amount column plus a type-label column (DR/CR);
//  4. nothing resolves and the record is rejected by the caller.
func resolveAmount(resolved *resolvedFields) (float64, statement.TransactionType, []statement.ParseWarning, bool) {
	var warnings []statement.ParseWarning

	if resolved.has(slotAmount) {
		raw := resolved.value(slotAmount)
		if d, ok := parseSignedAmount(cleanAmount(raw)); ok {
			txType := statement.TypeCredit
			if d.IsNegative() {
				txType = statement.TypeDebit
			}
			return d.Abs().InexactFloat64(), txType, warnings, true
		}
		warnings = append(warnings, statement.ParseWarning{
			Message: "Unable to parse amount column.",
			Context: map[string]any{"value": raw},
		})
	}

	if resolved.has(slotCredit) {
		if cleaned := cleanAmount(resolved.value(slotCredit)); cleaned != "" {
			if d, ok := parseSignedAmount(cleaned); ok && !d.IsZero() {
				return d.Abs().InexactFloat64(), statement.TypeCredit, warnings, true
			}
		}
	}

	if resolved.has(slotDebit) {
		if cleaned := cleanAmount(resolved.value(slotDebit)); cleaned != "" {
			if d, ok := parseSignedAmount(cleaned); ok && !d.IsZero() {
				return d.Abs().InexactFloat64(), statement.TypeDebit, warnings, true
			}
		}
	}

	if resolved.has(slotType) && resolved.has(slotAmount) {
		if d, ok := parseSignedAmount(cleanAmount(resolved.value(slotAmount))); ok {
			if txType, ok := resolveTypeFromLabel(resolved.value(slotType)); ok {
				return d.Abs().InexactFloat64(), txType, warnings, true
			}
		}
	}

	return 0, "", warnings, false
}

// resolveTypeFromLabel reads a free-form direction label such as "DR",
// "CREDIT" or "Debit Card".
func resolveTypeFromLabel(label string) (statement.TransactionType, bool) {
	normalized := strings.ToLower(label)
	if strings.Contains(normalized, "debit") || strings.Contains(normalized, "dr") {
		return statement.TypeDebit, true
	}
	if strings.Contains(normalized, "credit") || strings.Contains(normalized, "cr") {
		return statement.TypeCredit, true
	}
	return "", false
}
