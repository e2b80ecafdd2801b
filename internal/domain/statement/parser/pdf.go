package parser

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/normalizer"
)

// columnGapX is the horizontal distance between adjacent spans that marks a
// visual column boundary rather than a word break.
const columnGapX = 15.0

// segmentSplit separates a reconstructed line into visual columns: runs of
// two-or-more spaces or tabs. Single spaces are within-field word breaks.
// Statements using single-space fixed-width columns will misparse under this
// heuristic; that is a known precision limit of gap-based splitting.
var segmentSplit = regexp.MustCompile(`\s{2,}|\t+`)

// amountTail matches a trailing signed numeric value, tolerating thousands
// separators; currency symbols are stripped before matching.
var amountTail = regexp.MustCompile(`[-+]?\d[\d,]*(?:\.\d{1,2})?$`)

var currencySymbols = strings.NewReplacer("₹", "", "$", "", "€", "", "£", "")

// ParsePDF reconstructs tabular records from the positioned text spans of a
// PDF statement. Statements have no machine-readable grid, so rows are
// rebuilt by clustering spans on their vertical coordinate and columns are
// recovered from horizontal whitespace gaps.
func ParsePDF(file statement.File, opts normalizer.Options) (transactions []statement.Transaction, warnings []statement.ParseWarning, err error) {
	// The pdf library panics on some malformed inputs; surface those as
	// ordinary errors so one bad file rejects only its own parse.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction failed: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return nil, nil, fmt.Errorf("open pdf file: %w", err)
	}

	for pageNumber := 1; pageNumber <= reader.NumPage(); pageNumber++ {
		page := reader.Page(pageNumber)
		if page.V.IsNull() {
			continue
		}

		for _, line := range groupLines(page.Content()) {
			record := parseLine(line)
			if record == nil {
				warnings = append(warnings, statement.ParseWarning{
					Message: "Unable to interpret PDF row.",
					Context: map[string]any{"line": line, "pageNumber": pageNumber},
				})
				continue
			}

			outcome := normalizer.NormalizeRecord(record, opts)
			warnings = append(warnings, outcome.Warnings...)
			if outcome.Transaction != nil {
				transactions = append(transactions, *outcome.Transaction)
			}
		}
	}

	return transactions, warnings, nil
}

type span struct {
	x float64
	s string
}

// groupLines clusters text spans into visual lines by rounding the vertical
// coordinate, orders lines top-to-bottom (descending y, since the PDF origin is
// bottom-left) and spans left-to-right. Spans separated by a wide horizontal
// gap are joined with a double space so the column splitter can see the
// boundary; everything else joins with a single space.
func groupLines(content pdf.Content) []string {
	rows := make(map[int][]span)
	for _, text := range content.Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		y := int(math.Round(text.Y))
		rows[y] = append(rows[y], span{x: text.X, s: text.S})
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	lines := make([]string, 0, len(ys))
	for _, y := range ys {
		spans := rows[y]
		sort.Slice(spans, func(i, j int) bool { return spans[i].x < spans[j].x })

		var b strings.Builder
		var prevX float64
		for i, sp := range spans {
			if i > 0 {
				if sp.x-prevX > columnGapX {
					b.WriteString("  ")
				} else {
					b.WriteString(" ")
				}
			}
			b.WriteString(sp.s)
			prevX = sp.x
		}

		if line := strings.TrimSpace(b.String()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// parseLine splits one visual row into {date, description, amount, type}.
// The amount is the rightmost segment matching a signed numeric pattern; the
// first segment is the date; segments in between join into the description;
// a segment after the amount, if present, is an optional DR/CR label.
// Returns nil when the line does not fit that shape.
func parseLine(line string) statement.Record {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	segments := splitSegments(trimmed)
	if len(segments) < 2 {
		return nil
	}

	amountIndex := -1
	for i := len(segments) - 1; i >= 0; i-- {
		if amountTail.MatchString(currencySymbols.Replace(segments[i])) {
			amountIndex = i
			break
		}
	}
	if amountIndex < 1 {
		return nil
	}

	descriptionParts := segments[1:amountIndex]
	if len(descriptionParts) == 0 {
		return nil
	}

	record := statement.Record{
		{Key: "date", Value: segments[0]},
		{Key: "description", Value: strings.Join(descriptionParts, " ")},
		{Key: "amount", Value: segments[amountIndex]},
	}
	if amountIndex+1 < len(segments) {
		record = append(record, statement.Field{Key: "type", Value: segments[amountIndex+1]})
	}

	return record
}

func splitSegments(line string) []string {
	parts := segmentSplit.Split(line, -1)
	segments := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return segments
}
