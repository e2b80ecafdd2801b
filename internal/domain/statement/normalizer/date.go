package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const canonicalDateLayout = "2006-01-02"

// delimitedDatePattern matches D/M/Y-shaped dates with /, - or . separators.
// When this shape matches, the day-before-month interpretation wins; if the
// ISO candidate it produces is invalid (e.g. month 13), the explicit layout
// list below gets a chance to read it month-first instead.
var delimitedDatePattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})$`)

// Explicit layouts tried in order after the delimiter heuristic.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"01-02-2006",
	"02.01.2006",
	"02/01/06",
	"01/02/06",
	"02-01-06",
	"01-02-06",
	"02.01.06",
	"02 Jan 2006",
	"Jan 02 2006",
	"02 January 2006",
	"January 02 2006",
}

// Last-resort layouts for values the statement-specific tiers miss.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate canonicalizes a raw date string to yyyy-MM-dd. The second return
// is false when every parsing tier failed; callers then keep the raw string.
func ParseDate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	if m := delimitedDatePattern.FindStringSubmatch(trimmed); m != nil {
		first, second, year := m[1], m[2], m[3]
		if len(year) == 2 {
			year = expandTwoDigitYear(year)
		}
		candidate := fmt.Sprintf("%s-%s-%s", year, pad2(second), pad2(first))
		if t, err := time.Parse(canonicalDateLayout, candidate); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}

	if canonical, ok := parseDigitsOnly(trimmed); ok {
		return canonical, true
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}

	return "", false
}

var nonDigits = regexp.MustCompile(`[^\d]`)

// parseDigitsOnly handles compact numeric dates: 8 contiguous digits are read
// as yyyyMMdd (with century normalization), 6 digits as ddMMyy.
func parseDigitsOnly(value string) (string, bool) {
	digits := nonDigits.ReplaceAllString(value, "")

	switch len(digits) {
	case 8:
		year, err := strconv.Atoi(digits[:4])
		if err != nil {
			return "", false
		}
		if year < 1900 {
			year += 2000
		}
		candidate := fmt.Sprintf("%04d-%s-%s", year, digits[4:6], digits[6:8])
		if t, err := time.Parse(canonicalDateLayout, candidate); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	case 6:
		candidate := fmt.Sprintf("%s-%s-%s", expandTwoDigitYear(digits[4:6]), digits[2:4], digits[:2])
		if t, err := time.Parse(canonicalDateLayout, candidate); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}

	return "", false
}

// expandTwoDigitYear applies the 1970/2000 century split: yy >= 70 lands in
// the 1900s, anything below in the 2000s.
func expandTwoDigitYear(yy string) string {
	year, err := strconv.Atoi(yy)
	if err != nil {
		return yy
	}
	if year >= 70 {
		return strconv.Itoa(1900 + year)
	}
	return strconv.Itoa(2000 + year)
}

func pad2(value string) string {
	if len(value) == 1 {
		return "0" + value
	}
	return value
}
