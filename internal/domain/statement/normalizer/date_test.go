package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso", "2024-01-15", "2024-01-15"},
		{"day first slash", "15/01/2024", "2024-01-15"},
		{"day first dash", "15-01-2024", "2024-01-15"},
		{"day first dot", "15.01.2024", "2024-01-15"},
		{"single digit day and month", "5/1/2024", "2024-01-05"},
		{"ambiguous reads day first", "01/02/2024", "2024-02-01"},
		{"month first when day first invalid", "01/13/2024", "2024-01-13"},
		{"two digit year below pivot", "01/01/69", "2069-01-01"},
		{"two digit year at pivot", "01/01/70", "1970-01-01"},
		{"two digit year recent", "15/06/24", "2024-06-15"},
		{"month name", "02 Jan 2006", "2006-01-02"},
		{"month name comma", "Jan 2, 2006", "2006-01-02"},
		{"digits only yyyymmdd", "20240115", "2024-01-15"},
		{"digits only ddmmyy", "150124", "2024-01-15"},
		{"rfc3339 timestamp", "2024-01-15T10:30:00Z", "2024-01-15"},
		{"surrounding whitespace", "  2024-01-15  ", "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.True(t, ok, "expected %q to parse", tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Failures(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "99/99/9999", "12345"} {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseDate(in)
			assert.False(t, ok, "expected %q to fail", in)
		})
	}
}
