package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"float with decimal", 1234567.5, "1,234,567.5"},
		{"zero", 0, "0"},
		{"nil", nil, "0"},
		{"empty string", "", "0"},
		{"short string", "100", "100"},
		{"four digits", "1000", "1,000"},
		{"string with decimal kept verbatim", "12950.00", "12,950.00"},
		{"int", 12950, "12,950"},
		{"negative", -1234567, "-1,234,567"},
		{"exactly three digits", "999", "999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.value))
		})
	}
}

func TestParseNumberInverse(t *testing.T) {
	for _, s := range []string{"0", "100", "1,000", "1,234,567.5", "12,950.00"} {
		assert.Equal(t, s, FormatNumber(ParseNumber(s)))
	}
}
