package textproc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Collapses space runs",
			input:    "Invoice   Number    INV-001",
			expected: "Invoice Number INV-001",
		},
		{
			name:     "Windows line endings",
			input:    "Name: John Doe\r\nDOB: 02/14/1990",
			expected: "Name: John Doe\nDOB: 02/14/1990",
		},
		{
			name:     "Strips control characters",
			input:    "Total\x0c $45.67\x00",
			expected: "Total $45.67",
		},
		{
			name:     "Collapses newline runs to one blank line",
			input:    "Page one\n\n\n\n\nPage two",
			expected: "Page one\n\nPage two",
		},
		{
			name:     "Trims whitespace around line breaks",
			input:    "  Subtotal 58,658.00 \n  Date: 11/15/2025  ",
			expected: "Subtotal 58,658.00\nDate: 11/15/2025",
		},
		{
			name:     "Preserves currency and date punctuation",
			input:    "Total: $1,500.00 Date 01/15/2024",
			expected: "Total: $1,500.00 Date 01/15/2024",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Invoice   Number\r\n\r\n\r\nINV-001  ",
		"Name: John Doe\nDOB: 02/14/1990\nAddress: 123 Main St, Cityville",
		"\x0cExperienced developer with 5 years of experience.",
		"",
		"   \n\n\t\n  ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{
			name:     "Short input unchanged",
			input:    "Total $45.67",
			limit:    500,
			expected: "Total $45.67",
		},
		{
			name:     "ASCII cut at limit",
			input:    "abcdef",
			limit:    4,
			expected: "abcd",
		},
		{
			name:     "Counts runes not bytes",
			input:    "Café Déjà",
			limit:    5,
			expected: "Café ",
		},
		{
			name:     "Zero limit",
			input:    "anything",
			limit:    0,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.limit)
			if got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestTruncateNeverSplitsRune(t *testing.T) {
	input := strings.Repeat("é", 400)
	for _, limit := range []int{1, 250, 399, 400, 401} {
		got := Truncate(input, limit)
		if !utf8.ValidString(got) {
			t.Errorf("Truncate(limit=%d) produced invalid UTF-8", limit)
		}
		if n := utf8.RuneCountInString(got); n > limit {
			t.Errorf("Truncate(limit=%d) kept %d runes", limit, n)
		}
	}
}
