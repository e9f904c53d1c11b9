// Package textproc cleans raw OCR output into the canonical form the
// classifier and the field extractors consume.
package textproc

import (
	"regexp"
	"strings"
)

var (
	// Control characters OCR engines occasionally emit (form feeds, vertical
	// tabs, stray escapes). Newlines are kept, they carry layout information
	// the extractors rely on.
	controlRe = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

	// Runs of spaces and tabs inside a line.
	spaceRunRe = regexp.MustCompile(`[ \t]+`)

	// Whitespace hugging line breaks.
	spaceAroundNewlineRe = regexp.MustCompile(` ?\n ?`)

	// Three or more consecutive newlines collapse to a single blank line.
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize collapses whitespace and strips recognition artifacts. It is a
// pure function and idempotent: Normalize(Normalize(x)) == Normalize(x).
// Digits, punctuation and casing are preserved untouched since the field
// extractors pattern-match on them.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = controlRe.ReplaceAllString(text, "")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = spaceAroundNewlineRe.ReplaceAllString(text, "\n")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Truncate returns at most limit runes of text, never splitting a rune.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}
