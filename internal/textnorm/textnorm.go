// Package textnorm prepares free text for rule matching. Matching always runs
// on the lower-cased form while extraction keeps the caller's original casing.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean composes the text to NFC and trims surrounding whitespace. OCR engines
// and phone keyboards disagree on whether "é" is one rune or two; NFC makes
// keyword and regexp matching see a single form.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// ForMatch returns the cleaned, lower-cased text used for pattern matching.
func ForMatch(s string) string {
	return strings.ToLower(Clean(s))
}

// Lines splits text into trimmed, non-empty lines, keeping their order.
func Lines(s string) []string {
	raw := strings.Split(norm.NFC.String(s), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
