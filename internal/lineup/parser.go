// Package lineup turns pasted festival lineup text into clean entries and
// strips set metadata from single entries.
package lineup

import (
	"regexp"
	"strings"

	"github.com/jaki95/lineup-genre-sorter/internal/normalize"
)

var (
	// A single bullet marker and the whitespace after it.
	bulletPrefix = regexp.MustCompile(`^[•\-*]\s*`)
	// Running order numbering such as "12. ".
	numberPrefix = regexp.MustCompile(`^[0-9]+\.\s*`)
	lineBreaks   = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u2028", "\n", "\u2029", "\n")
)

// ParseLineupText splits raw lineup text into entries. Line breaks and commas
// both separate entries; commas inside parentheses do not. Bullets and
// numbering are stripped, and entries are deduplicated on their normalized key
// keeping the first occurrence as written.
func ParseLineupText(text string) []string {
	var cleaned []string
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		for _, entry := range splitEntries(line) {
			if entry = CleanEntry(entry); entry != "" {
				cleaned = append(cleaned, entry)
			}
		}
	}

	return Dedupe(cleaned)
}

// CleanEntry trims one raw entry and removes a leading bullet marker and
// numbering prefix.
func CleanEntry(entry string) string {
	entry = strings.TrimSpace(entry)
	entry = strings.TrimSpace(bulletPrefix.ReplaceAllString(entry, ""))
	entry = strings.TrimSpace(numberPrefix.ReplaceAllString(entry, ""))
	return entry
}

// Dedupe keeps the first entry for every normalized key, in input order.
// Entries whose key is empty are dropped.
func Dedupe(entries []string) []string {
	unique := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		key := normalize.NormalizeKey(entry)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, entry)
	}
	return unique
}

// splitEntries splits a line on commas outside parentheses. A line with
// unbalanced parentheses is split on every comma.
func splitEntries(line string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range line {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, line[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return strings.Split(line, ",")
	}
	return append(parts, line[start:])
}
