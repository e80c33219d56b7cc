// Package normalize folds artist names and lineup entries to comparison keys.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that carry no combining mark under canonical decomposition.
var specialLetters = strings.NewReplacer(
	"Ø", "O", "ø", "o",
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
)

// NormalizeKey folds s to the canonical key used for name equality: accents
// removed, special letters spelled out, upper-cased, restricted to ASCII
// letters, digits, whitespace and & + / - ' . : with whitespace collapsed.
//
// NormalizeKey is total and idempotent. It is safe for concurrent use.
func NormalizeKey(s string) string {
	if s == "" {
		return ""
	}

	// Transformers and casers keep state, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}

	stripped = specialLetters.Replace(stripped)
	upper := cases.Upper(language.Und).String(stripped)

	filtered := strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return -1
	}, upper)

	return strings.Join(strings.Fields(filtered), " ")
}

func keep(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("&+/-'.:", r):
		return true
	}
	return unicode.IsSpace(r)
}

// Equal reports whether a and b fold to the same non-empty key.
func Equal(a, b string) bool {
	ka := NormalizeKey(a)
	return ka != "" && ka == NormalizeKey(b)
}
