package lineup

import (
	"regexp"
	"strings"
)

var (
	mcSuffix        = regexp.MustCompile(`(?i)\s+WITH\s+MC\s+.+$`)
	leadingArticle  = regexp.MustCompile(`(?i)^THE\s+`)
	// B2B, x, vs, vs., and, commas and slashes join acts playing together.
	// "&" is left alone: it is part of too many act names.
	collabSeparator = regexp.MustCompile(`(?i)\s+B2B\s+|\s+X\s+|,\s*|/|\s+VS\.?\s+|\s+AND\s+`)
)

// StripSetMeta reduces a lineup entry to the act name: parenthesized notes
// and a trailing "with MC ..." are removed and whitespace is collapsed.
func StripSetMeta(entry string) string {
	entry = StripParentheticals(entry)
	entry = StripMCSuffix(entry)
	return CollapseWhitespace(entry)
}

// StripParentheticals removes every "(...)" span, each closing at the first
// ")" after its opening "(". An unmatched "(" is kept.
func StripParentheticals(s string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(s[open:], ')')
		if closing < 0 {
			break
		}
		b.WriteString(s[:open])
		s = s[open+closing+1:]
	}
	b.WriteString(s)
	return b.String()
}

// StripMCSuffix removes a trailing case-insensitive " WITH MC <name>".
func StripMCSuffix(s string) string {
	return mcSuffix.ReplaceAllString(s, "")
}

// CollapseWhitespace replaces whitespace runs with one space and trims.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripLeadingArticle removes a leading case-insensitive "The " and reports
// whether anything was removed.
func StripLeadingArticle(name string) (string, bool) {
	stripped := leadingArticle.ReplaceAllString(name, "")
	return stripped, stripped != name
}

// SplitCollaboration splits a collaboration string into its acts, in order,
// trimmed, with empty parts dropped.
func SplitCollaboration(name string) []string {
	var parts []string
	for _, part := range collabSeparator.Split(name, -1) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
