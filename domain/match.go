package domain

import (
	"regexp"
	"strings"
)

// SmartMatchPattern builds a case-insensitive exact-match pattern for a
// display name: the stored value, trimmed of surrounding whitespace, must
// equal the name. Regex metacharacters in the input are escaped so names
// like "C++" match literally. An empty name yields a permissive wildcard,
// used when a filter dimension is not supplied.
//
// The whitespace tolerance lives in the pattern itself (\s*name\s*), so only
// the stored value's outer whitespace is forgiven; internal spacing in
// multi-word names is preserved.
func SmartMatchPattern(name string) string {
	if name == "" {
		return ".*"
	}
	return `^\s*` + regexp.QuoteMeta(strings.TrimSpace(name)) + `\s*$`
}

// SmartMatch compiles the pattern into an in-process predicate. Store-facing
// callers embed the pattern via Match conditions instead; this form backs
// unit tests and any in-memory filtering.
func SmartMatch(name string) *regexp.Regexp {
	return SmartMatchFromPattern(SmartMatchPattern(name))
}

// SmartMatchFromPattern compiles an already-built smart-match pattern with
// the case-insensitivity the store driver applies.
func SmartMatchFromPattern(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}
