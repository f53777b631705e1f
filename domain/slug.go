package domain

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^\w-]+`)
	wordInitials  = regexp.MustCompile(`\b\w`)
	spaceReplacer = strings.NewReplacer(" ", "-")
)

// Slugify derives a URL slug from a title: lowercase, spaces to hyphens,
// everything outside [A-Za-z0-9_-] dropped. Hindi-only titles can therefore
// produce an empty slug; callers fall back through the headline fields
// before giving up.
func Slugify(title string) string {
	if title == "" {
		return ""
	}
	slug := spaceReplacer.Replace(strings.ToLower(title))
	return nonSlugChars.ReplaceAllString(slug, "")
}

// FormatTitle uppercases the first letter of every word, used when storing
// ingested categories ("business" becomes "Business").
func FormatTitle(text string) string {
	return wordInitials.ReplaceAllStringFunc(text, strings.ToUpper)
}
