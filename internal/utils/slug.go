package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRunes = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the stable identifier for a content item from its title:
// accents are folded away, the result is lowercased, runs of anything outside
// [a-z0-9] collapse to a single hyphen, and leading/trailing hyphens are
// trimmed. Applying Slugify to an existing slug is a no-op.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, title)
	if err != nil {
		s = title
	}

	s = strings.ToLower(s)
	s = nonSlugRunes.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
