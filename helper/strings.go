package helper

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
)

// Underscore converts a Go field name such as "DisplayName" to "display_name".
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTagName trims and lower-cases a tag name and collapses inner spaces.
func NormalizeTagName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Slugify maps "Digital Marketing" to "digital-marketing".
func Slugify(s string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}
