package aggregate

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var parenthetical = regexp.MustCompile(`\([^()]*\)`)

// Normalize folds a place or province name into its sort key: Unicode
// decomposed, non-ASCII runes dropped, parenthetical content removed,
// whitespace collapsed, lower-cased. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	for {
		stripped := parenthetical.ReplaceAllString(folded, " ")
		if stripped == folded {
			break
		}
		folded = stripped
	}
	folded = strings.NewReplacer("(", " ", ")", " ").Replace(folded)

	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
