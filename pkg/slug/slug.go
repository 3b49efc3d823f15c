package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	// Valid is the shape accepted for client-supplied slugs.
	Valid = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Make lowercases s, folds accents and joins alphanumeric runs with dashes.
// "Créer une EMI en 2024 !" becomes "creer-une-emi-en-2024".
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	out := nonAlnum.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(out, "-")
}
