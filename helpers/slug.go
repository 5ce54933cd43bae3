package helpers

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDashes   = regexp.MustCompile(`^-+|-+$`)
)

// Slugify menurunkan slug yang aman untuk URL dari nama tampilan.
// Hasilnya deterministik: huruf kecil, tanpa diakritik, dipisah tanda "-".
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	slug := strings.ToLower(strings.TrimSpace(folded))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return edgeDashes.ReplaceAllString(slug, "")
}
