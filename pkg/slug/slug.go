package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Accented Latin characters folded to ASCII, matching how the catalog
// generates product and section slugs.
var foldReplacer = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ä", "a", "ã", "a",
	"ç", "c", "è", "e", "é", "e", "ê", "e", "ë", "e",
	"ğ", "g", "ì", "i", "í", "i", "î", "i", "ï", "i", "ı", "i",
	"ñ", "n", "ò", "o", "ó", "o", "ô", "o", "ö", "o", "õ", "o",
	"ş", "s", "ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ý", "y", "ÿ", "y",
)

// Normalize converts free-form input into the catalog's slug form, so a
// product title typed by hand resolves against the slug lookup endpoint.
//
// Examples:
//
//	"Block Print Kurta"  → "block-print-kurta"
//	"Café  Crème shirt!" → "cafe-creme-shirt"
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = foldReplacer.Replace(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsCanonical reports whether the input is already in slug form, meaning
// Normalize would return it unchanged.
func IsCanonical(input string) bool {
	return input != "" && Normalize(input) == input
}
