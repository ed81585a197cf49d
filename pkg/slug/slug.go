package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// spanishToLatin maps accented Spanish characters to plain Latin equivalents
var spanishToLatin = map[rune]string{
	'á': "a", 'Á': "a",
	'é': "e", 'É': "e",
	'í': "i", 'Í': "i",
	'ó': "o", 'Ó': "o",
	'ú': "u", 'Ú': "u",
	'ü': "u", 'Ü': "u",
	'ñ': "n", 'Ñ': "n",
}

// ForArchive generates a URL-friendly key segment from a submitter name and
// reference, used when archiving generated PDFs.
// Format: {transliterated-name}-{reference}
// Example: "José Muñoz" + "4f2a" -> "jose-munoz-4f2a"
func ForArchive(name string, reference string) string {
	// Transliterate Spanish accents to plain Latin
	var result strings.Builder
	for _, char := range name {
		if latinChar, exists := spanishToLatin[char]; exists {
			result.WriteString(latinChar)
		} else {
			result.WriteRune(char)
		}
	}

	slug := result.String()

	// Remove non-alphabetic characters (except spaces)
	nonAlphaRegex := regexp.MustCompile(`[^a-zA-Z ]+`)
	slug = nonAlphaRegex.ReplaceAllString(slug, "")

	// Collapse runs of spaces before replacing them with dashes
	slug = strings.Join(strings.Fields(slug), "-")

	// Append reference for uniqueness
	slug = fmt.Sprintf("%s-%s", slug, reference)

	// Convert to lowercase
	slug = strings.ToLower(slug)

	return slug
}
