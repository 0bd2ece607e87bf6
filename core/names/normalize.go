package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize converts a raw name token to its canonical comparison form:
// trimmed, lowercased, diacritics folded, and every non-letter stripped.
// "O'Callahan" and "ocallahan" normalize to the same string, as do
// "José" and "jose".
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// NFD decomposition splits accented letters into base letter plus
	// combining marks; the marks are then dropped with everything else
	// that is not a letter.
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
