// Package textnorm canonicalizes answer text for tolerant comparison.
//
// Folding runs in a fixed order: trim, lowercase, NFC recomposition,
// German letter substitutions (ä→ae, ö→oe, ü→ue, ß→ss), then Unicode
// decomposition with combining-mark removal. Recomposition first makes
// decomposed input (u + combining diaeresis) match the precomposed
// replacer keys, and the substitutions run before decomposition so that
// "Müller" and "mueller" fold to the same string; stripping first would
// erase the umlauts the substitutions are meant to expand.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var german = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Fold returns the canonical comparison form of s. Fold is idempotent.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = norm.NFC.String(s)
	s = german.Replace(s)
	return stripMarks(s)
}

// CaseFold lowercases and trims without touching diacritics.
func CaseFold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripMarks removes combining marks left after NFD decomposition and
// recomposes the remainder.
func stripMarks(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
