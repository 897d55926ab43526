package conjugation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// enye placeholders keep ñ/Ñ out of the diacritic stripper. The tilde on n
// is phonemic in Spanish, so "ano" must never match "año".
const (
	enyeLower = '\uE000' // private-use stand-in for ñ
	enyeUpper = '\uE001' // private-use stand-in for Ñ
)

// stripMarks decomposes to NFD, removes combining marks, and recomposes.
// Handles input that arrives already decomposed (some IMEs emit NFD).
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeAnswer lowercases, trims, and collapses internal whitespace.
// This is the canonical form both sides of a comparison are reduced to.
func normalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// stripDiacritics removes diacritical marks (á→a, é→e, ü→u) while
// preserving ñ.
func stripDiacritics(s string) string {
	// Compose first so a decomposed n+combining-tilde is seen as ñ.
	protected := strings.Map(func(r rune) rune {
		switch r {
		case 'ñ':
			return enyeLower
		case 'Ñ':
			return enyeUpper
		}
		return r
	}, norm.NFC.String(s))

	stripped, _, err := transform.String(stripMarks, protected)
	if err != nil {
		// transform.String only fails on malformed UTF-8; fall back to
		// the input rather than corrupting the comparison.
		stripped = protected
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case enyeLower:
			return 'ñ'
		case enyeUpper:
			return 'Ñ'
		}
		return r
	}, stripped)
}
