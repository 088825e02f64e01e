package mtgbuild

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ligatures have no combining-mark decomposition and need a spelled-out
// replacement before the accent fold; typographic quotes get their plain
// counterparts the same way.
var asciiReplacer = strings.NewReplacer(
	"Æ", "Ae",
	"æ", "ae",
	"Œ", "Oe",
	"œ", "oe",
	"’", "'",
	"‘", "'",
	"“", "\"",
	"”", "\"",
)

// asciiName folds a card name to its ASCII spelling, decomposing accented
// letters and dropping the combining marks. It returns an empty string for
// names that are already plain ASCII, so the field stays unset for the
// overwhelming majority of cards.
func asciiName(name string) string {
	folded := asciiReplacer.Replace(name)
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(fold, folded)
	if err != nil || out == name {
		return ""
	}
	return out
}
