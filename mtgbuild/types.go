package mtgbuild

import (
	"strings"
)

const (
	typeLineSeparator = "—"

	// Placeholder for the interior space of multi-word subtypes while the
	// right side of the type line is split on whitespace.
	subtypeJoiner = "\x00"
)

// ParseTypeLine splits a printed type line into supertypes, types and
// subtypes. The left side of the em dash is split on whitespace and each
// word is routed by the supertype vocabulary; the right side is split on
// whitespace except for Plane cards, whose entire right side is a single
// subtype, and for the known multi-word subtypes, which are kept whole.
// Malformed input degrades to empty slices, never an error.
func ParseTypeLine(typeLine string) (supertypes, types, subtypes []string) {
	supertypes = []string{}
	types = []string{}
	subtypes = []string{}

	segments := strings.SplitN(typeLine, typeLineSeparator, 2)

	for _, word := range strings.Fields(segments[0]) {
		if cardSupertypes[word] {
			supertypes = append(supertypes, word)
		} else {
			types = append(types, word)
		}
	}

	if len(segments) < 2 {
		return
	}
	right := strings.TrimSpace(segments[1])
	if right == "" {
		return
	}

	// A left segment starting with "Plane" keeps its whole right side as a
	// single subtype, names like "Serra's Realm" containing spaces.
	if strings.HasPrefix(segments[0], "Plane") {
		subtypes = append(subtypes, right)
		return
	}

	for _, multi := range multiWordSubtypes {
		if strings.Contains(right, multi) {
			glued := strings.ReplaceAll(multi, " ", subtypeJoiner)
			right = strings.ReplaceAll(right, multi, glued)
		}
	}
	for _, word := range strings.Fields(right) {
		subtypes = append(subtypes, strings.ReplaceAll(word, subtypeJoiner, " "))
	}
	return
}
