package mtgbuild

import (
	"strings"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

// linkVariations cross-links the printings of one set that represent the
// same card. A counterpart qualifies when its base name and face name match,
// its identity differs, and its collector number either differs or is empty.
// The scan is pairwise over the pre-sorted card list, so variation lists
// come out in canonical order.
func linkVariations(set *mtgjson.Set) {
	assertIdentified(set)

	cards := set.Cards
	baseNames := make([]string, len(cards))
	for i := range cards {
		baseNames[i] = baseName(cards[i].Name)
	}

	for i := range cards {
		card := &cards[i]
		for j := range cards {
			other := &cards[j]
			if other.UUID == card.UUID {
				continue
			}
			if baseNames[j] != baseNames[i] || other.FaceName != card.FaceName {
				continue
			}
			if other.Number == card.Number && other.Number != "" {
				continue
			}
			card.Variations = append(card.Variations, other.UUID)
		}
	}
}

// markAlternatives flags the later duplicates among linked variations. The
// first card carrying a given distinct-printing key is the canonical one;
// every later card with the same key is an alternative. Basic lands are
// exempt, their duplicates being the normal state of affairs.
func markAlternatives(set *mtgjson.Set) {
	seen := map[string]bool{}
	for i := range set.Cards {
		card := &set.Cards[i]
		if len(card.Variations) == 0 || IsBasicLand(card.Name) {
			continue
		}
		key := distinctKey(card, set.Code)
		if seen[key] {
			card.IsAlternative = true
			logger.Println("Alternative printing:", card.String())
			continue
		}
		seen[key] = true
	}
}

// distinctKey collapses a printing to the attributes that tell physically
// different printings of one card apart. A few old sets mixed foil-only
// variants into the checklist, so their finishes join the key too.
func distinctKey(card *mtgjson.Card, setCode string) string {
	key := card.Name +
		card.BorderColor +
		card.FrameVersion +
		strings.Join(card.FrameEffects, ",") +
		card.Side
	if finishesInDistinctKey[setCode] {
		key += strings.Join(card.Finishes, ",")
	}
	return key
}

// baseName strips the parenthetical variant tag some providers append to
// duplicate printings, as in "Plains (250)".
func baseName(name string) string {
	if idx := strings.Index(name, " ("); idx != -1 {
		return name[:idx]
	}
	return name
}

// IsBasicLand reports whether name is one of the basic land names, with or
// without the snow prefix.
func IsBasicLand(name string) bool {
	switch strings.TrimPrefix(name, "Snow-Covered ") {
	case "Plains", "Island", "Swamp", "Mountain", "Forest", "Wastes":
		return true
	}
	return false
}

// assertIdentified guards the linker contract: every card must already
// carry its identity. An empty one is a sequencing bug in the caller, not
// bad input, so it panics rather than degrading.
func assertIdentified(set *mtgjson.Set) {
	for i := range set.Cards {
		if set.Cards[i].UUID == "" {
			panic("mtgbuild: linking before identity assignment: " + set.Cards[i].String())
		}
	}
}
