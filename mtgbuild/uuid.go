package mtgbuild

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

const (
	keyScryfallID             = "scryfallId"
	keyScryfallIllustrationID = "scryfallIllustrationId"
	keyMtgjsonV4ID            = "mtgjsonV4Id"
)

// AssignUUIDs computes the primary identity of a printing and the legacy
// v4-compatible identity, storing the latter under Identifiers. Both hashes
// read only source fields and the derived colors, so reassigning on an
// unchanged card always yields the same ids.
func AssignUUIDs(card *mtgjson.Card) {
	card.UUID = hashID(idSource(card))

	if card.Identifiers == nil {
		card.Identifiers = map[string]string{}
	}
	card.Identifiers[keyMtgjsonV4ID] = hashID(legacyIDSource(card))
}

func hashID(source string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(source)).String()
}

func idSource(card *mtgjson.Card) string {
	scryfallID := card.Identifiers[keyScryfallID]
	if card.IsToken() {
		return card.Name +
			card.FaceName +
			strings.Join(card.Colors, "") +
			card.Power +
			card.Toughness +
			card.Side +
			strippedSetCode(card.SetCode) +
			scryfallID
	}
	return "sf" +
		scryfallID +
		card.Identifiers[keyScryfallIllustrationID] +
		strings.ToLower(card.SetCode) +
		card.Name +
		card.FaceName
}

// legacyIDSource mirrors the hash recipe of the v4 generation, which never
// folded the face name into token ids nor set or artwork data into card ids.
func legacyIDSource(card *mtgjson.Card) string {
	scryfallID := card.Identifiers[keyScryfallID]
	if card.IsToken() {
		return card.Name +
			strings.Join(card.Colors, "") +
			card.Power +
			card.Toughness +
			card.Side +
			strippedSetCode(card.SetCode) +
			scryfallID
	}
	return "sf" + scryfallID + card.Name
}

// strippedSetCode lowercases a set code and drops its first character, the
// historical token set prefix.
func strippedSetCode(code string) string {
	code = strings.ToLower(code)
	if code == "" {
		return code
	}
	return code[1:]
}
