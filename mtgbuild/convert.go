package mtgbuild

import (
	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

// RawCard is the decoded provider payload for one printing, as handed over
// by the out-of-scope fetch step.
type RawCard map[string]interface{}

// RawSet is the decoded provider payload for one set, holding its metadata
// plus the raw card and token lists.
type RawSet map[string]interface{}

// CardFromRaw copies the source attributes of a printing out of the raw
// provider map. Missing or mistyped values fall back to the zero value;
// derived fields stay unset until the per-card build phase fills them.
func CardFromRaw(raw RawCard) mtgjson.Card {
	card := mtgjson.Card{
		Artist:       rawString(raw, "artist"),
		BorderColor:  rawString(raw, "border_color"),
		FaceName:     rawString(raw, "face_name"),
		Finishes:     rawStringSlice(raw, "finishes"),
		FlavorName:   rawString(raw, "flavor_name"),
		FrameEffects: rawStringSlice(raw, "frame_effects"),
		FrameVersion: rawString(raw, "frame"),
		IsFullArt:    rawBool(raw, "full_art"),
		IsPromo:      rawBool(raw, "is_promo"),
		IsRebalanced: rawBool(raw, "is_rebalanced"),
		Language:     rawString(raw, "language"),
		Layout:       rawString(raw, "layout"),
		ManaCost:     rawString(raw, "mana_cost"),
		Name:         rawString(raw, "name"),
		Names:        rawStringSlice(raw, "names"),
		Number:       rawString(raw, "collector_number"),
		Power:        rawString(raw, "power"),
		PromoTypes:   rawStringSlice(raw, "promo_types"),
		Rarity:       rawString(raw, "rarity"),
		Side:         rawString(raw, "side"),
		Toughness:    rawString(raw, "toughness"),
		Type:         rawString(raw, "type_line"),
		Watermark:    rawString(raw, "watermark"),

		Identifiers: map[string]string{},
	}

	for key, identifier := range map[string]string{
		"id":              keyScryfallID,
		"illustration_id": keyScryfallIllustrationID,
		"oracle_id":       "scryfallOracleId",
	} {
		if value := rawString(raw, key); value != "" {
			card.Identifiers[identifier] = value
		}
	}

	return card
}

// SetFromRaw copies the set-level metadata out of the raw provider map,
// leaving the card lists for the build phases.
func SetFromRaw(raw RawSet) *mtgjson.Set {
	return &mtgjson.Set{
		Code:        rawString(raw, "code"),
		Name:        rawString(raw, "name"),
		ReleaseDate: rawString(raw, "released_at"),
		Type:        rawString(raw, "set_type"),
	}
}

func rawString(raw map[string]interface{}, key string) string {
	value, _ := raw[key].(string)
	return value
}

func rawBool(raw map[string]interface{}, key string) bool {
	value, _ := raw[key].(bool)
	return value
}

func rawStringSlice(raw map[string]interface{}, key string) []string {
	list, ok := raw[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(list))
	for _, entry := range list {
		if value, ok := entry.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

func rawStringMap(raw map[string]interface{}, key string) map[string]string {
	entries, ok := raw[key].(map[string]interface{})
	if !ok {
		return nil
	}
	values := make(map[string]string, len(entries))
	for entryKey, entry := range entries {
		if value, ok := entry.(string); ok {
			values[entryKey] = value
		}
	}
	return values
}

// rawCardList pulls the raw card maps under key, tolerating both decoded
// JSON ([]interface{}) and pre-typed []RawCard test fixtures.
func rawCardList(raw RawSet, key string) []RawCard {
	switch list := raw[key].(type) {
	case []RawCard:
		return list
	case []interface{}:
		cards := make([]RawCard, 0, len(list))
		for _, entry := range list {
			if card, ok := entry.(map[string]interface{}); ok {
				cards = append(cards, RawCard(card))
			}
		}
		return cards
	}
	return nil
}
