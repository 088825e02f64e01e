package mtgbuild

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

// NormalizeLegalities converts a provider status map into the fixed
// per-format record. Entries with a "not_legal" status are dropped along
// with formats the record does not track, and surviving statuses are
// capitalized ("legal" to "Legal").
func NormalizeLegalities(raw map[string]string) mtgjson.Legalities {
	var legalities mtgjson.Legalities
	for format, status := range raw {
		if status == "not_legal" {
			continue
		}
		status = cases.Title(language.English).String(status)
		switch format {
		case "brawl":
			legalities.Brawl = status
		case "commander":
			legalities.Commander = status
		case "duel":
			legalities.Duel = status
		case "legacy":
			legalities.Legacy = status
		case "modern":
			legalities.Modern = status
		case "pauper":
			legalities.Pauper = status
		case "penny":
			legalities.Penny = status
		case "pioneer":
			legalities.Pioneer = status
		case "standard":
			legalities.Standard = status
		case "vintage":
			legalities.Vintage = status
		}
	}
	return legalities
}
