package mtgbuild

import (
	"strings"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

// Digital-only rebalanced reprints carry this name prefix.
const rebalancedPrefix = "A-"

// linkRebalanced pairs rebalanced printings with their originals, in both
// directions. It also settles the rebalanced flag for prefix-named cards
// whose provider record left it unset, so that later passes only need the
// flag.
func linkRebalanced(set *mtgjson.Set) {
	assertIdentified(set)

	cards := set.Cards
	for i := range cards {
		card := &cards[i]
		if !card.IsRebalanced && !strings.HasPrefix(card.Name, rebalancedPrefix) {
			continue
		}
		card.IsRebalanced = true

		original := strings.TrimPrefix(card.Name, rebalancedPrefix)
		for j := range cards {
			other := &cards[j]
			if other.UUID == card.UUID || other.Name != original {
				continue
			}
			if other.IsRebalanced || strings.HasPrefix(other.Name, rebalancedPrefix) {
				continue
			}
			logger.Println("Rebalanced:", card.String(), "->", other.String())
			card.OriginalPrintings = append(card.OriginalPrintings, other.UUID)
			other.RebalancedPrintings = append(other.RebalancedPrintings, card.UUID)
		}
	}
}
