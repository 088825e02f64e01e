package mtgbuild

import (
	"slices"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

// linkFaces ties the printings of a multi-faced card together. A printing
// participates when it carries the face-name group in Names; every other
// printing whose face name belongs to that group is a sibling face. Meld
// printings pair across sides regardless of number, while every other
// layout requires the counterpart number to match when it has one at all.
func linkFaces(set *mtgjson.Set) {
	assertIdentified(set)

	cards := set.Cards
	for i := range cards {
		card := &cards[i]
		if len(card.Names) == 0 {
			continue
		}
		for j := range cards {
			other := &cards[j]
			if other.UUID == card.UUID {
				continue
			}
			if !slices.Contains(card.Names, other.FaceName) {
				continue
			}
			if card.Layout == mtgjson.LayoutMeld {
				if other.Side == card.Side {
					continue
				}
			} else if other.Number != "" && other.Number != card.Number {
				continue
			}
			card.OtherFaceIds = append(card.OtherFaceIds, other.UUID)
		}
	}
}
