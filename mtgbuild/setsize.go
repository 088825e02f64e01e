package mtgbuild

import (
	"strconv"
	"time"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

// Sets released after this date mix booster-fun promos into the main
// checklist, right after the numbered base cards.
var PromosForEverybodyYay = time.Date(2019, time.October, 1, 0, 0, 0, 0, time.UTC)

// calculateSetSizes derives the two set sizes from the finished card list.
// The total counts every printing except rebalanced ones, and the base size
// never exceeds it.
func calculateSetSizes(set *mtgjson.Set) {
	total := 0
	for i := range set.Cards {
		if !set.Cards[i].IsRebalanced {
			total++
		}
	}
	set.TotalSetSize = total

	set.BaseSetSize = baseSetSize(set)
	if set.BaseSetSize > set.TotalSetSize {
		set.BaseSetSize = set.TotalSetSize
	}
}

// baseSetSize is the size of the printed base checklist: the manual
// override when the set has one, else for sets new enough to hide promos in
// the checklist the collector number of the first booster-fun printing
// marks where the base cards ended, else the full printing count.
func baseSetSize(set *mtgjson.Set) int {
	if size, found := baseSetSizeOverrides[set.Code]; found {
		logger.Println("Base size override for", set.Code)
		return size
	}

	releaseDate, err := time.Parse("2006-01-02", set.ReleaseDate)
	if err == nil && releaseDate.After(PromosForEverybodyYay) {
		for i := range set.Cards {
			if !set.Cards[i].HasPromoType(mtgjson.PromoTypeBoosterfun) {
				continue
			}
			if size, err := strconv.Atoi(digitRun(set.Cards[i].Number)); err == nil {
				return size - 1
			}
			break
		}
	}

	return len(set.Cards)
}
