package mtgbuild

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
)

// Collector numbers with no digits at all sort after every real number.
const missingNumberValue = 100000

// CompareCards defines the canonical order of printings within a set,
// driven by the collector number string and the side letter. It returns a
// negative value when a sorts first, positive when b does and zero only for
// identical number/side pairs.
func CompareCards(a, b *mtgjson.Card) int {
	return compareNumbers(a.Number, a.Side, b.Number, b.Side)
}

func compareNumbers(numA, sideA, numB, sideB string) int {
	if numA == numB {
		return strings.Compare(sideA, sideB)
	}

	digitsA := digitRun(numA)
	digitsB := digitRun(numB)
	valueA := numberValue(digitsA)
	valueB := numberValue(digitsB)
	pureA := numA == digitsA
	pureB := numB == digitsB

	switch {
	case pureA && pureB:
		if valueA != valueB {
			return cmp.Compare(valueA, valueB)
		}
		// Same integer with different text means stray leading zeros, so
		// the shorter spelling is the earlier printing.
		if len(digitsA) != len(digitsB) {
			return cmp.Compare(len(digitsA), len(digitsB))
		}
		return strings.Compare(sideA, sideB)

	case pureA:
		if valueA != valueB {
			return cmp.Compare(valueA, valueB)
		}
		return -1

	case pureB:
		if valueA != valueB {
			return cmp.Compare(valueA, valueB)
		}
		return 1

	default:
		if digitsA == digitsB {
			if sideA != "" || sideB != "" {
				return strings.Compare(sideA, sideB)
			}
			return strings.Compare(numA, numB)
		}
		if valueA != valueB {
			return cmp.Compare(valueA, valueB)
		}
		if len(digitsA) != len(digitsB) {
			return cmp.Compare(len(digitsA), len(digitsB))
		}
		return strings.Compare(sideA, sideB)
	}
}

// digitRun returns the first contiguous run of ASCII digits in number, or
// an empty string when there is none.
func digitRun(number string) string {
	start := -1
	for i, r := range number {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return number[start:i]
		}
	}
	if start < 0 {
		return ""
	}
	return number[start:]
}

func numberValue(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return missingNumberValue
	}
	return value
}

// sortCards puts a card list into canonical order. The sort is stable so
// that equal number/side pairs keep their source order, which the linkers
// rely on for canonical-first alternate detection.
func sortCards(cards []mtgjson.Card) {
	slices.SortStableFunc(cards, func(a, b mtgjson.Card) int {
		return CompareCards(&a, &b)
	})
}
