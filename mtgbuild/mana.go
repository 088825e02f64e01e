package mtgbuild

import (
	"strconv"
	"strings"
)

var colorOrder = []string{"W", "U", "B", "R", "G"}

// ManaValue computes the mana value of a brace-encoded cost such as
// "{2}{W}{W}". Numeric symbols add their face value, variable symbols (X,
// Y, Z) add zero, half symbols (H prefix) add one half and every other
// symbol adds one. Hybrid and Phyrexian symbols count only their left
// component. Unknown input degrades to zero, never an error.
func ManaValue(manaCost string) float64 {
	var value float64
	for _, symbol := range manaSymbols(manaCost) {
		if idx := strings.Index(symbol, "/"); idx != -1 {
			symbol = symbol[:idx]
		}
		if num, err := strconv.Atoi(symbol); err == nil {
			value += float64(num)
			continue
		}
		switch {
		case symbol == "X" || symbol == "Y" || symbol == "Z":
		case strings.HasPrefix(symbol, "H"):
			value += 0.5
		default:
			value++
		}
	}
	return value
}

// CardColors returns the colors present in a mana cost, in WUBRG order.
func CardColors(manaCost string) []string {
	var colors []string
	for _, color := range colorOrder {
		if strings.Contains(manaCost, color) {
			colors = append(colors, color)
		}
	}
	return colors
}

// manaSymbols extracts the contents of every {...} group, skipping any
// stray text between groups.
func manaSymbols(manaCost string) []string {
	var symbols []string
	for {
		start := strings.Index(manaCost, "{")
		if start < 0 {
			break
		}
		end := strings.Index(manaCost[start:], "}")
		if end < 0 {
			break
		}
		symbols = append(symbols, manaCost[start+1:start+end])
		manaCost = manaCost[start+end+1:]
	}
	return symbols
}
