package mtgbuild

// The fixed supertype vocabulary. Any other word on the left side of the
// type line is a card type.
var cardSupertypes = map[string]bool{
	"Basic":     true,
	"Host":      true,
	"Legendary": true,
	"Ongoing":   true,
	"Snow":      true,
	"World":     true,
}

// Subtypes containing a space, which must survive the whitespace split of
// the right side of the type line.
var multiWordSubtypes = []string{
	"Time Lord",
}

// Manual base set size corrections for sets whose printed checklist cannot
// be derived from the card list alone, keyed by set code.
var baseSetSizeOverrides = map[string]int{
	"AER": 184,
	"AKH": 269,
	"BBD": 254,
	"DOM": 269,
	"EMN": 205,
	"GRN": 259,
	"HOU": 199,
	"KTK": 254,
	"M19": 280,
	"RIX": 196,
	"RNA": 259,
	"SOI": 297,
	"UST": 216,
	"WAR": 264,
	"XLN": 279,
}

// Sets that mix foil-only variants into the base checklist, where the
// finishes list takes part in telling duplicate printings apart.
var finishesInDistinctKey = map[string]bool{
	"10E": true,
	"UNH": true,
}
