// Package mtgjson defines the canonical Card and Set model produced by the
// build engine, using the field names and JSON layout of the MTGJSON project.
package mtgjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Card describes a single printing, one physical card face in a released
// product. Source attributes are filled in by the raw conversion step and
// stay immutable afterwards; the remaining fields are derived by the engine.
type Card struct {
	Artist        string     `json:"artist,omitempty"`
	AsciiName     string     `json:"asciiName,omitempty"`
	BorderColor   string     `json:"borderColor,omitempty"`
	ColorIdentity []string   `json:"colorIdentity"`
	Colors        []string   `json:"colors"`
	FaceName      string     `json:"faceName,omitempty"`
	FlavorName    string     `json:"flavorName,omitempty"`
	Finishes      []string   `json:"finishes,omitempty"`
	FrameEffects  []string   `json:"frameEffects,omitempty"`
	FrameVersion  string     `json:"frameVersion,omitempty"`
	IsAlternative bool       `json:"isAlternative,omitempty"`
	IsFullArt     bool       `json:"isFullArt,omitempty"`
	IsOnlineOnly  bool       `json:"isOnlineOnly,omitempty"`
	IsPromo       bool       `json:"isPromo,omitempty"`
	IsRebalanced  bool       `json:"isRebalanced,omitempty"`
	Language      string     `json:"language,omitempty"`
	Layout        string     `json:"layout"`
	Legalities    Legalities `json:"legalities"`
	ManaCost      string     `json:"manaCost,omitempty"`
	ManaValue     float64    `json:"manaValue"`
	Name          string     `json:"name"`
	Names         []string   `json:"names,omitempty"`
	Number        string     `json:"number"`
	Power         string     `json:"power,omitempty"`
	PromoTypes    []string   `json:"promoTypes,omitempty"`
	Rarity        string     `json:"rarity,omitempty"`
	SetCode       string     `json:"setCode"`
	Side          string     `json:"side,omitempty"`
	Subtypes      []string   `json:"subtypes"`
	Supertypes    []string   `json:"supertypes"`
	Toughness     string     `json:"toughness,omitempty"`
	Type          string     `json:"type"`
	Types         []string   `json:"types"`
	UUID          string     `json:"uuid"`
	Watermark     string     `json:"watermark,omitempty"`

	// Identifiers carries the external ids handed over by the provider
	// (scryfallId, scryfallIllustrationId) plus the legacy mtgjsonV4Id
	// assigned by the engine.
	Identifiers map[string]string `json:"identifiers"`

	// Cross-links within the same set, all expressed as card UUIDs.
	Variations          []string `json:"variations,omitempty"`
	OtherFaceIds        []string `json:"otherFaceIds,omitempty"`
	OriginalPrintings   []string `json:"originalPrintings,omitempty"`
	RebalancedPrintings []string `json:"rebalancedPrintings,omitempty"`
}

// Card implements the Stringer interface
func (c Card) String() string {
	if c.Number == "" {
		return fmt.Sprintf("[%s] %s", c.SetCode, c.Name)
	}
	return fmt.Sprintf("%s|%s|%s", c.Name, c.SetCode, c.Number)
}

// Set is an ordered collection of printings plus the metadata needed by the
// linking passes and the two sizes derived from the linked collection.
type Set struct {
	BaseSetSize   int    `json:"baseSetSize"`
	Cards         []Card `json:"cards"`
	Code          string `json:"code"`
	IsFoilOnly    bool   `json:"isFoilOnly,omitempty"`
	IsNonFoilOnly bool   `json:"isNonFoilOnly,omitempty"`
	IsOnlineOnly  bool   `json:"isOnlineOnly,omitempty"`
	KeyruneCode   string `json:"keyruneCode,omitempty"`
	Name          string `json:"name"`
	ParentCode    string `json:"parentCode,omitempty"`
	ReleaseDate   string `json:"releaseDate"`
	Tokens        []Card `json:"tokens,omitempty"`
	TotalSetSize  int    `json:"totalSetSize"`
	Type          string `json:"type,omitempty"`
}

// Legalities is the fixed-field legality record. Formats whose status is
// "not_legal" upstream stay empty and drop out of the JSON output.
type Legalities struct {
	Brawl     string `json:"brawl,omitempty"`
	Commander string `json:"commander,omitempty"`
	Duel      string `json:"duel,omitempty"`
	Legacy    string `json:"legacy,omitempty"`
	Modern    string `json:"modern,omitempty"`
	Pauper    string `json:"pauper,omitempty"`
	Penny     string `json:"penny,omitempty"`
	Pioneer   string `json:"pioneer,omitempty"`
	Standard  string `json:"standard,omitempty"`
	Vintage   string `json:"vintage,omitempty"`
}

const (
	LayoutAdventure        = "adventure"
	LayoutAftermath        = "aftermath"
	LayoutArtSeries        = "art_series"
	LayoutDoubleFacedToken = "double_faced_token"
	LayoutEmblem           = "emblem"
	LayoutFlip             = "flip"
	LayoutMeld             = "meld"
	LayoutNormal           = "normal"
	LayoutSplit            = "split"
	LayoutToken            = "token"
	LayoutTransform        = "transform"

	FinishNonfoil = "nonfoil"
	FinishFoil    = "foil"
	FinishEtched  = "etched"

	FrameEffectExtendedArt = "extendedart"
	FrameEffectInverted    = "inverted"
	FrameEffectShowcase    = "showcase"
	FrameEffectShattered   = "shatteredglass"

	PromoTypeBoosterfun = "boosterfun"
	PromoTypeBundle     = "bundle"
	PromoTypeBuyABox    = "buyabox"
	PromoTypePrerelease = "prerelease"
	PromoTypePromoPack  = "promopack"
	PromoTypeSerialized = "serialized"

	BorderColorBlack      = "black"
	BorderColorBorderless = "borderless"
	BorderColorSilver     = "silver"
	BorderColorWhite      = "white"

	SuffixSpecial = "★"
	SuffixVariant = "†"
	SuffixPhiLow  = "φ"
)

func (c *Card) HasFinish(fi string) bool {
	return slices.Contains(c.Finishes, fi)
}

func (c *Card) HasFrameEffect(fe string) bool {
	return slices.Contains(c.FrameEffects, fe)
}

func (c *Card) HasPromoType(pt string) bool {
	return slices.Contains(c.PromoTypes, pt)
}

// IsToken reports whether the printing uses one of the non-playable layouts
// that are hashed with the token identity scheme.
func (c *Card) IsToken() bool {
	switch c.Layout {
	case LayoutToken, LayoutDoubleFacedToken, LayoutEmblem, LayoutArtSeries:
		return true
	}
	return false
}

// AllPrintings is the top level container for a full card database, one Set
// per set code.
type AllPrintings struct {
	Data map[string]*Set `json:"data"`
	Meta struct {
		Date    string `json:"date"`
		Version string `json:"version"`
	} `json:"meta"`
}

var ErrEmptyDatabase = errors.New("empty AllPrintings file")

// LoadAllPrintings decodes an AllPrintings payload, the consumer-side entry
// point used by tests and downstream tooling.
func LoadAllPrintings(r io.Reader) (AllPrintings, error) {
	var payload AllPrintings
	err := json.NewDecoder(r).Decode(&payload)
	if err != nil {
		return AllPrintings{}, err
	}
	if len(payload.Data) == 0 {
		return AllPrintings{}, ErrEmptyDatabase
	}
	return payload, nil
}
