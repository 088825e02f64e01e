package mtgbuild

import (
	"errors"
	"io"
	"log"
	"slices"
	"time"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
	"github.com/mtgbuild/go-mtgbuild/parallel"
)

// LogCallbackFunc can be installed on a Builder to receive progress lines,
// with arguments following fmt.Printf conventions.
type LogCallbackFunc func(format string, a ...interface{})

var logger = log.New(io.Discard, "", log.LstdFlags)

// SetGlobalLogger routes the per-card diagnostic lines emitted by the
// linking passes. Silent by default.
func SetGlobalLogger(userLogger *log.Logger) {
	logger = userLogger
}

const defaultConcurrency = 8

// BuildVersion is stamped into the Meta block of assembled collections.
const BuildVersion = "5.1.0"

var ErrNoSetCode = errors.New("raw set carries no code")

// Builder turns raw provider sets into the normalized collection model.
type Builder struct {
	// LogCallback, when set, receives progress lines during builds.
	LogCallback LogCallbackFunc

	// MaxConcurrency bounds the workers of the per-card phase and of
	// multi-set builds.
	MaxConcurrency int
}

func NewBuilder() *Builder {
	b := Builder{}
	b.MaxConcurrency = defaultConcurrency
	return &b
}

func (b *Builder) printf(format string, a ...interface{}) {
	if b.LogCallback != nil {
		b.LogCallback("[BUILD] "+format, a...)
	}
}

// BuildSet assembles one set: raw conversion, the per-card phase fanned out
// across workers, one canonical sort, the linking passes in sequence and
// finally the set sizes. Malformed individual cards degrade to zero-value
// derived fields; only a set without a code is refused outright.
func (b *Builder) BuildSet(raw RawSet) (*mtgjson.Set, error) {
	set := SetFromRaw(raw)
	if set.Code == "" {
		return nil, ErrNoSetCode
	}

	rawCards := rawCardList(raw, "cards")
	rawTokens := rawCardList(raw, "tokens")
	b.printf("Building %s with %d cards and %d tokens", set.Code, len(rawCards), len(rawTokens))

	var err error
	set.Cards, err = parallel.Map(rawCards, b.MaxConcurrency, func(rawCard RawCard) (mtgjson.Card, error) {
		return buildCard(rawCard, set.Code), nil
	})
	if err != nil {
		return nil, err
	}
	set.Tokens, err = parallel.Map(rawTokens, b.MaxConcurrency, func(rawCard RawCard) (mtgjson.Card, error) {
		return buildCard(rawCard, set.Code), nil
	})
	if err != nil {
		return nil, err
	}

	// Single canonical sort. Every later pass iterates in this order and
	// none of them reorders the list.
	sortCards(set.Cards)
	sortCards(set.Tokens)

	linkVariations(set)
	markAlternatives(set)
	linkFaces(set)
	linkRebalanced(set)

	calculateSetSizes(set)
	b.printf("%s: %d cards, base size %d, total size %d", set.Code, len(set.Cards), set.BaseSetSize, set.TotalSetSize)

	return set, nil
}

// BuildAllPrintings assembles a whole collection, building sets in parallel
// and keying them by set code.
func (b *Builder) BuildAllPrintings(rawSets []RawSet) (mtgjson.AllPrintings, error) {
	sets, err := parallel.Map(rawSets, b.MaxConcurrency, b.BuildSet)
	if err != nil {
		return mtgjson.AllPrintings{}, err
	}

	allPrintings := mtgjson.AllPrintings{
		Data: make(map[string]*mtgjson.Set, len(sets)),
	}
	for _, set := range sets {
		allPrintings.Data[set.Code] = set
	}
	allPrintings.Meta.Date = time.Now().Format("2006-01-02")
	allPrintings.Meta.Version = BuildVersion

	return allPrintings, nil
}

// buildCard runs the whole per-card phase: raw conversion followed by every
// derived field. Cards are self-contained at this stage, which is what lets
// BuildSet fan the phase out across workers.
func buildCard(raw RawCard, setCode string) mtgjson.Card {
	card := CardFromRaw(raw)
	card.SetCode = setCode

	card.Supertypes, card.Types, card.Subtypes = ParseTypeLine(card.Type)
	card.ManaValue = ManaValue(card.ManaCost)

	card.Colors = CardColors(card.ManaCost)
	if len(card.Colors) == 0 {
		card.Colors = rawStringSlice(raw, "colors")
	}
	if card.Colors == nil {
		card.Colors = []string{}
	}
	card.ColorIdentity = slices.Clone(card.Colors)

	card.Legalities = NormalizeLegalities(rawStringMap(raw, "legalities"))
	card.AsciiName = asciiName(card.Name)

	AssignUUIDs(&card)
	return card
}
