package mtgbuild

import (
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/mtgbuild/go-mtgbuild/mtgjson"
	"github.com/mtgbuild/go-mtgbuild/parallel"
)

// Finding is one linkage-integrity defect discovered in a built set. The
// defects worth surfacing are duplicate identities and cross-links pointing
// outside the set; both indicate a broken build rather than bad input.
type Finding struct {
	SetCode string
	UUID    string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.SetCode, f.UUID, f.Message)
}

// ValidateSet checks a built set for duplicate primary identities and for
// variation, face and rebalance links that reference identities not present
// in the set. Findings are reported, never fatal.
func ValidateSet(set *mtgjson.Set) []Finding {
	var findings []Finding
	report := func(uuid, format string, a ...interface{}) {
		findings = append(findings, Finding{
			SetCode: set.Code,
			UUID:    uuid,
			Message: fmt.Sprintf(format, a...),
		})
	}

	known := make(map[string]bool, len(set.Cards))
	for i := range set.Cards {
		uuid := set.Cards[i].UUID
		if known[uuid] {
			report(uuid, "duplicate uuid (%s)", set.Cards[i].String())
		}
		known[uuid] = true
	}

	for i := range set.Cards {
		card := &set.Cards[i]
		links := []struct {
			field string
			ids   []string
		}{
			{"variations", card.Variations},
			{"otherFaceIds", card.OtherFaceIds},
			{"originalPrintings", card.OriginalPrintings},
			{"rebalancedPrintings", card.RebalancedPrintings},
		}
		for _, link := range links {
			for _, id := range link.ids {
				if !known[id] {
					report(card.UUID, "%s references unknown uuid %s", link.field, id)
				}
			}
		}
	}

	return findings
}

// ValidateAllPrintings runs ValidateSet over every set in a collection,
// fanning out across workers. Findings come back grouped by set code, in
// code order.
func (b *Builder) ValidateAllPrintings(allPrintings mtgjson.AllPrintings) []Finding {
	codes := make([]string, 0, len(allPrintings.Data))
	for code := range allPrintings.Data {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	findings, _ := parallel.FlatMap(codes, b.MaxConcurrency, func(code string) ([]Finding, error) {
		return ValidateSet(allPrintings.Data[code]), nil
	})
	return findings
}

// SetSummary is a small per-set report for operator sanity checks after a
// build.
type SetSummary struct {
	Code         string
	Cards        int
	Tokens       int
	BaseSetSize  int
	TotalSetSize int
	ColorCounts  map[string]int
	ManaValues   map[string]float64
}

var summaryParameters = []struct {
	Name      string
	StatsFunc func(values []float64) (float64, error)
}{
	{
		Name: "Mean",
		StatsFunc: func(values []float64) (float64, error) {
			return stats.Mean(values)
		},
	},
	{
		Name: "Median",
		StatsFunc: func(values []float64) (float64, error) {
			return stats.Median(values)
		},
	},
	{
		Name: "StdDev",
		StatsFunc: func(values []float64) (float64, error) {
			return stats.StandardDeviation(values)
		},
	},
}

// SummarizeSet condenses a built set into counts, the color distribution
// and the mana-value statistics of its cards.
func SummarizeSet(set *mtgjson.Set) SetSummary {
	summary := SetSummary{
		Code:         set.Code,
		Cards:        len(set.Cards),
		Tokens:       len(set.Tokens),
		BaseSetSize:  set.BaseSetSize,
		TotalSetSize: set.TotalSetSize,
		ColorCounts:  map[string]int{},
		ManaValues:   map[string]float64{},
	}

	values := make([]float64, 0, len(set.Cards))
	for i := range set.Cards {
		values = append(values, set.Cards[i].ManaValue)
		for _, color := range set.Cards[i].Colors {
			summary.ColorCounts[color]++
		}
	}

	for _, param := range summaryParameters {
		value, err := param.StatsFunc(values)
		if err != nil {
			continue
		}
		summary.ManaValues[param.Name] = value
	}

	return summary
}
