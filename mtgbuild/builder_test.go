package mtgbuild

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"testing"
)

func testRawSet() RawSet {
	meldGroup := []interface{}{"Gisela, the Broken Blade", "Brisela, Voice of Nightmares"}
	return RawSet{
		"code":        "TST",
		"name":        "Test Expansion",
		"released_at": "2016-07-22",
		"set_type":    "expansion",
		"cards": []RawCard{
			RawCard{
				"name":             "Bolt",
				"collector_number": "6★",
				"layout":           "normal",
				"mana_cost":        "{R}",
				"type_line":        "Instant",
				"id":               "sf-bolt-promo",
			},
			RawCard{
				"name":             "A-Shock",
				"collector_number": "A-140",
				"layout":           "normal",
				"mana_cost":        "{R}",
				"type_line":        "Instant",
				"id":               "sf-a-shock",
			},
			RawCard{
				"name":             "Brisela, Voice of Nightmares",
				"face_name":        "Brisela, Voice of Nightmares",
				"names":            meldGroup,
				"collector_number": "123b",
				"side":             "b",
				"layout":           "meld",
				"type_line":        "Legendary Creature — Eldrazi Angel",
				"power":            "9",
				"toughness":        "10",
				"id":               "sf-brisela",
			},
			RawCard{
				"name":             "Bolt",
				"collector_number": "5",
				"layout":           "normal",
				"mana_cost":        "{R}",
				"type_line":        "Instant",
				"id":               "sf-bolt",
				"legalities": map[string]interface{}{
					"modern": "legal",
					"penny":  "not_legal",
				},
			},
			RawCard{
				"name":             "Shock",
				"collector_number": "140",
				"layout":           "normal",
				"mana_cost":        "{R}",
				"type_line":        "Instant",
				"id":               "sf-shock",
			},
			RawCard{
				"name":             "Gisela, the Broken Blade",
				"face_name":        "Gisela, the Broken Blade",
				"names":            meldGroup,
				"collector_number": "123a",
				"side":             "a",
				"layout":           "meld",
				"mana_cost":        "{2}{W}{W}",
				"type_line":        "Legendary Creature — Angel Horror",
				"power":            "4",
				"toughness":        "3",
				"id":               "sf-gisela",
			},
		},
		"tokens": []RawCard{
			RawCard{
				"name":             "Elemental",
				"collector_number": "T1",
				"layout":           "token",
				"type_line":        "Token Creature — Elemental",
				"colors":           []interface{}{"R"},
				"power":            "1",
				"toughness":        "1",
				"id":               "sf-elemental",
			},
		},
	}
}

func TestBuildSet(t *testing.T) {
	builder := NewBuilder()
	set, err := builder.BuildSet(testRawSet())
	if err != nil {
		t.Fatalf("FAIL: %s", err.Error())
	}

	expected := []string{"5", "6★", "123a", "123b", "140", "A-140"}
	numbers := make([]string, 0, len(set.Cards))
	for i := range set.Cards {
		numbers = append(numbers, set.Cards[i].Number)
	}
	if !slices.Equal(numbers, expected) {
		t.Fatalf("FAIL: wrong canonical order %q", numbers)
	}

	bolt := &set.Cards[0]
	boltPromo := &set.Cards[1]
	gisela := &set.Cards[2]
	brisela := &set.Cards[3]
	shock := &set.Cards[4]
	aShock := &set.Cards[5]

	if !slices.Equal(bolt.Variations, []string{boltPromo.UUID}) {
		t.Errorf("FAIL: Expected bolt variations [%s] got %q", boltPromo.UUID, bolt.Variations)
	}
	if !slices.Equal(boltPromo.Variations, []string{bolt.UUID}) {
		t.Errorf("FAIL: Expected promo variations [%s] got %q", bolt.UUID, boltPromo.Variations)
	}

	if !slices.Equal(gisela.OtherFaceIds, []string{brisela.UUID}) {
		t.Errorf("FAIL: Expected meld front link [%s] got %q", brisela.UUID, gisela.OtherFaceIds)
	}
	if !slices.Equal(brisela.OtherFaceIds, []string{gisela.UUID}) {
		t.Errorf("FAIL: Expected meld back link [%s] got %q", gisela.UUID, brisela.OtherFaceIds)
	}

	if !aShock.IsRebalanced {
		t.Errorf("FAIL: A-Shock not flagged rebalanced")
	}
	if !slices.Equal(aShock.OriginalPrintings, []string{shock.UUID}) {
		t.Errorf("FAIL: Expected originals [%s] got %q", shock.UUID, aShock.OriginalPrintings)
	}
	if !slices.Equal(shock.RebalancedPrintings, []string{aShock.UUID}) {
		t.Errorf("FAIL: Expected rebalanced [%s] got %q", aShock.UUID, shock.RebalancedPrintings)
	}

	if set.TotalSetSize != 5 {
		t.Errorf("FAIL: Expected total 5 got %d", set.TotalSetSize)
	}
	if set.BaseSetSize != 5 {
		t.Errorf("FAIL: Expected base 5 got %d", set.BaseSetSize)
	}

	if bolt.ManaValue != 1 || !slices.Equal(bolt.Colors, []string{"R"}) {
		t.Errorf("FAIL: wrong bolt derivation %v/%q", bolt.ManaValue, bolt.Colors)
	}
	if bolt.Legalities.Modern != "Legal" || bolt.Legalities.Penny != "" {
		t.Errorf("FAIL: wrong bolt legalities %+v", bolt.Legalities)
	}
	if !slices.Equal(gisela.Supertypes, []string{"Legendary"}) ||
		!slices.Equal(gisela.Subtypes, []string{"Angel", "Horror"}) {
		t.Errorf("FAIL: wrong gisela type split %q/%q", gisela.Supertypes, gisela.Subtypes)
	}

	if len(set.Tokens) != 1 {
		t.Fatalf("FAIL: Expected 1 token got %d", len(set.Tokens))
	}
	token := &set.Tokens[0]
	if token.UUID == "" {
		t.Errorf("FAIL: token has no uuid")
	}
	if len(token.Variations) != 0 || len(token.OtherFaceIds) != 0 {
		t.Errorf("FAIL: token went through linking")
	}
	if !slices.Equal(token.Colors, []string{"R"}) {
		t.Errorf("FAIL: token colors fallback broken: %q", token.Colors)
	}

	if findings := ValidateSet(set); len(findings) != 0 {
		t.Errorf("FAIL: built set has findings: %v", findings)
	}
	t.Log("PASS: full build")
}

func TestBuildSetColorIdentityIndependent(t *testing.T) {
	builder := NewBuilder()
	set, err := builder.BuildSet(testRawSet())
	if err != nil {
		t.Fatalf("FAIL: %s", err.Error())
	}

	bolt := &set.Cards[0]
	if !slices.Equal(bolt.ColorIdentity, []string{"R"}) {
		t.Fatalf("FAIL: Expected [R] got %q", bolt.ColorIdentity)
	}
	bolt.Colors[0] = "G"
	if bolt.ColorIdentity[0] != "R" {
		t.Errorf("FAIL: color identity shares backing storage with colors")
	}
	t.Log("PASS: independent color fields")
}

func TestBuildSetDeterministic(t *testing.T) {
	builder := NewBuilder()
	builder.MaxConcurrency = 2

	first, err := builder.BuildSet(testRawSet())
	if err != nil {
		t.Fatalf("FAIL: %s", err.Error())
	}
	second, err := builder.BuildSet(testRawSet())
	if err != nil {
		t.Fatalf("FAIL: %s", err.Error())
	}

	if len(first.Cards) != len(second.Cards) {
		t.Fatalf("FAIL: card counts differ: %d vs %d", len(first.Cards), len(second.Cards))
	}
	for i := range first.Cards {
		if first.Cards[i].UUID != second.Cards[i].UUID {
			t.Errorf("FAIL: position %d uuid drifted: %s vs %s",
				i, first.Cards[i].UUID, second.Cards[i].UUID)
		}
	}
	t.Log("PASS: repeat builds agree")
}

func TestBuildSetNoCode(t *testing.T) {
	builder := NewBuilder()
	_, err := builder.BuildSet(RawSet{"name": "Nameless"})
	if !errors.Is(err, ErrNoSetCode) {
		t.Errorf("FAIL: Expected ErrNoSetCode got %v", err)
		return
	}
	t.Log("PASS:", err.Error())
}

func TestBuildSetLogging(t *testing.T) {
	var lines []string
	builder := NewBuilder()
	builder.LogCallback = func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	}

	_, err := builder.BuildSet(testRawSet())
	if err != nil {
		t.Fatalf("FAIL: %s", err.Error())
	}

	if len(lines) < 2 {
		t.Fatalf("FAIL: Expected progress lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "TST") {
			t.Errorf("FAIL: line misses the set code: %s", line)
		}
	}
	t.Log("PASS:", lines[0])
}

func TestSetGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(log.New(&buf, "", 0))
	defer SetGlobalLogger(log.New(io.Discard, "", log.LstdFlags))

	builder := NewBuilder()
	if _, err := builder.BuildSet(testRawSet()); err != nil {
		t.Fatalf("FAIL: %s", err.Error())
	}

	out := buf.String()
	if !strings.Contains(out, "Rebalanced:") {
		t.Errorf("FAIL: no rebalance line in %q", out)
	}
	if !strings.Contains(out, "Alternative printing:") {
		t.Errorf("FAIL: no alternative line in %q", out)
	}
	t.Log("PASS: diagnostics routed")
}

func TestBuildAllPrintings(t *testing.T) {
	builder := NewBuilder()
	rawSets := []RawSet{
		testRawSet(),
		RawSet{
			"code":        "TS2",
			"name":        "Second Test",
			"released_at": "2017-01-01",
			"set_type":    "expansion",
			"cards": []RawCard{
				RawCard{
					"name":             "Opt",
					"collector_number": "60",
					"layout":           "normal",
					"mana_cost":        "{U}",
					"type_line":        "Instant",
					"id":               "sf-opt",
				},
			},
		},
	}

	allPrintings, err := builder.BuildAllPrintings(rawSets)
	if err != nil {
		t.Fatalf("FAIL: %s", err.Error())
	}

	if len(allPrintings.Data) != 2 {
		t.Fatalf("FAIL: Expected 2 sets got %d", len(allPrintings.Data))
	}
	if allPrintings.Data["TST"] == nil || allPrintings.Data["TS2"] == nil {
		t.Fatalf("FAIL: sets not keyed by code: %v", allPrintings.Data)
	}
	if allPrintings.Data["TS2"].Cards[0].Name != "Opt" {
		t.Errorf("FAIL: wrong card in TS2")
	}
	if allPrintings.Meta.Version != BuildVersion {
		t.Errorf("FAIL: wrong version '%s'", allPrintings.Meta.Version)
	}
	if len(allPrintings.Meta.Date) != len("2006-01-02") {
		t.Errorf("FAIL: wrong date stamp '%s'", allPrintings.Meta.Date)
	}
	t.Log("PASS:", allPrintings.Meta.Version)
}
