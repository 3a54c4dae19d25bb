package otcat

import "testing"

func TestFeatureTagForRegisteredPairs(t *testing.T) {
	cases := []struct {
		typ, sel uint16
		tag      string
	}{
		{TypeVerticalPosition, 1, "sups"},
		{TypeVerticalPosition, 2, "subs"},
		{TypeLigatures, 2, "liga"},
		{TypeFractions, 2, "frac"},
		{TypeTypographicExtras, 4, "zero"},
		{TypeLowerCase, 1, "smcp"},
		{TypeStylisticAlternatives, 6, "ss03"},
		{TypeStylisticAlternatives, 40, "ss20"},
		{TypeCharacterAlternatives, 7, "cv07"},
	}
	for _, c := range cases {
		tag, ok := FeatureTag(c.typ, c.sel)
		if !ok {
			t.Fatalf("expected (%d, %d) to map to a feature tag", c.typ, c.sel)
		}
		if tag != c.tag {
			t.Errorf("(%d, %d): expected tag %q, got %q", c.typ, c.sel, c.tag, tag)
		}
	}
}

func TestFeatureTagForUnmappedPairs(t *testing.T) {
	unmapped := []struct{ typ, sel uint16 }{
		{200, 1},                         // unknown type
		{TypeVerticalPosition, 77},       // unknown selector
		{TypeStylisticAlternatives, 3},   // odd selectors are the "off" side
		{TypeStylisticAlternatives, 42},  // beyond set 20
		{TypeCharacterAlternatives, 100}, // beyond cv99
	}
	for _, c := range unmapped {
		if tag, ok := FeatureTag(c.typ, c.sel); ok {
			t.Errorf("(%d, %d): expected no mapping, got %q", c.typ, c.sel, tag)
		}
	}
}

func TestPairForTagRoundtrip(t *testing.T) {
	for _, tag := range []string{"liga", "sups", "subs", "smcp", "ss03", "ss20", "cv42"} {
		typ, sel, ok := pairForTag(tag)
		if !ok {
			t.Fatalf("expected pair for tag %q", tag)
		}
		back, ok := FeatureTag(typ, sel)
		if !ok || back != tag {
			t.Errorf("tag %q maps to (%d, %d) but back to %q", tag, typ, sel, back)
		}
	}
}

func TestPairForUnknownTag(t *testing.T) {
	for _, tag := range []string{"ccmp", "kern", "mark", "ss00", "ss21", "cv00", "xs03"} {
		if typ, sel, ok := pairForTag(tag); ok {
			t.Errorf("tag %q: expected no pair, got (%d, %d)", tag, typ, sel)
		}
	}
}
