package otshape

import (
	"errors"
	"testing"

	"github.com/npillmayer/otfeat"
)

// mapShaper is a deterministic test double: one glyph per input rune, GID =
// rune value, except that an activation remaps the runes listed in subst.
type mapShaper struct {
	subst map[rune]GlyphID
	fail  error
}

func (m *mapShaper) Shape(f *otfeat.Font, text string, act *Activation) (GlyphRun, error) {
	if m.fail != nil {
		return GlyphRun{}, m.fail
	}
	run := GlyphRun{}
	for i, r := range []rune(text) {
		gid := GlyphID(r)
		if act != nil {
			if mapped, ok := m.subst[r]; ok {
				gid = mapped
			}
		}
		run.Glyphs = append(run.Glyphs, Glyph{GID: gid, Cluster: i})
	}
	return run, nil
}

func TestApplyFeatureReturnsBothRuns(t *testing.T) {
	s := &mapShaper{subst: map[rune]GlyphID{'2': 0x2082}}
	baseline, featured, err := ApplyFeature(s, nil, "H2O", 10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if baseline.Len() != 3 || featured.Len() != 3 {
		t.Fatalf("expected 3 glyphs in both runs, have %d and %d", baseline.Len(), featured.Len())
	}
	if baseline.Equal(featured) {
		t.Errorf("expected the activation to change the run")
	}
	if featured.Glyphs[1].GID != 0x2082 {
		t.Errorf("expected the digit to be substituted, got %v", featured.Glyphs[1].GID)
	}
	if baseline.Glyphs[0].GID != featured.Glyphs[0].GID {
		t.Errorf("expected unsubstituted glyphs to keep their identity")
	}
}

func TestApplyFeatureWithoutEffect(t *testing.T) {
	s := &mapShaper{} // no substitutions registered
	baseline, featured, err := ApplyFeature(s, nil, "Hello", 35, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !baseline.Equal(featured) {
		t.Errorf("expected an ineffective activation to reproduce the baseline run")
	}
}

func TestApplyFeaturePropagatesShaperError(t *testing.T) {
	boom := errors.New("boom")
	s := &mapShaper{fail: boom}
	_, _, err := ApplyFeature(s, nil, "Hello", 10, 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the shaper error to propagate, got %v", err)
	}
}

func TestGlyphRunEqualIgnoresLayoutData(t *testing.T) {
	a := GlyphRun{Glyphs: []Glyph{{GID: 7, XAdvance: 100}, {GID: 9}}}
	b := GlyphRun{Glyphs: []Glyph{{GID: 7, XAdvance: 999, YOffset: -3}, {GID: 9}}}
	if !a.Equal(b) {
		t.Errorf("expected runs with identical glyph ids to compare equal")
	}
	c := GlyphRun{Glyphs: []Glyph{{GID: 7}, {GID: 10}}}
	if a.Equal(c) {
		t.Errorf("expected runs with different glyph ids to compare unequal")
	}
	d := GlyphRun{Glyphs: []Glyph{{GID: 7}}}
	if a.Equal(d) {
		t.Errorf("expected runs of different length to compare unequal")
	}
}

func TestGlyphRunGIDs(t *testing.T) {
	run := GlyphRun{Glyphs: []Glyph{{GID: 3}, {GID: 1}, {GID: 2}}}
	gids := run.GIDs()
	if len(gids) != 3 || gids[0] != 3 || gids[1] != 1 || gids[2] != 2 {
		t.Errorf("unexpected gid sequence: %v", gids)
	}
}
