package otcover

import (
	"errors"
	"testing"

	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/otfeat/internal/testfont"
	"github.com/npillmayer/otfeat/otcat"
	"github.com/npillmayer/otfeat/otshape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// substShaper shapes one glyph per rune (GID = rune value) and, under any
// activation, remaps the runes in subst. decomp runes expand to two glyphs
// under activation.
type substShaper struct {
	subst  map[rune]otshape.GlyphID
	decomp map[rune]bool
	fail   error
}

func (s *substShaper) Shape(f *otfeat.Font, text string, act *otshape.Activation) (otshape.GlyphRun, error) {
	if s.fail != nil {
		return otshape.GlyphRun{}, s.fail
	}
	run := otshape.GlyphRun{}
	for i, r := range []rune(text) {
		if act != nil && s.decomp[r] {
			run.Glyphs = append(run.Glyphs,
				otshape.Glyph{GID: otshape.GlyphID(r), Cluster: i},
				otshape.Glyph{GID: otshape.GlyphID(r) + 1, Cluster: i})
			continue
		}
		gid := otshape.GlyphID(r)
		if act != nil {
			if mapped, ok := s.subst[r]; ok {
				gid = mapped
			}
		}
		run.Glyphs = append(run.Glyphs, otshape.Glyph{GID: gid, Cluster: i})
	}
	return run, nil
}

func recordFor(t *testing.T, records []Record, c rune) Record {
	t.Helper()
	for _, rec := range records {
		if rec.Char == c {
			return rec
		}
	}
	t.Fatalf("no record for %q", c)
	return Record{}
}

func TestAnalyzeMarksSubstitutedChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := &substShaper{subst: map[rune]otshape.GlyphID{
		'0': 0x2070, '1': 0x00b9, '2': 0x00b2,
	}}
	coverage, err := Analyze(s, nil, 10, 1, DefaultClasses())
	require.NoError(t, err)
	digits := coverage["digits"]
	require.Len(t, digits, 10)
	for _, c := range "012" {
		assert.True(t, recordFor(t, digits, c).Changed, "expected %q to be marked changed", c)
	}
	for _, c := range "3456789" {
		assert.False(t, recordFor(t, digits, c).Changed, "expected %q to be unchanged", c)
	}
	assert.Equal(t, 0, changedCount(coverage["lowercase"]))
	assert.Equal(t, 0, changedCount(coverage["uppercase"]))
	assert.Equal(t, 0, changedCount(coverage["symbols"]))
}

func TestAnalyzeCountsDecompositionAsChanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := &substShaper{decomp: map[rune]bool{'%': true}}
	coverage, err := Analyze(s, nil, 11, 2, DefaultClasses())
	require.NoError(t, err)
	assert.True(t, recordFor(t, coverage["symbols"], '%').Changed,
		"a glyph count differing from baseline counts as changed")
	assert.Equal(t, 1, changedCount(coverage["symbols"]))
}

func TestAnalyzeIsTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := &substShaper{}
	coverage, err := Analyze(s, nil, 37, 1, DefaultClasses())
	require.NoError(t, err)
	require.Len(t, coverage, 4)
	assert.Len(t, coverage["digits"], 10)
	assert.Len(t, coverage["lowercase"], 26)
	assert.Len(t, coverage["uppercase"], 26)
	assert.Len(t, coverage["symbols"], 28)
	// order within a class follows the class definition
	assert.Equal(t, '0', coverage["digits"][0].Char)
	assert.Equal(t, '9', coverage["digits"][9].Char)
	assert.Equal(t, 'a', coverage["lowercase"][0].Char)
	assert.Equal(t, 'Z', coverage["uppercase"][25].Char)
}

func TestAnalyzePropagatesShaperFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	boom := errors.New("engine gone")
	s := &substShaper{fail: boom}
	_, err := Analyze(s, nil, 10, 1, DefaultClasses())
	assert.True(t, errors.Is(err, boom))
}

// TestFeatureWorkflow runs the whole discovery-to-coverage flow: catalog a
// font's declared features, answer availability, shape with one activation
// through the HarfBuzz engine, and analyze coverage.
func TestFeatureWorkflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	declared := testfont.SFNT(
		testfont.Table{Tag: "name", Data: testfont.Names(map[uint16]string{
			4:   "Workflow Test Font",
			256: "Vertical Position",
			257: "Superiors",
			258: "Inferiors",
		})},
		testfont.Table{Tag: "feat", Data: testfont.Feat(
			testfont.Feature{Type: 10, NameIndex: 256, Settings: []testfont.Setting{
				{ID: 1, NameIndex: 257},
				{ID: 2, NameIndex: 258},
			}},
		)},
	)
	catFont, err := otfeat.ParseFont(declared, 12)
	require.NoError(t, err)
	ix := otcat.BuildIndex(otcat.BuildCatalog(catFont))
	assert.True(t, ix.Has(10, 1))
	assert.False(t, ix.Has(10, 3))

	// shaping runs against a real font; superiors are not implemented by it,
	// so activation (10, 1) is a graceful no-op
	shapeFont, err := otfeat.ParseFont(testfont.Regular(), 12)
	require.NoError(t, err)
	s := otshape.NewTypesettingShaper()
	baseline, featured, err := otshape.ApplyFeature(s, shapeFont, "x2", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, baseline.Len())
	assert.True(t, baseline.Equal(featured))

	coverage, err := Analyze(s, shapeFont, 10, 1, DefaultClasses())
	require.NoError(t, err)
	total := 0
	for _, records := range coverage {
		total += len(records)
	}
	assert.Equal(t, 90, total, "coverage is total over all four classes")
}

func TestAnalyzeWithRealShaper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	f, err := otfeat.ParseFont(testfont.Regular(), 12)
	require.NoError(t, err)
	s := otshape.NewTypesettingShaper()
	// feature type 200 maps to no OpenType feature; everything stays unchanged
	coverage, err := Analyze(s, f, 200, 1, DefaultClasses())
	require.NoError(t, err)
	for name, records := range coverage {
		assert.Equal(t, 0, changedCount(records), "class %s", name)
	}
}
