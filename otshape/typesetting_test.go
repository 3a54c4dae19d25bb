package otshape

import (
	"errors"
	"testing"

	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/otfeat/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regularFont(t *testing.T) *otfeat.Font {
	t.Helper()
	f, err := otfeat.ParseFont(testfont.Regular(), 12)
	require.NoError(t, err)
	return f
}

func TestShapeSimpleText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := NewTypesettingShaper()
	run, err := s.Shape(regularFont(t), "H2O", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, run.Len(), "three runes of plain Latin text shape to three glyphs")
	for i, g := range run.Glyphs {
		assert.Equal(t, i, g.Cluster)
		assert.NotZero(t, g.GID, "expected no .notdef glyph for ASCII input")
	}
}

func TestShapeIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := NewTypesettingShaper()
	f := regularFont(t)
	first, err := s.Shape(f, "Hamburgefonstiv 0123", nil)
	require.NoError(t, err)
	second, err := s.Shape(f, "Hamburgefonstiv 0123", nil)
	require.NoError(t, err)
	assert.True(t, first.Equal(second), "expected repeated shaping to yield identical runs")
}

func TestShapeEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := NewTypesettingShaper()
	run, err := s.Shape(regularFont(t), "", nil)
	require.NoError(t, err)
	assert.Zero(t, run.Len())
}

func TestShapeNilFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := NewTypesettingShaper()
	_, err := s.Shape(nil, "Hello", nil)
	assert.True(t, errors.Is(err, ErrShapingUnavailable))
}

func TestShapeUndecodableFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	// structurally valid table directory, but nothing a shaping engine can use
	bytez := testfont.SFNT(
		testfont.Table{Tag: "name", Data: testfont.Names(map[uint16]string{4: "Hollow"})},
	)
	f, err := otfeat.ParseFont(bytez, 12)
	require.NoError(t, err)
	s := NewTypesettingShaper()
	_, err = s.Shape(f, "Hello", nil)
	assert.True(t, errors.Is(err, ErrShapingUnavailable))
}

func TestShapeUnmappableActivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := NewTypesettingShaper()
	f := regularFont(t)
	baseline, err := s.Shape(f, "H2O 1/2", nil)
	require.NoError(t, err)
	// feature type 200 has no OpenType counterpart; shaping degrades to the
	// baseline run instead of failing
	featured, err := s.Shape(f, "H2O 1/2", &Activation{Type: 200, Selector: 1})
	require.NoError(t, err)
	assert.True(t, baseline.Equal(featured))
}

func TestShapeUnsupportedFeature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	s := NewTypesettingShaper()
	f := regularFont(t)
	// Go Regular carries no smcp lookups; the engine ignores the request
	baseline, featured, err := ApplyFeature(s, f, "Hello", 37, 1)
	require.NoError(t, err)
	assert.True(t, baseline.Equal(featured), "unsupported feature yields the baseline run")
}
