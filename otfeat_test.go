package otfeat_test

import (
	"testing"

	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/otfeat/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
)

func TestParseSyntheticFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	bytez := testfont.SFNT(
		testfont.Table{Tag: "name", Data: testfont.Names(map[uint16]string{
			1: "Testface",
			4: "Testface Regular",
		})},
		testfont.Table{Tag: "feat", Data: testfont.Feat()},
	)
	f, err := otfeat.ParseFont(bytez, 10)
	require.NoError(t, err)
	assert.Equal(t, "Testface Regular", f.Fontname)
	assert.Equal(t, 10.0, f.Size)
	assert.NotNil(t, f.Table(otfeat.T("feat")), "expected feat table to be present")
	assert.Nil(t, f.Table(otfeat.T("GSUB")), "expected GSUB table to be absent")
	assert.Len(t, f.TableTags(), 2)
}

func TestParseRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	_, err := otfeat.ParseFont([]byte("this is not a font at all"), 10)
	assert.Error(t, err)
	_, err = otfeat.ParseFont(nil, 10)
	assert.Error(t, err)
}

func TestParseRealFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	f, err := otfeat.ParseFont(testfont.Regular(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Go", otfeat.NameString(f, sfnt.NameIDFamily),
		"expected family name of embedded test font to be 'Go'")
	assert.NotNil(t, f.Table(otfeat.T("cmap")), "every real font carries a cmap table")
}

func TestNamesRangeYieldsFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfeat")
	defer teardown()
	f, err := otfeat.ParseFont(testfont.Regular(), 12)
	require.NoError(t, err)
	found := false
	for id, value := range otfeat.NamesRange(f) {
		if id == sfnt.NameIDFamily && value == "Go" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected NamesRange to yield the family name")
}

func TestTagRoundtrip(t *testing.T) {
	if s := otfeat.T("feat").String(); s != "feat" {
		t.Errorf("expected tag roundtrip 'feat', got %q", s)
	}
	if otfeat.T("GSUB") != otfeat.MakeTag([]byte("GSUB")) {
		t.Errorf("expected T and MakeTag to agree")
	}
	if s := otfeat.T("ab").String(); s != "ab  " {
		t.Errorf("expected short tags to be padded, got %q", s)
	}
}
