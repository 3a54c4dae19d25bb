package otshape

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/otfeat/otcat"
	"golang.org/x/image/math/fixed"
)

// defaultSize is the point size used when a handle was resolved without one.
const defaultSize = 12.0

// TypesettingShaper is the default Shaper, backed by go-text/typesetting's
// HarfBuzz implementation.
//
// It is safe for concurrent use: parsed font.Font objects (thread-safe) are
// cached per handle under a read-write lock, a lightweight font.Face is
// created per Shape call (font.Face is NOT safe for concurrent use), and
// HarfbuzzShaper instances are pooled since they carry internal buffers.
type TypesettingShaper struct {
	shaperPool sync.Pool
	mu         sync.RWMutex
	fontCache  map[*otfeat.Font]*font.Font
}

var _ Shaper = (*TypesettingShaper)(nil)

// NewTypesettingShaper creates a shaper backed by go-text/typesetting.
func NewTypesettingShaper() *TypesettingShaper {
	return &TypesettingShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*otfeat.Font]*font.Font),
	}
}

// Shape converts text into a glyph run under the given font handle. If act
// is non-nil, the corresponding OpenType feature is requested during
// shaping; activations without an OpenType counterpart, like features the
// font does not implement, shape identically to baseline.
func (s *TypesettingShaper) Shape(f *otfeat.Font, text string, act *Activation) (GlyphRun, error) {
	if f == nil {
		return GlyphRun{}, fmt.Errorf("%w: no font handle", ErrShapingUnavailable)
	}
	if text == "" {
		return GlyphRun{}, nil
	}
	parsed, err := s.getOrCreateFont(f)
	if err != nil {
		return GlyphRun{}, err
	}
	runes := []rune(text)
	size := f.Size
	if size <= 0 {
		size = defaultSize
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(parsed),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	if act != nil {
		if tag, ok := otcat.FeatureTag(act.Type, act.Selector); ok {
			input.FontFeatures = []shaping.FontFeature{
				{Tag: ot.MustNewTag(tag), Value: 1},
			}
		} else {
			tracer().Debugf("activation (%d, %d) has no feature tag, shaping baseline",
				act.Type, act.Selector)
		}
	}
	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)
	return GlyphRun{Glyphs: convertGlyphs(output.Glyphs)}, nil
}

// getOrCreateFont returns the cached go-text font for a handle, parsing the
// handle's binary data on first use. font.Font is read-only and safe for
// concurrent use, unlike font.Face.
func (s *TypesettingShaper) getOrCreateFont(f *otfeat.Font) (*font.Font, error) {
	s.mu.RLock()
	if parsed, ok := s.fontCache[f]; ok {
		s.mu.RUnlock()
		return parsed, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if parsed, ok := s.fontCache[f]; ok {
		return parsed, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(f.Binary))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapingUnavailable, err)
	}
	s.fontCache[f] = face.Font
	return face.Font, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by the
// caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = Glyph{
			GID:      GlyphID(g.GlyphID),
			Cluster:  g.TextIndex(),
			XAdvance: g.Advance,
			XOffset:  g.XOffset,
			YOffset:  g.YOffset,
		}
	}
	return out
}
