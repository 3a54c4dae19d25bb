/*
Package otshape defines the text-shaping contract of this module and applies
single feature activations to sample text.

Shaping is delegated to a collaborator implementing the Shaper interface; the
default implementation wraps the HarfBuzz port of go-text/typesetting. A
Shaper is a pure function of (font, text, activation): no state carries
between calls, and an activation the font does not support degrades
gracefully to the baseline glyph run instead of failing. Whether a feature is
available is a separate question, answered by package otcat's availability
index; requesting an unsupported feature is deliberately not an error.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otshape

import (
	"errors"

	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'otfeat'
func tracer() tracing.Trace {
	return tracing.Select("otfeat")
}

// ErrShapingUnavailable flags that the shaping collaborator itself cannot be
// used for a font, e.g. because the font's binary data is not decodable by
// the shaping engine. It is fatal to the request and propagated, never
// recovered locally.
var ErrShapingUnavailable = errors.New("shaping unavailable")

// Activation requests that one specific feature be engaged during shaping,
// identified by its AAT feature type and selector. A nil *Activation asks
// for baseline shaping.
type Activation struct {
	Type     uint16
	Selector uint16
}

// GlyphID identifies a glyph within a font. Glyph identities are opaque;
// the only meaningful operation across runs of the same font is equality.
type GlyphID uint32

// Glyph is one shaped output glyph: its identity plus the layout data a
// renderer needs to place it. The layout fields play no role in glyph-run
// comparison.
type Glyph struct {
	GID      GlyphID
	Cluster  int // index of the originating rune in the input text
	XAdvance fixed.Int26_6
	YAdvance fixed.Int26_6
	XOffset  fixed.Int26_6
	YOffset  fixed.Int26_6
}

// GlyphRun is the ordered output of shaping one piece of text.
type GlyphRun struct {
	Glyphs []Glyph
}

// Len returns the number of glyphs in the run.
func (run GlyphRun) Len() int {
	return len(run.Glyphs)
}

// GIDs returns the run's glyph identifiers in order.
func (run GlyphRun) GIDs() []GlyphID {
	ids := make([]GlyphID, len(run.Glyphs))
	for i, g := range run.Glyphs {
		ids[i] = g.GID
	}
	return ids
}

// Equal compares two runs by glyph identity: equal length and the same glyph
// identifier at every position. Advance and offset data is ignored.
func (run GlyphRun) Equal(other GlyphRun) bool {
	if len(run.Glyphs) != len(other.Glyphs) {
		return false
	}
	for i, g := range run.Glyphs {
		if g.GID != other.Glyphs[i].GID {
			return false
		}
	}
	return true
}

// Shaper converts text into a glyph run under a font, optionally with a
// single feature activation engaged.
//
// Implementations guarantee: shaping is a pure function of its arguments,
// and an activation the font does not support yields the baseline run, not
// an error. The error return is reserved for ErrShapingUnavailable
// conditions.
type Shaper interface {
	Shape(f *otfeat.Font, text string, act *Activation) (GlyphRun, error)
}

// ApplyFeature shapes text twice, once baseline and once with the requested
// (type, selector) activation, and returns both runs for side-by-side
// comparison. It performs no substitution logic of its own; if the feature
// is unsupported, featured simply equals baseline.
func ApplyFeature(s Shaper, f *otfeat.Font, text string, typeID, selectorID uint16) (baseline, featured GlyphRun, err error) {
	baseline, err = s.Shape(f, text, nil)
	if err != nil {
		return GlyphRun{}, GlyphRun{}, err
	}
	featured, err = s.Shape(f, text, &Activation{Type: typeID, Selector: selectorID})
	if err != nil {
		return GlyphRun{}, GlyphRun{}, err
	}
	return baseline, featured, nil
}
