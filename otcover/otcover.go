/*
Package otcover determines which characters a feature activation visibly
changes.

For fixed character classes (digits, lowercase Latin, uppercase Latin, and a
symbol set) each character is shaped twice, baseline and with the feature
engaged, and classified as changed or unchanged by comparing glyph
identities. The analysis is total: every character of every class yields a
record, whatever the font supports; a feature the font does not implement
simply marks every character unchanged.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otcover

import (
	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/otfeat/otshape"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otfeat'
func tracer() tracing.Trace {
	return tracing.Select("otfeat")
}

// Class is a named, ordered set of characters to analyze.
type Class struct {
	Name  string
	Chars []rune
}

// Record is the per-character analysis result: whether the feature
// activation changed the character's shaped glyph identity.
type Record struct {
	Char    rune
	Changed bool
}

// The fixed character classes. Symbols follow the usual specimen-grid set.
func DefaultClasses() []Class {
	return []Class{
		{Name: "digits", Chars: []rune("0123456789")},
		{Name: "lowercase", Chars: []rune("abcdefghijklmnopqrstuvwxyz")},
		{Name: "uppercase", Chars: []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")},
		{Name: "symbols", Chars: []rune(`(){}[],.:;-+*/\&_^%$#@!~'"<>`)},
	}
}

// Analyze shapes every character of every class twice, baseline and with
// the (typeID, selectorID) activation, and records which characters came
// out with a different glyph identity.
//
// Two runs count as equal iff their glyph-identifier sequences are equal
// length-for-length and element-for-element. A single input character is
// expected to shape to a single glyph; a multi-glyph result under activation
// indicates the feature triggered a decomposition and conservatively counts
// as changed. Class order and character order are preserved in the result.
//
// The only error condition is the shaping collaborator itself failing
// (otshape.ErrShapingUnavailable); feature unavailability is an ordinary
// all-unchanged result.
func Analyze(s otshape.Shaper, f *otfeat.Font, typeID, selectorID uint16, classes []Class) (map[string][]Record, error) {
	out := make(map[string][]Record, len(classes))
	for _, class := range classes {
		records := make([]Record, 0, len(class.Chars))
		for _, c := range class.Chars {
			baseline, featured, err := otshape.ApplyFeature(s, f, string(c), typeID, selectorID)
			if err != nil {
				return nil, err
			}
			records = append(records, Record{
				Char:    c,
				Changed: !baseline.Equal(featured),
			})
		}
		tracer().Debugf("coverage of (%d, %d) over %s: %d/%d changed",
			typeID, selectorID, class.Name, changedCount(records), len(records))
		out[class.Name] = records
	}
	return out, nil
}

func changedCount(records []Record) int {
	n := 0
	for _, rec := range records {
		if rec.Changed {
			n++
		}
	}
	return n
}
