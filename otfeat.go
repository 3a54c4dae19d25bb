/*
Package otfeat discovers the typographic features an OpenType font exposes
and verifies their effect on shaped text.

A font declares its selectable variations either in an AAT 'feat' table
(feature types with nested selectors) or implicitly through the feature list
of its GSUB table. This module parses both declarations into a typed catalog,
offers constant-time availability queries over (type, selector) pairs, and can
shape sample text twice, once plain and once with a single feature engaged, to
detect, character by character, which glyphs actually change.

Shaping itself is delegated to a text-shaping collaborator; the default
implementation wraps go-text/typesetting. This module never rasterizes glyphs.

# Status

Font collections (*.ttc) are not supported yet; a collection file resolves to
its first member only if split beforehand.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

Apple's feature registry (feature types and selectors):
https://developer.apple.com/fonts/TrueType-Reference-Manual/RM09/AppendixF.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otfeat

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otfeat'
func tracer() tracing.Trace {
	return tracing.Select("otfeat")
}

// Font is a handle onto a loaded, parseable font resource. It is immutable
// once produced: the binary data must not change for the handle to stay
// usable, and derived structures (feature catalogs, availability indexes)
// are re-derived, never patched, when a font store remaps a name.
type Font struct {
	Fontname string  // full font name, from the font's 'name' table
	Binary   []byte  // raw SFNT data
	Size     float64 // point size the handle was requested at
	header   fontHeader
	tables   map[Tag]span
}

// span locates a table within Font.Binary.
type span struct {
	offset uint32
	length uint32
}

// fontHeader is the decoded top of the SFNT table directory.
type fontHeader struct {
	fontType   uint32
	tableCount uint16
}

// LoadFont loads an OpenType font (TTF or OTF) from a file.
func LoadFont(fontfile string, size float64) (*Font, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseFont(bytez, size)
}

// ParseFont parses an OpenType font (TTF or OTF) from memory.
//
// Only the table directory is decoded eagerly; table contents are interpreted
// on demand by the query packages. The input slice must not be modified after
// parsing.
func ParseFont(fbytes []byte, size float64) (*Font, error) {
	f := &Font{Binary: fbytes, Size: size}
	if err := parseTableDirectory(f); err != nil {
		return nil, err
	}
	f.Fontname = NameString(f, nameIDFull)
	tracer().Debugf("parsed font '%s' with %d tables", f.Fontname, f.header.tableCount)
	return f, nil
}

// Table returns the raw bytes of the font table with the given tag, or nil if
// the font does not contain such a table.
func (f *Font) Table(tag Tag) []byte {
	if f == nil {
		return nil
	}
	t, ok := f.tables[tag]
	if !ok {
		return nil
	}
	return f.Binary[t.offset : t.offset+t.length]
}

// TableTags returns a tag for each table contained in the font.
func (f *Font) TableTags() []Tag {
	if f == nil {
		return nil
	}
	tags := make([]Tag, 0, len(f.tables))
	for tag := range f.tables {
		tags = append(tags, tag)
	}
	return tags
}
