/*
Package otcat builds typed feature catalogs for OpenType fonts.

A catalog lists the typographic feature types a font declares, each with its
concrete selectors, in the order the font author wrote them down. The primary
source is the AAT feature name table ('feat'); fonts without one, but with a
GSUB table, get a catalog synthesized from their GSUB feature list through the
registered mapping between OpenType feature tags and AAT (type, selector)
pairs.

A catalog is a pure value: building it twice for the same font handle yields
element-for-element equal results, and a font without any feature declaration
yields an empty catalog, which is a legitimate result, not an error.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otcat

import (
	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otfeat'
func tracer() tracing.Trace {
	return tracing.Select("otfeat")
}

// FeatureSelector is one concrete choice within a feature type, e.g.
// "Superiors" within "Vertical Position".
type FeatureSelector struct {
	ID   uint16
	Name string
}

// FeatureType is one axis of typographic variation a font declares, together
// with the selectors available on that axis. Selector order follows the
// font's declaration.
type FeatureType struct {
	ID        uint16
	Name      string
	Selectors []FeatureSelector
}

// Catalog is the ordered sequence of feature types declared by a font.
type Catalog []FeatureType

// BuildCatalog reads a font's feature declarations into a catalog.
//
// Declaration order is preserved. A nil handle, a font without feature
// tables, or a malformed feature table all produce an empty catalog.
func BuildCatalog(f *otfeat.Font) Catalog {
	if f == nil {
		return Catalog{}
	}
	if cat, ok := parseFeatTable(f); ok {
		tracer().Debugf("catalog for '%s' from 'feat' table: %d types", f.Fontname, len(cat))
		return cat
	}
	cat := synthesizeFromGSUB(f)
	tracer().Debugf("catalog for '%s' from GSUB: %d types", f.Fontname, len(cat))
	return cat
}

// Equal reports whether two catalogs carry identical type/selector id-and-name
// sequences, in the same order.
func (cat Catalog) Equal(other Catalog) bool {
	if len(cat) != len(other) {
		return false
	}
	for i, ft := range cat {
		of := other[i]
		if ft.ID != of.ID || ft.Name != of.Name || len(ft.Selectors) != len(of.Selectors) {
			return false
		}
		for j, sel := range ft.Selectors {
			if sel != of.Selectors[j] {
				return false
			}
		}
	}
	return true
}

// Type returns the catalog entry for a feature type id, if present.
func (cat Catalog) Type(typeID uint16) (FeatureType, bool) {
	for _, ft := range cat {
		if ft.ID == typeID {
			return ft, true
		}
	}
	return FeatureType{}, false
}
