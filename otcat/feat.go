package otcat

import (
	"fmt"

	"github.com/npillmayer/otfeat"
	"golang.org/x/image/font/sfnt"
)

// Layout of the AAT feature name table, from
// https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6feat.html :
// a fixed header, followed by feature name records, each pointing at an array
// of setting name records. All names are indices into the font's 'name' table.
const (
	featHeaderSize        = 12
	featNameRecordSize    = 12
	featSettingRecordSize = 4
)

// parseFeatTable decodes a font's 'feat' table into a catalog, resolving the
// referenced name-table entries. The second return value reports whether a
// usable 'feat' table was present at all; a present-but-malformed table
// yields (empty, true) so that callers do not fall through to GSUB synthesis
// with contradictory results.
func parseFeatTable(f *otfeat.Font) (Catalog, bool) {
	b := f.Table(otfeat.T("feat"))
	if b == nil {
		return nil, false
	}
	if len(b) < featHeaderSize {
		tracer().Debugf("feat table too short: %d", len(b))
		return Catalog{}, true
	}
	count := int(u16(b[4:6]))
	recordsEnd := featHeaderSize + count*featNameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("feat table record section out of bounds: count=%d", count)
		return Catalog{}, true
	}
	cat := make(Catalog, 0, count)
	for i := range count {
		rec := b[featHeaderSize+i*featNameRecordSize : featHeaderSize+(i+1)*featNameRecordSize]
		ft := FeatureType{
			ID:   u16(rec[0:2]),
			Name: featureName(f, u16(rec[10:12]), typeName(u16(rec[0:2]))),
		}
		nSettings := int(u16(rec[2:4]))
		settingOffset := int(u32(rec[4:8]))
		settingsEnd := settingOffset + nSettings*featSettingRecordSize
		if settingOffset < 0 || settingsEnd > len(b) {
			tracer().Debugf("feat type %d: setting array out of bounds", ft.ID)
			continue
		}
		ft.Selectors = make([]FeatureSelector, 0, nSettings)
		for j := range nSettings {
			setting := b[settingOffset+j*featSettingRecordSize : settingOffset+(j+1)*featSettingRecordSize]
			selID := u16(setting[0:2])
			ft.Selectors = append(ft.Selectors, FeatureSelector{
				ID:   selID,
				Name: featureName(f, u16(setting[2:4]), selectorName(ft.ID, selID)),
			})
		}
		cat = append(cat, ft)
	}
	return cat, true
}

// featureName resolves a 'feat' name index against the font's 'name' table,
// falling back to the registered canonical name, then to a numeric form.
func featureName(f *otfeat.Font, nameIndex uint16, canonical string) string {
	if s := otfeat.NameString(f, sfnt.NameID(nameIndex)); s != "" {
		return s
	}
	if canonical != "" {
		return canonical
	}
	return fmt.Sprintf("<name %d>", nameIndex)
}

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}
