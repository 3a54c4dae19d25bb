package otcat

import "github.com/npillmayer/otfeat"

// GSUB header and FeatureList layout, OpenType spec §6.3:
// version (4), scriptListOffset (2), featureListOffset (2), lookupListOffset (2);
// FeatureList: featureCount (2) + featureCount records of tag (4) + offset (2).
const (
	gsubHeaderSize        = 10
	featureRecordSize     = 6
	featureListHeaderSize = 2
)

// gsubFeatureTags returns the feature tags declared in a font's GSUB
// FeatureList, in declaration order, duplicates included. A missing or
// malformed GSUB table yields nil.
func gsubFeatureTags(f *otfeat.Font) []string {
	b := f.Table(otfeat.T("GSUB"))
	if b == nil || len(b) < gsubHeaderSize {
		return nil
	}
	featureListOffset := int(u16(b[6:8]))
	if featureListOffset <= 0 || featureListOffset+featureListHeaderSize > len(b) {
		tracer().Debugf("GSUB feature list offset out of bounds: %d", featureListOffset)
		return nil
	}
	fl := b[featureListOffset:]
	count := int(u16(fl[0:2]))
	recordsEnd := featureListHeaderSize + count*featureRecordSize
	if recordsEnd > len(fl) {
		tracer().Debugf("GSUB feature record section out of bounds: count=%d", count)
		return nil
	}
	tags := make([]string, 0, count)
	for i := range count {
		rec := fl[featureListHeaderSize+i*featureRecordSize:]
		tags = append(tags, string(rec[0:4]))
	}
	return tags
}

// synthesizeFromGSUB derives a catalog for fonts without an AAT 'feat' table:
// every GSUB feature tag with a registered (type, selector) counterpart
// becomes a selector under its feature type. Types appear in the order of
// their first contributing tag, selectors in tag order, first occurrence of a
// repeated tag wins. Tags without a counterpart (positioning features,
// script-internal features) are skipped.
func synthesizeFromGSUB(f *otfeat.Font) Catalog {
	tags := gsubFeatureTags(f)
	if len(tags) == 0 {
		return Catalog{}
	}
	cat := make(Catalog, 0, 4)
	inxByType := make(map[uint16]int)
	seen := make(map[string]bool)
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		typeID, selectorID, ok := pairForTag(tag)
		if !ok {
			tracer().Debugf("GSUB feature '%s' has no feature-type counterpart", tag)
			continue
		}
		inx, ok := inxByType[typeID]
		if !ok {
			inx = len(cat)
			inxByType[typeID] = inx
			cat = append(cat, FeatureType{ID: typeID, Name: typeName(typeID)})
		}
		cat[inx].Selectors = append(cat[inx].Selectors, FeatureSelector{
			ID:   selectorID,
			Name: selectorName(typeID, selectorID),
		})
	}
	return cat
}
