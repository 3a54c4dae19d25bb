package otfeat

import "fmt"

// Code comments will occasionally cite passages from the OpenType
// specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

const (
	offsetTableSize = 12 // "the Offset Table is 12 bytes"
	tableRecordSize = 16
)

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

// parseTableDirectory decodes the SFNT offset table and the table records
// following it, recording for every contained table its extent within the
// font's binary data. Table contents are not interpreted here.
func parseTableDirectory(f *Font) error {
	b := f.Binary
	if len(b) < offsetTableSize {
		return errFontFormat("binary data too short for offset table")
	}
	f.header.fontType = u32(b)
	f.header.tableCount = u16(b[4:6])
	if !(f.header.fontType == 0x4f54544f || // OTTO
		f.header.fontType == 0x00010000 || // TrueType
		f.header.fontType == 0x74727565) { // true
		return errFontFormat(fmt.Sprintf("font type not supported: %x", f.header.fontType))
	}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	recordsEnd := offsetTableSize + int(f.header.tableCount)*tableRecordSize
	if recordsEnd > len(b) {
		return errFontFormat("table record entries")
	}
	f.tables = make(map[Tag]span, f.header.tableCount)
	for rec := b[offsetTableSize:recordsEnd]; len(rec) > 0; rec = rec[tableRecordSize:] {
		tag := MakeTag(rec)
		off, size := u32(rec[8:12]), u32(rec[12:16])
		if off > uint32(len(b)) || size > uint32(len(b))-off {
			return errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, off+size, len(b)))
		}
		f.tables[tag] = span{offset: off, length: size}
	}
	return nil
}
