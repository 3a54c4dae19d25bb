// Package testfont builds minimal synthetic SFNT binaries for tests.
//
// The builders emit just enough structure for table-directory parsing and for
// the 'name', 'feat' and GSUB readers: a well-formed offset table, a format-0
// name table with Windows BMP records, an AAT feature name table, and a GSUB
// table whose FeatureList carries the given tags. Checksums are not computed;
// none of the readers verify them.
package testfont

import (
	"encoding/binary"
	"sort"

	"golang.org/x/image/font/gofont/goregular"
)

// Regular returns the bytes of the embedded Go Regular font, a real TrueType
// font usable for shaping tests.
func Regular() []byte {
	return goregular.TTF
}

// Table is one synthetic font table to be placed into an SFNT binary.
type Table struct {
	Tag  string
	Data []byte
}

// SFNT assembles a TrueType-flavored font binary from the given tables.
// Tables are recorded in ascending tag order and aligned to 4 bytes.
func SFNT(tables ...Table) []byte {
	sort.Slice(tables, func(i, j int) bool { return tables[i].Tag < tables[j].Tag })
	n := len(tables)
	directorySize := 12 + 16*n
	b := make([]byte, directorySize)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], uint16(n))
	// searchRange/entrySelector/rangeShift are required by the spec but unused
	// by the parsers under test; emit the values for n=1 rounded down.
	binary.BigEndian.PutUint16(b[6:], 16)
	binary.BigEndian.PutUint16(b[8:], 0)
	binary.BigEndian.PutUint16(b[10:], uint16(16*n-16))
	offset := directorySize
	for i, t := range tables {
		for offset%4 != 0 {
			offset++
		}
		rec := b[12+16*i:]
		copy(rec[0:4], (t.Tag + "    ")[:4])
		binary.BigEndian.PutUint32(rec[8:], uint32(offset))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(t.Data)))
		offset += len(t.Data)
	}
	out := make([]byte, 0, offset)
	out = append(out, b...)
	for _, t := range tables {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		out = append(out, t.Data...)
	}
	return out
}

// Names builds a format-0 'name' table holding the given (nameID → value)
// entries as Windows platform / BMP encoding / en-US records, UTF-16BE.
func Names(names map[uint16]string) []byte {
	ids := make([]uint16, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	header := make([]byte, 6+12*len(ids))
	binary.BigEndian.PutUint16(header[2:], uint16(len(ids)))
	binary.BigEndian.PutUint16(header[4:], uint16(len(header)))
	var storage []byte
	for i, id := range ids {
		value := utf16BE(names[id])
		rec := header[6+12*i:]
		binary.BigEndian.PutUint16(rec[0:], 3)      // platform: Windows
		binary.BigEndian.PutUint16(rec[2:], 1)      // encoding: Unicode BMP
		binary.BigEndian.PutUint16(rec[4:], 0x0409) // language: en-US
		binary.BigEndian.PutUint16(rec[6:], id)
		binary.BigEndian.PutUint16(rec[8:], uint16(len(value)))
		binary.BigEndian.PutUint16(rec[10:], uint16(len(storage)))
		storage = append(storage, value...)
	}
	return append(header, storage...)
}

func utf16BE(s string) []byte {
	var out []byte
	for _, r := range s {
		// BMP only; test strings stay below U+10000
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}

// Feature describes one feature name record for a synthetic 'feat' table.
type Feature struct {
	Type      uint16
	Flags     uint16
	NameIndex uint16 // name-table ID carrying the feature type's name
	Settings  []Setting
}

// Setting is one selector entry within a Feature.
type Setting struct {
	ID        uint16
	NameIndex uint16
}

// Feat builds an AAT feature name table ('feat') from the given records,
// preserving their order.
func Feat(features ...Feature) []byte {
	headerSize := 12 + 12*len(features)
	b := make([]byte, headerSize)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], uint16(len(features)))
	settingsOffset := headerSize
	var settings []byte
	for i, f := range features {
		rec := b[12+12*i:]
		binary.BigEndian.PutUint16(rec[0:], f.Type)
		binary.BigEndian.PutUint16(rec[2:], uint16(len(f.Settings)))
		binary.BigEndian.PutUint32(rec[4:], uint32(settingsOffset))
		binary.BigEndian.PutUint16(rec[8:], f.Flags)
		binary.BigEndian.PutUint16(rec[10:], f.NameIndex)
		for _, s := range f.Settings {
			entry := make([]byte, 4)
			binary.BigEndian.PutUint16(entry[0:], s.ID)
			binary.BigEndian.PutUint16(entry[2:], s.NameIndex)
			settings = append(settings, entry...)
			settingsOffset += 4
		}
	}
	return append(b, settings...)
}

// GSUB builds a minimal GSUB table whose FeatureList declares the given
// feature tags in order. Scripts and lookups are left empty; only the
// FeatureList is meaningful to readers.
func GSUB(featureTags ...string) []byte {
	n := len(featureTags)
	// header(10) + scriptList(2) + featureList + lookupList(2)
	scriptListOffset := 10
	featureListOffset := scriptListOffset + 2
	featureListSize := 2 + 6*n + 4*n // count + records + feature tables
	lookupListOffset := featureListOffset + featureListSize
	b := make([]byte, lookupListOffset+2)
	binary.BigEndian.PutUint16(b[0:], 1) // majorVersion
	binary.BigEndian.PutUint16(b[2:], 0) // minorVersion
	binary.BigEndian.PutUint16(b[4:], uint16(scriptListOffset))
	binary.BigEndian.PutUint16(b[6:], uint16(featureListOffset))
	binary.BigEndian.PutUint16(b[8:], uint16(lookupListOffset))
	fl := b[featureListOffset:]
	binary.BigEndian.PutUint16(fl[0:], uint16(n))
	for i, tag := range featureTags {
		rec := fl[2+6*i:]
		copy(rec[0:4], (tag + "    ")[:4])
		featureTableOffset := 2 + 6*n + 4*i // relative to FeatureList
		binary.BigEndian.PutUint16(rec[4:], uint16(featureTableOffset))
		// empty feature table: featureParamsOffset=0, lookupIndexCount=0
	}
	return b
}
