package otfeat

import (
	"fmt"
	"iter"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12

	nameIDFull = sfnt.NameIDFull
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	platform platformID
	encoding encodingID
	language uint16      // not supported
	name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
}

type platformID uint16

// Platforms and encodings we decode name strings from. Macintosh-platform
// records (legacy one-byte encodings) and Windows symbol fonts are skipped.
const (
	platformIDUnicode platformID = 0
	platformIDWindows platformID = 3
)

type encodingID uint16

const (
	encodingIDUnicodeBMP encodingID = 3
	encodingIDWindowsBMP encodingID = 1
)

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table.
//
// Only currently supported encodings are yielded (Unicode BMP and Windows BMP),
// and malformed or out-of-bounds records are skipped. Name IDs may repeat when
// a font carries records for more than one supported platform.
func NamesRange(f *Font) iter.Seq2[sfnt.NameID, string] {
	binary := checkNameTableSafe(f)
	return func(yield func(sfnt.NameID, string) bool) {
		if binary == nil {
			return
		}
		count := int(u16(binary[2:4])) // number of name records
		stringStorageOffset := int(u16(binary[4:6]))
		for i := range count {
			recordSlice := binary[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			key := nameKey{
				platform: platformID(u16(recordSlice[0:2])),
				encoding: encodingID(u16(recordSlice[2:4])),
				language: u16(recordSlice[4:6]),
				name:     sfnt.NameID(u16(recordSlice[6:8])),
			}
			if !isSupportedNameEncoding(key) {
				continue
			}
			strLen := int(u16(recordSlice[8:10]))
			recordOffset := int(u16(recordSlice[10:12]))
			start := stringStorageOffset + recordOffset
			end := start + strLen
			if start < 0 || strLen < 0 || end > len(binary) {
				continue
			}
			stringValue, err := decodeNameUTF16(binary[start:end])
			if err != nil || stringValue == "" {
				continue
			}
			if !yield(key.name, stringValue) {
				return
			}
		}
	}
}

// NameString returns the first decodable value for a given name ID, or the
// empty string if the font has no such record. Feature catalogs use this to
// resolve the name indices referenced by an AAT 'feat' table.
func NameString(f *Font, nameID sfnt.NameID) string {
	for id, value := range NamesRange(f) {
		if id == nameID {
			return value
		}
	}
	return ""
}

// checkNameTableSafe checks if the name table is safe to use, i.e. no
// out-of-bounds access, no empty tables, etc.
func checkNameTableSafe(f *Font) []byte {
	if f == nil {
		return nil
	}
	b := f.Table(T("name"))
	if b == nil {
		tracer().Debugf("no name table found in font")
		return nil
	}
	if len(b) < nameHeaderSize {
		tracer().Debugf("name table too short: %d", len(b))
		return nil
	}
	count := int(u16(b[2:4]))
	strOff := int(u16(b[4:6]))
	if strOff < 0 || strOff > len(b) {
		tracer().Debugf("name table invalid string offset: %d", strOff)
		return nil
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return b
}

func isSupportedNameEncoding(key nameKey) bool {
	// Decode Unicode BMP + Windows BMP entries only.
	return (key.platform == platformIDUnicode && key.encoding == encodingIDUnicodeBMP) ||
		(key.platform == platformIDWindows && key.encoding == encodingIDWindowsBMP)
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}
