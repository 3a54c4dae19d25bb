/*
Package fontstore resolves logical font identifiers to loadable font handles.

A Store is the byte source for fonts by name; implementations cover a font
directory and the installed system fonts. The Resolver on top maps either an
explicit font name or one of the synthetic design tags (default, rounded,
monospaced, serif) to a parsed handle, memoizing handles per name and size.

Resolution of an explicit name fails with ErrFontNotFound when the store has
no matching resource; resolution of a design tag never fails: an unsupported
design falls back to the unmodified base handle.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontstore

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/npillmayer/otfeat"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'otfeat'
func tracer() tracing.Trace {
	return tracing.Select("otfeat")
}

// fontIdentity derives the family and full name of a font binary from its
// name table, falling back to the file's base name for either entry the
// table lacks. Stores use it so that listings agree on naming regardless of
// where the bytes came from.
func fontIdentity(bytez []byte, path string) (family, full string, err error) {
	f, err := otfeat.ParseFont(bytez, 0)
	if err != nil {
		return "", "", err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	full = f.Fontname
	if full == "" {
		full = base
	}
	family = otfeat.NameString(f, sfnt.NameIDFamily)
	if family == "" {
		family = full
	}
	return family, full, nil
}

// ErrFontNotFound flags failed resolution of an explicit font name: no
// matching resource exists in the store. Callers are expected to surface the
// failure as "font not loaded" state; no default font is substituted
// silently.
var ErrFontNotFound = errors.New("font not found")

// Store is the byte source for fonts by name. Stores are read-only; the
// resolver never mutates them.
type Store interface {
	// Load returns the raw bytes for a font resource matching name.
	Load(name string) ([]byte, error)
	// ListAvailable enumerates all resource names currently available,
	// grouped family → member names. It is a diagnostic operation, never
	// used on the resolution success path.
	ListAvailable() map[string][]string
}
