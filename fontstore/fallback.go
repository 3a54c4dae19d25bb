package fontstore

import (
	"github.com/npillmayer/otfeat"
	"golang.org/x/image/font/gofont/goregular"
)

// FallbackFont returns a font handle for the embedded Go Regular font. It is
// used as the base resource of last resort when no configured base font is
// available in a store, and is guaranteed to parse.
func FallbackFont(size float64) *otfeat.Font {
	f, err := otfeat.ParseFont(goregular.TTF, size)
	if err != nil {
		// the embedded font is known-good; failing to parse it means the
		// parser itself is broken
		panic("cannot parse embedded fallback font: " + err.Error())
	}
	return f
}
