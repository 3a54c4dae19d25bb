package fontstore

import (
	"strings"

	"github.com/npillmayer/otfeat"
)

// Design is one of the synthetic system-font design tags. A design is a
// request for a stylistic variant of the base system font, not a concrete
// font name.
type Design int

const (
	DesignDefault Design = iota
	DesignRounded
	DesignMonospaced
	DesignSerif
)

func (d Design) String() string {
	switch d {
	case DesignRounded:
		return "rounded"
	case DesignMonospaced:
		return "monospaced"
	case DesignSerif:
		return "serif"
	}
	return "default"
}

// ParseDesign recognizes a design tag string. The second return value is
// false for anything that is not a design tag, i.e. for explicit font names.
func ParseDesign(identifier string) (Design, bool) {
	switch strings.ToLower(strings.TrimSpace(identifier)) {
	case "default":
		return DesignDefault, true
	case "rounded":
		return DesignRounded, true
	case "monospaced":
		return DesignMonospaced, true
	case "serif":
		return DesignSerif, true
	}
	return DesignDefault, false
}

// Candidate font names per design, tried in order against the store. These
// cover the common pre-installed fonts per platform; unavailable candidates
// are simply skipped.
var designCandidates = map[Design][]string{
	DesignDefault:    {"SF Pro", "Helvetica Neue", "Segoe UI", "DejaVu Sans", "Arial"},
	DesignRounded:    {"SF Pro Rounded", "Arial Rounded MT Bold", "Varela Round"},
	DesignMonospaced: {"SF Mono", "Menlo", "Consolas", "DejaVu Sans Mono", "Courier New"},
	DesignSerif:      {"New York", "Times New Roman", "Georgia", "DejaVu Serif"},
}

// Resolver maps logical font identifiers to font handles backed by a Store.
// Handles are memoized per (identifier, size); repeated resolution returns
// the identical handle.
type Resolver struct {
	store    Store
	registry *registry
}

// NewResolver creates a resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{
		store:    store,
		registry: newRegistry(),
	}
}

// Resolve maps an identifier, either an explicit font name or one of the
// design tags default / rounded / monospaced / serif, to a loaded font handle at
// the requested point size.
//
// For an explicit name, resolution fails with ErrFontNotFound if the store
// has no matching resource. For a design tag, resolution never fails: the
// base system font is obtained first, the design variant is requested on top
// of it, and an unsupported variant falls back to the unmodified base handle.
func (r *Resolver) Resolve(identifier string, size float64) (*otfeat.Font, error) {
	if design, ok := ParseDesign(identifier); ok {
		return r.resolveDesign(design, size), nil
	}
	return r.resolveName(identifier, size)
}

// ListAvailable enumerates all resource names currently available in the
// underlying store, family → member names. Purely diagnostic; resolution
// never consults it.
func (r *Resolver) ListAvailable() map[string][]string {
	return r.store.ListAvailable()
}

func (r *Resolver) resolveName(name string, size float64) (*otfeat.Font, error) {
	key := registryKey(name, size)
	if f, ok := r.registry.font(key); ok {
		return f, nil
	}
	bytez, err := r.store.Load(name)
	if err != nil {
		tracer().Infof("resolution of '%s' failed: %v", name, err)
		return nil, err
	}
	f, err := otfeat.ParseFont(bytez, size)
	if err != nil {
		return nil, err
	}
	r.registry.store(key, f)
	return f, nil
}

func (r *Resolver) resolveDesign(design Design, size float64) *otfeat.Font {
	base := r.resolveBase(size)
	if design == DesignDefault {
		return base
	}
	for _, candidate := range designCandidates[design] {
		if f, err := r.resolveName(candidate, size); err == nil {
			return f
		}
	}
	// design variant unsupported by this store: fall back to the unmodified
	// base handle
	tracer().Infof("design '%s' unsupported, falling back to base font", design)
	return base
}

// resolveBase obtains the base system font at the requested size, memoized
// under a reserved key. It cannot fail; if none of the configured base
// candidates is available, the embedded fallback font steps in.
func (r *Resolver) resolveBase(size float64) *otfeat.Font {
	key := registryKey("\x00base", size)
	if f, ok := r.registry.font(key); ok {
		return f
	}
	var base *otfeat.Font
	for _, candidate := range designCandidates[DesignDefault] {
		if f, err := r.resolveName(candidate, size); err == nil {
			base = f
			break
		}
	}
	if base == nil {
		base = FallbackFont(size)
	}
	r.registry.store(key, base)
	return base
}
