package fontstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/otfeat"
)

// registry memoizes resolved font handles keyed by normalized name and size.
// Handles are immutable once produced, so entries never need invalidation
// within a session; a store remapping a name requires a new resolver.
type registry struct {
	sync.Mutex
	fonts map[string]*otfeat.Font
}

func newRegistry() *registry {
	return &registry{fonts: make(map[string]*otfeat.Font)}
}

func (r *registry) font(key string) (*otfeat.Font, bool) {
	r.Lock()
	defer r.Unlock()
	f, ok := r.fonts[key]
	return f, ok
}

func (r *registry) store(key string, f *otfeat.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	r.Lock()
	defer r.Unlock()
	if _, ok := r.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
		r.fonts[key] = f
	}
}

// registryKey normalizes a font identifier and appends the size, so that the
// same font requested at different sizes yields distinct handles.
func registryKey(name string, size float64) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s@%.2f", name, size)
}
