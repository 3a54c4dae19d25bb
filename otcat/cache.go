package otcat

import (
	"sync"

	"github.com/npillmayer/otfeat"
)

// Cache memoizes catalogs and indexes per font handle. Both are pure
// functions of an immutable handle, so entries never expire; a caller that
// remaps a font name to different binary data must resolve a fresh handle,
// which keys a fresh entry.
type Cache struct {
	sync.Mutex
	catalogs map[*otfeat.Font]Catalog
	indexes  map[*otfeat.Font]Index
}

// NewCache creates an empty catalog/index cache.
func NewCache() *Cache {
	return &Cache{
		catalogs: make(map[*otfeat.Font]Catalog),
		indexes:  make(map[*otfeat.Font]Index),
	}
}

// Catalog returns the memoized catalog for a font handle, building it on
// first use.
func (c *Cache) Catalog(f *otfeat.Font) Catalog {
	c.Lock()
	defer c.Unlock()
	if cat, ok := c.catalogs[f]; ok {
		return cat
	}
	cat := BuildCatalog(f)
	c.catalogs[f] = cat
	tracer().Debugf("cache stores catalog for font %v", fontname(f))
	return cat
}

// Index returns the memoized availability index for a font handle, deriving
// catalog and index on first use.
func (c *Cache) Index(f *otfeat.Font) Index {
	c.Lock()
	if ix, ok := c.indexes[f]; ok {
		c.Unlock()
		return ix
	}
	c.Unlock()
	cat := c.Catalog(f) // outside the lock; BuildCatalog may parse
	c.Lock()
	defer c.Unlock()
	if ix, ok := c.indexes[f]; ok {
		return ix
	}
	ix := BuildIndex(cat)
	c.indexes[f] = ix
	return ix
}

func fontname(f *otfeat.Font) string {
	if f == nil {
		return "<nil>"
	}
	return f.Fontname
}
