package otcat

// Index answers constant-time membership queries over the (type, selector)
// pairs of a catalog. It is built once and never mutated afterwards; an index
// built from an empty catalog answers false for every input.
type Index struct {
	pairs map[uint32]struct{}
}

// BuildIndex flattens a catalog into an availability index.
func BuildIndex(cat Catalog) Index {
	ix := Index{pairs: make(map[uint32]struct{})}
	for _, ft := range cat {
		for _, sel := range ft.Selectors {
			ix.pairs[pairKey(ft.ID, sel.ID)] = struct{}{}
		}
	}
	return ix
}

// Has reports whether the catalog this index was built from declares the
// given (type, selector) pair. Pairs referencing an undeclared type simply
// report false; no input is an error.
func (ix Index) Has(typeID, selectorID uint16) bool {
	if ix.pairs == nil {
		return false
	}
	_, ok := ix.pairs[pairKey(typeID, selectorID)]
	return ok
}

// Len returns the number of declared pairs.
func (ix Index) Len() int {
	return len(ix.pairs)
}

func pairKey(typeID, selectorID uint16) uint32 {
	return uint32(typeID)<<16 | uint32(selectorID)
}
