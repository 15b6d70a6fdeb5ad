package cart

// Catalog caches the product snapshot captured when a key first entered
// the cart. Snapshots do not refresh when the underlying catalog changes
// elsewhere.
type Catalog struct {
	items map[Key]Product
}

// NewCatalog returns an empty catalog cache.
func NewCatalog() Catalog {
	return Catalog{items: map[Key]Product{}}
}

// Insert records a snapshot for the key. First-seen wins: an existing
// snapshot is never overwritten.
func (c Catalog) Insert(k Key, p Product) Catalog {
	if _, ok := c.items[k]; ok {
		return c
	}
	out := Catalog{items: make(map[Key]Product, len(c.items)+1)}
	for key, prod := range c.items {
		out.items[key] = prod
	}
	out.items[k] = p
	return out
}

// Lookup returns the cached snapshot for the key.
func (c Catalog) Lookup(k Key) (Product, bool) {
	p, ok := c.items[k]
	return p, ok
}

// Len returns the number of cached snapshots.
func (c Catalog) Len() int {
	return len(c.items)
}
