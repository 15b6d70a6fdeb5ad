package cart

import "sync"

// ExtraState holds the raw user inputs for one optional extra line item.
// PriceInput is kept as entered; parsing happens in the quotation builder
// so unparsable prices degrade to "excluded" instead of failing.
type ExtraState struct {
	Included   bool
	PriceInput string
}

// Session owns the cart state for one browser session. Every access goes
// through a method holding the session mutex, so rapid repeated actions
// serialize instead of racing on the quantity counters.
type Session struct {
	mu sync.Mutex

	id       string
	cart     Cart
	catalog  Catalog
	discount string
	title    string
	customer string
	extras   map[string]ExtraState
}

// Snapshot is a consistent copy of a session's state, taken under the
// session lock. The quotation builder works exclusively from snapshots.
type Snapshot struct {
	Cart          Cart
	Catalog       Catalog
	DiscountInput string
	Title         string
	Customer      string
	Extras        map[string]ExtraState
}

func newSession(id, defaultTitle string) *Session {
	return &Session{
		id:      id,
		cart:    NewCart(),
		catalog: NewCatalog(),
		title:   defaultTitle,
		extras:  map[string]ExtraState{},
	}
}

// ID returns the session identifier used as the cookie value.
func (s *Session) ID() string {
	return s.id
}

// AddProduct adds the product to the cart under the given category and,
// if this key has never been seen, caches the product snapshot.
func (s *Session) AddProduct(p Product, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := CompositeKey(p, category)
	s.cart = s.cart.Add(k)
	s.catalog = s.catalog.Insert(k, p)
}

// IncrementProduct bumps the quantity for the product's key.
func (s *Session) IncrementProduct(p Product, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.Increment(CompositeKey(p, category))
}

// DecrementProduct lowers the quantity for the product's key, removing
// the entry when it reaches zero.
func (s *Session) DecrementProduct(p Product, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.Decrement(CompositeKey(p, category))
}

// CacheProducts records snapshots for a fetched category listing so the
// cart page can show counters next to already-carted products.
func (s *Session) CacheProducts(products []Product, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.catalog = s.catalog.Insert(CompositeKey(p, category), p)
	}
}

// SetOptions replaces the user-entered adjustments: discount input,
// quotation title, customer name, and per-extra included/price state.
func (s *Session) SetOptions(discountInput, title, customer string, extras map[string]ExtraState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discount = discountInput
	s.title = title
	s.customer = customer
	s.extras = make(map[string]ExtraState, len(extras))
	for slug, st := range extras {
		s.extras[slug] = st
	}
}

// Snapshot returns a consistent copy of the session state. Because it
// holds the same mutex as the mutation methods, a snapshot taken for
// export always reflects the latest settled state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	extras := make(map[string]ExtraState, len(s.extras))
	for slug, st := range s.extras {
		extras[slug] = st
	}
	return Snapshot{
		Cart:          s.cart,
		Catalog:       s.catalog,
		DiscountInput: s.discount,
		Title:         s.title,
		Customer:      s.customer,
		Extras:        extras,
	}
}
