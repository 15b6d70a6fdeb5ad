package cart

// Cart maps composite keys to quantities, preserving insertion order.
// Insertion order is the sequence-number order of the quotation.
// Mutating operations return a new Cart and leave the receiver untouched,
// so earlier snapshots stay valid.
type Cart struct {
	keys []Key
	qty  map[Key]int
}

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{qty: map[Key]int{}}
}

func (c Cart) clone() Cart {
	out := Cart{
		keys: make([]Key, len(c.keys)),
		qty:  make(map[Key]int, len(c.qty)),
	}
	copy(out.keys, c.keys)
	for k, q := range c.qty {
		out.qty[k] = q
	}
	return out
}

// Add creates the entry at quantity 1, or increments an existing one.
func (c Cart) Add(k Key) Cart {
	return c.Increment(k)
}

// Increment bumps the quantity by 1, creating the entry at 1 if absent.
func (c Cart) Increment(k Key) Cart {
	out := c.clone()
	if _, ok := out.qty[k]; !ok {
		out.keys = append(out.keys, k)
	}
	out.qty[k]++
	return out
}

// Decrement lowers the quantity by 1 and removes the entry entirely when
// the result would be zero or less. Decrementing an absent entry is a
// no-op; quantities are never stored as 0 or negative.
func (c Cart) Decrement(k Key) Cart {
	if _, ok := c.qty[k]; !ok {
		return c
	}
	out := c.clone()
	out.qty[k]--
	if out.qty[k] <= 0 {
		delete(out.qty, k)
		for i, existing := range out.keys {
			if existing == k {
				out.keys = append(out.keys[:i], out.keys[i+1:]...)
				break
			}
		}
	}
	return out
}

// Quantity returns the stored quantity, or 0 for absent entries.
func (c Cart) Quantity(k Key) int {
	return c.qty[k]
}

// Keys returns the composite keys in insertion order.
func (c Cart) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of distinct entries.
func (c Cart) Len() int {
	return len(c.keys)
}
