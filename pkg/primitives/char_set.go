package primitives

// CharSet efficiently represents a set of characters.
//
// It is indexed by byte, so any character a Go string can hold at a single
// index is representable; there is no out-of-range case.
type CharSet struct {
	available [256]bool
	count     int
}

// NewCharSet returns an empty character set.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// Add adds a character to the set.
func (c *CharSet) Add(b byte) {
	if c.available[b] {
		return
	}

	c.count++
	c.available[b] = true
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	if other.count == 0 || c.count == len(c.available) {
		return
	}

	for b, available := range other.available {
		if !available || c.available[b] {
			continue
		}
		c.available[b] = true
		c.count++
	}
}

// Contains checks if a character is in the set.
func (c *CharSet) Contains(b byte) bool {
	return c.available[b]
}

// IsEmpty checks if the set has no characters.
func (c *CharSet) IsEmpty() bool {
	return c.count == 0
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}
