package pool

// Cycle hands out items round-robin. Items given back with Release are
// preferred over the rotation, oldest release first.
//
// The rotation does not skip items that are still out: once every item has
// been handed out the cycle starts over and repeats them.
type Cycle[T comparable] struct {
	items    []T
	pos      int
	released []T
	out      map[T]struct{}
}

// NewCycle returns a Cycle over items. The slice is copied.
func NewCycle[T comparable](items ...T) *Cycle[T] {
	c := &Cycle[T]{}
	c.Reset(items...)
	return c
}

// Next returns the next item. ok is false only when the cycle is empty.
func (c *Cycle[T]) Next() (item T, ok bool) {
	switch {
	case len(c.released) > 0:
		item = c.released[0]
		c.released = c.released[1:]
	case len(c.items) > 0:
		item = c.items[c.pos]
		c.pos = (c.pos + 1) % len(c.items)
	default:
		return item, false
	}
	c.out[item] = struct{}{}
	return item, true
}

// Release gives item back. Items that are not out are ignored.
func (c *Cycle[T]) Release(item T) {
	if _, ok := c.out[item]; !ok {
		return
	}
	delete(c.out, item)
	c.released = append(c.released, item)
}

// Reset replaces the items and forgets everything handed out so far.
func (c *Cycle[T]) Reset(items ...T) {
	c.items = append([]T(nil), items...)
	c.pos = 0
	c.released = nil
	c.out = make(map[T]struct{})
}

// Len returns the number of items in the rotation.
func (c *Cycle[T]) Len() int { return len(c.items) }
