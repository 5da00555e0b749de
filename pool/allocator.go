package pool

import (
	"strconv"
	"strings"
)

// Allocator issues unique tags of the form prefix+number.
type Allocator struct {
	prefix string
	next   int
	free   []int
	issued map[int]struct{}
}

// NewAllocator returns an Allocator whose tags start with prefix.
// Panics if prefix is empty: tags would be bare numbers and Release could not
// tell them apart from foreign strings.
func NewAllocator(prefix string) *Allocator {
	if prefix == "" {
		panic("pool: NewAllocator requires a non-empty prefix")
	}
	return &Allocator{prefix: prefix, issued: make(map[int]struct{})}
}

// Prefix returns the tag prefix.
func (a *Allocator) Prefix() string { return a.prefix }

// Acquire returns a tag not currently in use. The oldest released number is
// reused first; otherwise the counter advances.
func (a *Allocator) Acquire() string {
	var n int
	if len(a.free) > 0 {
		n = a.free[0]
		a.free = a.free[1:]
	} else {
		n = a.next
		a.next++
	}
	a.issued[n] = struct{}{}
	return a.prefix + strconv.Itoa(n)
}

// Release returns tag to the free list and reports whether it did so.
// Tags with another prefix, malformed numbers and tags that are not
// currently issued are ignored, so a double release is harmless.
func (a *Allocator) Release(tag string) bool {
	num, ok := strings.CutPrefix(tag, a.prefix)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return false
	}
	if _, live := a.issued[n]; !live {
		return false
	}
	delete(a.issued, n)
	a.free = append(a.free, n)
	return true
}

// InUse returns the number of tags currently issued.
func (a *Allocator) InUse() int { return len(a.issued) }
