package arraymap

import (
	"github.com/ValentinKolb/dColl/lib/coll"
)

// --------------------------------------------------------------------------
// Cursor (shared by all iterators of an ArrayMap)
// --------------------------------------------------------------------------

// cursor walks the buffers by position. next is the position of the next
// element, curr the position of the last returned element or -1.
type cursor[K coll.Scalar, V any] struct {
	m    *ArrayMap[K, V]
	curr int
	next int
}

func newCursor[K coll.Scalar, V any](m *ArrayMap[K, V]) cursor[K, V] {
	return cursor[K, V]{m: m, curr: -1}
}

func (c *cursor[K, V]) HasNext() bool {
	return c.next < c.m.size
}

// advance moves to the next position and returns it
func (c *cursor[K, V]) advance() (int, error) {
	if !c.HasNext() {
		return -1, coll.NoSuchElement("iterator is exhausted")
	}
	c.curr = c.next
	c.next++
	return c.curr, nil
}

// Remove deletes the last returned entry. The cursor steps back so the
// element shifted into the vacated slot is returned by the next call to Next.
func (c *cursor[K, V]) Remove() error {
	if c.curr == -1 {
		return coll.IllegalState("Remove called without a preceding Next")
	}
	c.curr = -1
	c.next--
	c.m.removeAt(c.next)
	return nil
}

func (c *cursor[K, V]) Skip(n int) int {
	if n <= 0 {
		return 0
	}
	if max := c.m.size - c.next; n >= max {
		n = max
	}
	if n > 0 {
		c.next += n
		c.curr = c.next - 1
	}
	return n
}

// --------------------------------------------------------------------------
// Iterators
// --------------------------------------------------------------------------

type keyIterator[K coll.Scalar, V any] struct {
	cursor[K, V]
}

func (it *keyIterator[K, V]) Next() (K, error) {
	i, err := it.advance()
	if err != nil {
		var zero K
		return zero, err
	}
	return it.m.keys[i], nil
}

type valueIterator[K coll.Scalar, V any] struct {
	cursor[K, V]
}

func (it *valueIterator[K, V]) Next() (V, error) {
	i, err := it.advance()
	if err != nil {
		var zero V
		return zero, err
	}
	return it.m.values[i], nil
}

// entryIterator allocates a snapshot entry per step (coll.StableEntries)
type entryIterator[K coll.Scalar, V any] struct {
	cursor[K, V]
}

func (it *entryIterator[K, V]) Next() (coll.Entry[K, V], error) {
	i, err := it.advance()
	if err != nil {
		return nil, err
	}
	return coll.NewEntry(it.m.keys[i], it.m.values[i]), nil
}

func (it *entryIterator[K, V]) Kind() coll.EntryKind {
	return coll.StableEntries
}

// fastEntryIterator returns the same entry on every step (coll.ReusedEntryView)
type fastEntryIterator[K coll.Scalar, V any] struct {
	cursor[K, V]
	entry mapEntry[K, V]
}

func (it *fastEntryIterator[K, V]) Next() (coll.Entry[K, V], error) {
	i, err := it.advance()
	if err != nil {
		return nil, err
	}
	it.entry.index = i
	return &it.entry, nil
}

func (it *fastEntryIterator[K, V]) Kind() coll.EntryKind {
	return coll.ReusedEntryView
}

// mapEntry is a positional entry reading and writing the buffers at index
type mapEntry[K coll.Scalar, V any] struct {
	m     *ArrayMap[K, V]
	index int
}

func (e *mapEntry[K, V]) Key() K {
	return e.m.keys[e.index]
}

func (e *mapEntry[K, V]) Value() V {
	return e.m.values[e.index]
}

func (e *mapEntry[K, V]) SetValue(v V) (V, error) {
	old := e.m.values[e.index]
	e.m.values[e.index] = v
	return old, nil
}
