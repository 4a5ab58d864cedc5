package decorate

import (
	"iter"
	"slices"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// --------------------------------------------------------------------------
// Synchronized Iterators
// --------------------------------------------------------------------------

// syncIterator takes the lock on every step. Next and Skip move the cursor of
// the wrapped iterator and therefore take the write lock.
type syncIterator[T any] struct {
	it coll.Iterator[T]
	g  *guard
}

func (it *syncIterator[T]) HasNext() bool {
	return read(it.g, it.it.HasNext)
}

func (it *syncIterator[T]) Next() (T, error) {
	return write(it.g, it.it.Next)
}

func (it *syncIterator[T]) Remove() error {
	it.g.lock()
	defer it.g.unlock()
	return it.it.Remove()
}

func (it *syncIterator[T]) Skip(n int) int {
	it.g.lock()
	defer it.g.unlock()
	return it.it.Skip(n)
}

type syncEntryIterator[K, V any] struct {
	syncIterator[coll.Entry[K, V]]
	kind coll.EntryKind
}

func newSyncEntryIterator[K, V any](it coll.EntryIterator[K, V], g *guard) *syncEntryIterator[K, V] {
	return &syncEntryIterator[K, V]{syncIterator[coll.Entry[K, V]]{it, g}, it.Kind()}
}

func (it *syncEntryIterator[K, V]) Kind() coll.EntryKind { return it.kind }

func (it *syncEntryIterator[K, V]) Next() (coll.Entry[K, V], error) {
	e, err := it.syncIterator.Next()
	if err != nil {
		return nil, err
	}
	return &syncEntry[K, V]{e, it.g}, nil
}

// syncEntry guards SetValue, which writes through to the map.
type syncEntry[K, V any] struct {
	coll.Entry[K, V]
	g *guard
}

func (e *syncEntry[K, V]) SetValue(v V) (V, error) {
	e.g.lock()
	defer e.g.unlock()
	return e.Entry.SetValue(v)
}

type syncListIterator[T coll.Scalar] struct {
	syncIterator[T]
	it coll.ListIterator[T]
}

func newSyncListIterator[T coll.Scalar](it coll.ListIterator[T], g *guard) *syncListIterator[T] {
	return &syncListIterator[T]{syncIterator[T]{it, g}, it}
}

func (it *syncListIterator[T]) HasPrevious() bool  { return read(it.g, it.it.HasPrevious) }
func (it *syncListIterator[T]) NextIndex() int     { return read(it.g, it.it.NextIndex) }
func (it *syncListIterator[T]) PreviousIndex() int { return read(it.g, it.it.PreviousIndex) }

func (it *syncListIterator[T]) Previous() (T, error) {
	return write(it.g, it.it.Previous)
}

func (it *syncListIterator[T]) Back(n int) int {
	it.g.lock()
	defer it.g.unlock()
	return it.it.Back(n)
}

func (it *syncListIterator[T]) Set(v T) error {
	it.g.lock()
	defer it.g.unlock()
	return it.it.Set(v)
}

func (it *syncListIterator[T]) Add(v T) error {
	it.g.lock()
	defer it.g.unlock()
	return it.it.Add(v)
}

// --------------------------------------------------------------------------
// Synchronized Collections
// --------------------------------------------------------------------------

// syncCollection synchronizes a collection view (KeySet, Values, EntrySet) of
// a synchronized map with the lock of the map.
type syncCollection[T any] struct {
	c coll.Collection[T]
	g *guard
}

// compile time check that syncCollection implements coll.Set
var _ coll.Set[int] = (*syncCollection[int])(nil)

func (c *syncCollection[T]) Len() int      { return read(c.g, c.c.Len) }
func (c *syncCollection[T]) IsEmpty() bool { return read(c.g, c.c.IsEmpty) }

func (c *syncCollection[T]) Contains(v T) bool {
	t := c.g.rlock()
	defer c.g.runlock(t)
	return c.c.Contains(v)
}

func (c *syncCollection[T]) Add(v T) (bool, error) {
	return write(c.g, func() (bool, error) { return c.c.Add(v) })
}

func (c *syncCollection[T]) Remove(v T) (bool, error) {
	return write(c.g, func() (bool, error) { return c.c.Remove(v) })
}

func (c *syncCollection[T]) Clear() error {
	c.g.lock()
	defer c.g.unlock()
	return c.c.Clear()
}

func (c *syncCollection[T]) Iterator() coll.Iterator[T] {
	return &syncIterator[T]{read(c.g, c.c.Iterator), c.g}
}

func (c *syncCollection[T]) ToSlice() []T { return read(c.g, c.c.ToSlice) }

// All iterates over a snapshot taken under the lock.
func (c *syncCollection[T]) All() iter.Seq[T] {
	return slices.Values(c.ToSlice())
}

func (c *syncCollection[T]) String() string {
	return coll.FormatSeq(c.All())
}
