package views

import (
	"iter"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// --------------------------------------------------------------------------
// Read-only Iterators
// --------------------------------------------------------------------------

type roIterator[T any] struct {
	coll.Iterator[T]
}

// UnmodifiableIterator forwards every call to it except Remove, which fails
// with coll.ErrUnsupportedOperation.
func UnmodifiableIterator[T any](it coll.Iterator[T]) coll.Iterator[T] {
	return &roIterator[T]{it}
}

func (it *roIterator[T]) Remove() error {
	return coll.Unsupported("Remove on a read-only iterator")
}

type roEntryIterator[K, V any] struct {
	coll.EntryIterator[K, V]
}

// UnmodifiableEntryIterator returns a non-removing iterator whose entries reject SetValue.
func UnmodifiableEntryIterator[K, V any](it coll.EntryIterator[K, V]) coll.EntryIterator[K, V] {
	return &roEntryIterator[K, V]{it}
}

func (it *roEntryIterator[K, V]) Remove() error {
	return coll.Unsupported("Remove on a read-only iterator")
}

func (it *roEntryIterator[K, V]) Next() (coll.Entry[K, V], error) {
	e, err := it.EntryIterator.Next()
	if err != nil {
		return nil, err
	}
	return roEntry[K, V]{e}, nil
}

type roEntry[K, V any] struct {
	coll.Entry[K, V]
}

func (roEntry[K, V]) SetValue(V) (V, error) {
	var zero V
	return zero, coll.Unsupported("SetValue on a read-only entry")
}

type roListIterator[T any] struct {
	coll.ListIterator[T]
}

// UnmodifiableListIterator forwards movement and rejects Remove, Set and Add.
func UnmodifiableListIterator[T any](it coll.ListIterator[T]) coll.ListIterator[T] {
	return &roListIterator[T]{it}
}

func (it *roListIterator[T]) Remove() error {
	return coll.Unsupported("Remove on a read-only iterator")
}

func (it *roListIterator[T]) Set(T) error {
	return coll.Unsupported("Set on a read-only iterator")
}

func (it *roListIterator[T]) Add(T) error {
	return coll.Unsupported("Add on a read-only iterator")
}

// --------------------------------------------------------------------------
// Read-only Collections
// --------------------------------------------------------------------------

type roCollection[T any] struct {
	c coll.Collection[T]
}

// UnmodifiableCollection returns a read-only view of c.
func UnmodifiableCollection[T any](c coll.Collection[T]) coll.Collection[T] {
	return &roCollection[T]{c: c}
}

// UnmodifiableSet returns a read-only view of s.
func UnmodifiableSet[T any](s coll.Set[T]) coll.Set[T] {
	return &roCollection[T]{c: s}
}

func (c *roCollection[T]) Len() int          { return c.c.Len() }
func (c *roCollection[T]) IsEmpty() bool     { return c.c.IsEmpty() }
func (c *roCollection[T]) Contains(v T) bool { return c.c.Contains(v) }
func (c *roCollection[T]) All() iter.Seq[T]  { return c.c.All() }
func (c *roCollection[T]) ToSlice() []T      { return c.c.ToSlice() }
func (c *roCollection[T]) String() string    { return coll.FormatSeq(c.c.All()) }

func (c *roCollection[T]) Iterator() coll.Iterator[T] {
	return UnmodifiableIterator(c.c.Iterator())
}

func (c *roCollection[T]) Add(T) (bool, error) {
	return false, coll.Unsupported("Add on a read-only collection")
}

func (c *roCollection[T]) Remove(T) (bool, error) {
	return false, coll.Unsupported("Remove on a read-only collection")
}

func (c *roCollection[T]) Clear() error {
	return coll.Unsupported("Clear on a read-only collection")
}
