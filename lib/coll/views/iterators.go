package views

import "github.com/ValentinKolb/dColl/lib/coll"

// --------------------------------------------------------------------------
// Mapped Iterator
// --------------------------------------------------------------------------

type mapped[E, T any] struct {
	it coll.Iterator[E]
	f  func(E) T
}

// Map returns an iterator yielding f(e) for every element of it. Remove and
// Skip are forwarded to it.
func Map[E, T any](it coll.Iterator[E], f func(E) T) coll.Iterator[T] {
	return &mapped[E, T]{it: it, f: f}
}

func (m *mapped[E, T]) HasNext() bool  { return m.it.HasNext() }
func (m *mapped[E, T]) Remove() error  { return m.it.Remove() }
func (m *mapped[E, T]) Skip(n int) int { return m.it.Skip(n) }

func (m *mapped[E, T]) Next() (T, error) {
	e, err := m.it.Next()
	if err != nil {
		var zero T
		return zero, err
	}
	return m.f(e), nil
}

// --------------------------------------------------------------------------
// Fixed Entry Iterator
// --------------------------------------------------------------------------

type entries[K, V any] struct {
	es  []coll.Entry[K, V]
	pos int
}

// Entries returns a read-only stable iterator over es.
func Entries[K, V any](es ...coll.Entry[K, V]) coll.EntryIterator[K, V] {
	return &entries[K, V]{es: es}
}

func (it *entries[K, V]) HasNext() bool        { return it.pos < len(it.es) }
func (it *entries[K, V]) Kind() coll.EntryKind { return coll.StableEntries }
func (it *entries[K, V]) Remove() error        { return coll.Unsupported("Remove on a read-only iterator") }

func (it *entries[K, V]) Next() (coll.Entry[K, V], error) {
	if !it.HasNext() {
		return nil, coll.NoSuchElement("iterator is exhausted")
	}
	e := it.es[it.pos]
	it.pos++
	return e, nil
}

func (it *entries[K, V]) Skip(n int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, len(it.es)-it.pos)
	it.pos += n
	return n
}
