package sorted

import "github.com/ValentinKolb/dColl/lib/coll"

// --------------------------------------------------------------------------
// Entry Iterator
// --------------------------------------------------------------------------

// iterator walks a TreeMap in ascending order. After every step the following
// node is looked up again from the key of the current one, so removing the
// current entry (through the iterator or the map) does not disturb it.
type iterator[K coll.Scalar, V any] struct {
	m     *TreeMap[K, V]
	next  *node[K, V]
	last  *node[K, V]
	reuse bool
	entry treeEntry[K, V]
}

func newIterator[K coll.Scalar, V any](m *TreeMap[K, V], from bound[K], reuse bool) *iterator[K, V] {
	return &iterator[K, V]{m: m, next: m.ceiling(from), reuse: reuse}
}

func (it *iterator[K, V]) Kind() coll.EntryKind {
	if it.reuse {
		return coll.ReusedEntryView
	}
	return coll.StableEntries
}

func (it *iterator[K, V]) HasNext() bool {
	return it.next != nil
}

func (it *iterator[K, V]) advance() (*node[K, V], error) {
	if it.next == nil {
		return nil, coll.NoSuchElement("iterator is exhausted")
	}
	it.last = it.next
	it.next = it.m.higher(it.last.key)
	return it.last, nil
}

func (it *iterator[K, V]) Next() (coll.Entry[K, V], error) {
	n, err := it.advance()
	if err != nil {
		return nil, err
	}
	if it.reuse {
		it.entry.n = n
		return &it.entry, nil
	}
	return coll.NewEntry(n.key, n.value), nil
}

// Remove deletes the entry returned by the last call to Next.
func (it *iterator[K, V]) Remove() error {
	if it.last == nil {
		return coll.IllegalState("Remove called without a preceding Next")
	}
	it.m.s.tree.Delete(it.last)
	it.last = nil
	return nil
}

func (it *iterator[K, V]) Skip(n int) int {
	i := 0
	for ; i < n && it.next != nil; i++ {
		it.advance()
	}
	return i
}

// treeEntry is the reused entry of a fast iterator. It writes through to its node.
type treeEntry[K coll.Scalar, V any] struct {
	n *node[K, V]
}

func (e *treeEntry[K, V]) Key() K   { return e.n.key }
func (e *treeEntry[K, V]) Value() V { return e.n.value }

func (e *treeEntry[K, V]) SetValue(v V) (V, error) {
	old := e.n.value
	e.n.value = v
	return old, nil
}
