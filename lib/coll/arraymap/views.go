package arraymap

import (
	"iter"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// --------------------------------------------------------------------------
// Key Set
// --------------------------------------------------------------------------

// keySet is a live view of the keys of an ArrayMap
type keySet[K coll.Scalar, V any] struct {
	m *ArrayMap[K, V]
}

func (s *keySet[K, V]) Len() int            { return s.m.size }
func (s *keySet[K, V]) IsEmpty() bool       { return s.m.size == 0 }
func (s *keySet[K, V]) Contains(k K) bool   { return s.m.findKey(k) >= 0 }
func (s *keySet[K, V]) Clear() error        { return s.m.Clear() }
func (s *keySet[K, V]) String() string      { return coll.FormatSeq(s.All()) }
func (s *keySet[K, V]) Add(K) (bool, error) { return false, coll.Unsupported("Add on a key set") }

func (s *keySet[K, V]) Remove(k K) (bool, error) {
	i := s.m.findKey(k)
	if i < 0 {
		return false, nil
	}
	s.m.removeAt(i)
	return true, nil
}

func (s *keySet[K, V]) Iterator() coll.Iterator[K] {
	return &keyIterator[K, V]{cursor: newCursor(s.m)}
}

func (s *keySet[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i < s.m.size; i++ {
			if !yield(s.m.keys[i]) {
				return
			}
		}
	}
}

func (s *keySet[K, V]) ToSlice() []K {
	out := make([]K, s.m.size)
	copy(out, s.m.keys[:s.m.size])
	return out
}

// --------------------------------------------------------------------------
// Values
// --------------------------------------------------------------------------

// valueCollection is a live view of the values of an ArrayMap
type valueCollection[K coll.Scalar, V any] struct {
	m *ArrayMap[K, V]
}

func (c *valueCollection[K, V]) Len() int          { return c.m.size }
func (c *valueCollection[K, V]) IsEmpty() bool     { return c.m.size == 0 }
func (c *valueCollection[K, V]) Contains(v V) bool { return c.m.ContainsValue(v) }
func (c *valueCollection[K, V]) Clear() error      { return c.m.Clear() }
func (c *valueCollection[K, V]) String() string    { return coll.FormatSeq(c.All()) }
func (c *valueCollection[K, V]) Add(V) (bool, error) {
	return false, coll.Unsupported("Add on a values view")
}

// Remove deletes the entry holding the first occurrence of v in storage order.
func (c *valueCollection[K, V]) Remove(v V) (bool, error) {
	for i := 0; i < c.m.size; i++ {
		if coll.Equal(c.m.values[i], v) {
			c.m.removeAt(i)
			return true, nil
		}
	}
	return false, nil
}

func (c *valueCollection[K, V]) Iterator() coll.Iterator[V] {
	return &valueIterator[K, V]{cursor: newCursor(c.m)}
}

func (c *valueCollection[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < c.m.size; i++ {
			if !yield(c.m.values[i]) {
				return
			}
		}
	}
}

func (c *valueCollection[K, V]) ToSlice() []V {
	out := make([]V, c.m.size)
	copy(out, c.m.values[:c.m.size])
	return out
}

// --------------------------------------------------------------------------
// Entry Set
// --------------------------------------------------------------------------

// entrySet is a live view of the entries of an ArrayMap
type entrySet[K coll.Scalar, V any] struct {
	m *ArrayMap[K, V]
}

func (s *entrySet[K, V]) Len() int       { return s.m.size }
func (s *entrySet[K, V]) IsEmpty() bool  { return s.m.size == 0 }
func (s *entrySet[K, V]) Clear() error   { return s.m.Clear() }
func (s *entrySet[K, V]) String() string { return coll.FormatMap[K, V](s.m) }
func (s *entrySet[K, V]) Add(coll.Entry[K, V]) (bool, error) {
	return false, coll.Unsupported("Add on an entry set")
}

// find returns the position of e if its key is mapped to an equal value
func (s *entrySet[K, V]) find(e coll.Entry[K, V]) int {
	if e == nil {
		return -1
	}
	i := s.m.findKey(e.Key())
	if i < 0 || !coll.Equal(s.m.values[i], e.Value()) {
		return -1
	}
	return i
}

func (s *entrySet[K, V]) Contains(e coll.Entry[K, V]) bool {
	return s.find(e) >= 0
}

func (s *entrySet[K, V]) Remove(e coll.Entry[K, V]) (bool, error) {
	i := s.find(e)
	if i < 0 {
		return false, nil
	}
	s.m.removeAt(i)
	return true, nil
}

func (s *entrySet[K, V]) Iterator() coll.Iterator[coll.Entry[K, V]] {
	return s.m.Iterator()
}

// FastIterator exposes the reusing entry iterator of the backing map.
func (s *entrySet[K, V]) FastIterator() coll.EntryIterator[K, V] {
	return s.m.FastIterator()
}

func (s *entrySet[K, V]) All() iter.Seq[coll.Entry[K, V]] {
	return func(yield func(coll.Entry[K, V]) bool) {
		for i := 0; i < s.m.size; i++ {
			if !yield(coll.NewEntry(s.m.keys[i], s.m.values[i])) {
				return
			}
		}
	}
}

func (s *entrySet[K, V]) ToSlice() []coll.Entry[K, V] {
	out := make([]coll.Entry[K, V], 0, s.m.size)
	for e := range s.All() {
		out = append(out, e)
	}
	return out
}
