package views

import (
	"iter"

	"github.com/ValentinKolb/dColl/lib/coll"
)

// --------------------------------------------------------------------------
// Key Set
// --------------------------------------------------------------------------

type keySet[K, V any] struct {
	m coll.Map[K, V]
}

// KeySet returns a live view of the keys of m. Adding is not supported.
func KeySet[K, V any](m coll.Map[K, V]) coll.Set[K] {
	return &keySet[K, V]{m: m}
}

func (s *keySet[K, V]) Len() int            { return s.m.Len() }
func (s *keySet[K, V]) IsEmpty() bool       { return s.m.IsEmpty() }
func (s *keySet[K, V]) Contains(k K) bool   { return s.m.ContainsKey(k) }
func (s *keySet[K, V]) Clear() error        { return s.m.Clear() }
func (s *keySet[K, V]) String() string      { return coll.FormatSeq(s.All()) }
func (s *keySet[K, V]) Add(K) (bool, error) { return false, coll.Unsupported("Add on a key set") }

func (s *keySet[K, V]) Remove(k K) (bool, error) {
	if !s.m.ContainsKey(k) {
		return false, nil
	}
	if _, err := s.m.Remove(k); err != nil {
		return false, err
	}
	return true, nil
}

func (s *keySet[K, V]) Iterator() coll.Iterator[K] {
	return Map[coll.Entry[K, V], K](s.m.Iterator(), coll.Entry[K, V].Key)
}

func (s *keySet[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *keySet[K, V]) ToSlice() []K {
	out := make([]K, 0, s.m.Len())
	for k := range s.All() {
		out = append(out, k)
	}
	return out
}

// --------------------------------------------------------------------------
// Values
// --------------------------------------------------------------------------

type values[K, V any] struct {
	m coll.Map[K, V]
}

// Values returns a live view of the values of m. Adding is not supported.
func Values[K, V any](m coll.Map[K, V]) coll.Collection[V] {
	return &values[K, V]{m: m}
}

func (c *values[K, V]) Len() int          { return c.m.Len() }
func (c *values[K, V]) IsEmpty() bool     { return c.m.IsEmpty() }
func (c *values[K, V]) Contains(v V) bool { return c.m.ContainsValue(v) }
func (c *values[K, V]) Clear() error      { return c.m.Clear() }
func (c *values[K, V]) String() string    { return coll.FormatSeq(c.All()) }
func (c *values[K, V]) Add(V) (bool, error) {
	return false, coll.Unsupported("Add on a values view")
}

// Remove deletes the first entry in iteration order holding v.
func (c *values[K, V]) Remove(v V) (bool, error) {
	it := c.m.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false, err
		}
		if coll.Equal(e.Value(), v) {
			if err := it.Remove(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (c *values[K, V]) Iterator() coll.Iterator[V] {
	return Map[coll.Entry[K, V], V](c.m.Iterator(), coll.Entry[K, V].Value)
}

func (c *values[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range c.m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (c *values[K, V]) ToSlice() []V {
	out := make([]V, 0, c.m.Len())
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}

// --------------------------------------------------------------------------
// Entry Set
// --------------------------------------------------------------------------

type entrySet[K, V any] struct {
	m coll.Map[K, V]
}

// EntrySet returns a live view of the entries of m. Adding is not supported.
// If m is coll.FastIterable, so is the returned set.
func EntrySet[K, V any](m coll.Map[K, V]) coll.Set[coll.Entry[K, V]] {
	if _, ok := m.(coll.FastIterable[K, V]); ok {
		return &fastEntrySet[K, V]{entrySet[K, V]{m: m}}
	}
	return &entrySet[K, V]{m: m}
}

func (s *entrySet[K, V]) Len() int       { return s.m.Len() }
func (s *entrySet[K, V]) IsEmpty() bool  { return s.m.IsEmpty() }
func (s *entrySet[K, V]) Clear() error   { return s.m.Clear() }
func (s *entrySet[K, V]) String() string { return coll.FormatMap(s.m) }
func (s *entrySet[K, V]) Add(coll.Entry[K, V]) (bool, error) {
	return false, coll.Unsupported("Add on an entry set")
}

func (s *entrySet[K, V]) Contains(e coll.Entry[K, V]) bool {
	if e == nil {
		return false
	}
	v, ok := s.m.Lookup(e.Key())
	return ok && coll.Equal(v, e.Value())
}

func (s *entrySet[K, V]) Remove(e coll.Entry[K, V]) (bool, error) {
	if !s.Contains(e) {
		return false, nil
	}
	if _, err := s.m.Remove(e.Key()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *entrySet[K, V]) Iterator() coll.Iterator[coll.Entry[K, V]] {
	return s.m.Iterator()
}

func (s *entrySet[K, V]) All() iter.Seq[coll.Entry[K, V]] {
	return func(yield func(coll.Entry[K, V]) bool) {
		for k, v := range s.m.All() {
			if !yield(coll.NewEntry(k, v)) {
				return
			}
		}
	}
}

func (s *entrySet[K, V]) ToSlice() []coll.Entry[K, V] {
	out := make([]coll.Entry[K, V], 0, s.m.Len())
	for e := range s.All() {
		out = append(out, e)
	}
	return out
}

type fastEntrySet[K, V any] struct {
	entrySet[K, V]
}

func (s *fastEntrySet[K, V]) FastIterator() coll.EntryIterator[K, V] {
	return s.m.(coll.FastIterable[K, V]).FastIterator()
}
