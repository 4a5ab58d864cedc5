package decorate

import (
	"iter"
	"slices"
	"sync"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/views"
)

// --------------------------------------------------------------------------
// Synchronized Map
// --------------------------------------------------------------------------

// SyncMap is a coll.Map whose every call is serialized by one lock.
//
// Thread-safety: safe for concurrent use. Iterators take the lock per step.
type SyncMap[K, V any] struct {
	m coll.Map[K, V]
	g *guard
}

// compile time check that SyncMap implements coll.Map
var _ coll.Map[int32, string] = (*SyncMap[int32, string])(nil)

// SynchronizedMap wraps m. Callers must not access m directly afterwards.
func SynchronizedMap[K, V any](m coll.Map[K, V], opts ...Option) *SyncMap[K, V] {
	return &SyncMap[K, V]{m: m, g: newGuard(opts)}
}

// Locker returns the lock guarding the map and its views.
func (s *SyncMap[K, V]) Locker() sync.Locker { return s.g.locker() }

// Do runs fn with the undecorated map while holding the lock.
func (s *SyncMap[K, V]) Do(fn func(m coll.Map[K, V])) {
	s.g.lock()
	defer s.g.unlock()
	fn(s.m)
}

func (s *SyncMap[K, V]) Len() int      { return read(s.g, s.m.Len) }
func (s *SyncMap[K, V]) IsEmpty() bool { return read(s.g, s.m.IsEmpty) }

func (s *SyncMap[K, V]) Get(k K) V {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.m.Get(k)
}

func (s *SyncMap[K, V]) Lookup(k K) (V, bool) {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.m.Lookup(k)
}

func (s *SyncMap[K, V]) ContainsKey(k K) bool {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.m.ContainsKey(k)
}

func (s *SyncMap[K, V]) ContainsValue(v V) bool {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.m.ContainsValue(v)
}

func (s *SyncMap[K, V]) Put(k K, v V) (V, error) {
	return write(s.g, func() (V, error) { return s.m.Put(k, v) })
}

func (s *SyncMap[K, V]) Remove(k K) (V, error) {
	return write(s.g, func() (V, error) { return s.m.Remove(k) })
}

func (s *SyncMap[K, V]) Clear() error {
	s.g.lock()
	defer s.g.unlock()
	return s.m.Clear()
}

func (s *SyncMap[K, V]) DefaultReturnValue() V { return read(s.g, s.m.DefaultReturnValue) }

func (s *SyncMap[K, V]) SetDefaultReturnValue(v V) error {
	s.g.lock()
	defer s.g.unlock()
	return s.m.SetDefaultReturnValue(v)
}

func (s *SyncMap[K, V]) KeySet() coll.Set[K] {
	return &syncCollection[K]{read(s.g, s.m.KeySet), s.g}
}

func (s *SyncMap[K, V]) Values() coll.Collection[V] {
	return &syncCollection[V]{read(s.g, s.m.Values), s.g}
}

func (s *SyncMap[K, V]) EntrySet() coll.Set[coll.Entry[K, V]] {
	return &syncCollection[coll.Entry[K, V]]{read(s.g, s.m.EntrySet), s.g}
}

func (s *SyncMap[K, V]) Iterator() coll.EntryIterator[K, V] {
	return newSyncEntryIterator(read(s.g, s.m.Iterator), s.g)
}

// All iterates over a snapshot taken under the lock, in the order of the
// wrapped map.
func (s *SyncMap[K, V]) All() iter.Seq2[K, V] {
	t := s.g.rlock()
	keys := make([]K, 0, s.m.Len())
	vals := make([]V, 0, s.m.Len())
	for k, v := range s.m.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	s.g.runlock(t)
	return func(yield func(K, V) bool) {
		for i := range keys {
			if !yield(keys[i], vals[i]) {
				return
			}
		}
	}
}

func (s *SyncMap[K, V]) String() string {
	return coll.FormatMap[K, V](s)
}

// --------------------------------------------------------------------------
// Unmodifiable Map
// --------------------------------------------------------------------------

// ReadOnlyMap forwards reads to the wrapped map and rejects every mutation
// with coll.ErrUnsupportedOperation. Changes made to the wrapped map remain
// visible.
//
// Thread-safety: same as the wrapped map.
type ReadOnlyMap[K, V any] struct {
	m coll.Map[K, V]
}

// compile time check that ReadOnlyMap implements coll.Map
var _ coll.Map[int32, string] = (*ReadOnlyMap[int32, string])(nil)

// UnmodifiableMap returns a read-only view of m.
func UnmodifiableMap[K, V any](m coll.Map[K, V]) *ReadOnlyMap[K, V] {
	return &ReadOnlyMap[K, V]{m}
}

func (r *ReadOnlyMap[K, V]) Len() int               { return r.m.Len() }
func (r *ReadOnlyMap[K, V]) IsEmpty() bool          { return r.m.IsEmpty() }
func (r *ReadOnlyMap[K, V]) Get(k K) V              { return r.m.Get(k) }
func (r *ReadOnlyMap[K, V]) Lookup(k K) (V, bool)   { return r.m.Lookup(k) }
func (r *ReadOnlyMap[K, V]) ContainsKey(k K) bool   { return r.m.ContainsKey(k) }
func (r *ReadOnlyMap[K, V]) ContainsValue(v V) bool { return r.m.ContainsValue(v) }
func (r *ReadOnlyMap[K, V]) DefaultReturnValue() V  { return r.m.DefaultReturnValue() }
func (r *ReadOnlyMap[K, V]) All() iter.Seq2[K, V]   { return r.m.All() }
func (r *ReadOnlyMap[K, V]) Clear() error           { return coll.Unsupported("Clear on a read-only map") }
func (r *ReadOnlyMap[K, V]) KeySet() coll.Set[K]    { return views.UnmodifiableSet(r.m.KeySet()) }
func (r *ReadOnlyMap[K, V]) String() string         { return coll.FormatMap(r.m) }
func (r *ReadOnlyMap[K, V]) Values() coll.Collection[V] {
	return views.UnmodifiableCollection(r.m.Values())
}

func (r *ReadOnlyMap[K, V]) Put(K, V) (V, error) {
	return r.m.DefaultReturnValue(), coll.Unsupported("Put on a read-only map")
}

func (r *ReadOnlyMap[K, V]) Remove(K) (V, error) {
	return r.m.DefaultReturnValue(), coll.Unsupported("Remove on a read-only map")
}

func (r *ReadOnlyMap[K, V]) SetDefaultReturnValue(V) error {
	return coll.Unsupported("SetDefaultReturnValue on a read-only map")
}

// EntrySet returns a read-only set whose entries reject SetValue.
func (r *ReadOnlyMap[K, V]) EntrySet() coll.Set[coll.Entry[K, V]] {
	return &roEntrySet[K, V]{views.UnmodifiableSet(r.m.EntrySet()), r.m}
}

func (r *ReadOnlyMap[K, V]) Iterator() coll.EntryIterator[K, V] {
	return views.UnmodifiableEntryIterator(r.m.Iterator())
}

// roEntrySet routes iteration through the read-only entry iterator of the map.
type roEntrySet[K, V any] struct {
	coll.Set[coll.Entry[K, V]]
	m coll.Map[K, V]
}

func (s *roEntrySet[K, V]) Iterator() coll.Iterator[coll.Entry[K, V]] {
	return views.UnmodifiableEntryIterator(s.m.Iterator())
}

func (s *roEntrySet[K, V]) All() iter.Seq[coll.Entry[K, V]] {
	return coll.Seq(s.Iterator())
}

func (s *roEntrySet[K, V]) ToSlice() []coll.Entry[K, V] {
	return slices.Collect(s.All())
}
