package decorate

import (
	"github.com/ValentinKolb/dColl/lib/coll"
)

// --------------------------------------------------------------------------
// Synchronized SortedMap
// --------------------------------------------------------------------------

// SyncSortedMap is a synchronized coll.SortedMap. Range views share the lock
// of the map they were created from.
type SyncSortedMap[K, V any] struct {
	*SyncMap[K, V]
	sm coll.SortedMap[K, V]
}

// compile time check that SyncSortedMap implements coll.SortedMap
var _ coll.SortedMap[int32, string] = (*SyncSortedMap[int32, string])(nil)

// SynchronizedSortedMap wraps m. Callers must not access m directly afterwards.
func SynchronizedSortedMap[K, V any](m coll.SortedMap[K, V], opts ...Option) *SyncSortedMap[K, V] {
	return newSyncSorted(m, newGuard(opts))
}

func newSyncSorted[K, V any](m coll.SortedMap[K, V], g *guard) *SyncSortedMap[K, V] {
	return &SyncSortedMap[K, V]{&SyncMap[K, V]{m: m, g: g}, m}
}

// Do runs fn with the undecorated map while holding the lock.
func (s *SyncSortedMap[K, V]) Do(fn func(m coll.SortedMap[K, V])) {
	s.g.lock()
	defer s.g.unlock()
	fn(s.sm)
}

func (s *SyncSortedMap[K, V]) Comparator() coll.Comparator[K] { return s.sm.Comparator() }

func (s *SyncSortedMap[K, V]) FirstKey() (K, error) {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.sm.FirstKey()
}

func (s *SyncSortedMap[K, V]) LastKey() (K, error) {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.sm.LastKey()
}

func (s *SyncSortedMap[K, V]) SubMap(from, to K) (coll.SortedMap[K, V], error) {
	return s.view(func() (coll.SortedMap[K, V], error) { return s.sm.SubMap(from, to) })
}

func (s *SyncSortedMap[K, V]) HeadMap(to K) (coll.SortedMap[K, V], error) {
	return s.view(func() (coll.SortedMap[K, V], error) { return s.sm.HeadMap(to) })
}

func (s *SyncSortedMap[K, V]) TailMap(from K) (coll.SortedMap[K, V], error) {
	return s.view(func() (coll.SortedMap[K, V], error) { return s.sm.TailMap(from) })
}

func (s *SyncSortedMap[K, V]) view(fn func() (coll.SortedMap[K, V], error)) (coll.SortedMap[K, V], error) {
	t := s.g.rlock()
	v, err := fn()
	s.g.runlock(t)
	if err != nil {
		return nil, err
	}
	return newSyncSorted(v, s.g), nil
}

// --------------------------------------------------------------------------
// Unmodifiable SortedMap
// --------------------------------------------------------------------------

// ReadOnlySortedMap is a read-only coll.SortedMap. Its range views are
// read-only as well.
type ReadOnlySortedMap[K, V any] struct {
	*ReadOnlyMap[K, V]
	sm coll.SortedMap[K, V]
}

// compile time check that ReadOnlySortedMap implements coll.SortedMap
var _ coll.SortedMap[int32, string] = (*ReadOnlySortedMap[int32, string])(nil)

// UnmodifiableSortedMap returns a read-only view of m.
func UnmodifiableSortedMap[K, V any](m coll.SortedMap[K, V]) *ReadOnlySortedMap[K, V] {
	return &ReadOnlySortedMap[K, V]{&ReadOnlyMap[K, V]{m}, m}
}

func (r *ReadOnlySortedMap[K, V]) Comparator() coll.Comparator[K] { return r.sm.Comparator() }
func (r *ReadOnlySortedMap[K, V]) FirstKey() (K, error)           { return r.sm.FirstKey() }
func (r *ReadOnlySortedMap[K, V]) LastKey() (K, error)            { return r.sm.LastKey() }

func (r *ReadOnlySortedMap[K, V]) SubMap(from, to K) (coll.SortedMap[K, V], error) {
	return readOnlyView(r.sm.SubMap(from, to))
}

func (r *ReadOnlySortedMap[K, V]) HeadMap(to K) (coll.SortedMap[K, V], error) {
	return readOnlyView(r.sm.HeadMap(to))
}

func (r *ReadOnlySortedMap[K, V]) TailMap(from K) (coll.SortedMap[K, V], error) {
	return readOnlyView(r.sm.TailMap(from))
}

func readOnlyView[K, V any](m coll.SortedMap[K, V], err error) (coll.SortedMap[K, V], error) {
	if err != nil {
		return nil, err
	}
	return UnmodifiableSortedMap(m), nil
}
