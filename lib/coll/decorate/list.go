package decorate

import (
	"iter"
	"slices"
	"sync"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/views"
)

// --------------------------------------------------------------------------
// Synchronized List
// --------------------------------------------------------------------------

// SyncList is a coll.List whose every call is serialized by one lock. Sub
// lists share the lock of the list they were created from.
//
// Thread-safety: safe for concurrent use. Iterators take the lock per step.
type SyncList[T coll.Scalar] struct {
	l coll.List[T]
	g *guard
}

// compile time check that SyncList implements coll.List
var _ coll.List[int32] = (*SyncList[int32])(nil)

// SynchronizedList wraps l. Callers must not access l directly afterwards.
func SynchronizedList[T coll.Scalar](l coll.List[T], opts ...Option) *SyncList[T] {
	return &SyncList[T]{l: l, g: newGuard(opts)}
}

// Locker returns the lock guarding the list and its sub lists.
func (s *SyncList[T]) Locker() sync.Locker { return s.g.locker() }

// Do runs fn with the undecorated list while holding the lock.
func (s *SyncList[T]) Do(fn func(l coll.List[T])) {
	s.g.lock()
	defer s.g.unlock()
	fn(s.l)
}

// unwrap returns the undecorated list when other belongs to the same lock
// domain. The lock is not reentrant, so such lists must not be called while it
// is held.
func (s *SyncList[T]) unwrap(other coll.List[T]) coll.List[T] {
	if o, ok := other.(*SyncList[T]); ok && o.g == s.g {
		return o.l
	}
	return other
}

func (s *SyncList[T]) Len() int      { return read(s.g, s.l.Len) }
func (s *SyncList[T]) IsEmpty() bool { return read(s.g, s.l.IsEmpty) }

func (s *SyncList[T]) Contains(v T) bool {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.Contains(v)
}

func (s *SyncList[T]) IndexOf(v T) int {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.IndexOf(v)
}

func (s *SyncList[T]) LastIndexOf(v T) int {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.LastIndexOf(v)
}

func (s *SyncList[T]) Get(i int) (T, error) {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.Get(i)
}

func (s *SyncList[T]) GetRange(from int, dst []T) error {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.GetRange(from, dst)
}

func (s *SyncList[T]) ToSlice() []T     { return read(s.g, s.l.ToSlice) }
func (s *SyncList[T]) All() iter.Seq[T] { return slices.Values(s.ToSlice()) }
func (s *SyncList[T]) String() string   { return coll.FormatSeq(s.All()) }

func (s *SyncList[T]) Top() (T, error) {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.Top()
}

func (s *SyncList[T]) Peek(i int) (T, error) {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.Peek(i)
}

func (s *SyncList[T]) SupportsFeature(f coll.Feature) bool {
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.SupportsFeature(f)
}

func (s *SyncList[T]) Equal(other coll.List[T]) bool {
	other = s.unwrap(other)
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.Equal(other)
}

func (s *SyncList[T]) Compare(other coll.List[T]) int {
	other = s.unwrap(other)
	t := s.g.rlock()
	defer s.g.runlock(t)
	return s.l.Compare(other)
}

func (s *SyncList[T]) Set(i int, v T) (T, error) {
	return write(s.g, func() (T, error) { return s.l.Set(i, v) })
}

func (s *SyncList[T]) Add(v T) (bool, error) {
	return write(s.g, func() (bool, error) { return s.l.Add(v) })
}

func (s *SyncList[T]) Remove(v T) (bool, error) {
	return write(s.g, func() (bool, error) { return s.l.Remove(v) })
}

func (s *SyncList[T]) RemoveAt(i int) (T, error) {
	return write(s.g, func() (T, error) { return s.l.RemoveAt(i) })
}

func (s *SyncList[T]) Pop() (T, error) { return write(s.g, s.l.Pop) }

func (s *SyncList[T]) exec(fn func() error) error {
	s.g.lock()
	defer s.g.unlock()
	return fn()
}

func (s *SyncList[T]) Clear() error   { return s.exec(s.l.Clear) }
func (s *SyncList[T]) Push(v T) error { return s.exec(func() error { return s.l.Push(v) }) }
func (s *SyncList[T]) Insert(i int, v T) error {
	return s.exec(func() error { return s.l.Insert(i, v) })
}
func (s *SyncList[T]) Resize(n int) error { return s.exec(func() error { return s.l.Resize(n) }) }

func (s *SyncList[T]) InsertAll(i int, vs []T) error {
	return s.exec(func() error { return s.l.InsertAll(i, vs) })
}

func (s *SyncList[T]) RemoveRange(from, to int) error {
	return s.exec(func() error { return s.l.RemoveRange(from, to) })
}

func (s *SyncList[T]) SubList(from, to int) (coll.List[T], error) {
	t := s.g.rlock()
	sub, err := s.l.SubList(from, to)
	s.g.runlock(t)
	if err != nil {
		return nil, err
	}
	return &SyncList[T]{l: sub, g: s.g}, nil
}

func (s *SyncList[T]) Iterator() coll.Iterator[T] {
	return &syncIterator[T]{read(s.g, s.l.Iterator), s.g}
}

func (s *SyncList[T]) ListIterator() coll.ListIterator[T] {
	return newSyncListIterator(read(s.g, s.l.ListIterator), s.g)
}

func (s *SyncList[T]) ListIteratorAt(i int) (coll.ListIterator[T], error) {
	t := s.g.rlock()
	it, err := s.l.ListIteratorAt(i)
	s.g.runlock(t)
	if err != nil {
		return nil, err
	}
	return newSyncListIterator(it, s.g), nil
}

// --------------------------------------------------------------------------
// Unmodifiable List
// --------------------------------------------------------------------------

// writeFeatures are the features an unmodifiable list never reports
const writeFeatures = coll.FeatureInsert | coll.FeatureReplace | coll.FeatureRemove |
	coll.FeatureBulkInsert | coll.FeatureBulkRemove

// ReadOnlyList forwards reads to the wrapped list and rejects every mutation
// with coll.ErrUnsupportedOperation. Sub lists and iterators are read-only as
// well.
//
// Thread-safety: same as the wrapped list.
type ReadOnlyList[T coll.Scalar] struct {
	l coll.List[T]
}

// compile time check that ReadOnlyList implements coll.List
var _ coll.List[int32] = (*ReadOnlyList[int32])(nil)

// UnmodifiableList returns a read-only view of l.
func UnmodifiableList[T coll.Scalar](l coll.List[T]) *ReadOnlyList[T] {
	return &ReadOnlyList[T]{l}
}

func (r *ReadOnlyList[T]) Len() int                         { return r.l.Len() }
func (r *ReadOnlyList[T]) IsEmpty() bool                    { return r.l.IsEmpty() }
func (r *ReadOnlyList[T]) Contains(v T) bool                { return r.l.Contains(v) }
func (r *ReadOnlyList[T]) IndexOf(v T) int                  { return r.l.IndexOf(v) }
func (r *ReadOnlyList[T]) LastIndexOf(v T) int              { return r.l.LastIndexOf(v) }
func (r *ReadOnlyList[T]) Get(i int) (T, error)             { return r.l.Get(i) }
func (r *ReadOnlyList[T]) GetRange(from int, dst []T) error { return r.l.GetRange(from, dst) }
func (r *ReadOnlyList[T]) Top() (T, error)                  { return r.l.Top() }
func (r *ReadOnlyList[T]) Peek(i int) (T, error)            { return r.l.Peek(i) }
func (r *ReadOnlyList[T]) All() iter.Seq[T]                 { return r.l.All() }
func (r *ReadOnlyList[T]) ToSlice() []T                     { return r.l.ToSlice() }
func (r *ReadOnlyList[T]) Equal(other coll.List[T]) bool    { return r.l.Equal(other) }
func (r *ReadOnlyList[T]) Compare(other coll.List[T]) int   { return r.l.Compare(other) }
func (r *ReadOnlyList[T]) String() string                   { return coll.FormatSeq(r.l.All()) }
func (r *ReadOnlyList[T]) Iterator() coll.Iterator[T] {
	return views.UnmodifiableIterator(r.l.Iterator())
}
func (r *ReadOnlyList[T]) ListIterator() coll.ListIterator[T] {
	return views.UnmodifiableListIterator(r.l.ListIterator())
}

func (r *ReadOnlyList[T]) SupportsFeature(f coll.Feature) bool {
	return f&writeFeatures == 0 && r.l.SupportsFeature(f)
}

func (r *ReadOnlyList[T]) ListIteratorAt(i int) (coll.ListIterator[T], error) {
	it, err := r.l.ListIteratorAt(i)
	if err != nil {
		return nil, err
	}
	return views.UnmodifiableListIterator(it), nil
}

func (r *ReadOnlyList[T]) SubList(from, to int) (coll.List[T], error) {
	sub, err := r.l.SubList(from, to)
	if err != nil {
		return nil, err
	}
	return UnmodifiableList(sub), nil
}

func (r *ReadOnlyList[T]) Set(int, T) (T, error) {
	var zero T
	return zero, coll.Unsupported("Set on a read-only list")
}

func (r *ReadOnlyList[T]) RemoveAt(int) (T, error) {
	var zero T
	return zero, coll.Unsupported("RemoveAt on a read-only list")
}

func (r *ReadOnlyList[T]) Pop() (T, error) {
	var zero T
	return zero, coll.Unsupported("Pop on a read-only list")
}

func (r *ReadOnlyList[T]) Add(T) (bool, error) {
	return false, coll.Unsupported("Add on a read-only list")
}

func (r *ReadOnlyList[T]) Remove(T) (bool, error) {
	return false, coll.Unsupported("Remove on a read-only list")
}

func (r *ReadOnlyList[T]) Clear() error        { return coll.Unsupported("Clear on a read-only list") }
func (r *ReadOnlyList[T]) Push(T) error        { return coll.Unsupported("Push on a read-only list") }
func (r *ReadOnlyList[T]) Insert(int, T) error { return coll.Unsupported("Insert on a read-only list") }
func (r *ReadOnlyList[T]) Resize(int) error    { return coll.Unsupported("Resize on a read-only list") }

func (r *ReadOnlyList[T]) InsertAll(int, []T) error {
	return coll.Unsupported("InsertAll on a read-only list")
}

func (r *ReadOnlyList[T]) RemoveRange(int, int) error {
	return coll.Unsupported("RemoveRange on a read-only list")
}
