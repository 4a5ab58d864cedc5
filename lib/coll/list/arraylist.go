package list

import (
	"io"
	"slices"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/ValentinKolb/dColl/lib/coll/codec"
)

// minGrowth is the capacity of the first allocation of an ArrayList
const minGrowth = 10

// --------------------------------------------------------------------------
// Array Storage
// --------------------------------------------------------------------------

// arrayStore keeps the elements in a slice; len(a) is the list size.
type arrayStore[T coll.Scalar] struct {
	a []T
}

// grow makes room for n more elements, at least doubling the capacity
func (s *arrayStore[T]) grow(n int) {
	if len(s.a)+n <= cap(s.a) {
		return
	}
	newCap := max(2*cap(s.a), len(s.a)+n, minGrowth)
	a := make([]T, len(s.a), newCap)
	copy(a, s.a)
	s.a = a

	plog.Debugf("grew array list to capacity %d", newCap)
}

func (s *arrayStore[T]) Len() int {
	return len(s.a)
}

func (s *arrayStore[T]) At(i int) (T, error) {
	return s.a[i], nil
}

func (s *arrayStore[T]) SetAt(i int, v T) (T, error) {
	old := s.a[i]
	s.a[i] = v
	return old, nil
}

func (s *arrayStore[T]) InsertAt(i int, v T) error {
	s.grow(1)
	s.a = slices.Insert(s.a, i, v)
	return nil
}

func (s *arrayStore[T]) RemoveAt(i int) (T, error) {
	old := s.a[i]
	s.a = slices.Delete(s.a, i, i+1)
	return old, nil
}

func (s *arrayStore[T]) InsertSlice(i int, vs []T) error {
	s.grow(len(vs))
	s.a = slices.Insert(s.a, i, vs...)
	return nil
}

func (s *arrayStore[T]) RemoveSlice(from, to int) error {
	s.a = slices.Delete(s.a, from, to)
	return nil
}

func (s *arrayStore[T]) CopyTo(from int, dst []T) error {
	copy(dst, s.a[from:])
	return nil
}

func (s *arrayStore[T]) Features() coll.Feature {
	return coll.FeatureInsert | coll.FeatureReplace | coll.FeatureRemove |
		coll.FeatureBulkInsert | coll.FeatureBulkRemove | coll.FeatureBulkGet |
		coll.FeatureRandomAccess
}

// --------------------------------------------------------------------------
// ArrayList
// --------------------------------------------------------------------------

// ArrayList is a list backed by a growable slice. Ranges are moved with single
// copies instead of element by element.
//
// Thread-safety: ArrayList is not thread-safe.
type ArrayList[T coll.Scalar] struct {
	*Base[T]
	s *arrayStore[T]
}

// compile time check
var _ coll.List[float64] = (*ArrayList[float64])(nil)

func newArrayList[T coll.Scalar](a []T) *ArrayList[T] {
	s := &arrayStore[T]{a: a}
	return &ArrayList[T]{Base: New[T](s), s: s}
}

// NewArrayList creates an empty ArrayList without preallocated storage
func NewArrayList[T coll.Scalar]() *ArrayList[T] {
	return newArrayList[T](nil)
}

// NewArrayListWithCapacity creates an empty ArrayList able to hold capacity elements without growing
func NewArrayListWithCapacity[T coll.Scalar](capacity int) (*ArrayList[T], error) {
	if capacity < 0 {
		return nil, coll.IllegalArgument("capacity (%d) must be non-negative", capacity)
	}
	return newArrayList(make([]T, 0, capacity)), nil
}

// NewArrayListFrom creates an ArrayList holding a copy of vs
func NewArrayListFrom[T coll.Scalar](vs ...T) *ArrayList[T] {
	return newArrayList(slices.Clone(vs))
}

// Wrap creates an ArrayList that uses vs as its storage (no copy). The list owns
// vs afterwards.
func Wrap[T coll.Scalar](vs []T) *ArrayList[T] {
	return newArrayList(vs)
}

// Capacity returns the number of elements the list can hold without growing.
func (l *ArrayList[T]) Capacity() int {
	return cap(l.s.a)
}

// Trim shrinks the storage to the current size.
func (l *ArrayList[T]) Trim() {
	l.s.a = slices.Clip(slices.Clone(l.s.a))
}

// Elements returns the live storage. It is only valid until the next structural change.
func (l *ArrayList[T]) Elements() []T {
	return l.s.a
}

// Clone returns an independent copy.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	return NewArrayListFrom(l.s.a...)
}

// --------------------------------------------------------------------------
// Persistence Operations
// --------------------------------------------------------------------------

// Save writes the element count followed by every element in index order.
func (l *ArrayList[T]) Save(w io.Writer, c codec.Codec[T]) error {
	return codec.WriteSeq(w, len(l.s.a), l.All(), c)
}

// Load replaces the content of l with the persisted form read from r. The
// storage is preallocated for the persisted element count up to codec.MaxPrealloc.
func (l *ArrayList[T]) Load(r io.Reader, c codec.Codec[T]) error {
	var a []T
	_, err := codec.ReadSeq(r, c,
		func(n int) { a = make([]T, 0, n) },
		func(v T) { a = append(a, v) })
	if err != nil {
		return err
	}
	l.s.a = a
	plog.Debugf("loaded %d elements", len(a))
	return nil
}

// ReadArrayList creates a new ArrayList from its persisted form.
func ReadArrayList[T coll.Scalar](r io.Reader, c codec.Codec[T]) (*ArrayList[T], error) {
	l := NewArrayList[T]()
	if err := l.Load(r, c); err != nil {
		return nil, err
	}
	return l, nil
}
