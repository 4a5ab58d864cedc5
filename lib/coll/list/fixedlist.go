package list

import "github.com/ValentinKolb/dColl/lib/coll"

// fixedStore wraps a slice whose length never changes.
type fixedStore[T coll.Scalar] struct {
	a []T
}

func (s *fixedStore[T]) Len() int {
	return len(s.a)
}

func (s *fixedStore[T]) At(i int) (T, error) {
	return s.a[i], nil
}

func (s *fixedStore[T]) SetAt(i int, v T) (T, error) {
	old := s.a[i]
	s.a[i] = v
	return old, nil
}

func (s *fixedStore[T]) CopyTo(from int, dst []T) error {
	copy(dst, s.a[from:])
	return nil
}

func (s *fixedStore[T]) Features() coll.Feature {
	return coll.FeatureReplace | coll.FeatureBulkGet | coll.FeatureRandomAccess
}

// FixedList is a fixed-size list over a caller supplied slice. Elements can be
// replaced; every structural change fails with coll.ErrUnsupportedOperation.
type FixedList[T coll.Scalar] struct {
	*Base[T]
}

// NewFixedList wraps vs (no copy). Writes through the list are visible in vs.
func NewFixedList[T coll.Scalar](vs []T) *FixedList[T] {
	return &FixedList[T]{Base: New[T](&fixedStore[T]{a: vs})}
}
