package list

import "github.com/ValentinKolb/dColl/lib/coll"

// --------------------------------------------------------------------------
// Sublist View
// --------------------------------------------------------------------------

// subList is the backend of a live window [from, to) over parent. Every read
// and write is translated by from; to follows the structural changes made
// through the view and only moves after the parent accepted the change.
type subList[T coll.Scalar] struct {
	parent coll.List[T]
	from   int
	to     int
}

// newSubList validates 0 <= from <= to <= parent.Len() and returns the view.
func newSubList[T coll.Scalar](parent coll.List[T], from, to int) (coll.List[T], error) {
	if from > to {
		return nil, coll.IllegalArgument("start index (%d) is greater than end index (%d)", from, to)
	}
	if err := coll.CheckRange(from, to, parent.Len()); err != nil {
		return nil, err
	}
	return New[T](&subList[T]{parent: parent, from: from, to: to}), nil
}

func (s *subList[T]) Len() int {
	return s.to - s.from
}

func (s *subList[T]) At(i int) (T, error) {
	return s.parent.Get(s.from + i)
}

func (s *subList[T]) SetAt(i int, v T) (T, error) {
	return s.parent.Set(s.from+i, v)
}

func (s *subList[T]) InsertAt(i int, v T) error {
	if err := s.parent.Insert(s.from+i, v); err != nil {
		return err
	}
	s.to++
	return nil
}

func (s *subList[T]) RemoveAt(i int) (T, error) {
	v, err := s.parent.RemoveAt(s.from + i)
	if err != nil {
		return v, err
	}
	s.to--
	return v, nil
}

func (s *subList[T]) InsertSlice(i int, vs []T) error {
	if err := s.parent.InsertAll(s.from+i, vs); err != nil {
		return err
	}
	s.to += len(vs)
	return nil
}

func (s *subList[T]) RemoveSlice(from, to int) error {
	if err := s.parent.RemoveRange(s.from+from, s.from+to); err != nil {
		return err
	}
	s.to -= to - from
	return nil
}

func (s *subList[T]) CopyTo(from int, dst []T) error {
	return s.parent.GetRange(s.from+from, dst)
}

// Features reports the capabilities of the parent.
func (s *subList[T]) Features() coll.Feature {
	var f coll.Feature
	for flag := coll.FeatureInsert; flag <= coll.FeatureRandomAccess; flag <<= 1 {
		if s.parent.SupportsFeature(flag) {
			f |= flag
		}
	}
	return f
}

func (s *subList[T]) listIterator(i int) coll.ListIterator[T] {
	return &subListIterator[T]{cursor: cursor[T]{src: s, pos: i, last: -1}, s: s}
}

// --------------------------------------------------------------------------
// Sublist Iterator
// --------------------------------------------------------------------------

// subListIterator mutates the parent directly and adjusts the window in the
// same step.
type subListIterator[T coll.Scalar] struct {
	cursor[T]
	s *subList[T]
}

func (it *subListIterator[T]) Remove() error {
	if it.last == -1 {
		return coll.IllegalState("Remove called without a preceding Next or Previous")
	}
	if _, err := it.s.parent.RemoveAt(it.s.from + it.last); err != nil {
		return err
	}
	it.s.to--
	it.removed()
	return nil
}

func (it *subListIterator[T]) Set(v T) error {
	if it.last == -1 {
		return coll.IllegalState("Set called without a preceding Next or Previous")
	}
	_, err := it.s.parent.Set(it.s.from+it.last, v)
	return err
}

func (it *subListIterator[T]) Add(v T) error {
	if err := it.s.parent.Insert(it.s.from+it.pos, v); err != nil {
		return err
	}
	it.s.to++
	it.pos++
	it.last = -1
	return nil
}
