package list

import (
	"cmp"
	"iter"

	"github.com/ValentinKolb/dColl/lib/coll"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("list")

// --------------------------------------------------------------------------
// Core Base structure
// --------------------------------------------------------------------------

// Base implements coll.List on top of a Backend. Mutators whose primitive the
// backend does not implement fail with coll.ErrUnsupportedOperation.
//
// Thread-safety: Base is not thread-safe.
type Base[T coll.Scalar] struct {
	b        Backend[T]
	ins      Inserter[T]
	rep      Replacer[T]
	rem      Remover[T]
	bulkIns  BulkInserter[T]
	bulkRem  BulkRemover[T]
	bulkGet  BulkGetter[T]
	features coll.Feature
}

// compile time check
var _ coll.List[int32] = (*Base[int32])(nil)

// New creates a list over b. The optional primitives of b are detected once.
func New[T coll.Scalar](b Backend[T]) *Base[T] {
	l := &Base[T]{b: b, features: featuresOf(b)}
	l.ins, _ = b.(Inserter[T])
	l.rep, _ = b.(Replacer[T])
	l.rem, _ = b.(Remover[T])
	l.bulkIns, _ = b.(BulkInserter[T])
	l.bulkRem, _ = b.(BulkRemover[T])
	l.bulkGet, _ = b.(BulkGetter[T])
	return l
}

// --------------------------------------------------------------------------
// Primitive Operations
// --------------------------------------------------------------------------

func (l *Base[T]) Len() int {
	return l.b.Len()
}

func (l *Base[T]) IsEmpty() bool {
	return l.b.Len() == 0
}

func (l *Base[T]) Get(i int) (T, error) {
	if err := coll.CheckRestrictedIndex(i, l.b.Len()); err != nil {
		var zero T
		return zero, err
	}
	return l.b.At(i)
}

func (l *Base[T]) Set(i int, v T) (T, error) {
	var zero T
	if l.rep == nil {
		return zero, coll.Unsupported("Set")
	}
	if err := coll.CheckRestrictedIndex(i, l.b.Len()); err != nil {
		return zero, err
	}
	return l.rep.SetAt(i, v)
}

func (l *Base[T]) Insert(i int, v T) error {
	if l.ins == nil {
		return coll.Unsupported("Insert")
	}
	if err := coll.CheckIndex(i, l.b.Len()); err != nil {
		return err
	}
	return l.ins.InsertAt(i, v)
}

func (l *Base[T]) RemoveAt(i int) (T, error) {
	var zero T
	if l.rem == nil {
		return zero, coll.Unsupported("RemoveAt")
	}
	if err := coll.CheckRestrictedIndex(i, l.b.Len()); err != nil {
		return zero, err
	}
	return l.rem.RemoveAt(i)
}

// --------------------------------------------------------------------------
// Collection Operations
// --------------------------------------------------------------------------

// Add appends v. It reports true whenever the append succeeded.
func (l *Base[T]) Add(v T) (bool, error) {
	if err := l.Insert(l.b.Len(), v); err != nil {
		return false, err
	}
	return true, nil
}

// AddAll appends vs.
func (l *Base[T]) AddAll(vs ...T) error {
	return l.InsertAll(l.b.Len(), vs)
}

// Remove removes the first occurrence of v.
func (l *Base[T]) Remove(v T) (bool, error) {
	i := l.IndexOf(v)
	if i < 0 {
		return false, nil
	}
	if _, err := l.RemoveAt(i); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Base[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

func (l *Base[T]) Clear() error {
	return l.RemoveRange(0, l.b.Len())
}

func (l *Base[T]) IndexOf(v T) int {
	i := 0
	for e := range l.All() {
		if coll.ScalarEqual(e, v) {
			return i
		}
		i++
	}
	return -1
}

func (l *Base[T]) LastIndexOf(v T) int {
	for i := l.b.Len() - 1; i >= 0; i-- {
		e, err := l.b.At(i)
		if err != nil {
			return -1
		}
		if coll.ScalarEqual(e, v) {
			return i
		}
	}
	return -1
}

func (l *Base[T]) Iterator() coll.Iterator[T] {
	return l.ListIterator()
}

func (l *Base[T]) ListIterator() coll.ListIterator[T] {
	return l.listIterator(0)
}

func (l *Base[T]) ListIteratorAt(i int) (coll.ListIterator[T], error) {
	if err := coll.CheckIndex(i, l.b.Len()); err != nil {
		return nil, err
	}
	return l.listIterator(i), nil
}

func (l *Base[T]) listIterator(i int) coll.ListIterator[T] {
	if src, ok := l.b.(iteratorSource[T]); ok {
		return src.listIterator(i)
	}
	return &listIterator[T]{cursor: cursor[T]{src: l.b, pos: i, last: -1}, l: l}
}

// All iterates in index order. The list must not be modified structurally during iteration.
func (l *Base[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.b.Len(); i++ {
			v, err := l.b.At(i)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func (l *Base[T]) ToSlice() []T {
	out := make([]T, l.b.Len())
	if err := l.GetRange(0, out); err != nil {
		return nil
	}
	return out
}

// --------------------------------------------------------------------------
// Bulk Operations
// --------------------------------------------------------------------------

// InsertAll inserts vs at index i. Without a bulk primitive every element is
// inserted on its own.
func (l *Base[T]) InsertAll(i int, vs []T) error {
	if err := coll.CheckIndex(i, l.b.Len()); err != nil {
		return err
	}
	if len(vs) == 0 {
		return nil
	}
	if l.bulkIns != nil {
		return l.bulkIns.InsertSlice(i, vs)
	}
	if l.ins == nil {
		return coll.Unsupported("InsertAll")
	}
	for j, v := range vs {
		if err := l.ins.InsertAt(i+j, v); err != nil {
			return err
		}
	}
	return nil
}

// RemoveRange removes the elements in [from, to). Without a bulk primitive the
// range is removed through a list iterator.
func (l *Base[T]) RemoveRange(from, to int) error {
	if err := coll.CheckRange(from, to, l.b.Len()); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if l.bulkRem != nil {
		return l.bulkRem.RemoveSlice(from, to)
	}
	if l.rem == nil {
		return coll.Unsupported("RemoveRange")
	}

	it := l.listIterator(from)
	for n := to - from; n > 0; n-- {
		if _, err := it.Next(); err != nil {
			return err
		}
		if err := it.Remove(); err != nil {
			return err
		}
	}
	return nil
}

// GetRange copies len(dst) elements starting at from into dst.
func (l *Base[T]) GetRange(from int, dst []T) error {
	if err := coll.CheckRange(from, from+len(dst), l.b.Len()); err != nil {
		return err
	}
	if l.bulkGet != nil {
		return l.bulkGet.CopyTo(from, dst)
	}
	for j := range dst {
		v, err := l.b.At(from + j)
		if err != nil {
			return err
		}
		dst[j] = v
	}
	return nil
}

// Resize appends zero values or removes elements from the tail until Len() == n.
func (l *Base[T]) Resize(n int) error {
	if n < 0 {
		return coll.IllegalArgument("size (%d) must be non-negative", n)
	}
	size := l.b.Len()
	switch {
	case n > size:
		return l.InsertAll(size, make([]T, n-size))
	case n < size:
		return l.RemoveRange(n, size)
	}
	return nil
}

// SubList returns a live view of [from, to) whose parent is l.
func (l *Base[T]) SubList(from, to int) (coll.List[T], error) {
	return newSubList[T](l, from, to)
}

// --------------------------------------------------------------------------
// Stack Operations
// --------------------------------------------------------------------------

func (l *Base[T]) Push(v T) error {
	_, err := l.Add(v)
	return err
}

func (l *Base[T]) Pop() (T, error) {
	size := l.b.Len()
	if size == 0 {
		var zero T
		return zero, coll.NoSuchElement("Pop on an empty stack")
	}
	return l.RemoveAt(size - 1)
}

func (l *Base[T]) Top() (T, error) {
	size := l.b.Len()
	if size == 0 {
		var zero T
		return zero, coll.NoSuchElement("Top on an empty stack")
	}
	return l.b.At(size - 1)
}

// Peek returns the element i positions below the top; Peek(0) == Top().
func (l *Base[T]) Peek(i int) (T, error) {
	return l.Get(l.b.Len() - 1 - i)
}

// --------------------------------------------------------------------------
// Comparison
// --------------------------------------------------------------------------

// Equal reports whether other has the same elements in the same order.
func (l *Base[T]) Equal(other coll.List[T]) bool {
	if other == nil || other.Len() != l.b.Len() {
		return false
	}
	return l.EqualSeq(other.All())
}

// EqualSeq compares l element-wise with an arbitrary sequence.
func (l *Base[T]) EqualSeq(seq iter.Seq[T]) bool {
	size := l.b.Len()
	i := 0
	for v := range seq {
		if i >= size {
			return false
		}
		e, err := l.b.At(i)
		if err != nil || !coll.ScalarEqual(e, v) {
			return false
		}
		i++
	}
	return i == size
}

// Compare orders l and other lexicographically. A strict prefix is smaller.
func (l *Base[T]) Compare(other coll.List[T]) int {
	la, lb := l.b.Len(), other.Len()
	for i := 0; i < la && i < lb; i++ {
		a, _ := l.b.At(i)
		b, _ := other.Get(i)
		if c := cmp.Compare(a, b); c != 0 {
			return c
		}
	}
	return cmp.Compare(la, lb)
}

func (l *Base[T]) SupportsFeature(f coll.Feature) bool {
	return l.features&f == f
}

func (l *Base[T]) String() string {
	return coll.FormatSeq(l.All())
}
